package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("pw123")
	require.NoError(t, err)
	second, err := Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "equal passwords must hash to different stored values")
	assert.True(t, Verify("pw123", first))
	assert.True(t, Verify("pw123", second))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	hashed, err := Hash("correct horse")
	require.NoError(t, err)

	assert.False(t, Verify("battery staple", hashed))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("pw123", "not-a-bcrypt-hash"))
	assert.False(t, Verify("pw123", ""))
}
