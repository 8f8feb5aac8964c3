package domain

import "time"

// User represents a registered account. Email is the login identifier and is
// unique; HashedPassword stores the bcrypt digest, never the plaintext.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
