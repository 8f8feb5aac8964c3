// Package http wires the auth flows to gin routes. All service failures are
// translated into redirects or error pages here; none escape as panics.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"auth-sample/internal/service"
)

const (
	sessionCookieName = "sessionID"
	messageCookieName = "message"

	// message cookie only needs to survive one redirect
	messageCookieMaxAge = 60

	msgMissingInput = "email and password are required"
	msgEmailTaken   = "this email address is already registered"
	msgSignupFailed = "signup failed, please try again"
)

const contextUserIDKey = "auth.userID"

// Handler wires HTTP routes to the auth service.
type Handler struct {
	auth          service.AuthService
	logger        *logrus.Logger
	sessionMaxAge time.Duration
	secureCookies bool
}

func NewHandler(auth service.AuthService, logger *logrus.Logger, sessionMaxAge time.Duration, secureCookies bool) *Handler {
	return &Handler{
		auth:          auth,
		logger:        logger,
		sessionMaxAge: sessionMaxAge,
		secureCookies: secureCookies,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(pageTemplates())
	router.Use(requestLogger(h.logger))

	router.GET("/", h.topPage)
	router.GET("/login", h.loginPage)
	router.POST("/login", h.login)
	router.GET("/signup", h.signupPage)
	router.POST("/signup", h.signup)
	router.GET("/logout", h.logout)
	router.GET("/my-profile", h.requireSession(), h.myProfile)
}

func (h *Handler) topPage(c *gin.Context) {
	c.HTML(http.StatusOK, "top", nil)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", nil)
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrMissingInput) && !errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Warnf("login: %v", err)
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/my-profile")
}

func (h *Handler) signupPage(c *gin.Context) {
	message, _ := c.Cookie(messageCookieName)
	c.HTML(http.StatusOK, "signup", gin.H{"Message": message})
}

func (h *Handler) signup(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.auth.Register(c.Request.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingInput):
			h.setMessageCookie(c, msgMissingInput)
		case errors.Is(err, service.ErrEmailTaken):
			h.setMessageCookie(c, msgEmailTaken)
		default:
			h.logger.Warnf("signup: %v", err)
			h.setMessageCookie(c, msgSignupFailed)
		}
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	h.clearMessageCookie(c)
	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/my-profile")
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil {
		h.auth.Logout(token)
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) myProfile(c *gin.Context) {
	userID := c.GetInt64(contextUserIDKey)

	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		// a live session pointing at a missing user should not happen;
		// degrade to the access-denied page instead of a 500
		h.logger.Warnf("profile lookup for user %d: %v", userID, err)
		c.HTML(http.StatusForbidden, "denied", nil)
		return
	}

	c.HTML(http.StatusOK, "profile", gin.H{"Email": user.Email})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, token, int(h.sessionMaxAge.Seconds()), "/", "", h.secureCookies, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.secureCookies, true)
}

func (h *Handler) setMessageCookie(c *gin.Context, message string) {
	c.SetCookie(messageCookieName, message, messageCookieMaxAge, "/", "", h.secureCookies, false)
}

func (h *Handler) clearMessageCookie(c *gin.Context) {
	c.SetCookie(messageCookieName, "", -1, "/", "", h.secureCookies, false)
}
