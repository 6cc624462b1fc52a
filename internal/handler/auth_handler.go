package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/authz"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/notify"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/session"
)

// CookieSettings controls how the session cookie is written.
type CookieSettings struct {
	Secure bool
	MaxAge int
}

var cookieSettings = CookieSettings{Secure: false, MaxAge: 12 * 3600}

// ConfigureCookies sets the process-wide cookie policy. Called once at
// startup before the router starts serving.
func ConfigureCookies(s CookieSettings) {
	cookieSettings = s
}

func setSessionCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, cookieSettings.MaxAge, "/", "", cookieSettings.Secure, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", cookieSettings.Secure, true)
}

// AuthHandler handles login, logout, and the password flows.
type AuthHandler struct {
	api    backend.AuthAPI
	store  session.Store
	codec  *session.CookieCodec
	poller *notify.Poller
	ttl    time.Duration
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(api backend.AuthAPI, store session.Store, codec *session.CookieCodec, poller *notify.Poller, ttl time.Duration) *AuthHandler {
	return &AuthHandler{api: api, store: store, codec: codec, poller: poller, ttl: ttl}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Role               domain.Role `json:"role"`
	UserName           string      `json:"user_name"`
	MustChangePassword bool        `json:"must_change_password"`
	Redirect           string      `json:"redirect"`
}

// Login authenticates against the backend, creates a session, and tells
// the client where to land first. Users flagged for a password change are
// sent there before anything else; super admins land on the tenant
// console because the regular dashboard has nothing for them.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "username and password are required")
		return
	}

	result, err := h.api.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var be *domain.BackendError
		if errors.As(err, &be) && be.Status == http.StatusUnauthorized {
			RespondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS",
				firstNonEmpty(be.Detail, "invalid credentials or access blocked"))
			return
		}
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}

	s := session.New(result.AccessToken, result.Role, result.UserName, h.ttl)
	if err := h.store.Put(c.Request.Context(), s); err != nil {
		HandleError(c, err)
		return
	}

	cookie, err := h.codec.Encode(s)
	if err != nil {
		HandleError(c, err)
		return
	}
	setSessionCookie(c, cookie)

	RespondOK(c, loginResponse{
		Role:               result.Role,
		UserName:           result.UserName,
		MustChangePassword: result.MustChangePassword,
		Redirect:           landingRoute(result.Role, result.MustChangePassword),
	})
}

// landingRoute picks the post-login destination.
func landingRoute(role domain.Role, mustChangePassword bool) string {
	switch {
	case mustChangePassword:
		return "/change-password"
	case role == domain.RoleSuperAdmin:
		return "/admin/tenants"
	default:
		return "/"
	}
}

// Logout destroys the session and expires the cookie. Always succeeds,
// even when no session exists.
func (h *AuthHandler) Logout(c *gin.Context) {
	if s := middleware.GetSession(c); s != nil && h.poller != nil {
		h.poller.Forget(s.ID)
	}
	middleware.ClearSession(c)
	clearSessionCookie(c)
	RespondOK(c, gin.H{"redirect": "/login"})
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword sets a new password for the logged-in user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "new password must have at least 8 characters")
		return
	}

	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	if err := h.api.ChangePassword(c.Request.Context(), s.Token, req.NewPassword); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"redirect": "/"})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword starts the email reset flow. The response is identical
// whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a valid email is required")
		return
	}

	if err := h.api.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		var be *domain.BackendError
		if !errors.As(err, &be) || be.Status >= 500 {
			HandleError(c, err)
			return
		}
	}
	RespondOK(c, gin.H{"message": "if the email exists, a code has been sent"})
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// VerifyResetCode exchanges the emailed code for a reset token.
func (h *AuthHandler) VerifyResetCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "email and code are required")
		return
	}

	result, err := h.api.VerifyResetCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, result)
}

type resetPasswordRequest struct {
	ResetToken  string `json:"reset_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ConfirmPasswordReset completes the reset flow.
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "reset token and new password are required")
		return
	}

	if err := h.api.ConfirmPasswordReset(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, gin.H{"redirect": "/login"})
}

// Profile returns the logged-in user's profile with usage statistics.
func (h *AuthHandler) Profile(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	profile, err := h.api.Me(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}

// Session returns the current session's public view, used by the browser
// shell to restore state on a hard refresh.
func (h *AuthHandler) Session(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		RespondOK(c, gin.H{"authenticated": false})
		return
	}
	RespondOK(c, gin.H{
		"authenticated": true,
		"role":          s.Role,
		"user_name":     s.UserName,
		"nav":           authz.NavigationEntries(s.Role),
	})
}
