package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// APIResponse is the standard envelope for all gateway responses.
type APIResponse struct {
	Success  bool      `json:"success"`
	Data     any       `json:"data,omitempty"`
	Error    *APIError `json:"error,omitempty"`
	Redirect string    `json:"redirect,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates errors into HTTP status codes and error
// codes. The backend's detail string, when present, becomes the message
// so the console can surface it verbatim.
func MapDomainError(err error) (status int, code, msg string) {
	var be *domain.BackendError
	detail := ""
	if errors.As(err, &be) {
		detail = be.Detail
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, "UNAUTHORIZED", firstNonEmpty(detail, "session expired, sign in again")
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", firstNonEmpty(detail, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", firstNonEmpty(detail, "resource not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", firstNonEmpty(detail, "invalid credentials or access blocked")
	case errors.Is(err, domain.ErrLinkExpired):
		return http.StatusUnauthorized, "LINK_EXPIRED", "this share link has expired"
	case be != nil:
		return be.Status, "BACKEND_ERROR", firstNonEmpty(detail, "backend request failed")
	default:
		return http.StatusBadGateway, "BACKEND_UNREACHABLE", "could not reach the document service"
	}
}

// HandleError maps an error and sends the appropriate response. A 401
// from the backend means the bearer token is dead: the session is cleared
// in this one place so every page applies the forced logout the same way,
// and the client is told where to go next.
func HandleError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrSessionExpired) {
		middleware.ClearSession(c)
		clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, APIResponse{
			Success:  false,
			Error:    &APIError{Code: "UNAUTHORIZED", Message: "session expired, sign in again"},
			Redirect: "/login",
		})
		return
	}

	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Error().
			Str("request_id", c.GetString(middleware.ContextKeyRequestID)).
			Err(err).
			Msg("internal error")
	}
	RespondError(c, status, code, msg)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
