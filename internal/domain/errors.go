package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrLinkExpired        = errors.New("share link expired")
)

// BackendError carries the detail string most mutation endpoints of the
// IntelliDocs API return on failure, alongside the HTTP status that
// produced it.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "backend request failed"
}

// Is maps backend status codes onto the sentinel errors so callers can use
// errors.Is without inspecting status codes themselves.
func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401
	case ErrForbidden:
		return e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	}
	return false
}
