package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession      = errors.New("login required")
	ErrNoPlan         = errors.New("no generated plan")
	ErrTitleRequired  = errors.New("course title is required")
	ErrSaveInProgress = errors.New("course save already in progress")
	ErrDraftNotFound  = errors.New("draft not found")
	ErrSecretNotFound = errors.New("secret not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrMissingToken   = errors.New("login response carried no token")

	ErrValidation  = errors.New("request rejected")
	ErrAuthExpired = errors.New("authentication expired")
	ErrServer      = errors.New("server error")
	ErrNetwork     = errors.New("network error")
)

// APIError is a backend failure classified into one of ErrValidation,
// ErrAuthExpired, ErrServer or ErrNetwork.
type APIError struct {
	Kind       error
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Detail == "":
		return e.Kind.Error()
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	case e.Detail == "":
		return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
	default:
		return fmt.Sprintf("%s: status %d: %s", e.Kind, e.StatusCode, e.Detail)
	}
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// ErrorDetail returns the server supplied detail of err, if any.
func ErrorDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}

	return ""
}
