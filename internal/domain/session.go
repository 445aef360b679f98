package domain

import (
	"fmt"
	"strings"
	"time"
)

type Identity struct {
	Username string `json:"username"`
}

// Session is the credential state of the current user. Identity is nil
// whenever Token is empty.
type Session struct {
	Token    string    `json:"token"`
	Identity *Identity `json:"identity,omitempty"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) Username() string {
	if s.Identity == nil {
		return ""
	}

	return s.Identity.Username
}

type SessionStatus struct {
	Authenticated bool       `json:"authenticated"`
	Username      string     `json:"username,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type Registration struct {
	Username        string
	Password        string
	PasswordConfirm string
	Email           string
}

func (r Registration) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	return nil
}

// Confirmation returns the password confirmation, defaulting to the password.
func (r Registration) Confirmation() string {
	if r.PasswordConfirm == "" {
		return r.Password
	}

	return r.PasswordConfirm
}
