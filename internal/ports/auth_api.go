package ports

import (
	"context"

	"github.com/winter3671/TakeMeTrip/internal/domain"
)

// LoginResponse carries the two token fields a login may answer with.
type LoginResponse struct {
	Key    string `json:"key"`
	Access string `json:"access"`
}

type AuthAPI interface {
	Register(ctx context.Context, registration domain.Registration) error
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	CurrentUser(ctx context.Context, token string) (domain.Identity, error)
}
