package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

const (
	registrationPath = "/api/auth/registration/"
	loginPath        = "/api/auth/login/"
	currentUserPath  = "/api/auth/user/"
)

var _ ports.AuthAPI = (*Client)(nil)

type registrationRequest struct {
	Username  string `json:"username"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
	Email     string `json:"email,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, registration domain.Registration) error {
	body := registrationRequest{
		Username:  registration.Username,
		Password1: registration.Password,
		Password2: registration.Confirmation(),
		Email:     strings.TrimSpace(registration.Email),
	}

	return c.do(ctx, request{method: http.MethodPost, path: registrationPath, body: body}, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (ports.LoginResponse, error) {
	var response ports.LoginResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   loginPath,
		body:   loginRequest{Username: username, Password: password},
	}, &response)
	if err != nil {
		return ports.LoginResponse{}, err
	}

	return response, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (domain.Identity, error) {
	var identity domain.Identity
	if err := c.do(ctx, request{method: http.MethodGet, path: currentUserPath, token: token}, &identity); err != nil {
		return domain.Identity{}, err
	}

	return identity, nil
}
