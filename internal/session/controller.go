package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

const SecretKey = "takemetrip/session"

// Controller owns the session lifecycle: register, login, profile refresh
// and logout. It is the only writer of its CredentialStore.
type Controller struct {
	store   *CredentialStore
	auth    ports.AuthAPI
	nav     ports.Navigator
	secrets ports.SecretStore
	logger  zerolog.Logger
}

type Option func(*Controller)

// WithSecretStore persists the session across process restarts.
func WithSecretStore(store ports.SecretStore) Option {
	return func(c *Controller) {
		c.secrets = store
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(auth ports.AuthAPI, nav ports.Navigator, opts ...Option) *Controller {
	c := &Controller{
		store:  NewCredentialStore(),
		auth:   auth,
		nav:    nav,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Controller) Credentials() Credentials {
	return c.store
}

func (c *Controller) Token() string {
	return c.store.Token()
}

func (c *Controller) IsAuthenticated() bool {
	return c.store.IsAuthenticated()
}

func (c *Controller) Register(ctx context.Context, registration domain.Registration) error {
	if err := registration.Validate(); err != nil {
		return err
	}

	if err := c.auth.Register(ctx, registration); err != nil {
		return err
	}

	return c.Login(ctx, registration.Username, registration.Password)
}

func (c *Controller) Login(ctx context.Context, username, password string) error {
	response, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	token := tokenFromLogin(response)
	if token == "" {
		return domain.ErrMissingToken
	}

	c.store.setSession(token, domain.Identity{Username: username})
	c.persist(ctx)
	c.logger.Debug().Str("username", username).Msg("logged in")

	c.RefreshProfile(ctx)
	c.nav.Navigate(domain.RouteHome)

	return nil
}

// RefreshProfile re-reads the identity for the current token. A rejected
// token forces a logout; any other failure is logged and ignored.
func (c *Controller) RefreshProfile(ctx context.Context) {
	token := c.store.Token()
	if token == "" {
		return
	}

	identity, err := c.auth.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			c.Logout(ctx)
			return
		}

		c.logger.Warn().Err(err).Msg("refresh profile")
		return
	}

	if c.store.setIdentity(token, identity) {
		c.persist(ctx)
	}
}

func (c *Controller) Logout(ctx context.Context) {
	c.store.clearSession()

	if c.secrets != nil {
		if err := c.secrets.Delete(ctx, SecretKey); err != nil {
			c.logger.Warn().Err(err).Msg("delete persisted session")
		}
	}

	c.nav.Navigate(domain.RouteLogin)
}

// Restore loads a previously persisted session. A missing entry leaves the
// store unauthenticated.
func (c *Controller) Restore(ctx context.Context) error {
	if c.secrets == nil {
		return nil
	}

	raw, err := c.secrets.Get(ctx, SecretKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil
		}
		return fmt.Errorf("load persisted session: %w", err)
	}

	var persisted domain.Session
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		return fmt.Errorf("decode persisted session: %w", err)
	}
	if !persisted.Authenticated() {
		return nil
	}

	c.store.setSession(persisted.Token, domain.Identity{Username: persisted.Username()})
	return nil
}

func (c *Controller) Status() domain.SessionStatus {
	snapshot := c.store.Snapshot()
	status := domain.SessionStatus{
		Authenticated: snapshot.Authenticated(),
		Username:      snapshot.Username(),
	}
	if status.Authenticated {
		status.Subject, status.ExpiresAt = inspectToken(snapshot.Token)
	}

	return status
}

func (c *Controller) persist(ctx context.Context) {
	if c.secrets == nil {
		return
	}

	encoded, err := json.Marshal(c.store.Snapshot())
	if err != nil {
		c.logger.Warn().Err(err).Msg("encode session")
		return
	}

	if err := c.secrets.Put(ctx, SecretKey, string(encoded)); err != nil {
		c.logger.Warn().Err(err).Msg("persist session")
	}
}

// tokenFromLogin prefers the key field and falls back to access.
func tokenFromLogin(response ports.LoginResponse) string {
	if response.Key != "" {
		return response.Key
	}

	return response.Access
}
