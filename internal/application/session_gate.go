package application

import (
	"context"
	"errors"

	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

// expireOnAuthFailure logs the user out when an authorized call was rejected
// with an expired session. Logout is idempotent, so racing callers are fine.
func expireOnAuthFailure(ctx context.Context, session ports.Session, err error) {
	if errors.Is(err, domain.ErrAuthExpired) {
		session.Logout(ctx)
	}
}

func requireToken(session ports.Session) (string, error) {
	if !session.IsAuthenticated() {
		return "", domain.ErrNoSession
	}

	return session.Token(), nil
}
