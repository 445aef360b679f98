package ports

import "context"

// Session is the view of the signed-in user that services depend on: the
// bearer token to attach and a way to force a logout when the backend
// rejects it.
type Session interface {
	Token() string
	IsAuthenticated() bool
	Logout(ctx context.Context)
}
