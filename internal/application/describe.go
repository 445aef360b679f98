package application

import (
	"errors"

	"github.com/winter3671/TakeMeTrip/internal/domain"
)

// Describe turns an error from any service into the message shown to the
// user.
func Describe(err error) domain.Notification {
	warn := func(message string) domain.Notification {
		return domain.Notification{Message: message, Severity: domain.SeverityWarning}
	}
	fail := func(message string) domain.Notification {
		return domain.Notification{Message: message, Severity: domain.SeverityError}
	}

	switch {
	case err == nil:
		return domain.Notification{}
	case errors.Is(err, domain.ErrNoSession):
		return warn("Login required")
	case errors.Is(err, domain.ErrNoPlan), errors.Is(err, domain.ErrDraftNotFound):
		return warn("Generate a plan first")
	case errors.Is(err, domain.ErrTitleRequired):
		return warn("Enter a course title")
	case errors.Is(err, domain.ErrSaveInProgress):
		return domain.Notification{Message: "A save is already in progress", Severity: domain.SeverityInfo}
	case errors.Is(err, domain.ErrInvalidInput):
		return warn(err.Error())
	case errors.Is(err, domain.ErrAuthExpired):
		return warn("Your session has expired, please log in again")
	case errors.Is(err, domain.ErrValidation):
		if detail := domain.ErrorDetail(err); detail != "" {
			return fail(detail)
		}
		return fail("The request was rejected")
	case errors.Is(err, domain.ErrServer):
		return fail("The server had a problem, try again later")
	case errors.Is(err, domain.ErrNetwork):
		return fail("Cannot reach the TakeMeTrip server, check your connection")
	case errors.Is(err, domain.ErrMissingToken):
		return fail("Login succeeded but the server returned no token")
	default:
		return fail(err.Error())
	}
}
