package ports

import "github.com/winter3671/TakeMeTrip/internal/domain"

// Navigator receives fire-and-forget navigation and notification signals.
type Navigator interface {
	Navigate(route domain.Route)
	Notify(notification domain.Notification)
}
