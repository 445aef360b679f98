package domain

type Route string

const (
	RouteHome          Route = "home"
	RouteLogin         Route = "login"
	RouteCourse        Route = "course"
	RouteCommunity     Route = "community"
	RouteArticleDetail Route = "article-detail"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Notification struct {
	Message  string
	Severity Severity
}
