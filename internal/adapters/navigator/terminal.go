package navigator

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

var routeHints = map[domain.Route]string{
	domain.RouteHome:          "Next: run `tmt plan generate` to build an itinerary.",
	domain.RouteLogin:         "Sign in with `tmt auth login`.",
	domain.RouteCourse:        "Your saved courses are listed under My Courses.",
	domain.RouteCommunity:     "Browse articles with `tmt community list`.",
	domain.RouteArticleDetail: "Open it with `tmt community show <id>`.",
}

// Terminal prints notifications and a one-line hint for every navigation.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	routes []domain.Route
	styles map[domain.Severity]lipgloss.Style
	hint   lipgloss.Style
}

var _ ports.Navigator = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stderr
	}

	return &Terminal{
		out: out,
		styles: map[domain.Severity]lipgloss.Style{
			domain.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			domain.SeveritySuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			domain.SeverityWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			domain.SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		},
		hint: lipgloss.NewStyle().Faint(true),
	}
}

func (t *Terminal) Navigate(route domain.Route) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.routes = append(t.routes, route)
	if hint, ok := routeHints[route]; ok {
		_, _ = fmt.Fprintln(t.out, t.hint.Render(hint))
	}
}

func (t *Terminal) Notify(notification domain.Notification) {
	if notification.Message == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	style, ok := t.styles[notification.Severity]
	if !ok {
		style = t.styles[domain.SeverityInfo]
	}
	_, _ = fmt.Fprintln(t.out, style.Render(severityPrefix(notification.Severity)+" "+notification.Message))
}

// Routes returns every route navigated to so far, oldest first.
func (t *Terminal) Routes() []domain.Route {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]domain.Route(nil), t.routes...)
}

// Last returns the most recent route, if any.
func (t *Terminal) Last() (domain.Route, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.routes) == 0 {
		return "", false
	}
	return t.routes[len(t.routes)-1], true
}

func severityPrefix(severity domain.Severity) string {
	switch severity {
	case domain.SeveritySuccess:
		return "ok:"
	case domain.SeverityWarning:
		return "warning:"
	case domain.SeverityError:
		return "error:"
	default:
		return "info:"
	}
}
