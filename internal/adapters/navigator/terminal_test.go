package navigator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

func TestTerminalPrintsHintsAndRecordsRoutes(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	nav := NewTerminal(&out)

	nav.Navigate(domain.RouteLogin)
	nav.Navigate(domain.RouteHome)

	assert.Contains(t, out.String(), "Sign in with `tmt auth login`.")
	assert.Contains(t, out.String(), "tmt plan generate")
	assert.Equal(t, []domain.Route{domain.RouteLogin, domain.RouteHome}, nav.Routes())

	last, ok := nav.Last()
	assert.True(t, ok)
	assert.Equal(t, domain.RouteHome, last)
}

func TestTerminalNotifyPrefixesSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity domain.Severity
		want     string
	}{
		{severity: domain.SeveritySuccess, want: "ok: Course saved"},
		{severity: domain.SeverityWarning, want: "warning: Course saved"},
		{severity: domain.SeverityError, want: "error: Course saved"},
		{severity: domain.SeverityInfo, want: "info: Course saved"},
		{severity: "", want: "info: Course saved"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		NewTerminal(&out).Notify(domain.Notification{Message: "Course saved", Severity: tt.severity})
		assert.Contains(t, out.String(), tt.want)
	}
}

func TestTerminalSkipsEmptyNotification(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	nav := NewTerminal(&out)

	nav.Notify(domain.Notification{})
	assert.Empty(t, out.String())

	_, ok := nav.Last()
	assert.False(t, ok)
}
