package itinerary

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	draft  domain.Draft
	opts   RenderOptions
	styles styles
	output string
}

func newModel(draft domain.Draft, opts RenderOptions) model {
	return model{
		draft:  draft,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.draft, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out a generated itinerary for the terminal.
func Render(draft domain.Draft, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(draft, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
