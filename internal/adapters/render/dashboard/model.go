package dashboard

import (
	"errors"
	"io"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

const unpolledFeedNote = "feed not polled in this run"

type frameReadyMsg string

// snapshotModel renders a single frame from fixed snapshots and quits.
type snapshotModel struct {
	input  RenderInput
	opts   RenderOptions
	styles styles
	frame  string
}

func newSnapshotModel(input RenderInput, opts RenderOptions) snapshotModel {
	return snapshotModel{
		input:  input,
		opts:   snapshotOptions(input, opts),
		styles: newStyles(),
	}
}

// snapshotOptions fills what a one-shot render cannot observe itself: feed
// age is measured from the last applied poll and fades over the poller's
// default interval.
func snapshotOptions(input RenderInput, opts RenderOptions) RenderOptions {
	if opts.FeedInterval <= 0 {
		opts.FeedInterval = application.DefaultFeedInterval
	}
	if opts.Now.IsZero() {
		opts.Now = input.Feed.UpdatedAt
	}
	return opts
}

func (m snapshotModel) Init() tea.Cmd {
	input, opts, s := m.input, m.opts, m.styles
	return func() tea.Msg {
		return frameReadyMsg(renderSnapshot(input, opts, s))
	}
}

func (m snapshotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if frame, ok := msg.(frameReadyMsg); ok {
		m.frame = string(frame)
		return m, tea.Quit
	}
	return m, nil
}

func (m snapshotModel) View() string {
	return m.frame
}

func renderSnapshot(input RenderInput, opts RenderOptions, s styles) string {
	body := renderView(input, opts, s)
	if input.Feed.Sequence > 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", s.help.Render(unpolledFeedNote))
}

// Render draws the dashboard once and returns it as a string.
func Render(input RenderInput, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newSnapshotModel(input, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(snapshotModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
