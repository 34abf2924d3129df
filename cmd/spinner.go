package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type remoteCallDoneMsg struct {
	err error
}

// Remote calls on a cold backend can take a while; past this point the
// spinner shows how long the call has been running.
const elapsedAfter = 2 * time.Second

type remoteCallSpinnerModel struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	now     func() time.Time
	started time.Time
	err     error
	done    bool
}

func newRemoteCallSpinnerModel(label string, call tea.Cmd, now func() time.Time) remoteCallSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return remoteCallSpinnerModel{
		spinner: s,
		label:   label,
		call:    call,
		now:     now,
		started: now(),
	}
}

func (m remoteCallSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m remoteCallSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case remoteCallDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m remoteCallSpinnerModel) View() string {
	if m.done {
		return ""
	}

	elapsed := m.now().Sub(m.started)
	if elapsed < elapsedAfter {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}
	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, elapsed.Truncate(time.Second))
}

// runRemoteSpinner runs call while a spinner is drawn on output. With show
// unset, call runs directly.
func runRemoteSpinner(ctx context.Context, output io.Writer, label string, show bool, call func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !show {
		return call(ctx)
	}

	callCmd := func() tea.Msg {
		return remoteCallDoneMsg{err: call(ctx)}
	}

	p := tea.NewProgram(
		newRemoteCallSpinnerModel(label, callCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(remoteCallSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
