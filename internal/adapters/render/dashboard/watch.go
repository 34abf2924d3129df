package dashboard

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type SessionSource interface {
	Snapshot() application.SessionSnapshot
}

type FeedSource interface {
	Snapshot() application.FeedSnapshot
	Subscribe() (<-chan application.FeedSnapshot, func())
}

type WatchOptions struct {
	Input        io.Reader
	Output       io.Writer
	FeedInterval time.Duration
	FullKeys     bool
	Now          func() time.Time
}

type feedUpdatedMsg application.FeedSnapshot

type feedClosedMsg struct{}

type clockTickMsg time.Time

type watchModel struct {
	session  SessionSource
	updates  <-chan application.FeedSnapshot
	spinner  spinner.Model
	styles   styles
	opts     WatchOptions
	feed     application.FeedSnapshot
	now      time.Time
	quitting bool
}

func newWatchModel(session SessionSource, initial application.FeedSnapshot, updates <-chan application.FeedSnapshot, opts WatchOptions) watchModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return watchModel{
		session: session,
		updates: updates,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles: newStyles(),
		opts:   opts,
		feed:   initial,
		now:    opts.Now(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForFeed(m.updates), clockTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case feedUpdatedMsg:
		m.feed = application.FeedSnapshot(msg)
		m.now = m.opts.Now()
		return m, waitForFeed(m.updates)
	case feedClosedMsg:
		m.quitting = true
		return m, tea.Quit
	case clockTickMsg:
		m.now = m.opts.Now()
		return m, clockTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	body := renderView(RenderInput{Session: m.session.Snapshot(), Feed: m.feed}, RenderOptions{
		Now:          m.now,
		FeedInterval: m.opts.FeedInterval,
		FullKeys:     m.opts.FullKeys,
	}, m.styles)

	status := fmt.Sprintf("%s polling every %s", m.spinner.View(), m.opts.FeedInterval)
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		status,
		m.styles.help.Render("q to quit"),
	)
}

func waitForFeed(updates <-chan application.FeedSnapshot) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-updates
		if !ok {
			return feedClosedMsg{}
		}
		return feedUpdatedMsg(snapshot)
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Watch runs the live dashboard until the user quits or ctx is done. The
// caller owns the poll schedule; Watch only listens for replacements.
func Watch(ctx context.Context, session SessionSource, feed FeedSource, opts WatchOptions) error {
	updates, unsubscribe := feed.Subscribe()
	defer unsubscribe()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newWatchModel(session, feed.Snapshot(), updates, opts), programOpts...)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}
