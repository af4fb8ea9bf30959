package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lazyfloat/internal/float"
	"github.com/five82/lazyfloat/internal/panel"
	"github.com/five82/lazyfloat/internal/state"
)

// DefaultLoginTimeout bounds a login when Options.LoginTimeout is unset.
const DefaultLoginTimeout = 10 * time.Second

// errNoClient is reported when L is pressed without a login client.
var errNoClient = errors.New("login is not configured")

// Options configures the UI.
type Options struct {
	Context context.Context
	Client  float.LogActioner
	Logger  *slog.Logger

	// LoginTimeout bounds each login request.
	LoginTimeout time.Duration
	// ExitOnLoginError stops the program on a failed login instead of
	// reporting it in the actions panel.
	ExitOnLoginError bool
	ThemeName        string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	client       float.LogActioner
	logger       *slog.Logger
	loginTimeout time.Duration
	exitOnError  bool

	// UI state
	theme   Theme
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
	ready   bool

	app state.App

	// Login state
	pending bool
	cancel  context.CancelFunc
	notice  panel.Notice
	err     error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	timeout := opts.LoginTimeout
	if timeout <= 0 {
		timeout = DefaultLoginTimeout
	}

	theme := GetTheme(opts.ThemeName)
	fs := theme.footerStyles()

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = fs.Key
	h.Styles.ShortDesc = fs.Desc
	h.Styles.ShortSeparator = fs.Desc

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(fs.Spinner))

	return Model{
		ctx:          ctx,
		client:       opts.Client,
		logger:       logger,
		loginTimeout: timeout,
		exitOnError:  opts.ExitOnLoginError,
		theme:        theme,
		keys:         DefaultKeyMap(),
		help:         h,
		spinner:      sp,
		app:          state.New(),
	}
}

// State returns the current application state.
func (m Model) State() state.App {
	return m.app
}

// Err returns the login failure that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("LazyFloat")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.app.Exit {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleEvent(m.keys.Event(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case logActionMsg:
		return m.handleLogAction(msg)

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleEvent applies ev and runs the effect it asks for.
func (m Model) handleEvent(ev state.Event) (tea.Model, tea.Cmd) {
	next, effect := state.Apply(m.app, ev)
	m.app = next

	if m.app.Exit {
		m.stopLogin()
		m.logger.Info("quit requested", "counter", m.app.Counter)
		return m, tea.Quit
	}

	if effect == state.EffectLogAction {
		return m.startLogin()
	}
	return m, nil
}

// startLogin launches the login request unless one is already running.
func (m Model) startLogin() (tea.Model, tea.Cmd) {
	if m.pending {
		m.logger.Debug("login already in flight; ignoring")
		return m, nil
	}
	if m.client == nil {
		m.notice = panel.Notice{Kind: panel.NoticeError, Text: errNoClient.Error()}
		m.logger.Warn("login failed", "error", errNoClient)
		return m, nil
	}

	ctx, cancel := context.WithTimeout(m.ctx, m.loginTimeout)
	m.cancel = cancel
	m.pending = true
	m.notice = panel.Notice{}
	m.logger.Info("login started", "timeout", m.loginTimeout)

	return m, tea.Batch(logActionCmd(ctx, m.client), m.spinner.Tick)
}

func (m Model) handleLogAction(msg logActionMsg) (tea.Model, tea.Cmd) {
	m.stopLogin()

	if msg.err != nil {
		m.logger.Warn("login failed", "error", msg.err)
		if m.exitOnError {
			m.err = fmt.Errorf("login: %w", msg.err)
			m.app, _ = state.Apply(m.app, state.EventQuit)
			return m, tea.Quit
		}
		m.notice = panel.Notice{Kind: panel.NoticeError, Text: "Login failed: " + msg.err.Error()}
		return m, nil
	}

	m.logger.Info("login succeeded", "bytes", len(msg.body))
	m.logger.Debug("login response", "body", msg.body)
	m.notice = panel.Notice{Kind: panel.NoticeSuccess, Text: float.Summarize(msg.body)}
	return m, nil
}

// stopLogin cancels any in-flight request and clears the pending flag.
func (m *Model) stopLogin() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.pending = false
}

// Messages

type logActionMsg struct {
	body string
	err  error
}

// Commands

func logActionCmd(ctx context.Context, client float.LogActioner) tea.Cmd {
	return func() tea.Msg {
		body, err := client.PerformLogAction(ctx)
		return logActionMsg{body: body, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits. It returns
// the terminal error, or the login failure when ExitOnLoginError is set.
func Run(opts Options) error {
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
