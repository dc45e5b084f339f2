// Package tui is the Bubble Tea front end: a root model that routes input
// to the screen on top of the navigation stack and draws the sheet and
// toast overlays.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/minisa/internal/assets"
	"github.com/jask/minisa/internal/config"
	"github.com/jask/minisa/internal/logging"
	"github.com/jask/minisa/internal/nav"
	"github.com/jask/minisa/internal/session"
	"github.com/jask/minisa/internal/theme"
)

// Screen is one entry of the screen stack, or one of the root screens.
type Screen interface {
	ID() nav.ScreenID
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(m *Model, width, height int) string
	// Teardown cancels any timed or in-flight work the screen owns.
	Teardown()
}

// loader is implemented by screens that can be waiting on a round trip.
type loader interface {
	Loading() bool
}

type toastExpiredMsg struct {
	token uuid.UUID
}

type splashDoneMsg struct{}

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg     config.Config
	theme   theme.Theme
	art     assets.Provider
	keys    *KeyRegistry
	log     *logrus.Entry
	session *session.State
	nav     *nav.Navigator
	now     func() time.Time

	width     int
	height    int
	splash    Screen
	welcome   Screen
	landing   Screen
	stack     []Screen
	spinner   spinner.Model
	status    string
	statusErr bool
	quitting  bool
}

type Option func(*Model)

func WithTheme(th theme.Theme) Option {
	return func(m *Model) { m.theme = th }
}

func WithAssets(p assets.Provider) Option {
	return func(m *Model) {
		if p != nil {
			m.art = p
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Model) { m.log = logging.Component(log, "tui") }
}

// WithSession replaces the session the screens act on.
func WithSession(s *session.State) Option {
	return func(m *Model) {
		if s != nil {
			m.session = s
		}
	}
}

// WithClock overrides the time source used for toast deadlines.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithContext sets the parent of every in-flight round trip.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithoutSplash starts on the root screen.
func WithoutSplash() Option {
	return func(m *Model) { m.cfg.Splash.Duration = 0 }
}

func NewModel(cfg config.Config, opts ...Option) Model {
	m := Model{
		ctx:    context.Background(),
		cfg:    cfg,
		theme:  theme.Default(),
		art:    assets.ASCII{},
		log:    logging.Component(nil, "tui"),
		now:    time.Now,
		status: "Ready",
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.ctx, m.cancel = context.WithCancel(m.ctx)
	if m.session == nil {
		m.session = session.New(
			session.WithBcryptCost(cfg.Security.BcryptCost),
			session.WithToastTimeout(cfg.Toast.Timeout),
			session.WithLogger(m.log),
		)
	}
	m.keys = NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), cfg.Keys))
	m.nav = nav.NewNavigator(nav.LoginForm, nav.SignupForm)
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.welcome = newWelcomeScreen()
	m.landing = newLandingScreen()
	if m.cfg.Splash.Duration > 0 {
		m.splash = newSplashScreen()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("MiniSA")}
	if m.splash != nil {
		cmds = append(cmds, tea.Tick(m.cfg.Splash.Duration, func(time.Time) tea.Msg { return splashDoneMsg{} }))
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Session() *session.State   { return m.session }
func (m Model) Navigator() *nav.Navigator { return m.nav }
func (m Model) Status() (string, bool)    { return m.status, m.statusErr }
func (m Model) Context() context.Context  { return m.ctx }

// Active is the screen receiving key input.
func (m Model) Active() Screen {
	if m.splash != nil {
		return m.splash
	}
	if n := len(m.stack); n > 0 {
		return m.stack[n-1]
	}
	if m.session.LoggedIn() {
		return m.landing
	}
	return m.welcome
}

func (m Model) ActiveScope() string {
	if m.splash == nil && m.nav.Sheet.Visible() {
		return scopeSheet
	}
	return m.Active().Scope()
}

// Push navigates to id. Ids without a view present the unavailable sheet
// over the fallback screen and report the error on the status bar.
func (m *Model) Push(id nav.ScreenID) {
	if err := m.nav.Push(id); err != nil {
		m.SetError(err)
		m.log.WithField("screen", id).Info("unavailable screen requested")
	}
}

// ShowToast fills the toast slot and schedules its expiry. Only the expiry
// carrying the latest token clears the toast.
func (m *Model) ShowToast(message string) tea.Cmd {
	t := m.session.ShowToast(message, m.now())
	token := t.Token()
	return tea.Tick(t.Timeout(), func(time.Time) tea.Msg { return toastExpiredMsg{token: token} })
}

// startSpinner returns the first spinner frame command.
func (m *Model) startSpinner() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) loading() bool {
	for _, s := range m.stack {
		if l, ok := s.(loader); ok && l.Loading() {
			return true
		}
	}
	return false
}

// syncStack rebuilds the live screens so they mirror the navigation stack.
// Entries that no longer match are torn down.
func (m *Model) syncStack() tea.Cmd {
	ids := m.nav.Stack.Items()
	keep := 0
	for keep < len(ids) && keep < len(m.stack) && m.stack[keep].ID() == ids[keep] {
		keep++
	}
	for i := len(m.stack) - 1; i >= keep; i-- {
		m.stack[i].Teardown()
	}
	m.stack = m.stack[:keep]

	var cmds []tea.Cmd
	for _, id := range ids[keep:] {
		s, cmd := m.build(id)
		m.stack = append(m.stack, s)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) build(id nav.ScreenID) (Screen, tea.Cmd) {
	switch id {
	case nav.LoginForm:
		return newLoginScreen(m)
	case nav.SignupForm:
		return newSignupScreen(m)
	default:
		return newFallbackScreen(id), nil
	}
}

// teardown cancels every screen and the shared context.
func (m *Model) teardown() {
	for i := len(m.stack) - 1; i >= 0; i-- {
		m.stack[i].Teardown()
	}
	if m.splash != nil {
		m.splash.Teardown()
	}
	m.cancel()
}

// formWidth is the width of the centred form column.
func (m Model) formWidth(width int) int {
	return max(20, min(m.cfg.UI.FormWidth, width-4))
}
