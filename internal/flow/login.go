package flow

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/minisa/internal/nav"
	"github.com/jask/minisa/internal/session"
)

// IncorrectPasswordMessage is shown when the password does not match.
const IncorrectPasswordMessage = "Incorrect password :("

// ErrIncorrectPassword is the login failure error.
var ErrIncorrectPassword = errors.New(IncorrectPasswordMessage)

// LoginResultMsg is delivered when a login round trip finishes.
type LoginResultMsg struct {
	Attempt uuid.UUID
	Err     error
}

// Login is the per-screen login state machine:
// Idle -> Submitting -> {Success, Failure}.
type Login struct {
	delay    time.Duration
	phase    Phase
	err      error
	password string
	inflight attempt
	log      *logrus.Entry
}

func NewLogin(delay time.Duration, log *logrus.Entry) *Login {
	return &Login{delay: delay, log: componentLogger(log, "login")}
}

func (l *Login) Phase() Phase  { return l.phase }
func (l *Login) Loading() bool { return l.phase == Submitting }
func (l *Login) Err() error    { return l.err }

// Submit starts a round trip. It returns nil when either field is empty or
// an attempt is already in flight.
func (l *Login) Submit(ctx context.Context, username, password string) tea.Cmd {
	if username == "" || password == "" || l.phase == Submitting {
		return nil
	}
	runCtx, id := l.inflight.start(ctx)
	l.phase = Submitting
	l.password = password
	l.log.WithField("attempt", id).Debug("login submitted")

	delay := l.delay
	return func() tea.Msg {
		return LoginResultMsg{Attempt: id, Err: Wait(runCtx, delay)}
	}
}

// Cancel abandons the in-flight attempt, if any. Called on screen teardown.
func (l *Login) Cancel() {
	if l.phase == Submitting {
		l.phase = Idle
	}
	l.inflight.stop()
	l.password = ""
}

// Resolve applies a finished round trip. On success it clears the error,
// pops the navigation stack and marks the session logged in; on failure it
// records ErrIncorrectPassword and asks for a toast.
func (l *Login) Resolve(msg LoginResultMsg, s *session.State, n *nav.Navigator) Outcome {
	if l.phase != Submitting || !l.inflight.current(msg.Attempt) {
		return Outcome{Phase: l.phase}
	}
	password := l.password
	l.inflight.stop()
	l.password = ""

	if msg.Err != nil {
		l.phase = Idle
		l.log.WithError(msg.Err).Debug("login abandoned")
		return Outcome{Handled: true, Phase: l.phase}
	}

	if err := s.CheckPassword(password); err != nil {
		l.phase = Failure
		l.err = ErrIncorrectPassword
		l.log.WithError(err).Info("login failed")
		return Outcome{Handled: true, Phase: l.phase, Toast: IncorrectPasswordMessage}
	}

	l.phase = Success
	l.err = nil
	n.Pop()
	s.SetLoggedIn()
	return Outcome{Handled: true, Phase: l.phase}
}
