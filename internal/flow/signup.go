package flow

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/minisa/internal/nav"
	"github.com/jask/minisa/internal/session"
	"github.com/jask/minisa/internal/validate"
)

// SignupResultMsg is delivered when a signup round trip finishes.
type SignupResultMsg struct {
	Attempt uuid.UUID
	Err     error
}

// Signup runs the simulated registration.
type Signup struct {
	delay    time.Duration
	phase    Phase
	err      error
	name     string
	password string
	inflight attempt
	log      *logrus.Entry
}

func NewSignup(delay time.Duration, log *logrus.Entry) *Signup {
	return &Signup{delay: delay, log: componentLogger(log, "signup")}
}

func (s *Signup) Phase() Phase  { return s.phase }
func (s *Signup) Loading() bool { return s.phase == Submitting }
func (s *Signup) Err() error    { return s.err }

// WelcomeMessage is the toast shown after a successful signup.
func WelcomeMessage(name string) string {
	return fmt.Sprintf("Welcome %s! You are all set.", name)
}

// Submit starts a round trip for form. It returns nil unless the form is
// submittable and no attempt is in flight.
func (s *Signup) Submit(ctx context.Context, form validate.SignupForm) tea.Cmd {
	if !form.IsSubmittable() || s.phase == Submitting {
		return nil
	}
	runCtx, id := s.inflight.start(ctx)
	s.phase = Submitting
	s.name = form.Name
	s.password = form.Password
	s.log.WithField("attempt", id).Debug("signup submitted")

	delay := s.delay
	return func() tea.Msg {
		return SignupResultMsg{Attempt: id, Err: Wait(runCtx, delay)}
	}
}

// Cancel abandons the in-flight attempt, if any.
func (s *Signup) Cancel() {
	if s.phase == Submitting {
		s.phase = Idle
	}
	s.inflight.stop()
	s.name, s.password = "", ""
}

// Resolve applies a finished round trip: the account is registered (last
// signup wins), the welcome toast is requested and the stack is replaced
// with the login form.
func (s *Signup) Resolve(msg SignupResultMsg, st *session.State, n *nav.Navigator) Outcome {
	if s.phase != Submitting || !s.inflight.current(msg.Attempt) {
		return Outcome{Phase: s.phase}
	}
	name, password := s.name, s.password
	s.inflight.stop()
	s.name, s.password = "", ""

	if msg.Err != nil {
		s.phase = Idle
		s.log.WithError(msg.Err).Debug("signup abandoned")
		return Outcome{Handled: true, Phase: s.phase}
	}

	// Register only fails when the system random source does.
	if err := st.Register(name, password); err != nil {
		s.phase = Failure
		s.err = err
		s.log.WithError(err).Error("register account")
		return Outcome{Handled: true, Phase: s.phase}
	}

	s.phase = Success
	s.err = nil
	if err := n.Replace(nav.LoginForm); err != nil {
		s.log.WithError(err).Warn("show login form")
	}
	return Outcome{Handled: true, Phase: s.phase, Toast: WelcomeMessage(name)}
}
