package flow

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jask/minisa/internal/nav"
	"github.com/jask/minisa/internal/session"
	"github.com/jask/minisa/internal/validate"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func fixtures(t *testing.T) (*session.State, *nav.Navigator) {
	t.Helper()
	s := session.New(session.WithBcryptCost(bcrypt.MinCost), session.WithLogger(quietLog()))
	n := nav.NewNavigator(nav.LoginForm, nav.SignupForm)
	require.NoError(t, n.Push(nav.LoginForm))
	return s, n
}

func TestWait(t *testing.T) {
	require.NoError(t, Wait(context.Background(), 0))
	require.NoError(t, Wait(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Wait(ctx, time.Hour), context.Canceled)
	require.ErrorIs(t, Wait(ctx, 0), context.Canceled)
}

func TestLoginSuccess(t *testing.T) {
	s, n := fixtures(t)
	require.NoError(t, s.Register("a", "p"))

	l := NewLogin(0, quietLog())
	cmd := l.Submit(context.Background(), "a", "p")
	require.NotNil(t, cmd)
	require.True(t, l.Loading())

	out := l.Resolve(cmd().(LoginResultMsg), s, n)
	require.True(t, out.Handled)
	require.Equal(t, Success, out.Phase)
	require.Empty(t, out.Toast)
	require.False(t, l.Loading())
	require.NoError(t, l.Err())
	require.True(t, s.LoggedIn())
	require.Equal(t, 0, n.Stack.Len())
}

func TestLoginFailure(t *testing.T) {
	s, n := fixtures(t)
	require.NoError(t, s.Register("a", "p"))

	l := NewLogin(0, quietLog())
	cmd := l.Submit(context.Background(), "a", "wrong")
	out := l.Resolve(cmd().(LoginResultMsg), s, n)
	require.Equal(t, Failure, out.Phase)
	require.Equal(t, IncorrectPasswordMessage, out.Toast)
	require.ErrorIs(t, l.Err(), ErrIncorrectPassword)
	require.False(t, l.Loading())
	require.False(t, s.LoggedIn())
	require.Equal(t, 1, n.Stack.Len())
}

func TestLoginWithoutRegistrationFails(t *testing.T) {
	s, n := fixtures(t)
	l := NewLogin(0, quietLog())
	cmd := l.Submit(context.Background(), "a", "p")
	out := l.Resolve(cmd().(LoginResultMsg), s, n)
	require.Equal(t, Failure, out.Phase)
	require.False(t, s.LoggedIn())
}

func TestLoginGuards(t *testing.T) {
	l := NewLogin(0, quietLog())
	require.Nil(t, l.Submit(context.Background(), "", "p"))
	require.Nil(t, l.Submit(context.Background(), "a", ""))
	require.Equal(t, Idle, l.Phase())

	require.NotNil(t, l.Submit(context.Background(), "a", "p"))
	require.Nil(t, l.Submit(context.Background(), "a", "p"), "second submit while in flight")
}

func TestLoginCancelDropsResult(t *testing.T) {
	s, n := fixtures(t)
	require.NoError(t, s.Register("a", "p"))

	l := NewLogin(time.Hour, quietLog())
	cmd := l.Submit(context.Background(), "a", "p")
	l.Cancel()
	require.Equal(t, Idle, l.Phase())

	msg := cmd().(LoginResultMsg)
	require.ErrorIs(t, msg.Err, context.Canceled)

	out := l.Resolve(msg, s, n)
	require.False(t, out.Handled)
	require.False(t, s.LoggedIn())
	require.Equal(t, 1, n.Stack.Len())
}

func TestLoginIgnoresStaleAttempt(t *testing.T) {
	s, n := fixtures(t)
	require.NoError(t, s.Register("a", "p"))

	l := NewLogin(0, quietLog())
	_ = l.Submit(context.Background(), "a", "p")
	out := l.Resolve(LoginResultMsg{Attempt: uuid.New()}, s, n)
	require.False(t, out.Handled)
	require.True(t, l.Loading())
}

func TestSignupSuccess(t *testing.T) {
	s, n := fixtures(t)
	require.NoError(t, n.Push(nav.SignupForm))

	var form validate.SignupForm
	form.OnFieldChanged(validate.SignupName, "Leo")
	form.OnFieldChanged(validate.SignupEmail, "leo@example.com")
	form.OnFieldChanged(validate.SignupPassword, "secret1")
	form.OnFieldChanged(validate.SignupConfirmation, "secret1")

	su := NewSignup(0, quietLog())
	cmd := su.Submit(context.Background(), form)
	require.NotNil(t, cmd)
	require.True(t, su.Loading())

	out := su.Resolve(cmd().(SignupResultMsg), s, n)
	require.Equal(t, Success, out.Phase)
	require.Equal(t, "Welcome Leo! You are all set.", out.Toast)
	require.False(t, su.Loading())
	require.Equal(t, []nav.ScreenID{nav.LoginForm}, n.Stack.Items())

	name, ok := s.RegisteredUsername()
	require.True(t, ok)
	require.Equal(t, "Leo", name)
	require.NoError(t, s.CheckPassword("secret1"))
}

func TestSignupThenLoginWithLongPassword(t *testing.T) {
	s, n := fixtures(t)
	require.NoError(t, n.Push(nav.SignupForm))
	long := strings.Repeat("x", 80)

	var form validate.SignupForm
	form.OnFieldChanged(validate.SignupName, "Leo")
	form.OnFieldChanged(validate.SignupEmail, "leo@example.com")
	form.OnFieldChanged(validate.SignupPassword, long)
	form.OnFieldChanged(validate.SignupConfirmation, long)
	require.True(t, form.IsSubmittable())

	su := NewSignup(0, quietLog())
	out := su.Resolve(su.Submit(context.Background(), form)().(SignupResultMsg), s, n)
	require.Equal(t, Success, out.Phase)
	require.Equal(t, WelcomeMessage("Leo"), out.Toast)
	require.Equal(t, []nav.ScreenID{nav.LoginForm}, n.Stack.Items())

	l := NewLogin(0, quietLog())
	out = l.Resolve(l.Submit(context.Background(), "Leo", long)().(LoginResultMsg), s, n)
	require.Equal(t, Success, out.Phase)
	require.True(t, s.LoggedIn())
}

func TestSignupLogsMissingLoginForm(t *testing.T) {
	s := session.New(session.WithBcryptCost(bcrypt.MinCost), session.WithLogger(quietLog()))
	n := nav.NewNavigator(nav.SignupForm)
	require.NoError(t, n.Push(nav.SignupForm))

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	var form validate.SignupForm
	form.OnFieldChanged(validate.SignupName, "Leo")
	form.OnFieldChanged(validate.SignupEmail, "leo@example.com")
	form.OnFieldChanged(validate.SignupPassword, "secret1")
	form.OnFieldChanged(validate.SignupConfirmation, "secret1")

	su := NewSignup(0, logrus.NewEntry(l))
	out := su.Resolve(su.Submit(context.Background(), form)().(SignupResultMsg), s, n)
	require.Equal(t, Success, out.Phase)
	require.True(t, n.Sheet.Visible())
	require.Contains(t, buf.String(), "show login form")
	require.Contains(t, buf.String(), nav.ErrUnimplementedFeature.Error())
}

func TestSignupRejectsInvalidForm(t *testing.T) {
	var form validate.SignupForm
	form.OnFieldChanged(validate.SignupName, "Leo")
	su := NewSignup(0, quietLog())
	require.Nil(t, su.Submit(context.Background(), form))
	require.Equal(t, Idle, su.Phase())
}

func TestSignupCancel(t *testing.T) {
	s, n := fixtures(t)
	var form validate.SignupForm
	form.OnFieldChanged(validate.SignupName, "Leo")
	form.OnFieldChanged(validate.SignupEmail, "leo@example.com")
	form.OnFieldChanged(validate.SignupPassword, "secret1")
	form.OnFieldChanged(validate.SignupConfirmation, "secret1")

	su := NewSignup(time.Hour, quietLog())
	cmd := su.Submit(context.Background(), form)
	su.Cancel()
	out := su.Resolve(cmd().(SignupResultMsg), s, n)
	require.False(t, out.Handled)
	_, ok := s.RegisteredUsername()
	require.False(t, ok)
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "submitting", Submitting.String())
	require.Equal(t, "success", Success.String())
	require.Equal(t, "failure", Failure.String())
}
