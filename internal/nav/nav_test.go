package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	var s Stack
	_, ok := s.Top()
	require.False(t, ok)
	_, ok = s.Pop()
	require.False(t, ok)

	s.Push(LoginForm)
	s.Push(SignupForm)
	top, ok := s.Top()
	require.True(t, ok)
	require.Equal(t, SignupForm, top)
	require.Equal(t, 2, s.Len())

	popped, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, SignupForm, popped)
	require.Equal(t, []ScreenID{LoginForm}, s.Items())
}

func TestStackReplace(t *testing.T) {
	var s Stack
	s.Push(SignupForm)
	s.Push(ForgotPasswordForm)
	s.Replace(LoginForm)
	require.Equal(t, []ScreenID{LoginForm}, s.Items())
}

func TestItemsIsACopy(t *testing.T) {
	var s Stack
	s.Push(LoginForm)
	items := s.Items()
	items[0] = SignupForm
	top, _ := s.Top()
	require.Equal(t, LoginForm, top)
}

func TestPushRegisteredScreen(t *testing.T) {
	n := NewNavigator(LoginForm, SignupForm)
	require.NoError(t, n.Push(LoginForm))
	require.False(t, n.Sheet.Visible())
}

func TestPushUnregisteredScreenPresentsSheet(t *testing.T) {
	n := NewNavigator(LoginForm, SignupForm)
	err := n.Push(ForgotPasswordForm)
	require.ErrorIs(t, err, ErrUnimplementedFeature)
	require.True(t, n.Sheet.Visible())
	top, _ := n.Stack.Top()
	require.Equal(t, ForgotPasswordForm, top)

	n.Sheet.Dismiss()
	require.False(t, n.Sheet.Visible())
}

func TestReplaceResolves(t *testing.T) {
	n := NewNavigator(LoginForm)
	require.NoError(t, n.Replace(LoginForm))
	require.ErrorIs(t, n.Replace(UnavailableScreen), ErrUnimplementedFeature)
	require.Equal(t, []ScreenID{UnavailableScreen}, n.Stack.Items())
}

func TestPresentUnavailable(t *testing.T) {
	n := NewNavigator()
	require.ErrorIs(t, n.PresentUnavailable(), ErrUnimplementedFeature)
	require.True(t, n.Sheet.Visible())
}

func TestSuggest(t *testing.T) {
	n := NewNavigator(LoginForm, SignupForm)
	got, ok := n.Suggest("loginfrom")
	require.True(t, ok)
	require.Equal(t, LoginForm, got)

	_, ok = n.Suggest(ForgotPasswordForm)
	require.False(t, ok)

	_, ok = NewNavigator().Suggest(LoginForm)
	require.False(t, ok)
}
