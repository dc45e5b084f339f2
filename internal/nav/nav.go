// Package nav owns the screen stack and the modal sheet flag.
package nav

import (
	"errors"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ScreenID identifies a pushable screen.
type ScreenID string

const (
	LoginForm          ScreenID = "loginForm"
	SignupForm         ScreenID = "signupForm"
	ForgotPasswordForm ScreenID = "forgotPasswordForm"
	UnavailableScreen  ScreenID = "unavailableScreen"
)

// ErrUnimplementedFeature marks a screen or action that has no view yet. It
// is a soft outcome: callers render a fallback and the sheet is presented.
var ErrUnimplementedFeature = errors.New("feature not implemented")

// Stack is an ordered sequence of screens; the last entry is on top.
type Stack struct {
	items []ScreenID
}

func (s *Stack) Push(id ScreenID) {
	s.items = append(s.items, id)
}

func (s *Stack) Pop() (ScreenID, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Replace drops every entry and leaves id as the only one.
func (s *Stack) Replace(id ScreenID) {
	s.items = []ScreenID{id}
}

func (s Stack) Top() (ScreenID, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

func (s Stack) Len() int { return len(s.items) }

// Items returns a copy of the stack, bottom first.
func (s Stack) Items() []ScreenID { return slices.Clone(s.items) }

// Sheet is the visibility flag of the "unavailable feature" sheet.
type Sheet struct {
	visible bool
}

func (s *Sheet) Present()     { s.visible = true }
func (s *Sheet) Dismiss()     { s.visible = false }
func (s Sheet) Visible() bool { return s.visible }

// Navigator combines the stack and sheet with the set of screens that have
// a view.
type Navigator struct {
	Stack Stack
	Sheet Sheet

	registered []ScreenID
}

func NewNavigator(registered ...ScreenID) *Navigator {
	return &Navigator{registered: slices.Clone(registered)}
}

// Registered reports whether id has a view.
func (n *Navigator) Registered(id ScreenID) bool {
	return slices.Contains(n.registered, id)
}

// Resolve checks that id has a view. Unregistered ids present the sheet and
// return ErrUnimplementedFeature.
func (n *Navigator) Resolve(id ScreenID) error {
	if n.Registered(id) {
		return nil
	}
	n.Sheet.Present()
	return ErrUnimplementedFeature
}

// Push puts id on the stack. The push always happens so back navigation
// works from the fallback view; the returned error reports whether a real
// view exists.
func (n *Navigator) Push(id ScreenID) error {
	n.Stack.Push(id)
	return n.Resolve(id)
}

func (n *Navigator) Pop() (ScreenID, bool) {
	return n.Stack.Pop()
}

// Replace resets the stack to the single entry id.
func (n *Navigator) Replace(id ScreenID) error {
	n.Stack.Replace(id)
	return n.Resolve(id)
}

// PresentUnavailable is used by actions that have no implementation.
func (n *Navigator) PresentUnavailable() error {
	n.Sheet.Present()
	return ErrUnimplementedFeature
}

// Suggest returns the registered id closest to id, for the fallback hint.
func (n *Navigator) Suggest(id ScreenID) (ScreenID, bool) {
	best, bestDist := ScreenID(""), -1
	target := strings.ToLower(string(id))
	for _, r := range n.registered {
		d := levenshtein.ComputeDistance(target, strings.ToLower(string(r)))
		if bestDist < 0 || d < bestDist {
			best, bestDist = r, d
		}
	}
	if bestDist < 0 || bestDist > len(target)/2 {
		return "", false
	}
	return best, true
}
