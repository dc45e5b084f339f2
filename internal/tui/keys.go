package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key actions.
const (
	actionQuit     = "quit"
	actionNext     = "focus-next"
	actionPrev     = "focus-prev"
	actionActivate = "activate"
	actionBack     = "back"
	actionReveal   = "reveal"
	actionDismiss  = "dismiss"
)

// Scopes.
const (
	scopeSplash   = "screen:splash"
	scopeWelcome  = "screen:welcome"
	scopeLogin    = "screen:login"
	scopeSignup   = "screen:signup"
	scopeLanding  = "screen:landing"
	scopeFallback = "screen:fallback"
	scopeSheet    = "sheet"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	forms := []string{scopeLogin, scopeSignup}
	focusable := []string{scopeWelcome, scopeLogin, scopeSignup, scopeLanding}
	return []KeyBinding{
		{Keys: []string{"tab", "down"}, Action: actionNext, Description: "next", Scopes: focusable},
		{Keys: []string{"shift+tab", "up"}, Action: actionPrev, Description: "prev", Scopes: focusable},
		{Keys: []string{"enter"}, Action: actionActivate, Description: "select", Scopes: focusable},
		{Keys: []string{"ctrl+t"}, Action: actionReveal, Description: "show password", Scopes: forms},
		{Keys: []string{"esc"}, Action: actionBack, Description: "back", Scopes: []string{scopeLogin, scopeSignup, scopeFallback}},
		{Keys: []string{"enter", "esc"}, Action: actionDismiss, Description: "close", Scopes: []string{scopeSheet}},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
