package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case toastExpiredMsg:
		m.session.Toast.Expire(msg.token)
		return m, nil
	case splashDoneMsg:
		m.dismissSplash()
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, actionQuit, scope) {
			m.quitting = true
			m.teardown()
			return m, tea.Quit
		}
		if m.splash != nil {
			m.dismissSplash()
			return m, nil
		}
		if scope == scopeSheet {
			if m.keys.IsAction(msg, actionDismiss, scope) {
				m.nav.Sheet.Dismiss()
			}
			return m, nil
		}
		cmd := m.Active().Update(&m, msg)
		return m, tea.Batch(cmd, m.syncStack())
	}

	// Everything else is a result or timer for some live screen. Each one
	// ignores messages it does not own.
	cmds := make([]tea.Cmd, 0, len(m.stack)+2)
	for _, s := range m.live() {
		cmds = append(cmds, s.Update(&m, msg))
	}
	cmds = append(cmds, m.syncStack())
	return m, tea.Batch(cmds...)
}

func (m Model) live() []Screen {
	out := make([]Screen, 0, len(m.stack)+2)
	out = append(out, m.welcome, m.landing)
	return append(out, m.stack...)
}

func (m *Model) dismissSplash() {
	if m.splash == nil {
		return
	}
	m.splash.Teardown()
	m.splash = nil
}
