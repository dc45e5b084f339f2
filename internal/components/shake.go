package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultShakeStep is the delay between shake offsets.
const DefaultShakeStep = 100 * time.Millisecond

// shakeOffsets is the decaying oscillation played on invalid input, in
// design points.
var shakeOffsets = []int{10, -10, 5, -5, 0}

// ShakeMsg advances the shake of the field identified by Key.
type ShakeMsg struct {
	Key  string
	Gen  int
	Step int
}

// Shake is a cancellable sequence of timed offsets. Starting a new shake or
// calling Cancel invalidates every tick already scheduled.
type Shake struct {
	step   time.Duration
	gen    int
	index  int
	active bool
}

// Start restarts the sequence and returns the first tick.
func (s *Shake) Start(key string) tea.Cmd {
	s.gen++
	s.index = 0
	s.active = true
	return s.tick(key)
}

// Cancel stops the sequence and resets the offset.
func (s *Shake) Cancel() {
	s.gen++
	s.index = 0
	s.active = false
}

// Advance handles a tick. Ticks from a cancelled or restarted sequence are
// ignored.
func (s *Shake) Advance(msg ShakeMsg) tea.Cmd {
	if !s.active || msg.Gen != s.gen || msg.Step != s.index {
		return nil
	}
	s.index++
	if s.index >= len(shakeOffsets)-1 {
		s.index = len(shakeOffsets) - 1
		s.active = false
		return nil
	}
	return s.tick(msg.Key)
}

// Offset is the current displacement in design points.
func (s Shake) Offset() int {
	if !s.active {
		return 0
	}
	return shakeOffsets[s.index]
}

func (s Shake) Active() bool { return s.active }

func (s *Shake) tick(key string) tea.Cmd {
	d := s.step
	if d <= 0 {
		d = DefaultShakeStep
	}
	msg := ShakeMsg{Key: key, Gen: s.gen, Step: s.index}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
