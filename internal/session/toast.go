package session

import (
	"time"

	"github.com/google/uuid"
)

// DefaultToastTimeout is how long a toast stays up.
const DefaultToastTimeout = 3 * time.Second

// Toast is a single-slot transient notification. Each Show issues a fresh
// token; only the expiry carrying the current token clears the slot, so a
// late timer from an earlier Show cannot clear a newer message.
type Toast struct {
	timeout   time.Duration
	message   string
	visible   bool
	token     uuid.UUID
	expiresAt time.Time
}

// NewToast returns an empty toast slot with the given timeout.
func NewToast(timeout time.Duration) Toast {
	if timeout <= 0 {
		timeout = DefaultToastTimeout
	}
	return Toast{timeout: timeout}
}

// Show replaces the current message and returns the token its expiry must
// present.
func (t *Toast) Show(message string, now time.Time) uuid.UUID {
	t.message = message
	t.visible = true
	t.token = uuid.New()
	t.expiresAt = now.Add(t.timeout)
	return t.token
}

// Expire clears the slot if token is the current one. It reports whether
// anything was cleared.
func (t *Toast) Expire(token uuid.UUID) bool {
	if !t.visible || token != t.token {
		return false
	}
	t.Clear()
	return true
}

// Clear drops the current message unconditionally.
func (t *Toast) Clear() {
	t.message = ""
	t.visible = false
	t.token = uuid.Nil
	t.expiresAt = time.Time{}
}

func (t Toast) Visible() bool          { return t.visible }
func (t Toast) Message() string        { return t.message }
func (t Toast) Token() uuid.UUID       { return t.token }
func (t Toast) ExpiresAt() time.Time   { return t.expiresAt }
func (t Toast) Timeout() time.Duration { return t.timeout }
