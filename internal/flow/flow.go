// Package flow runs the simulated authentication round trips.
//
// Each submit returns a tea.Cmd that waits out the configured latency and
// reports back with the attempt id it was issued for. Resolve is called from
// the update loop with that message and applies the outcome to the session
// and navigation state. Results for a cancelled or superseded attempt are
// dropped.
package flow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultDelay is the simulated network latency.
const DefaultDelay = 2 * time.Second

// Phase is the state of a single submit.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// Outcome is what Resolve did with a result message.
type Outcome struct {
	Handled bool
	Phase   Phase
	// Toast is a message the app should surface, if any.
	Toast string
}

// Wait blocks for d or until ctx is done. A non-positive d returns
// immediately with ctx's error, if any.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// attempt tracks one in-flight round trip.
type attempt struct {
	id     uuid.UUID
	cancel context.CancelFunc
}

func (a *attempt) start(parent context.Context) (context.Context, uuid.UUID) {
	a.stop()
	ctx, cancel := context.WithCancel(parent)
	a.id = uuid.New()
	a.cancel = cancel
	return ctx, a.id
}

func (a *attempt) stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.cancel = nil
	a.id = uuid.Nil
}

func (a *attempt) current(id uuid.UUID) bool {
	return a.id != uuid.Nil && a.id == id
}

func componentLogger(log *logrus.Entry, name string) *logrus.Entry {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return log.WithField("component", name)
}
