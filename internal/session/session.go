// Package session holds the process-wide state the auth flows mutate: the
// logged-in flag, the single registered account and the toast slot.
//
// State has exactly one writer, the UI update loop. It is not safe for
// concurrent use.
package session

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotRegistered is returned when credentials are checked before any
// signup has happened.
var ErrNotRegistered = errors.New("no registered account")

// ErrWrongPassword is returned when the password does not match the
// registered one.
var ErrWrongPassword = errors.New("wrong password")

type State struct {
	loggedIn     bool
	username     string
	passwordHash []byte
	registered   bool
	bcryptCost   int
	log          *logrus.Entry

	Toast Toast
}

type Option func(*State)

// WithBcryptCost sets the hashing cost for registered passwords.
func WithBcryptCost(cost int) Option {
	return func(s *State) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithToastTimeout sets how long toasts stay visible.
func WithToastTimeout(d time.Duration) Option {
	return func(s *State) { s.Toast = NewToast(d) }
}

// WithLogger attaches a logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *State) {
		if log != nil {
			s.log = log
		}
	}
}

func New(opts ...Option) *State {
	s := &State{
		bcryptCost: bcrypt.DefaultCost,
		Toast:      NewToast(DefaultToastTimeout),
		log:        logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("component", "session")
	return s
}

func (s *State) LoggedIn() bool { return s.loggedIn }

func (s *State) SetLoggedIn() {
	s.loggedIn = true
	s.log.WithField("username", s.username).Info("logged in")
}

func (s *State) SetLoggedOut() {
	s.loggedIn = false
	s.log.Info("logged out")
}

// Register overwrites the single registered account.
func (s *State) Register(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	s.username = username
	s.passwordHash = hash
	s.registered = true
	s.log.WithField("username", username).Info("account registered")
	return nil
}

// prehash digests password so bcrypt never sees more than its 72 byte limit.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// RegisteredUsername returns the registered username, if any.
func (s *State) RegisteredUsername() (string, bool) {
	return s.username, s.registered
}

// CheckPassword compares password with the registered one.
func (s *State) CheckPassword(password string) error {
	if !s.registered {
		return ErrNotRegistered
	}
	err := bcrypt.CompareHashAndPassword(s.passwordHash, prehash(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrWrongPassword
	default:
		return fmt.Errorf("verify password: %w", err)
	}
}

// ShowToast puts message in the toast slot and returns its token.
func (s *State) ShowToast(message string, now time.Time) Toast {
	s.Toast.Show(message, now)
	s.log.WithField("message", message).Debug("toast shown")
	return s.Toast
}
