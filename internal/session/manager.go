package session

import (
	"sync"
	"time"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/pkg/metrics"
	"github.com/eduterm/eduterm/pkg/tokens"
)

// EventKind is a session lifecycle change observable by subscribers.
type EventKind string

const (
	EventEstablished EventKind = "established"
	EventLoggedOut   EventKind = "logged_out"
	EventExpired     EventKind = "expired"
)

type Event struct {
	Kind EventKind
	User *models.User
}

// Manager is the single ownership point over the session store. Guards
// and clients read through it, and login/logout flows write through it,
// so every consumer observes the same lifecycle. Subscribers receive a
// change event on establish, logout and observed token expiry.
type Manager struct {
	store Store

	mu   sync.Mutex
	subs []chan Event
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Establish stores both the token and the user record; the session
// invariant is that the two are either both present or both absent.
func (m *Manager) Establish(token string, user *models.User) error {
	if err := m.store.SaveToken(token); err != nil {
		return err
	}
	if err := m.store.SaveUser(user); err != nil {
		// Roll back the token so a half-written session never reads as
		// authenticated.
		m.store.RemoveToken()
		return err
	}
	metrics.SessionEvents.WithLabelValues(string(EventEstablished)).Inc()
	m.publish(Event{Kind: EventEstablished, User: user})
	return nil
}

// Logout clears both keys. Idempotent; never fails.
func (m *Manager) Logout() {
	m.store.Logout()
	metrics.SessionEvents.WithLabelValues(string(EventLoggedOut)).Inc()
	m.publish(Event{Kind: EventLoggedOut})
}

// Token implements httpclient.TokenSource for the bearer transport.
func (m *Manager) Token() (string, bool) {
	return m.store.Token()
}

// Current returns the cached session when both the token and the user
// record are present; either one missing reads as unauthenticated.
func (m *Manager) Current() (string, *models.User, bool) {
	token, ok := m.store.Token()
	if !ok {
		return "", nil, false
	}
	user, ok := m.store.User()
	if !ok {
		return "", nil, false
	}
	return token, user, true
}

// CheckExpiry peeks at the stored token's expiry claim and, when it has
// passed, clears the session and notifies subscribers. Opaque tokens are
// left alone; expiry enforcement stays with the backend.
func (m *Manager) CheckExpiry(now time.Time) bool {
	token, ok := m.store.Token()
	if !ok || !tokens.Expired(token, now) {
		return false
	}
	m.store.Logout()
	metrics.SessionEvents.WithLabelValues(string(EventExpired)).Inc()
	m.publish(Event{Kind: EventExpired})
	return true
}

// SaveRegisterEmail stashes the email between registration and
// verification.
func (m *Manager) SaveRegisterEmail(email string) error {
	return m.store.SaveRegisterEmail(email)
}

func (m *Manager) RegisterEmail() (string, bool) {
	return m.store.RegisterEmail()
}

func (m *Manager) ClearRegisterEmail() {
	m.store.ClearRegisterEmail()
}

// Subscribe returns a channel of session change events. Delivery is
// best-effort: a subscriber that stops draining misses events rather
// than blocking session mutations.
func (m *Manager) Subscribe() <-chan Event {
	ch := make(chan Event, 4)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) publish(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
