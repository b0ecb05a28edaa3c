// Package session owns the client-side session: the bearer token and the
// cached user record the platform persists between runs, plus the
// transient email stashed between registration and verification.
package session

import "github.com/eduterm/eduterm/internal/models"

// Storage keys mirror the platform's persisted client state.
const (
	tokenKey         = "auth_token"
	userKey          = "auth_user"
	registerEmailKey = "register_email"
)

// Store is the persistent key-value contract behind a session. A missing
// or malformed stored value reads as absent, never as an error; Logout is
// idempotent and never fails.
type Store interface {
	SaveToken(token string) error
	Token() (string, bool)
	RemoveToken()

	SaveUser(user *models.User) error
	User() (*models.User, bool)
	RemoveUser()

	SaveRegisterEmail(email string) error
	RegisterEmail() (string, bool)
	ClearRegisterEmail()

	// Logout removes both the token and the user record.
	Logout()
}
