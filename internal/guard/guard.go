// Package guard decides whether a screen may render based on the cached
// session. It performs no network I/O: the role is only as fresh as the
// stored session, and a server-side role change is not reflected until
// re-login.
package guard

import (
	"context"
	"sync"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/session"
	"github.com/eduterm/eduterm/pkg/logger"
	"go.uber.org/zap"
)

// Well-known redirect targets.
const (
	LoginRoute     = "/auth/login"
	DashboardRoute = "/dashboard"
)

// State of one authorization evaluation.
type State int

const (
	// StateChecking holds until the one-time session read resolves;
	// guarded content must not render yet.
	StateChecking State = iota
	StateAuthorized
	StateUnauthorized
)

// DecisionKind says what the caller should do with a route.
type DecisionKind int

const (
	// DecisionPlaceholder renders the neutral "checking" placeholder.
	DecisionPlaceholder DecisionKind = iota
	// DecisionRender renders the requested screen.
	DecisionRender
	// DecisionRedirect navigates to Target instead.
	DecisionRedirect
)

type Decision struct {
	Kind   DecisionKind
	Target string
	// Replace drops the current history entry so back-navigation cannot
	// re-enter protected content.
	Replace bool
}

// Gate evaluates route access from the session established at mount.
type Gate struct {
	manager *session.Manager

	mu    sync.RWMutex
	state State
	role  models.Role
}

func NewGate(manager *session.Manager) *Gate {
	return &Gate{manager: manager, state: StateChecking}
}

// Resolve performs the one-shot session read. Either the token or the
// user record missing reads as unauthenticated.
func (g *Gate) Resolve() {
	_, user, ok := g.manager.Current()

	g.mu.Lock()
	defer g.mu.Unlock()
	if ok {
		g.state = StateAuthorized
		g.role = user.Role
	} else {
		g.state = StateUnauthorized
		g.role = ""
	}
}

// Watch keeps the resolved state in step with session changes (logout,
// observed expiry, a fresh login) until ctx is done.
func (g *Gate) Watch(ctx context.Context) {
	events := g.manager.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				g.apply(ev)
			}
		}
	}()
}

func (g *Gate) apply(ev session.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch ev.Kind {
	case session.EventEstablished:
		g.state = StateAuthorized
		g.role = ev.User.Role
	case session.EventLoggedOut, session.EventExpired:
		g.state = StateUnauthorized
		g.role = ""
	}
	logger.Debug("session change applied to gate",
		zap.String("event", string(ev.Kind)))
}

// State returns the current evaluation state.
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Role returns the cached role while authorized.
func (g *Gate) Role() (models.Role, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.state != StateAuthorized {
		return "", false
	}
	return g.role, true
}

// PrivateRoute gates a protected screen. An empty allowedRoles admits
// any authenticated role; a role outside the allow-list lands on the
// dashboard rather than the login page.
func (g *Gate) PrivateRoute(allowedRoles ...models.Role) Decision {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch g.state {
	case StateChecking:
		return Decision{Kind: DecisionPlaceholder}
	case StateUnauthorized:
		return Decision{Kind: DecisionRedirect, Target: LoginRoute, Replace: true}
	}

	if len(allowedRoles) == 0 {
		return Decision{Kind: DecisionRender}
	}
	for _, r := range allowedRoles {
		if g.role == r {
			return Decision{Kind: DecisionRender}
		}
	}
	return Decision{Kind: DecisionRedirect, Target: DashboardRoute, Replace: true}
}

// PublicRoute keeps authenticated users off login/register screens.
func (g *Gate) PublicRoute() Decision {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch g.state {
	case StateChecking:
		return Decision{Kind: DecisionPlaceholder}
	case StateAuthorized:
		return Decision{Kind: DecisionRedirect, Target: DashboardRoute, Replace: true}
	}
	return Decision{Kind: DecisionRender}
}
