package guard

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/session"
	"github.com/eduterm/eduterm/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Level: "debug", Environment: "development"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newGate(t *testing.T, user *models.User) (*Gate, *session.Manager) {
	t.Helper()
	manager := session.NewManager(session.NewMemStore())
	if user != nil {
		require.NoError(t, manager.Establish("tok", user))
	}
	return NewGate(manager), manager
}

func TestPrivateRoute_CheckingRendersPlaceholder(t *testing.T) {
	gate, _ := newGate(t, &models.User{ID: "u1", Role: models.RoleStudent})

	// Not resolved yet: guarded content must not render.
	assert.Equal(t, DecisionPlaceholder, gate.PrivateRoute().Kind)
	assert.Equal(t, DecisionPlaceholder, gate.PublicRoute().Kind)
}

func TestPrivateRoute_Unauthenticated(t *testing.T) {
	gate, _ := newGate(t, nil)
	gate.Resolve()

	d := gate.PrivateRoute()
	assert.Equal(t, DecisionRedirect, d.Kind)
	assert.Equal(t, LoginRoute, d.Target)
	assert.True(t, d.Replace, "redirect must replace history")
}

func TestPrivateRoute_RoleAllowList(t *testing.T) {
	gate, _ := newGate(t, &models.User{ID: "u1", Role: models.RoleStudent})
	gate.Resolve()

	t.Run("no allow-list admits any authenticated role", func(t *testing.T) {
		assert.Equal(t, DecisionRender, gate.PrivateRoute().Kind)
	})

	t.Run("permitted role renders", func(t *testing.T) {
		assert.Equal(t, DecisionRender, gate.PrivateRoute(models.RoleStudent).Kind)
	})

	t.Run("disallowed role redirects to dashboard, never rendering", func(t *testing.T) {
		d := gate.PrivateRoute(models.RoleTeacher)
		assert.Equal(t, DecisionRedirect, d.Kind)
		assert.Equal(t, DashboardRoute, d.Target)
	})
}

func TestPublicRoute(t *testing.T) {
	t.Run("authenticated redirects to dashboard", func(t *testing.T) {
		gate, _ := newGate(t, &models.User{ID: "u1", Role: models.RoleTeacher})
		gate.Resolve()

		d := gate.PublicRoute()
		assert.Equal(t, DecisionRedirect, d.Kind)
		assert.Equal(t, DashboardRoute, d.Target)
	})

	t.Run("unauthenticated renders children", func(t *testing.T) {
		gate, _ := newGate(t, nil)
		gate.Resolve()

		assert.Equal(t, DecisionRender, gate.PublicRoute().Kind)
	})
}

func TestGate_TokenWithoutUserIsUnauthenticated(t *testing.T) {
	store := session.NewMemStore()
	require.NoError(t, store.SaveToken("tok"))

	gate := NewGate(session.NewManager(store))
	gate.Resolve()

	assert.Equal(t, StateUnauthorized, gate.State())
}

func TestGate_WatchFollowsSessionChanges(t *testing.T) {
	gate, manager := newGate(t, &models.User{ID: "u1", Role: models.RoleStudent})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gate.Watch(ctx)
	gate.Resolve()
	require.Equal(t, StateAuthorized, gate.State())

	manager.Logout()
	require.Eventually(t, func() bool {
		return gate.State() == StateUnauthorized
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, manager.Establish("tok2", &models.User{ID: "u1", Role: models.RoleTeacher}))
	require.Eventually(t, func() bool {
		role, ok := gate.Role()
		return ok && role == models.RoleTeacher
	}, time.Second, 5*time.Millisecond)
}
