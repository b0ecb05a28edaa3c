package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/eduterm/eduterm/internal/models"
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

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"file":   newFileStore(t),
		"memory": NewMemStore(),
	}
}

func TestStore_TokenRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok := store.Token()
			assert.False(t, ok)

			require.NoError(t, store.SaveToken("tok-abc"))
			token, ok := store.Token()
			assert.True(t, ok)
			assert.Equal(t, "tok-abc", token)

			store.RemoveToken()
			_, ok = store.Token()
			assert.False(t, ok)
		})
	}
}

func TestStore_LogoutClearsBothKeys(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.SaveToken("tok"))
			require.NoError(t, store.SaveUser(&models.User{ID: "u1", Role: models.RoleStudent}))

			store.Logout()

			_, ok := store.Token()
			assert.False(t, ok)
			_, ok = store.User()
			assert.False(t, ok)

			// Idempotent
			store.Logout()
			_, ok = store.Token()
			assert.False(t, ok)
		})
	}
}

func TestStore_RegisterEmailStash(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok := store.RegisterEmail()
			assert.False(t, ok)

			require.NoError(t, store.SaveRegisterEmail("a@b.com"))
			email, ok := store.RegisterEmail()
			assert.True(t, ok)
			assert.Equal(t, "a@b.com", email)

			// The stash survives logout; it belongs to the registration
			// flow, not the session.
			store.Logout()
			_, ok = store.RegisterEmail()
			assert.True(t, ok)

			store.ClearRegisterEmail()
			_, ok = store.RegisterEmail()
			assert.False(t, ok)
		})
	}
}

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken("tok"))
	require.NoError(t, store.SaveUser(&models.User{ID: "u1", Name: "A", Role: models.RoleTeacher}))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	token, ok := reopened.Token()
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	user, ok := reopened.User()
	require.True(t, ok)
	assert.Equal(t, models.RoleTeacher, user.Role)
}

func TestFileStore_CorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestFileStore_MalformedUserReadsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	raw, err := json.Marshal(map[string]json.RawMessage{
		"auth_user": json.RawMessage(`"not-an-object"`),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	user, ok := store.User()
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
