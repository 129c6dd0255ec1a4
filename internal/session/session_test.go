package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "github.com/ashevelyov/matchboard/internal/auth/model"
	"github.com/ashevelyov/matchboard/internal/localstore"
)

func tempSession(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	return New(localstore.OpenKV(path)), path
}

func adminUser() authModel.PublicUser {
	return authModel.PublicUser{ID: "u1", Email: "admin@example.com", Role: authModel.RoleAdmin}
}

func TestStore_SetSession(t *testing.T) {
	s, _ := tempSession(t)

	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.False(t, s.IsAdmin())

	require.NoError(t, s.SetSession("tok-123", adminUser()))

	assert.Equal(t, "tok-123", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "admin@example.com", s.User().Email)
	assert.True(t, s.IsAdmin())
}

func TestStore_PersistsAcrossRestart(t *testing.T) {
	s, path := tempSession(t)
	require.NoError(t, s.SetSession("tok-123", adminUser()))

	reloaded := New(localstore.OpenKV(path))
	assert.Equal(t, "tok-123", reloaded.Token())
	assert.True(t, reloaded.IsAdmin())
}

func TestStore_Logout(t *testing.T) {
	s, path := tempSession(t)
	require.NoError(t, s.SetSession("tok-123", adminUser()))
	require.NoError(t, s.Logout())

	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.False(t, s.IsAdmin())

	// Logout is durable too.
	reloaded := New(localstore.OpenKV(path))
	assert.Empty(t, reloaded.Token())
	assert.Nil(t, reloaded.User())
}

func TestStore_CorruptBlobStartsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("][not json"), 0o644))

	s := New(localstore.OpenKV(path))
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

func TestStore_ViewerIsNotAdmin(t *testing.T) {
	s, _ := tempSession(t)
	viewer := adminUser()
	viewer.Role = authModel.RoleViewer
	require.NoError(t, s.SetSession("tok", viewer))
	assert.False(t, s.IsAdmin())
}
