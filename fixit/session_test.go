package fixit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "credentials.json")
	store := NewFileStore(path)

	cred := &Credential{
		Token: "tok",
		Profile: Profile{
			ID:    uuid.New(),
			Name:  "Lana Landlord",
			Email: "lana@example.com",
			Role:  RoleLandlord,
		},
	}
	require.NoError(t, store.Save(cred))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cred, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_MissingFileMeansNoSession(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	cred, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestFileStore_CorruptedFileClearedAndTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))
	store := NewFileStore(path)

	cred, err := store.Load()
	require.NoError(t, err, "corruption must not be fatal")
	assert.Nil(t, cred)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupted entry must be cleared")
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(&Credential{Token: "tok"}))

	require.NoError(t, store.Clear())
	cred, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, cred)

	// Clearing an already-clear store is fine.
	require.NoError(t, store.Clear())
}

func TestFileStore_ExpiredNoticeIsOneShot(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

	assert.False(t, store.TakeExpired())
	store.MarkExpired()
	assert.True(t, store.TakeExpired())
	assert.False(t, store.TakeExpired(), "notice must reset after being taken")
}

func TestFileStore_ExpiredNoticeSurvivesClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, store.Save(&Credential{Token: "tok"}))

	store.MarkExpired()
	require.NoError(t, store.Clear())
	assert.True(t, store.TakeExpired())
}

func TestMemStore_CopiesCredential(t *testing.T) {
	store := NewMemStore()
	cred := &Credential{Token: "tok", Profile: Profile{Role: RoleTenant}}
	require.NoError(t, store.Save(cred))

	loaded, err := store.Load()
	require.NoError(t, err)
	loaded.Token = "mutated"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", again.Token, "callers must not be able to mutate the stored credential")
}
