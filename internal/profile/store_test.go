package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, s *Store, name string) {
	t.Helper()
	err := s.Write(name, []byte("auth:\n  api_key: ak-"+name+"\n"))
	require.NoError(t, err)
}

func TestStoreWriteRead(t *testing.T) {
	s := NewStore(t.TempDir())

	err := s.Write("prod", []byte("auth:\n  api_key: ak-123\n"))
	require.NoError(t, err)

	data, err := s.Read("prod")
	require.NoError(t, err)
	assert.Contains(t, string(data), "ak-123")

	// No stray temp files left behind after the rename.
	entries, err := os.ReadDir(filepath.Join(s.Root(), "profiles"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreWriteOverwritesAtomically(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "prod")

	err := s.Write("prod", []byte("auth:\n  api_key: ak-replaced\n"))
	require.NoError(t, err)

	data, err := s.Read("prod")
	require.NoError(t, err)
	assert.Contains(t, string(data), "ak-replaced")
}

func TestStoreReadMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Read("nope")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Profile)
}

func TestStoreList(t *testing.T) {
	s := NewStore(t.TempDir())

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	writeProfile(t, s, "staging")
	writeProfile(t, s, "prod")

	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "staging"}, names)
}

func TestStoreListIgnoresForeignFiles(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "prod")

	err := os.WriteFile(filepath.Join(s.Root(), "profiles", "notes.txt"), []byte("hi"), 0o600)
	require.NoError(t, err)

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"prod"}, names)
}

func TestStoreSetActiveAndGetActive(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "prod")

	active, err := s.GetActive()
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, s.SetActive("prod"))

	active, err = s.GetActive()
	require.NoError(t, err)
	assert.Equal(t, "prod", active)
}

func TestStoreSetActiveMissingProfile(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "prod")
	require.NoError(t, s.SetActive("prod"))

	var notFound *NotFoundError
	err := s.SetActive("ghost")
	require.ErrorAs(t, err, &notFound)

	// The previous pointer is untouched.
	active, err := s.GetActive()
	require.NoError(t, err)
	assert.Equal(t, "prod", active)
}

func TestStoreDanglingActivePointer(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "prod")
	require.NoError(t, s.SetActive("prod"))

	// Simulate a manual deletion of the profile file.
	require.NoError(t, os.Remove(s.ProfilePath("prod")))

	_, err := s.GetActive()
	var dangling *DanglingActiveProfileError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "prod", dangling.Profile)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "old")

	require.NoError(t, s.Delete("old", false))
	assert.False(t, s.Exists("old"))
}

func TestStoreDeleteMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	var notFound *NotFoundError
	assert.ErrorAs(t, s.Delete("ghost", false), &notFound)
}

func TestStoreDeleteActiveWithoutForce(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "prod")
	require.NoError(t, s.SetActive("prod"))

	err := s.Delete("prod", false)
	var activeDeletion *ActiveProfileDeletionError
	require.ErrorAs(t, err, &activeDeletion)
	assert.True(t, s.Exists("prod"))
}

func TestStoreDeleteActiveWithForce(t *testing.T) {
	s := NewStore(t.TempDir())
	writeProfile(t, s, "prod")
	require.NoError(t, s.SetActive("prod"))

	require.NoError(t, s.Delete("prod", true))
	assert.False(t, s.Exists("prod"))

	active, err := s.GetActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestStoreClearActiveIdempotent(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.NoError(t, s.ClearActive())
	assert.NoError(t, s.ClearActive())
}

func TestDefaultRootEnvOverride(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", "/tmp/ax-test-root")

	root, err := DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ax-test-root", root)
}

func TestDefaultRootHome(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", "")
	os.Unsetenv("AX_CONFIG_DIR")

	originalHome := osUserHomeDir
	defer func() { osUserHomeDir = originalHome }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	root, err := DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".arize"), root)
}

func TestDefaultRootHomeError(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", "")
	os.Unsetenv("AX_CONFIG_DIR")

	originalHome := osUserHomeDir
	defer func() { osUserHomeDir = originalHome }()
	osUserHomeDir = func() (string, error) { return "", errors.New("no home") }

	_, err := DefaultRoot()
	assert.Error(t, err)
}
