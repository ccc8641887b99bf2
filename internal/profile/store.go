package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	defaultRootDir    = ".arize"
	profilesDir       = "profiles"
	activePointerFile = ".active_profile"
	profileExt        = ".yaml"

	// AX_CONFIG_DIR overrides the store root, mainly for scripting.
	configDirEnvVar = "AX_CONFIG_DIR"
)

// Store persists named configuration profiles as YAML documents under a root
// directory and tracks which profile is active via a small pointer file.
//
// Every mutation is a single atomic rename, so concurrent CLI invocations
// always observe a fully valid pre- or post-state. There is no cross-process
// locking: the last rename wins, and readers never block.
type Store struct {
	root string
}

// NewStore returns a Store rooted at dir. The directory does not need to
// exist yet; it is created on the first write.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// DefaultRoot returns the store root for this process: AX_CONFIG_DIR when
// set, otherwise ~/.arize.
func DefaultRoot() (string, error) {
	if dir := os.Getenv(configDirEnvVar); dir != "" {
		return dir, nil
	}
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, defaultRootDir), nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// ProfilePath returns the file path a profile is (or would be) stored at.
func (s *Store) ProfilePath(name string) string {
	return filepath.Join(s.root, profilesDir, name+profileExt)
}

func (s *Store) activePath() string {
	return filepath.Join(s.root, activePointerFile)
}

// Exists reports whether a profile file is present in the store.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.ProfilePath(name))
	return err == nil
}

// Read returns the raw bytes of a profile file.
func (s *Store) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.ProfilePath(name))
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Profile: name}
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile %q: %w", name, err)
	}
	return data, nil
}

// Write persists raw profile bytes. The write goes to a temp file in the
// same directory followed by a rename, so a crash mid-write never leaves a
// truncated profile behind.
func (s *Store) Write(name string, data []byte) error {
	dir := filepath.Join(s.root, profilesDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := writeFileAtomic(s.ProfilePath(name), data, 0o600); err != nil {
		return fmt.Errorf("writing profile %q: %w", name, err)
	}
	return nil
}

// List returns the names of all stored profiles, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, profilesDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), profileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), profileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a profile file. Deleting the active profile fails with
// ActiveProfileDeletionError unless force is set, in which case the active
// pointer is cleared as part of the same operation.
func (s *Store) Delete(name string, force bool) error {
	if !s.Exists(name) {
		return &NotFoundError{Profile: name}
	}
	active, err := s.GetActive()
	if err != nil && !isDangling(err) {
		return err
	}
	if active == name {
		if !force {
			return &ActiveProfileDeletionError{Profile: name}
		}
		if err := s.ClearActive(); err != nil {
			return err
		}
	}
	if err := os.Remove(s.ProfilePath(name)); err != nil {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	return nil
}

// GetActive returns the name of the active profile, or "" when no pointer
// is set. A pointer naming a profile whose file has gone missing is a
// dangling registry and is reported as an error, never silently defaulted.
func (s *Store) GetActive() (string, error) {
	data, err := os.ReadFile(s.activePath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading active profile pointer: %w", err)
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", nil
	}
	if !s.Exists(name) {
		return "", &DanglingActiveProfileError{Profile: name}
	}
	return name, nil
}

// SetActive points the registry at an existing profile. The pointer update
// is an atomic rename like every other mutation.
func (s *Store) SetActive(name string) error {
	if !s.Exists(name) {
		return &NotFoundError{Profile: name}
	}
	if err := os.MkdirAll(s.root, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := writeFileAtomic(s.activePath(), []byte(name+"\n"), 0o600); err != nil {
		return fmt.Errorf("setting active profile: %w", err)
	}
	return nil
}

// ClearActive removes the active-profile pointer. Clearing an already
// unset pointer is not an error.
func (s *Store) ClearActive() error {
	err := os.Remove(s.activePath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing active profile: %w", err)
	}
	return nil
}

func isDangling(err error) bool {
	_, ok := err.(*DanglingActiveProfileError)
	return ok
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
