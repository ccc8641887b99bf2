package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Arize-ai/arize-ax-cli/internal/profile"
)

// Manager orchestrates profile load/save/list/switch/delete operations on
// top of an injected profile.Store, applying env-var expansion and routing
// resolution on load and validation before save.
//
// A Manager holds no cached state: every Load re-reads from disk, so a
// profile switch performed in one terminal is immediately visible to the
// next command run in another.
type Manager struct {
	store *profile.Store
}

// NewManager returns a Manager backed by the given store.
func NewManager(store *profile.Store) *Manager {
	return &Manager{store: store}
}

// Store exposes the underlying profile store.
func (m *Manager) Store() *profile.Store {
	return m.store
}

// Load reads, decodes, and validates a profile. An empty name resolves to
// the active profile; with no active profile either, it fails with
// ErrNoActiveProfile. When expandEnvVars is set, every ${VAR} reference in
// string fields is substituted from the process environment before
// validation. No partial Config is ever returned.
func (m *Manager) Load(name string, expandEnvVars bool) (Config, error) {
	if name == "" {
		active, err := m.store.GetActive()
		if err != nil {
			return Config{}, err
		}
		if active == "" {
			return Config{}, ErrNoActiveProfile
		}
		name = active
	}

	data, err := m.store.Read(name)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig(name)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("profile %q is not a valid config document: %w", name, err)
	}
	cfg.Profile.Name = name

	if expandEnvVars {
		if err := ExpandConfig(&cfg); err != nil {
			return Config{}, err
		}
	}

	if violations := Validate(cfg); len(violations) > 0 {
		return Config{}, &ConfigError{Profile: name, Violations: violations}
	}

	// Endpoint derivation needs literal values; with unexpanded references
	// still present it is deferred to the caller's own ResolveRouting.
	if !routingHasEnvRefs(cfg.Routing) {
		if _, err := Resolve(cfg.Routing); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// Save validates and persists a profile. Environment references are written
// out in their raw ${VAR} form so they survive a save/load round trip.
// Validation failures abort the save; nothing is written.
func (m *Manager) Save(cfg Config, name string) error {
	cfg.Profile.Name = name
	if violations := Validate(cfg); len(violations) > 0 {
		return &ConfigError{Profile: name, Violations: violations}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding profile %q: %w", name, err)
	}
	return m.store.Write(name, data)
}

// ListProfiles returns the names of all stored profiles.
func (m *Manager) ListProfiles() ([]string, error) {
	return m.store.List()
}

// ActiveProfile returns the active profile name, or "" when none is set.
func (m *Manager) ActiveProfile() (string, error) {
	return m.store.GetActive()
}

// SetActiveProfile switches the active profile. It fails with a
// profile.NotFoundError when the named profile does not exist, leaving the
// previous pointer untouched.
func (m *Manager) SetActiveProfile(name string) error {
	return m.store.SetActive(name)
}

// DeleteProfile removes a profile. Deleting the active profile requires
// force, which also clears the active pointer.
func (m *Manager) DeleteProfile(name string, force bool) error {
	return m.store.Delete(name, force)
}

// Exists reports whether a profile is present in the store.
func (m *Manager) Exists(name string) bool {
	return m.store.Exists(name)
}

func routingHasEnvRefs(r RoutingSection) bool {
	for _, v := range []string{
		r.Region, r.SingleHost, r.SinglePort, r.BaseDomain,
		r.APIHost, r.APIScheme, r.OTLPHost, r.OTLPScheme,
		r.FlightHost, r.FlightPort, r.FlightScheme,
	} {
		if isEnvRef(v) {
			return true
		}
	}
	return false
}
