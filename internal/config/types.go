package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the root value object for one profile. It mirrors the on-disk
// YAML document section for section; string values may hold ${VAR} style
// environment variable references that are expanded on load, never on save.
type Config struct {
	Profile   ProfileSection   `yaml:"profile"`
	Auth      AuthSection      `yaml:"auth"`
	Routing   RoutingSection   `yaml:"routing"`
	Transport TransportSection `yaml:"transport"`
	Security  SecuritySection  `yaml:"security"`
	Storage   StorageSection   `yaml:"storage"`
	Output    OutputSection    `yaml:"output"`
}

// ProfileSection carries profile metadata.
type ProfileSection struct {
	Name string `yaml:"name"`
}

// AuthSection carries authentication credentials.
type AuthSection struct {
	// APIKey may be a literal secret or an unexpanded ${VAR} reference.
	APIKey string `yaml:"api_key"`
}

// RoutingSection is the raw routing block. Exactly one of five mutually
// exclusive strategies may be populated; see Resolve for the detection
// rules. All fields are optional in the document.
type RoutingSection struct {
	// Region-based routing (US or EU).
	Region string `yaml:"region,omitempty"`

	// Single endpoint override (on-prem).
	SingleHost string `yaml:"single_host,omitempty"`
	SinglePort string `yaml:"single_port,omitempty"`

	// Base domain override (Private Connect).
	BaseDomain string `yaml:"base_domain,omitempty"`

	// Fully custom endpoints. All seven fields are required together.
	APIHost      string `yaml:"api_host,omitempty"`
	APIScheme    string `yaml:"api_scheme,omitempty"`
	OTLPHost     string `yaml:"otlp_host,omitempty"`
	OTLPScheme   string `yaml:"otlp_scheme,omitempty"`
	FlightHost   string `yaml:"flight_host,omitempty"`
	FlightPort   string `yaml:"flight_port,omitempty"`
	FlightScheme string `yaml:"flight_scheme,omitempty"`
}

// TransportSection carries performance settings consumed by the SDK client.
type TransportSection struct {
	StreamMaxWorkers     int `yaml:"stream_max_workers"`
	StreamMaxQueueBound  int `yaml:"stream_max_queue_bound"`
	PyarrowMaxChunksize  int `yaml:"pyarrow_max_chunksize"`
	MaxHTTPPayloadSizeMB int `yaml:"max_http_payload_size_mb"`
}

// SecuritySection carries TLS verification settings.
type SecuritySection struct {
	RequestVerify bool `yaml:"request_verify"`
}

// StorageSection carries local storage and caching settings.
type StorageSection struct {
	Directory    string `yaml:"directory"`
	CacheEnabled bool   `yaml:"cache_enabled"`
}

// ExpandedDirectory returns the storage directory with a leading ~ resolved
// against the user's home directory.
func (s StorageSection) ExpandedDirectory() (string, error) {
	dir := s.Directory
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := osUserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir[1:], "/"))
	}
	return dir, nil
}

// CacheDir returns the SDK cache directory, a "cache" subdirectory of the
// storage directory.
func (s StorageSection) CacheDir() (string, error) {
	dir, err := s.ExpandedDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

// OutputSection carries the default CLI output format.
type OutputSection struct {
	Format string `yaml:"format"`
}

// Default transport and storage values, matching the SDK defaults.
const (
	DefaultStreamMaxWorkers     = 8
	DefaultStreamMaxQueueBound  = 5000
	DefaultPyarrowMaxChunksize  = 10000
	DefaultMaxHTTPPayloadSizeMB = 8

	DefaultStorageDirectory = "~/.arize"
	DefaultOutputFormat     = "table"
)

// DefaultConfig returns a Config carrying every default value. Loading
// overlays the decoded document on top of this, so an absent section keeps
// its defaults the same way an absent field does.
func DefaultConfig(profileName string) Config {
	return Config{
		Profile: ProfileSection{Name: profileName},
		Transport: TransportSection{
			StreamMaxWorkers:     DefaultStreamMaxWorkers,
			StreamMaxQueueBound:  DefaultStreamMaxQueueBound,
			PyarrowMaxChunksize:  DefaultPyarrowMaxChunksize,
			MaxHTTPPayloadSizeMB: DefaultMaxHTTPPayloadSizeMB,
		},
		Security: SecuritySection{RequestVerify: true},
		Storage: StorageSection{
			Directory:    DefaultStorageDirectory,
			CacheEnabled: true,
		},
		Output: OutputSection{Format: DefaultOutputFormat},
	}
}
