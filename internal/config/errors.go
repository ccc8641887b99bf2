package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoActiveProfile is returned when a load names no profile and the
// registry has no active profile to fall back to.
var ErrNoActiveProfile = errors.New("no profile specified and no active profile set; run 'ax config init' or 'ax config use <profile>'")

// UnresolvedReferenceError indicates a ${VAR} reference had no matching
// environment value (and no default) during expansion.
type UnresolvedReferenceError struct {
	Variable string
	Field    string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("environment variable %s referenced by %s is not set and has no default", e.Variable, e.Field)
}

// AmbiguousRoutingError indicates more than one routing strategy has
// populated fields. The resolver never picks one silently.
type AmbiguousRoutingError struct {
	Variants []string
}

func (e *AmbiguousRoutingError) Error() string {
	return fmt.Sprintf("routing strategies are mutually exclusive, but %s are all configured", strings.Join(e.Variants, ", "))
}

// IncompleteRoutingError indicates a routing strategy is missing some of
// its required fields.
type IncompleteRoutingError struct {
	Variant string
	Missing []string
}

func (e *IncompleteRoutingError) Error() string {
	return fmt.Sprintf("%s routing requires %s to be set", e.Variant, strings.Join(e.Missing, ", "))
}

// UnknownRegionError indicates a region value outside the built-in table.
type UnknownRegionError struct {
	Region string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown region %q: must be one of %s", e.Region, strings.Join(ValidRegions(), ", "))
}

// ValidationError describes a single Validate rule violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ConfigError aggregates every Validate violation for a profile so the
// caller can display all problems at once, not just the first.
type ConfigError struct {
	Profile    string
	Violations []ValidationError
}

func (e *ConfigError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("invalid configuration for profile %q:\n  - %s", e.Profile, strings.Join(msgs, "\n  - "))
}
