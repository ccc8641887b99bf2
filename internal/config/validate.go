package config

import (
	"fmt"
	"regexp"
	"strings"
)

// profileNamePattern keeps profile names usable as filename stems.
var profileNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidFormats are the supported output format tokens.
var ValidFormats = []string{"table", "json", "csv", "parquet"}

// Validate checks cfg against every well-formedness rule and returns all
// violations at once so the caller can display every problem, not just the
// first. A nil result means the Config is well-formed.
func Validate(cfg Config) []ValidationError {
	var violations []ValidationError

	if cfg.Profile.Name == "" {
		violations = append(violations, ValidationError{
			Field:   "profile.name",
			Message: "profile name cannot be empty",
		})
	} else if !profileNamePattern.MatchString(cfg.Profile.Name) {
		violations = append(violations, ValidationError{
			Field:   "profile.name",
			Message: fmt.Sprintf("%q is not filesystem-safe; use letters, digits, '-' and '_'", cfg.Profile.Name),
		})
	}

	if strings.TrimSpace(cfg.Auth.APIKey) == "" {
		violations = append(violations, ValidationError{
			Field:   "auth.api_key",
			Message: "api_key cannot be empty",
		})
	}

	// Exclusivity and completeness only; endpoint derivation happens in
	// Resolve and needs no network either way.
	if _, err := DetectStrategy(cfg.Routing); err != nil {
		violations = append(violations, ValidationError{
			Field:   "routing",
			Message: err.Error(),
		})
	} else if region := cfg.Routing.Region; region != "" && !isEnvRef(region) {
		if _, ok := regionEndpoints[region]; !ok {
			violations = append(violations, ValidationError{
				Field:   "routing.region",
				Message: (&UnknownRegionError{Region: region}).Error(),
			})
		}
	}

	for _, field := range []struct {
		name  string
		value int
	}{
		{"transport.stream_max_workers", cfg.Transport.StreamMaxWorkers},
		{"transport.stream_max_queue_bound", cfg.Transport.StreamMaxQueueBound},
		{"transport.pyarrow_max_chunksize", cfg.Transport.PyarrowMaxChunksize},
		{"transport.max_http_payload_size_mb", cfg.Transport.MaxHTTPPayloadSizeMB},
	} {
		if field.value <= 0 {
			violations = append(violations, ValidationError{
				Field:   field.name,
				Message: fmt.Sprintf("must be a positive integer, got %d", field.value),
			})
		}
	}

	if !isValidFormat(cfg.Output.Format) {
		violations = append(violations, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("%q is not a supported format; use one of %s", cfg.Output.Format, strings.Join(ValidFormats, ", ")),
		})
	}

	return violations
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if format == f {
			return true
		}
	}
	return false
}

// isEnvRef reports whether a value is an unexpanded environment variable
// reference. Validation lets such values through; they are checked again
// after expansion.
func isEnvRef(value string) bool {
	return refPattern.MatchString(value)
}
