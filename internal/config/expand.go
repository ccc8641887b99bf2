package config

import (
	"os"
	"regexp"
	"strings"
)

// refPattern matches ${VAR} and ${VAR:default} references.
var refPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// ExpandString substitutes every ${VAR} reference in value with the current
// process environment value of VAR. A ${VAR:default} reference falls back to
// the default when VAR is unset. An unset variable with no default fails
// with UnresolvedReferenceError naming the variable and the field path;
// partial expansion is never silently accepted.
//
// Expansion of an already-expanded value is a no-op as long as the expanded
// value itself contains no ${...} syntax. A literal API key that happens to
// contain such characters is a known, undefended edge case.
func ExpandString(value, field string) (string, error) {
	matches := refPattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return value, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(value[last:m[0]])

		name := value[m[2]:m[3]]
		if env, ok := os.LookupEnv(name); ok {
			b.WriteString(env)
		} else if m[4] >= 0 {
			b.WriteString(value[m[4]:m[5]])
		} else {
			return "", &UnresolvedReferenceError{Variable: name, Field: field}
		}
		last = m[1]
	}
	b.WriteString(value[last:])
	return b.String(), nil
}

// ExpandConfig rewrites every string-typed leaf of cfg in place, resolving
// ${VAR} references against the process environment. Non-string fields pass
// through unchanged. The first unresolved reference aborts the whole
// expansion.
func ExpandConfig(cfg *Config) error {
	for _, leaf := range stringLeaves(cfg) {
		expanded, err := ExpandString(*leaf.value, leaf.field)
		if err != nil {
			return err
		}
		*leaf.value = expanded
	}
	return nil
}

type stringLeaf struct {
	field string
	value *string
}

func stringLeaves(cfg *Config) []stringLeaf {
	return []stringLeaf{
		{"profile.name", &cfg.Profile.Name},
		{"auth.api_key", &cfg.Auth.APIKey},
		{"routing.region", &cfg.Routing.Region},
		{"routing.single_host", &cfg.Routing.SingleHost},
		{"routing.single_port", &cfg.Routing.SinglePort},
		{"routing.base_domain", &cfg.Routing.BaseDomain},
		{"routing.api_host", &cfg.Routing.APIHost},
		{"routing.api_scheme", &cfg.Routing.APIScheme},
		{"routing.otlp_host", &cfg.Routing.OTLPHost},
		{"routing.otlp_scheme", &cfg.Routing.OTLPScheme},
		{"routing.flight_host", &cfg.Routing.FlightHost},
		{"routing.flight_port", &cfg.Routing.FlightPort},
		{"routing.flight_scheme", &cfg.Routing.FlightScheme},
		{"storage.directory", &cfg.Storage.Directory},
		{"output.format", &cfg.Output.Format},
	}
}
