package config

import (
	"os"
	"strconv"
	"strings"
)

// envVarMapping pairs config fields with the standard ARIZE_* environment
// variables auto-detected during init. Detection reads the environment,
// never mutates it.
var envVarMapping = []struct {
	Field  string
	EnvVar string
}{
	{"api_key", "ARIZE_API_KEY"},
	{"region", "ARIZE_REGION"},
	{"single_host", "ARIZE_SINGLE_HOST"},
	{"single_port", "ARIZE_SINGLE_PORT"},
	{"base_domain", "ARIZE_BASE_DOMAIN"},
	{"api_host", "ARIZE_API_HOST"},
	{"api_scheme", "ARIZE_API_SCHEME"},
	{"otlp_host", "ARIZE_OTLP_HOST"},
	{"otlp_scheme", "ARIZE_OTLP_SCHEME"},
	{"flight_host", "ARIZE_FLIGHT_HOST"},
	{"flight_port", "ARIZE_FLIGHT_PORT"},
	{"flight_scheme", "ARIZE_FLIGHT_SCHEME"},
	{"stream_max_workers", "ARIZE_STREAM_MAX_WORKERS"},
	{"stream_max_queue_bound", "ARIZE_STREAM_MAX_QUEUE_BOUND"},
	{"pyarrow_max_chunksize", "ARIZE_MAX_CHUNKSIZE"},
	{"max_http_payload_size_mb", "ARIZE_MAX_HTTP_PAYLOAD_SIZE_MB"},
	{"request_verify", "ARIZE_REQUEST_VERIFY"},
}

// DetectEnvVars returns the subset of the standard ARIZE_* variables that
// are set in the process environment, keyed by config field name.
func DetectEnvVars() map[string]string {
	detected := make(map[string]string)
	for _, m := range envVarMapping {
		if _, ok := os.LookupEnv(m.EnvVar); ok {
			detected[m.Field] = m.EnvVar
		}
	}
	return detected
}

// Answers holds the values gathered by an interactive or scripted setup
// flow. BuildConfigFromAnswers is a pure builder so the prompt layer stays
// a thin external collaborator.
type Answers struct {
	Profile      string
	APIKey       string
	Region       string
	OutputFormat string
}

// BuildConfigFromAnswers constructs a well-formed Config from setup
// answers, filling every unanswered field with its default.
func BuildConfigFromAnswers(a Answers) Config {
	cfg := DefaultConfig(a.Profile)
	cfg.Auth.APIKey = strings.TrimSpace(a.APIKey)
	cfg.Routing.Region = strings.TrimSpace(a.Region)
	if format := strings.TrimSpace(a.OutputFormat); format != "" {
		cfg.Output.Format = format
	}
	return cfg
}

// ConfigFromEnvRefs builds a Config whose string fields hold ${VAR}
// references to the detected environment variables, so the values are read
// live on every load rather than frozen at init time. Integer and boolean
// fields cannot carry references; their detected values are parsed and
// stored literally, and values that do not parse keep the defaults.
func ConfigFromEnvRefs(profileName string, detected map[string]string) Config {
	cfg := DefaultConfig(profileName)

	ref := func(field string) string {
		if envVar, ok := detected[field]; ok {
			return "${" + envVar + "}"
		}
		return ""
	}

	cfg.Auth.APIKey = ref("api_key")
	cfg.Routing.Region = ref("region")
	cfg.Routing.SingleHost = ref("single_host")
	cfg.Routing.SinglePort = ref("single_port")
	cfg.Routing.BaseDomain = ref("base_domain")
	cfg.Routing.APIHost = ref("api_host")
	cfg.Routing.APIScheme = ref("api_scheme")
	cfg.Routing.OTLPHost = ref("otlp_host")
	cfg.Routing.OTLPScheme = ref("otlp_scheme")
	cfg.Routing.FlightHost = ref("flight_host")
	cfg.Routing.FlightPort = ref("flight_port")
	cfg.Routing.FlightScheme = ref("flight_scheme")

	if envVar, ok := detected["stream_max_workers"]; ok {
		setPositiveInt(&cfg.Transport.StreamMaxWorkers, os.Getenv(envVar))
	}
	if envVar, ok := detected["stream_max_queue_bound"]; ok {
		setPositiveInt(&cfg.Transport.StreamMaxQueueBound, os.Getenv(envVar))
	}
	if envVar, ok := detected["pyarrow_max_chunksize"]; ok {
		setPositiveInt(&cfg.Transport.PyarrowMaxChunksize, os.Getenv(envVar))
	}
	if envVar, ok := detected["max_http_payload_size_mb"]; ok {
		setPositiveInt(&cfg.Transport.MaxHTTPPayloadSizeMB, os.Getenv(envVar))
	}
	if envVar, ok := detected["request_verify"]; ok {
		cfg.Security.RequestVerify = parseBool(os.Getenv(envVar))
	}

	return cfg
}

func setPositiveInt(dst *int, value string) {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		*dst = n
	}
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
