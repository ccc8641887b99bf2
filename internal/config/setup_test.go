package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEnvVars(t *testing.T) {
	t.Setenv("ARIZE_API_KEY", "ak-1")
	t.Setenv("ARIZE_REGION", "US")

	detected := DetectEnvVars()
	assert.Equal(t, "ARIZE_API_KEY", detected["api_key"])
	assert.Equal(t, "ARIZE_REGION", detected["region"])
	assert.NotContains(t, detected, "base_domain")
}

func TestBuildConfigFromAnswers(t *testing.T) {
	cfg := BuildConfigFromAnswers(Answers{
		Profile:      "prod",
		APIKey:       "  ak-1  ",
		Region:       "EU",
		OutputFormat: "json",
	})

	assert.Equal(t, "prod", cfg.Profile.Name)
	assert.Equal(t, "ak-1", cfg.Auth.APIKey)
	assert.Equal(t, "EU", cfg.Routing.Region)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Empty(t, Validate(cfg))
}

func TestBuildConfigFromAnswersDefaults(t *testing.T) {
	cfg := BuildConfigFromAnswers(Answers{Profile: "min", APIKey: "ak-1"})

	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, DefaultStreamMaxWorkers, cfg.Transport.StreamMaxWorkers)
	assert.Empty(t, cfg.Routing.Region)
	assert.Empty(t, Validate(cfg))
}

func TestConfigFromEnvRefsUsesReferences(t *testing.T) {
	t.Setenv("ARIZE_API_KEY", "ak-live")
	t.Setenv("ARIZE_REGION", "US")

	cfg := ConfigFromEnvRefs("prod", DetectEnvVars())

	// References, not frozen values.
	assert.Equal(t, "${ARIZE_API_KEY}", cfg.Auth.APIKey)
	assert.Equal(t, "${ARIZE_REGION}", cfg.Routing.Region)
	assert.Empty(t, Validate(cfg))
}

func TestConfigFromEnvRefsParsesNonStringFields(t *testing.T) {
	t.Setenv("ARIZE_API_KEY", "ak-live")
	t.Setenv("ARIZE_STREAM_MAX_WORKERS", "32")
	t.Setenv("ARIZE_REQUEST_VERIFY", "false")

	cfg := ConfigFromEnvRefs("prod", DetectEnvVars())

	assert.Equal(t, 32, cfg.Transport.StreamMaxWorkers)
	assert.False(t, cfg.Security.RequestVerify)
}

func TestConfigFromEnvRefsKeepsDefaultOnBadInt(t *testing.T) {
	t.Setenv("ARIZE_API_KEY", "ak-live")
	t.Setenv("ARIZE_STREAM_MAX_WORKERS", "lots")

	cfg := ConfigFromEnvRefs("prod", DetectEnvVars())
	assert.Equal(t, DefaultStreamMaxWorkers, cfg.Transport.StreamMaxWorkers)
}

func TestConfigFromEnvRefsRoundTripsThroughManager(t *testing.T) {
	t.Setenv("ARIZE_API_KEY", "ak-live")
	t.Setenv("ARIZE_REGION", "EU")

	m := newTestManager(t)
	cfg := ConfigFromEnvRefs("prod", DetectEnvVars())
	require.NoError(t, m.Save(cfg, "prod"))

	loaded, err := m.Load("prod", true)
	require.NoError(t, err)
	assert.Equal(t, "ak-live", loaded.Auth.APIKey)
	assert.Equal(t, "EU", loaded.Routing.Region)
}
