package cmd

import (
	"errors"
	"testing"

	"github.com/Arize-ai/arize-ax-cli/internal/config"
	"github.com/Arize-ai/arize-ax-cli/internal/profile"
)

// seedProfile saves a minimal valid profile through the manager.
func seedProfile(t *testing.T, manager *config.Manager, name string) {
	t.Helper()
	cfg := config.DefaultConfig(name)
	cfg.Auth.APIKey = "ak-" + name
	if err := manager.Save(cfg, name); err != nil {
		t.Fatalf("seeding profile %q: %v", name, err)
	}
}

func TestRunConfigInitActivatesExistingDefault(t *testing.T) {
	store := profile.NewStore(t.TempDir())
	manager := config.NewManager(store)

	seedProfile(t, manager, "default")
	seedProfile(t, manager, "prod")
	if err := manager.SetActiveProfile("prod"); err != nil {
		t.Fatalf("setting active profile: %v", err)
	}

	err := runConfigInit(manager, configInitOptions{
		profile: "default",
		apiKey:  "ak-new",
		region:  "EU",
		force:   true,
	})
	if err != nil {
		t.Fatalf("runConfigInit failed: %v", err)
	}

	active, err := manager.ActiveProfile()
	if err != nil {
		t.Fatalf("reading active profile: %v", err)
	}
	if active != "default" {
		t.Errorf("active profile = %q, want default", active)
	}
}

func TestConfigUseCommand(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", t.TempDir())
	manager, err := newManager()
	if err != nil {
		t.Fatalf("newManager: %v", err)
	}
	seedProfile(t, manager, "prod")
	seedProfile(t, manager, "staging")
	if err := manager.SetActiveProfile("prod"); err != nil {
		t.Fatalf("setting active profile: %v", err)
	}

	cmd := newConfigCmd()
	cmd.SetArgs([]string{"use", "staging"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config use failed: %v", err)
	}

	active, err := manager.ActiveProfile()
	if err != nil {
		t.Fatalf("reading active profile: %v", err)
	}
	if active != "staging" {
		t.Errorf("active profile = %q, want staging", active)
	}
}

func TestConfigUseMissingProfile(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", t.TempDir())

	cmd := newConfigCmd()
	cmd.SetArgs([]string{"use", "ghost"})
	err := cmd.Execute()

	var notFound *profile.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestConfigDeleteCommandForce(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", t.TempDir())
	manager, err := newManager()
	if err != nil {
		t.Fatalf("newManager: %v", err)
	}
	seedProfile(t, manager, "prod")
	if err := manager.SetActiveProfile("prod"); err != nil {
		t.Fatalf("setting active profile: %v", err)
	}

	cmd := newConfigCmd()
	cmd.SetArgs([]string{"delete", "prod", "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config delete failed: %v", err)
	}

	if manager.Exists("prod") {
		t.Error("profile should have been deleted")
	}
	active, err := manager.ActiveProfile()
	if err != nil {
		t.Fatalf("reading active profile: %v", err)
	}
	if active != "" {
		t.Errorf("active profile = %q, want cleared pointer", active)
	}
}

func TestConfigDeleteCommandWithoutConfirmation(t *testing.T) {
	// stdin is not a terminal here, so the confirmation prompt falls back
	// to its default answer of no.
	t.Setenv("AX_CONFIG_DIR", t.TempDir())
	manager, err := newManager()
	if err != nil {
		t.Fatalf("newManager: %v", err)
	}
	seedProfile(t, manager, "prod")

	cmd := newConfigCmd()
	cmd.SetArgs([]string{"delete", "prod"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config delete failed: %v", err)
	}

	if !manager.Exists("prod") {
		t.Error("profile should survive a declined confirmation")
	}
}

func TestConfigShowCommand(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", t.TempDir())
	manager, err := newManager()
	if err != nil {
		t.Fatalf("newManager: %v", err)
	}
	cfg := config.DefaultConfig("prod")
	cfg.Auth.APIKey = "ak-secret-1234"
	cfg.Routing.Region = "US"
	if err := manager.Save(cfg, "prod"); err != nil {
		t.Fatalf("saving profile: %v", err)
	}

	cmd := newConfigCmd()
	cmd.SetArgs([]string{"show", "-p", "prod"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	cmd = newConfigCmd()
	cmd.SetArgs([]string{"show", "-p", "prod", "--expand", "--all"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show --expand --all failed: %v", err)
	}
}

func TestConfigShowMissingProfile(t *testing.T) {
	t.Setenv("AX_CONFIG_DIR", t.TempDir())

	cmd := newConfigCmd()
	cmd.SetArgs([]string{"show", "-p", "ghost"})
	err := cmd.Execute()

	var notFound *profile.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
