package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Arize-ai/arize-ax-cli/internal/config"
	"github.com/Arize-ai/arize-ax-cli/internal/console"
	"github.com/Arize-ai/arize-ax-cli/internal/output"
	"github.com/Arize-ai/arize-ax-cli/pkg/logging"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ax configuration profiles",
		Long: `Manage ax configuration profiles.

A profile bundles authentication, endpoint routing, transport tuning, and
output preferences. Profiles live under ~/.arize (override with
AX_CONFIG_DIR); the active profile is used whenever --profile is omitted.`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigListCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigUseCmd())
	configCmd.AddCommand(newConfigDeleteCmd())
	configCmd.AddCommand(newConfigPathCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		profileName  string
		apiKey       string
		region       string
		outputFormat string
		fromEnv      bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration profile",
		Long: `Create a new configuration profile.

Detects ARIZE_* environment variables and offers to build the profile from
${VAR} references to them, so values are read live on every load. Missing
values are prompted for when running interactively, or taken from flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			return runConfigInit(manager, configInitOptions{
				profile: profileName,
				apiKey:  apiKey,
				region:  region,
				format:  outputFormat,
				fromEnv: fromEnv,
				force:   force,
			})
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "default", "Profile name to create")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Arize API key (or an ${ENV_VAR} reference)")
	cmd.Flags().StringVar(&region, "region", "", "Region-based routing (US or EU)")
	cmd.Flags().StringVar(&outputFormat, "format", "", "Default output format (table, json, csv, parquet)")
	cmd.Flags().BoolVar(&fromEnv, "from-env", false, "Build the profile from detected ARIZE_* environment variables without prompting")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing profile")
	return cmd
}

type configInitOptions struct {
	profile string
	apiKey  string
	region  string
	format  string
	fromEnv bool
	force   bool
}

func runConfigInit(manager *config.Manager, opts configInitOptions) error {
	if manager.Exists(opts.profile) && !opts.force {
		ok, err := confirm(fmt.Sprintf("Profile %q already exists. Overwrite?", opts.profile), false)
		if err != nil {
			return err
		}
		if !ok {
			console.Info("Configuration unchanged")
			return nil
		}
	}

	detected := config.DetectEnvVars()
	var err error
	useEnv := opts.fromEnv
	if !useEnv && len(detected) > 0 && opts.apiKey == "" {
		console.Emphasis("Detected environment variables:")
		for field, envVar := range detected {
			value := os.Getenv(envVar)
			if field == "api_key" {
				value = console.Mask(value)
			}
			console.Text("  %s = %s", envVar, value)
		}
		useEnv, err = confirm("Create the profile from these variables?", true)
		if err != nil {
			return err
		}
	}

	var cfg config.Config
	if useEnv {
		if len(detected) == 0 {
			return fmt.Errorf("no ARIZE_* environment variables found to build the profile from")
		}
		cfg = config.ConfigFromEnvRefs(opts.profile, detected)
	} else {
		answers := config.Answers{
			Profile:      opts.profile,
			APIKey:       opts.apiKey,
			Region:       opts.region,
			OutputFormat: opts.format,
		}
		if answers.APIKey == "" {
			answers.APIKey, err = prompt("Arize API key", "")
			if err != nil {
				return err
			}
		}
		if answers.Region == "" {
			answers.Region, err = prompt("Region (US or EU, empty for default endpoints)", "")
			if err != nil {
				return err
			}
		}
		if answers.OutputFormat == "" {
			answers.OutputFormat, err = prompt("Default output format", config.DefaultOutputFormat)
			if err != nil {
				return err
			}
		}
		cfg = config.BuildConfigFromAnswers(answers)
	}

	if err := manager.Save(cfg, opts.profile); err != nil {
		return err
	}
	logging.Debug("config", "saved profile %q to %s", opts.profile, manager.Store().ProfilePath(opts.profile))

	// The just-created profile always becomes active, so the user ends up
	// on what they just made.
	if err := manager.SetActiveProfile(opts.profile); err != nil {
		return err
	}

	console.Success("Configuration saved to profile %q", opts.profile)
	console.Dimmed("You're ready to go! Try: ax config show")
	return nil
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			profiles, err := manager.ListProfiles()
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				console.Info("No profiles found. Run 'ax config init' to create one.")
				return nil
			}
			active, err := manager.ActiveProfile()
			if err != nil {
				return err
			}

			tbl := output.Table{Columns: []string{"profile", "status"}}
			for _, name := range profiles {
				status := ""
				if name == active {
					status = "active"
				}
				tbl.Rows = append(tbl.Rows, []any{name, status})
			}
			output.RenderTable(os.Stdout, tbl)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	var (
		profileName string
		expandVars  bool
		allSections bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a profile's configuration",
		Long: `Show configuration for a profile.

By default env var references like ${ARIZE_API_KEY} are printed verbatim;
use --expand to substitute live values. Literal API keys are masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			cfg, err := manager.Load(profileName, expandVars)
			if err != nil {
				return err
			}
			active, err := manager.ActiveProfile()
			if err != nil {
				return err
			}
			printConfig(cfg, cfg.Profile.Name == active, allSections)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Profile to show (uses the active profile if omitted)")
	cmd.Flags().BoolVar(&expandVars, "expand", false, "Expand environment variable references")
	cmd.Flags().BoolVar(&allSections, "all", false, "Show all sections including defaults")
	return cmd
}

func printConfig(cfg config.Config, isActive, allSections bool) {
	suffix := ""
	if isActive {
		suffix = " (active)"
	}
	console.Emphasis("Profile: %s%s", cfg.Profile.Name, suffix)

	console.Emphasis("Authentication:")
	console.Text("  API Key: %s", console.Mask(cfg.Auth.APIKey))

	defaults := config.DefaultConfig(cfg.Profile.Name)

	if allSections || cfg.Routing != defaults.Routing {
		console.Emphasis("Routing:")
		if resolved, err := cfg.ResolveRouting(); err == nil {
			console.Text("  Strategy: %s", resolved.Strategy)
			console.Text("  API:      %s", resolved.API)
			console.Text("  OTLP:     %s", resolved.OTLP)
			console.Text("  Flight:   %s", resolved.Flight)
		} else {
			console.Text("  Strategy: deferred (%v)", err)
		}
	}

	if allSections || cfg.Transport != defaults.Transport {
		console.Emphasis("Transport:")
		console.Text("  Stream Max Workers: %d", cfg.Transport.StreamMaxWorkers)
		console.Text("  Stream Max Queue Bound: %d", cfg.Transport.StreamMaxQueueBound)
		console.Text("  PyArrow Max Chunksize: %d", cfg.Transport.PyarrowMaxChunksize)
		console.Text("  Max HTTP Payload Size: %d MB", cfg.Transport.MaxHTTPPayloadSizeMB)
	}

	if allSections || cfg.Security != defaults.Security {
		console.Emphasis("Security:")
		console.Text("  Request Verify: %t", cfg.Security.RequestVerify)
	}

	if allSections || cfg.Storage != defaults.Storage {
		console.Emphasis("Storage:")
		console.Text("  Directory: %s", cfg.Storage.Directory)
		console.Text("  Cache: %t", cfg.Storage.CacheEnabled)
	}

	console.Emphasis("Output:")
	console.Text("  Format: %s", cfg.Output.Format)
}

func newConfigUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <profile>",
		Short: "Switch to a different profile",
		Long: `Switch to a different configuration profile.

Makes the specified profile active for all future commands. The switch is a
single atomic file rename, so commands already running in other terminals
see either the old or the new profile, never a torn state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			if err := manager.SetActiveProfile(args[0]); err != nil {
				return err
			}
			console.Success("Switched to profile %q", args[0])
			return nil
		},
	}
}

func newConfigDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <profile>",
		Short: "Delete a profile",
		Long: `Delete a configuration profile.

Deleting the active profile requires --force, which also clears the active
profile pointer in the same operation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			if !force {
				ok, err := confirm(fmt.Sprintf("Delete profile %q?", args[0]), false)
				if err != nil {
					return err
				}
				if !ok {
					console.Info("Nothing deleted")
					return nil
				}
			}
			if err := manager.DeleteProfile(args[0], force); err != nil {
				return err
			}
			console.Success("Deleted profile %q", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete without confirmation, even if the profile is active")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration directory and active profile file",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			store := manager.Store()
			console.Text("%s", store.Root())
			active, err := manager.ActiveProfile()
			if err != nil {
				return err
			}
			if active != "" {
				console.Text("%s", store.ProfilePath(active))
			}
			return nil
		},
	}
}

// prompt reads one line from stdin when attached to a terminal; in
// non-interactive runs the default is used as-is.
func prompt(label, defaultValue string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return defaultValue, nil
	}
	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", label, defaultValue)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

func confirm(question string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}
	answer, err := prompt(fmt.Sprintf("%s [%s]", question, hint), "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	case "":
		return defaultValue, nil
	default:
		return false, nil
	}
}
