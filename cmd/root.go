package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arize-ai/arize-ax-cli/internal/config"
	"github.com/Arize-ai/arize-ax-cli/internal/console"
	"github.com/Arize-ai/arize-ax-cli/internal/output"
	"github.com/Arize-ai/arize-ax-cli/internal/profile"
	"github.com/Arize-ai/arize-ax-cli/pkg/logging"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ax",
	Short: "Command-line client for the Arize AX platform",
	Long: `ax is the command-line client for the Arize ML observability platform.

It manages named configuration profiles (credentials, endpoint routing,
transport tuning, output preferences) and talks to the Arize API on your
behalf. Start with 'ax config init'.`,
	// SilenceUsage prevents printing the usage block on errors we handle
	// ourselves (invalid profiles, routing conflicts, missing env vars).
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Errors from any command are
// formatted once here and mapped to a per-kind exit code.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ax version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		console.Error("%v", err)
		os.Exit(exitCode(err))
	}
}

// Exit codes, one per error kind, so scripts can branch on failures.
const (
	exitGeneral           = 1
	exitProfileNotFound   = 3
	exitNoActiveProfile   = 4
	exitUnresolvedRef     = 5
	exitRoutingConflict   = 6
	exitInvalidConfig     = 7
	exitActiveDeletion    = 8
	exitDanglingActive    = 9
	exitUnsupportedOutput = 10
)

func exitCode(err error) int {
	var (
		notFound    *profile.NotFoundError
		dangling    *profile.DanglingActiveProfileError
		activeDel   *profile.ActiveProfileDeletionError
		unresolved  *config.UnresolvedReferenceError
		ambiguous   *config.AmbiguousRoutingError
		incomplete  *config.IncompleteRoutingError
		badRegion   *config.UnknownRegionError
		invalidCfg  *config.ConfigError
		unsupported *output.UnsupportedOutputExtensionError
	)
	switch {
	case errors.As(err, &notFound):
		return exitProfileNotFound
	case errors.Is(err, config.ErrNoActiveProfile):
		return exitNoActiveProfile
	case errors.As(err, &unresolved):
		return exitUnresolvedRef
	case errors.As(err, &ambiguous), errors.As(err, &incomplete), errors.As(err, &badRegion):
		return exitRoutingConflict
	case errors.As(err, &invalidCfg):
		return exitInvalidConfig
	case errors.As(err, &activeDel):
		return exitActiveDeletion
	case errors.As(err, &dangling):
		return exitDanglingActive
	case errors.As(err, &unsupported):
		return exitUnsupportedOutput
	default:
		return exitGeneral
	}
}

// newManager wires a config.Manager against the default on-disk store.
// Tests construct their own stores instead of going through this.
func newManager() (*config.Manager, error) {
	root, err := profile.DefaultRoot()
	if err != nil {
		return nil, err
	}
	return config.NewManager(profile.NewStore(root)), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logs")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCacheCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
