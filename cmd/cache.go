package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arize-ai/arize-ax-cli/internal/config"
	"github.com/Arize-ai/arize-ax-cli/internal/console"
)

func newCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the Arize SDK cache",
	}
	cacheCmd.AddCommand(newCacheClearCmd())
	return cacheCmd
}

func newCacheClearCmd() *cobra.Command {
	var (
		profileName string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the Arize SDK cache directory",
		Long: `Clear the Arize SDK cache directory.

Removes all cached data under the profile's storage directory to free up
space or force a refresh. The cache directory is recreated empty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}
			return runCacheClear(manager, profileName, force)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Profile whose cache to clear (uses the active profile if omitted)")
	cmd.Flags().BoolVar(&force, "force", false, "Clear without confirmation")
	return cmd
}

func runCacheClear(manager *config.Manager, profileName string, force bool) error {
	if !force {
		ok, err := confirm("Clear the Arize SDK cache?", false)
		if err != nil {
			return err
		}
		if !ok {
			console.Info("Cache not cleared")
			return nil
		}
	}

	cfg, err := manager.Load(profileName, true)
	if err != nil {
		return err
	}
	cacheDir, err := cfg.Storage.CacheDir()
	if err != nil {
		return err
	}

	if info, err := os.Stat(cacheDir); err == nil && info.IsDir() {
		if err := os.RemoveAll(cacheDir); err != nil {
			return fmt.Errorf("clearing cache directory: %w", err)
		}
		if err := os.MkdirAll(cacheDir, 0o700); err != nil {
			return fmt.Errorf("recreating cache directory: %w", err)
		}
	}
	console.Success("Cache cleared successfully")
	return nil
}
