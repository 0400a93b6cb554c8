package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rogersnm/taskcli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change task-cli settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config: %s\n", config.Path(dataDir))
		fmt.Fprintf(out, "Store: %s\n", resolveStoreFile())
		fmt.Fprintf(out, "Lock timeout: %s\n", cfg.LockTimeout)
		fmt.Fprintf(out, "Lock retry: %s\n", cfg.LockRetry)
		fmt.Fprintf(out, "Environment prefix: %s_\n", config.EnvPrefix)
		return nil
	},
}

var configSetFileCmd = &cobra.Command{
	Use:   "set-file <path>",
	Short: "Set the default task file",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}
		cfg.StoreFile = path
		if err := config.Save(dataDir, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default task file set to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetFileCmd)
	rootCmd.AddCommand(configCmd)
}
