package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sivchari/calc/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage calc configuration",
		Long:  "Commands for managing calc configuration files",
		// The parent's config loading would reject the file we are about to validate.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new calc configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			filename := config.DefaultFile

			if _, err := os.Stat(filename); err == nil && !force {
				return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", filename)
			}

			if err := config.DefaultYAML().SaveYAML(filename); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", filename)

			return nil
		},
	}
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")

	configValidateCmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := ""
			if len(args) > 0 {
				configFile = args[0]
			}

			if _, err := config.LoadYAML(configFile); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")

			return nil
		},
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	return configCmd
}
