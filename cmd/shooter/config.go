package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or install the configuration file",
	Long: `Configuration is looked up in this order:

  1. --config <path>
  2. ~/.shooter/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. built-in defaults`,
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultShooterYAML())
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the user configuration path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.UserConfigPath()
		if path == "" {
			return errors.New("cannot determine home directory")
		}
		state := "not present, using defaults"
		if _, err := os.Stat(path); err == nil {
			state = "present"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", path, state)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the user directory",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.UserConfigPath()
	if path == "" {
		return errors.New("cannot determine home directory")
	}
	if err := writeDefaultConfig(path, flagForce); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// writeDefaultConfig installs the embedded defaults at path.
func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	return os.WriteFile(path, config.DefaultShooterYAML(), 0o644)
}
