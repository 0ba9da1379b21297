package cmd

import (
	"fmt"
	"strconv"

	"github.com/arcanaland/frenchdeck/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the frenchdeck configuration",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with defaults if it is missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

var configSetSeedCmd = &cobra.Command{
	Use:   "set-seed [seed]",
	Short: "Set the random seed for card selection (0 uses the clock)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %v", args[0], err)
		}
		if err := config.SetSeed(seed); err != nil {
			return fmt.Errorf("error setting seed: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seed set to: %d\n", seed)
		return nil
	},
}

var configSetLogLevelCmd = &cobra.Command{
	Use:   "set-log-level [level]",
	Short: "Set the default log level (debug, info, warn, error)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetLogLevel(args[0]); err != nil {
			return fmt.Errorf("error setting log level: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Log level set to: %s\n", args[0])
		return nil
	},
}

var configSetColorCmd = &cobra.Command{
	Use:   "set-color [true|false]",
	Short: "Enable or disable colored output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q: %v", args[0], err)
		}
		if err := config.SetColor(enabled); err != nil {
			return fmt.Errorf("error setting color: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Color set to: %v\n", enabled)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetSeedCmd)
	configCmd.AddCommand(configSetLogLevelCmd)
	configCmd.AddCommand(configSetColorCmd)
}
