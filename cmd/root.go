package cmd

import (
	"math/rand/v2"
	"time"

	"github.com/arcanaland/frenchdeck/internal/config"
	"github.com/arcanaland/frenchdeck/internal/logs"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// cfg holds the configuration loaded before any subcommand runs
var cfg = config.Default()

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "frenchdeck",
	Short: "A French card deck and a 2D vector on the command line",
	Long: `Frenchdeck builds a standard 52-card French deck and lets you index, slice,
search, shuffle-pick and sort it. It also does arithmetic on 2D vectors.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logs.SetOutput(cmd.ErrOrStderr())

		loaded, err := config.LoadConfig()
		if err != nil {
			logs.Warn("using default config: %v", err)
			loaded = config.Default()
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = "debug"
		}
		logs.Init(level)

		if !cfg.Color {
			colorize.NoColor = true
		}
		logs.Debug("config loaded from %s", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newRand returns the random source for card selection. A zero seed uses the clock.
func newRand() *rand.Rand {
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logs.Debug("random seed %d", seed)
	return rand.New(rand.NewPCG(seed, seed))
}
