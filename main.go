// hog plays and evaluates strategies for the dice game Hog.
//
// Usage:
//
//	hog -r                          - Run the experiment battery
//	hog play [strategy0 strategy1]  - Play one commentated game
//	hog strategies                  - List strategy names
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hog/config"
	"hog/experiments"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	flagRunExperiments bool
	flagSamples        int
	flagGoroutines     int
	flagSeed           uint64
	flagGoal           int
	flagSides          int
	flagOut            string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hog",
	Short: "Play and evaluate strategies for the dice game Hog",
	Long: `Hog is a two-player dice game: players take turns rolling up to ten dice,
and the first to reach the goal wins.

Examples:
  hog -r --samples 5000
  hog play hog_pile "always_roll(6)"
  hog strategies`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Dice seed (0 = random)")
	rootCmd.PersistentFlags().IntVar(&flagGoal, "goal", 0, "Score needed to win")

	rootCmd.Flags().BoolVarP(&flagRunExperiments, "run-experiments", "r", false, "Run the experiment battery")
	rootCmd.Flags().IntVar(&flagSamples, "samples", 0, "Trials averaged per estimate")
	rootCmd.Flags().IntVar(&flagGoroutines, "goroutines", 0, "Goroutines running trials")
	rootCmd.Flags().IntVar(&flagSides, "sides", 0, "Sides of the fair dice")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Directory for report files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(strategiesCmd)
}

// loadConfig layers the flags the user set over the file and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("goal") {
		cfg.Goal = flagGoal
	}
	if flags.Changed("samples") {
		cfg.Samples = flagSamples
	}
	if flags.Changed("goroutines") {
		cfg.Goroutines = flagGoroutines
	}
	if flags.Changed("sides") {
		cfg.Sides = flagSides
	}
	if flags.Changed("out") {
		cfg.OutputDir = flagOut
	}
	return cfg, nil
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !flagRunExperiments {
		return cmd.Help()
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = experiments.Run(ctx, cfg, cmd.OutOrStdout())
	return err
}
