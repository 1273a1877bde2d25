package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hog/dice"
	"hog/engine"
	"hog/game"
	"hog/strategy"
)

var playCmd = &cobra.Command{
	Use:   "play [strategy0 strategy1]",
	Short: "Play one commentated game",
	Long: `Plays a single game between two named strategies, announcing the scores and
every lead change. Player 0 plays hog_pile and player 1 plays always_roll(6)
unless both strategies are given.`,
	Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("need both strategies, got %q", args[0])
		}
		return nil
	}),
	RunE: runPlay,
}

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List strategy names",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(strategy.Names(), "\n"))
	},
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	names := []string{"hog_pile", cfg.Baseline}
	if len(args) == 2 {
		names = args
	}
	var strategies [2]game.Strategy
	for i, name := range names {
		if strategies[i], err = strategy.Parse(name); err != nil {
			return err
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			return err
		}
	}

	e := engine.New(strategies[0], strategies[1],
		engine.WithDice(dice.NewFairFactory(cfg.Sides, seed)(0)),
		engine.WithGoal(cfg.Goal),
		engine.WithCommentary(game.Both(game.SayScores, game.AnnounceLeadChanges)),
		engine.WithOutput(cmd.OutOrStdout()),
	)
	result, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d-%d, player %d wins\n", result.Score0, result.Score1, result.Winner())
	return nil
}
