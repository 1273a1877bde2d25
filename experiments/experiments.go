package experiments

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hog/config"
	"hog/dice"
	"hog/experiments/metrics"
	"hog/strategy"
)

type StrategyWinRate struct {
	Name string
	WinRate
}

// Report holds the outcome of one run of the experiment battery.
type Report struct {
	RunID              string
	Seed               uint64
	MaxScoringNumRolls int
	RollAverages       []float64 // Index i holds the average for i+1 dice
	WinRates           []StrategyWinRate
	Dir                string // Where report files were written, if anywhere
}

// Run finds the number of dice with the highest average turn score, then
// estimates the win rate of every configured strategy against the baseline.
// Results are printed to out as they become available.
func Run(ctx context.Context, cfg config.Config, out io.Writer) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	baseline, err := strategy.Parse(cfg.Baseline)
	if err != nil {
		return Report{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			return Report{}, err
		}
	}
	report := Report{RunID: uuid.NewString(), Seed: seed}

	e, err := NewEvaluator(cfg.Samples,
		WithGoroutines(cfg.Goroutines),
		WithGoal(cfg.Goal),
		WithDice(dice.NewFairFactory(cfg.Sides, seed)),
		WithMetrics(),
	)
	if err != nil {
		return report, err
	}

	log.Info().Msgf("Starting experiment run %s with %d samples on %d goroutines (seed %d)", report.RunID, cfg.Samples, cfg.Goroutines, seed)

	report.MaxScoringNumRolls, report.RollAverages, err = e.MaxScoringNumRolls(ctx)
	if err != nil {
		return report, err
	}
	fmt.Fprintf(out, "Max scoring num rolls for %s dice: %d\n", sidesName(cfg.Sides), report.MaxScoringNumRolls)

	for _, name := range cfg.Strategies {
		s, err := strategy.Parse(name)
		if err != nil {
			return report, err
		}
		rate, err := e.WinRate(ctx, s, baseline)
		if err != nil {
			return report, fmt.Errorf("%s: %w", name, err)
		}
		report.WinRates = append(report.WinRates, StrategyWinRate{Name: name, WinRate: rate})
		fmt.Fprintf(out, "%s win rate: %v\n", name, rate.Overall)
		log.Info().Msgf("Finished %s against %s", name, cfg.Baseline)
	}

	if cfg.OutputDir != "" {
		dir, err := writeReport(cfg, report, e.Metrics())
		if err != nil {
			return report, err
		}
		report.Dir = dir
		log.Info().Msgf("Wrote reports to %s", dir)
	}
	return report, nil
}

func writeReport(cfg config.Config, report Report, evaluations []metrics.EvaluationMetric) (string, error) {
	w, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return "", err
	}

	setup := struct {
		config.Config
		RunID string `json:"run_id"`
		Seed  uint64 `json:"seed"`
	}{cfg, report.RunID, report.Seed}
	if err := w.WriteSetup(setup); err != nil {
		return "", err
	}

	rollCounts := make([]metrics.RollCountRecord, len(report.RollAverages))
	for i, average := range report.RollAverages {
		rollCounts[i] = metrics.RollCountRecord{NumRolls: i + 1, AverageScore: average}
	}
	if err := w.WriteRollCounts(rollCounts); err != nil {
		return "", err
	}

	winRates := make([]metrics.WinRateRecord, len(report.WinRates))
	for i, rate := range report.WinRates {
		winRates[i] = metrics.WinRateRecord{
			Strategy:     rate.Name,
			Baseline:     cfg.Baseline,
			AsPlayerZero: rate.AsPlayerZero,
			AsPlayerOne:  rate.AsPlayerOne,
			WinRate:      rate.Overall,
		}
	}
	if err := w.WriteWinRates(winRates); err != nil {
		return "", err
	}

	if err := w.WriteEvaluations(evaluations); err != nil {
		return "", err
	}
	return w.Dir(), nil
}

func sidesName(sides int) string {
	switch sides {
	case 4:
		return "four-sided"
	case 6:
		return "six-sided"
	default:
		return fmt.Sprintf("%d-sided", sides)
	}
}
