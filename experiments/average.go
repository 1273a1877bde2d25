package experiments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"hog/dice"
	"hog/engine"
	"hog/experiments/metrics"
	"hog/game"
)

var (
	ErrInvalidSamples    = errors.New("invalid number of samples")
	ErrInvalidGoroutines = errors.New("invalid number of goroutines")
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Trial draws one sample of a stochastic quantity using the given dice.
type Trial[T Number] func(d dice.Dice) (T, error)

type Option func(e *Evaluator)

// Evaluator estimates expected values by averaging independent trials. Every
// trial rolls its own dice stream from the factory, and no two trials run by
// the same evaluator share a stream.
type Evaluator struct {
	samples      int
	goroutines   int
	goal         int
	dice         dice.Factory
	newCollector func() metrics.Collector
	next         atomic.Uint64 // First stream of the next estimate

	mu      sync.Mutex
	metrics []metrics.EvaluationMetric
}

func WithGoroutines(goroutines int) Option {
	return func(e *Evaluator) {
		e.goroutines = goroutines
	}
}

// WithDice sets where trials get their dice. Factories built with
// dice.Shared must be used with a single goroutine.
func WithDice(factory dice.Factory) Option {
	return func(e *Evaluator) {
		if factory != nil {
			e.dice = factory
		}
	}
}

func WithGoal(goal int) Option {
	return func(e *Evaluator) {
		if goal > 0 {
			e.goal = goal
		}
	}
}

func WithMetrics() Option {
	return func(e *Evaluator) {
		e.newCollector = metrics.NewCollector
	}
}

// NewEvaluator returns an evaluator averaging over the given number of
// samples, one goroutine and fair six-sided dice by default.
func NewEvaluator(samples int, options ...Option) (*Evaluator, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: need at least one sample, got %d", ErrInvalidSamples, samples)
	}
	e := &Evaluator{ // Default values
		samples:      samples,
		goroutines:   1,
		goal:         game.GoalScore,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(e)
	}
	if e.goroutines <= 0 {
		return nil, fmt.Errorf("%w: need at least one, got %d", ErrInvalidGoroutines, e.goroutines)
	}
	if e.dice == nil {
		seed, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		e.dice = dice.NewFairFactory(6, seed)
	}
	return e, nil
}

func (e *Evaluator) Samples() int {
	return e.samples
}

// Metrics returns the metrics of every estimate made so far when metrics are
// enabled.
func (e *Evaluator) Metrics() []metrics.EvaluationMetric {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]metrics.EvaluationMetric(nil), e.metrics...)
}

func (e *Evaluator) record(metric metrics.EvaluationMetric) {
	if metric.Name == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.metrics = append(e.metrics, metric)
}

// Average runs trial once per sample and returns the mean of the results.
// Results are summed in trial order, so the estimate does not depend on how
// trials were scheduled across goroutines.
func Average[T Number](ctx context.Context, e *Evaluator, name string, trial Trial[T]) (float64, error) {
	n := e.samples
	first := e.next.Add(uint64(n)) - uint64(n)
	results := make([]float64, n)

	collector := e.newCollector()
	collector.Start(name, e.goroutines, n)

	task := make(chan int, n)
	for i := 0; i < n; i++ {
		task <- i
	}
	close(task)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < e.goroutines; w++ {
		g.Go(func() error {
			for i := range task {
				if err := ctx.Err(); err != nil {
					return err
				}
				value, err := trial(e.dice(first + uint64(i)))
				if err != nil {
					return fmt.Errorf("%s trial %d: %w", name, i, err)
				}
				results[i] = float64(value)
				collector.AddTrial()
			}
			return nil
		})
	}
	err := g.Wait()
	e.record(collector.Complete())
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, result := range results {
		sum += result
	}
	return sum / float64(n), nil
}

// MakeAveraged returns a function that averages trial over the given number
// of samples each time it is called.
func MakeAveraged[T Number](trial Trial[T], samples int, options ...Option) (func(ctx context.Context) (float64, error), error) {
	e, err := NewEvaluator(samples, options...)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) (float64, error) {
		return Average(ctx, e, "averaged", trial)
	}, nil
}

// RollDice returns a trial scoring numRolls dice.
func RollDice(numRolls int) Trial[int] {
	return func(d dice.Dice) (int, error) {
		return game.RollDice(numRolls, d)
	}
}

// Winner returns a trial playing a silent game and returning the index of
// the winning player.
func Winner(strategy0, strategy1 game.Strategy, goal int) Trial[int] {
	return func(d dice.Dice) (int, error) {
		result, err := engine.Play(strategy0, strategy1, d, goal)
		if err != nil {
			return 0, err
		}
		return int(result.Winner()), nil
	}
}

// MaxScoringNumRolls returns the number of dice, from 1 to 10, with the
// highest average turn score, along with the average of every count. Ties go
// to the fewest dice.
func (e *Evaluator) MaxScoringNumRolls(ctx context.Context) (int, []float64, error) {
	averages := make([]float64, 0, game.MaxRolls)
	best, bestAverage := 0, 0.0
	for numRolls := 1; numRolls <= game.MaxRolls; numRolls++ {
		average, err := Average(ctx, e, fmt.Sprintf("roll_dice(%d)", numRolls), RollDice(numRolls))
		if err != nil {
			return 0, nil, err
		}
		averages = append(averages, average)
		if best == 0 || average > bestAverage {
			best, bestAverage = numRolls, average
		}
	}
	return best, averages, nil
}

type WinRate struct {
	AsPlayerZero float64
	AsPlayerOne  float64
	Overall      float64 // Mean of both positions
}

// WinRate estimates how often strategy beats baseline, averaged over playing
// first and playing second.
func (e *Evaluator) WinRate(ctx context.Context, strategy, baseline game.Strategy) (WinRate, error) {
	first, err := Average(ctx, e, "winner(strategy, baseline)", Winner(strategy, baseline, e.goal))
	if err != nil {
		return WinRate{}, err
	}
	second, err := Average(ctx, e, "winner(baseline, strategy)", Winner(baseline, strategy, e.goal))
	if err != nil {
		return WinRate{}, err
	}
	rate := WinRate{
		AsPlayerZero: 1 - first,
		AsPlayerOne:  second,
	}
	rate.Overall = (rate.AsPlayerZero + rate.AsPlayerOne) / 2
	return rate, nil
}
