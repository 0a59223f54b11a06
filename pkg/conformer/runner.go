package conformer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Factory constructs a fresh instance of the type under test for one case.
// It receives the case so it can probe for construction parameters with
// Capability.
type Factory[T any] func(tc TestCase[T]) (T, error)

// Observer is notified after each case completes, in suite order.
type Observer func(index int, result *Result)

type runConfig struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures Run.
type Option func(*runConfig)

// WithLogger sets the logger used by Run. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *runConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers a callback invoked after each case.
func WithObserver(obs Observer) Option {
	return func(c *runConfig) {
		c.observer = obs
	}
}

// Run executes every case of suite in declared order and returns the
// aggregated ResultSet.
//
// For each case:
//  1. factory is called once with the case to build a new instance
//  2. the case runs against that instance
//  3. its Result is appended in order
//
// Instances are never reused across cases. A failing case does not stop the
// run. Run returns an error only for usage problems: an empty suite, a
// factory error (wrapped in *FactoryError), or ctx being cancelled between
// cases. There is no per-case timeout; a case that never returns blocks Run.
func Run[T any](ctx context.Context, factory Factory[T], suite *Suite[T], opts ...Option) (*ResultSet, error) {
	cfg := runConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if suite == nil || len(suite.cases) == 0 {
		return nil, ErrEmptySuite
	}
	if factory == nil {
		return nil, fmt.Errorf("conformer: nil factory")
	}

	cfg.logger.Info("running suite",
		"suite", suite.title,
		"cases", len(suite.cases),
	)

	results := make([]*Result, 0, len(suite.cases))
	for i, tc := range suite.cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("conformer: run interrupted before case %d: %w", i, err)
		}

		title := caseTitle(tc)

		instance, err := factory(tc)
		if err != nil {
			return nil, &FactoryError{Index: i, Title: title, Err: err}
		}

		result := tc.Run(instance)
		if result == nil {
			// A case must always report; treat silence as failure.
			cfg.logger.Warn("test case returned no result",
				"suite", suite.title,
				"case", i,
				"title", title,
			)
			if title == "" {
				title = fmt.Sprintf("case %d", i+1)
			}
			result = NewResult(title, "test case returned no result", false)
		}
		results = append(results, result)

		cfg.logger.Debug("test case completed",
			"suite", suite.title,
			"case", i,
			"title", result.Title(),
			"passed", result.Passed(),
		)

		if cfg.observer != nil {
			cfg.observer(i, result)
		}
	}

	rs, err := NewResultSet(suite.title, suite.description, results)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("suite completed",
		"suite", suite.title,
		"passed", rs.Passed(),
		"failed", rs.Failed(),
	)

	return rs, nil
}
