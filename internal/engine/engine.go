// Package engine runs a batch of input rows through classification and
// resolution. Rows are independent, so they are processed by a bounded pool
// of workers; each worker writes into its input index, which keeps the output
// order identical to the upload order.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"donation-engine/internal/classifier"
	"donation-engine/internal/model"
	"donation-engine/internal/resolver"
)

const defaultWorkers = 4

type Engine struct {
	resolver *resolver.Resolver
	workers  int
	logger   *zap.Logger
}

func New(res *resolver.Resolver, workers int, logger *zap.Logger) *Engine {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Engine{resolver: res, workers: workers, logger: logger}
}

// Process classifies and resolves every row. Every input row yields exactly
// one result, rejected rows included; nothing is suppressed or reordered.
func (e *Engine) Process(ctx context.Context, rows []model.InputRow) *model.ResultSet {
	start := time.Now()

	results := make([]model.ResolvedRow, len(rows))
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, row := range rows {
		wg.Add(1)
		go func(i int, row model.InputRow) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// A cancelled ctx makes the resolver's generation attempt
			// fail fast and degrade to the fallback solution; the row
			// still gets a result.
			results[i] = e.resolver.Resolve(ctx, classifier.Classify(row))
		}(i, row)
	}

	wg.Wait()

	e.logger.Info("batch processed",
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)))

	return &model.ResultSet{
		Total:   len(results),
		Results: results,
	}
}
