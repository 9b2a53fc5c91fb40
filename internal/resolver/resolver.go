// Package resolver turns classified rows into resolved rows by attaching a
// solution string. Generation failures never escape: they degrade to the
// registered remediation text.
package resolver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"donation-engine/internal/model"
	"donation-engine/internal/narrative"
	"donation-engine/internal/registry"
)

const (
	rejectedSolution     = "Rejected: use_case not recognized."
	manualReviewSolution = "Manual review required."
	fallbackPrefix       = "Narrative generation unavailable. Suggested action: "
)

type Resolver struct {
	gen     narrative.Generator
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a resolver around the given generator. Each generation attempt
// runs under the given per-call timeout.
func New(gen narrative.Generator, timeout time.Duration, logger *zap.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Resolver{gen: gen, timeout: timeout, logger: logger}
}

// Resolve picks the solution for one classified row, in priority order:
// rejected rows get a fixed literal, CSV Upload Validation gets its canned
// text with no external call, everything else gets one generation attempt
// with fallback composition on failure.
func (r *Resolver) Resolve(ctx context.Context, row model.ClassifiedRow) model.ResolvedRow {
	var solution string

	switch {
	case row.Status == model.StatusInvalidUseCase:
		solution = rejectedSolution
	case row.UseCase == registry.CSVUploadValidation:
		solution, _ = registry.Remediation(row.UseCase)
	default:
		solution = r.generate(ctx, row)
	}

	return model.ResolvedRow{ClassifiedRow: row, Solution: solution}
}

func (r *Resolver) generate(ctx context.Context, row model.ClassifiedRow) string {
	genCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.gen.Generate(genCtx, narrative.Prompt{
		UseCase: row.UseCase,
		Source:  row.Source,
		Target:  row.Target,
		Status:  row.Status,
	})
	if err != nil {
		r.logger.Warn("narrative generation failed, using fallback",
			zap.String("use_case", row.UseCase),
			zap.Error(err))
		return fallbackSolution(row.UseCase)
	}
	return text
}

// fallbackSolution composes the degraded solution from the registered
// remediation text.
func fallbackSolution(useCase string) string {
	rem, ok := registry.Remediation(useCase)
	if !ok {
		return manualReviewSolution
	}
	return fallbackPrefix + rem
}
