package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"donation-engine/internal/model"
	"donation-engine/internal/narrative"
	"donation-engine/internal/registry"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
	last  narrative.Prompt
}

func (s *stubGenerator) Generate(_ context.Context, p narrative.Prompt) (string, error) {
	s.calls++
	s.last = p
	return s.text, s.err
}

func TestResolveRejectedRow(t *testing.T) {
	gen := &stubGenerator{text: "should not be used"}
	r := New(gen, time.Second, zap.NewNop())

	got := r.Resolve(context.Background(), model.ClassifiedRow{
		UseCase:  "Not A Real Case",
		Status:   model.StatusInvalidUseCase,
		Severity: model.SeverityHigh,
	})

	assert.Equal(t, "Rejected: use_case not recognized.", got.Solution)
	assert.Zero(t, gen.calls, "rejected rows must not reach the generator")
}

func TestResolveCSVUploadValidationUsesCannedText(t *testing.T) {
	gen := &stubGenerator{text: "should not be used"}
	r := New(gen, time.Second, zap.NewNop())

	got := r.Resolve(context.Background(), model.ClassifiedRow{
		UseCase:  registry.CSVUploadValidation,
		Status:   model.StatusValidationRequired,
		Severity: model.SeverityMedium,
	})

	want, ok := registry.Remediation(registry.CSVUploadValidation)
	require.True(t, ok)
	assert.Equal(t, want, got.Solution)
	assert.Zero(t, gen.calls, "CSV Upload Validation must not reach the generator")
}

func TestResolveUsesGeneratedText(t *testing.T) {
	gen := &stubGenerator{text: "Contact the donor and confirm the pickup window."}
	r := New(gen, time.Second, zap.NewNop())

	got := r.Resolve(context.Background(), model.ClassifiedRow{
		UseCase:  "Receipt Confirmation",
		Source:   "partner-2",
		Target:   "beneficiary-5",
		Status:   model.StatusProcessEvent,
		Severity: model.SeverityMedium,
	})

	assert.Equal(t, gen.text, got.Solution)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, narrative.Prompt{
		UseCase: "Receipt Confirmation",
		Source:  "partner-2",
		Target:  "beneficiary-5",
		Status:  model.StatusProcessEvent,
	}, gen.last)
}

func TestResolveFallsBackOnGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	r := New(gen, time.Second, zap.NewNop())

	got := r.Resolve(context.Background(), model.ClassifiedRow{
		UseCase:  "Donation Commitment vs Actual Reconciliation",
		Status:   model.StatusMismatch,
		Severity: model.SeverityHigh,
	})

	rem, ok := registry.Remediation("Donation Commitment vs Actual Reconciliation")
	require.True(t, ok)
	assert.Equal(t, "Narrative generation unavailable. Suggested action: "+rem, got.Solution)
	assert.Equal(t, 1, gen.calls, "exactly one attempt, no retries")
}

func TestResolveFallbackPreservesClassification(t *testing.T) {
	gen := &stubGenerator{err: errors.New("unreachable")}
	r := New(gen, time.Second, zap.NewNop())

	classified := model.ClassifiedRow{
		UseCase:    "Expense Tracking vs Asset Flow",
		Sent:       100,
		Received:   90,
		Difference: 10,
		Status:     model.StatusMismatch,
		Severity:   model.SeverityHigh,
	}
	got := r.Resolve(context.Background(), classified)

	assert.Equal(t, classified, got.ClassifiedRow)
	assert.NotEmpty(t, got.Solution)
}

func TestFallbackSolutionWithoutRemediation(t *testing.T) {
	assert.Equal(t, "Manual review required.", fallbackSolution("Unregistered Case"))
}

func TestResolveTreatsCancelledContextAsFailure(t *testing.T) {
	gen := &stubGenerator{err: context.Canceled}
	r := New(gen, time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := r.Resolve(ctx, model.ClassifiedRow{
		UseCase:  "Receipt Confirmation",
		Status:   model.StatusProcessEvent,
		Severity: model.SeverityMedium,
	})

	rem, _ := registry.Remediation("Receipt Confirmation")
	assert.Equal(t, "Narrative generation unavailable. Suggested action: "+rem, got.Solution)
}
