// Package classifier maps input rows onto classification outcomes. Classify
// is a pure function of the row and the fixed use-case registry.
package classifier

import (
	"strconv"
	"strings"

	"donation-engine/internal/model"
	"donation-engine/internal/registry"
)

// Classify assigns a status and severity to one row. An unregistered use case
// is a terminal rejection: no category rule runs and the quantity fields stay
// zero. For reconciliation cases the difference drives status and severity;
// validation and process-event cases ignore quantities entirely.
func Classify(row model.InputRow) model.ClassifiedRow {
	cat, ok := registry.CategoryOf(row.UseCase)
	if !ok {
		return model.ClassifiedRow{
			UseCase:  row.UseCase,
			Status:   model.StatusInvalidUseCase,
			Severity: model.SeverityHigh,
		}
	}

	out := model.ClassifiedRow{
		UseCase:  row.UseCase,
		Source:   row.Source,
		Target:   row.Target,
		Metadata: row.Metadata,
	}

	switch cat {
	case registry.CategoryReconciliation:
		out.Sent = toInt(row.Sent)
		out.Received = toInt(row.Received)
		out.Difference = out.Sent - out.Received
		if out.Difference == 0 {
			out.Status = model.StatusMatch
			out.Severity = model.SeverityNone
		} else {
			out.Status = model.StatusMismatch
			out.Severity = model.SeverityHigh
		}
	case registry.CategoryValidation:
		out.Status = model.StatusValidationRequired
		out.Severity = model.SeverityMedium
	default:
		out.Status = model.StatusProcessEvent
		out.Severity = model.SeverityMedium
	}

	return out
}

// toInt treats anything unparseable as 0. Reconciliation rows with garbage
// quantities still classify; they just compare as zero.
func toInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
