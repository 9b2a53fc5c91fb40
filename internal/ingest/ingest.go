// Package ingest parses uploaded CSV data into input rows. It owns the two
// boundary guards: the file must parse as CSV and must carry a use_case
// column. Everything past that is the engine's problem.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"donation-engine/internal/model"
)

var (
	// Error texts double as the client-facing messages; the handler sends
	// them verbatim with a 400.
	ErrInvalidFormat     = errors.New("Invalid CSV format")
	ErrMissingUseCaseCol = errors.New("use_case column missing")
)

// Parse reads the whole CSV and maps each record onto an InputRow, preserving
// record order. Unknown columns are ignored; missing optional columns default
// to the empty string.
func Parse(r io.Reader) ([]model.InputRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if len(records) == 0 {
		return nil, ErrInvalidFormat
	}

	cols := columnIndex(records[0])
	if _, ok := cols["use_case"]; !ok {
		return nil, ErrMissingUseCaseCol
	}

	rows := make([]model.InputRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, model.InputRow{
			UseCase:  field(rec, cols, "use_case"),
			Source:   field(rec, cols, "source"),
			Target:   field(rec, cols, "target"),
			Sent:     field(rec, cols, "sent"),
			Received: field(rec, cols, "received"),
			Metadata: field(rec, cols, "metadata"),
		})
	}
	return rows, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
