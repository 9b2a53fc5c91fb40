package model

const (
	StatusInvalidUseCase     = "INVALID_USE_CASE"
	StatusMatch              = "MATCH"
	StatusMismatch           = "MISMATCH"
	StatusValidationRequired = "VALIDATION_REQUIRED"
	StatusProcessEvent       = "PROCESS_EVENT"
)

const (
	SeverityNone   = "NONE"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"
)

// ClassifiedRow is the classifier's output for a single input row. Status and
// severity are fully determined by the use case's category and, for
// reconciliation cases, the sent/received quantities.
type ClassifiedRow struct {
	UseCase    string `json:"use_case"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Sent       int    `json:"sent"`
	Received   int    `json:"received"`
	Difference int    `json:"difference"`
	Status     string `json:"status"`
	Severity   string `json:"severity"`
	Metadata   string `json:"metadata"`
}

// ResolvedRow is a classified row annotated with its resolution note.
type ResolvedRow struct {
	ClassifiedRow
	Solution string `json:"solution"`
}
