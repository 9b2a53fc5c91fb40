package model

// InputRow is one parsed line of an uploaded dataset. Sent and Received stay
// raw strings here; the classifier owns the numeric coercion rules.
type InputRow struct {
	UseCase  string
	Source   string
	Target   string
	Sent     string
	Received string
	Metadata string
}
