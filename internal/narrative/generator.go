// Package narrative produces free-text resolution guidance for classified
// rows via an external text-generation service.
package narrative

import (
	"context"
	"fmt"
)

// Generator is the contract the resolver consumes. Implementations may fail
// for any reason (network, quota, malformed output); callers treat every
// failure the same way.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// Prompt carries the classified-row fields embedded into the generation
// request. Identical prompts render to identical request text.
type Prompt struct {
	UseCase string
	Source  string
	Target  string
	Status  string
}

// Render produces the request text sent to the model.
func (p Prompt) Render() string {
	return fmt.Sprintf(`Use case: %s
Source: %s
Target: %s
Status: %s

Explain the resolution clearly for an admin.
`, p.UseCase, p.Source, p.Target, p.Status)
}
