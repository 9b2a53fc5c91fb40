package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptRenderEmbedsAllFields(t *testing.T) {
	p := Prompt{
		UseCase: "Receiving Assets from Donor",
		Source:  "donor-3",
		Target:  "warehouse-1",
		Status:  "PROCESS_EVENT",
	}

	rendered := p.Render()
	assert.Contains(t, rendered, "Use case: Receiving Assets from Donor")
	assert.Contains(t, rendered, "Source: donor-3")
	assert.Contains(t, rendered, "Target: warehouse-1")
	assert.Contains(t, rendered, "Status: PROCESS_EVENT")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(rendered), "Explain the resolution clearly for an admin."))
}

func TestPromptRenderIsDeterministic(t *testing.T) {
	p := Prompt{UseCase: "Receipt Confirmation", Status: "PROCESS_EVENT"}
	assert.Equal(t, p.Render(), p.Render())
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(t.Context(), "", "gemini-2.5-flash")
	assert.Error(t, err)
}
