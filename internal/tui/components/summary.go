package components

import (
	"fmt"
	"strings"
)

// ValidationStatus represents a rule outcome for summary rendering.
type ValidationStatus struct {
	Passed  bool
	Message string
}

// SummaryData aggregates what the editor reports below the input.
type SummaryData struct {
	Changes     int
	Outcome     string
	Validations []ValidationStatus
}

// Summary renders a textual editing summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Changes > 0 {
		lines = append(lines, fmt.Sprintf("Changes: %d", s.data.Changes))
	}
	if s.data.Outcome != "" {
		lines = append(lines, fmt.Sprintf("Last edit: %s", s.data.Outcome))
	}

	if len(s.data.Validations) > 0 {
		lines = append(lines, "Rules:")
		for _, v := range s.data.Validations {
			status := "✗"
			if v.Passed {
				status = "✓"
			}
			lines = append(lines, fmt.Sprintf("  %s %s", status, v.Message))
		}
	}

	return strings.Join(lines, "\n")
}
