package tools

import (
	"fmt"

	"tutoragents/models"

	"github.com/samber/lo"
)

var (
	TutorFeedbackTypes = []string{"hint", "success", "illustration"}

	BrainstormFeedbackTypes = []string{
		"celebration",
		"discovery",
		"progress",
		"breakthrough",
		"debate",
		"comparison",
		"synthesis",
	}

	DiscoveryTypes = []string{
		"initial_observation",
		"part_identified",
		"calculation_done",
		"pattern_found",
		"breakthrough",
		"debate_point",
		"approach_comparison",
		"synthesis",
	}
)

const invalidStepMessage = "Invalid step number"

// CheckMembership gates a value on a fixed allow-list. The returned result is
// only meaningful when ok is false.
func CheckMembership(field, value string, allowed []string) (result models.ToolResult, ok bool) {
	if lo.Contains(allowed, value) {
		return models.ToolResult{}, true
	}
	return models.Reject(fmt.Sprintf("Invalid %s: %s", field, value)), false
}

// CheckStepNumber accepts 1-based step numbers that exist in the document.
func CheckStepNumber(n int, doc *models.ProblemDocument) (result models.ToolResult, ok bool) {
	if _, found := doc.Step(n); found {
		return models.ToolResult{}, true
	}
	return models.Reject(invalidStepMessage), false
}
