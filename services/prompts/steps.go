package prompts

import (
	"fmt"
	"strings"

	"tutoragents/models"

	"github.com/samber/lo"
)

const questionSeparator = " Then ask: "

// StepInstructions returns one line per step, in document order, listing every
// conceptual question of the step.
func StepInstructions(steps []models.StepRecord) []string {
	return lo.Map(steps, func(step models.StepRecord, i int) string {
		questions := lo.Map(step.ConceptualQuestions, func(q models.ConceptualQuestion, _ int) string {
			return q.Question
		})
		return fmt.Sprintf("- For step %d: %s", i+1, strings.Join(questions, questionSeparator))
	})
}

// StepCompletions returns one line per step quoting the notes the tutor must
// send to update_notes once that step is done.
func StepCompletions(steps []models.StepRecord) []string {
	return lo.Map(steps, func(step models.StepRecord, i int) string {
		return fmt.Sprintf("- Step %d: description=\"%s\", expression=\"%s\"",
			i+1, step.Notes.Description, step.Notes.UpdatedExpression)
	})
}

// BrainstormAreas renders each step as a discovery area led by its first
// conceptual question.
func BrainstormAreas(steps []models.StepRecord) string {
	var b strings.Builder
	for _, step := range steps {
		var question, illustration string
		if first, ok := lo.First(step.ConceptualQuestions); ok {
			question = first.Question
			illustration = first.Illustration.BeforeQuestion.Content
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "**Topic Area: %s**\n", step.Topic)
		fmt.Fprintf(&b, "- Discovery Focus: %s\n", step.Description)
		fmt.Fprintf(&b, "- Key Question: \"%s\"\n", question)
		fmt.Fprintf(&b, "- Show illustration: \"%s\"\n", illustration)
		b.WriteString("- Explore with: \"What if we tried...?\", \"How is this like something you know?\", \"What would happen if...?\"\n")
		fmt.Fprintf(&b, "- Build toward understanding: %s\n", step.Notes.UpdatedExpression)
	}
	return b.String()
}
