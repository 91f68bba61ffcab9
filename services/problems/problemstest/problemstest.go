// Package problemstest provides in-memory problem documents for tests.
package problemstest

import (
	"fmt"

	"tutoragents/models"
)

// Sample returns a three step order-of-operations problem.
func Sample() *models.ProblemDocument {
	return &models.ProblemDocument{
		Topic: "Order of Operations",
		Title: "Parentheses First",
		QuestionData: models.QuestionData{
			QuestionText: "Simplify: (3 + 1) × 2 − 5",
			Options:      []string{"3", "5", "8"},
		},
		IntroData: models.IntroData{
			Voice:            "Let's learn which operation goes first.",
			TopicExplanation: "Parentheses are evaluated before anything else.",
			Visual: models.Visual{
				Content: "📦",
				Label:   "Open the box first",
				Type:    "text",
			},
		},
		Steps: []models.StepRecord{
			Step("Parentheses", "(3 + 1) = 4", "4 × 2 − 5",
				"What's inside the parentheses?", "What is 3 + 1?"),
			Step("Multiplication", "4 × 2 = 8", "8 − 5",
				"Which operation comes next?"),
			Step("Subtraction", "8 − 5 = 3", "3",
				"What is 8 − 5?"),
		},
	}
}

// Step builds a step whose questions carry numbered illustrations.
func Step(topic, notes, expression string, questions ...string) models.StepRecord {
	step := models.StepRecord{
		Topic:       topic,
		Description: "Work on " + topic,
		Notes: models.StepNotes{
			Description:       notes,
			UpdatedExpression: expression,
		},
		ConceptualQuestions: []models.ConceptualQuestion{},
	}
	for i, q := range questions {
		step.ConceptualQuestions = append(step.ConceptualQuestions, models.ConceptualQuestion{
			Question: q,
			Illustration: models.Illustration{
				BeforeQuestion: models.Cue{Content: fmt.Sprintf("🔍%d", i+1), Label: "Look at " + topic},
				Feedback: models.Feedback{
					Success: models.Cue{Content: "🎉", Label: "Well done"},
					Hint:    models.Cue{Content: "🤔", Label: "Try again"},
				},
			},
		})
	}
	return step
}
