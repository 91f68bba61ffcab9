package problems

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "fractions.json"))
	require.NoError(t, err)

	assert.Equal(t, "Fractions", doc.Topic)
	assert.Equal(t, "What is 1/3 + 1/4?", doc.ProblemStatement())
	assert.Nil(t, doc.QuestionData.Options)
	require.Equal(t, 2, doc.StepCount())
	assert.Equal(t, "Common Denominator", doc.Steps[0].Topic)
	assert.Equal(t, "7/12", doc.FinalAnswer())
	assert.Equal(t, "🍕 ⅓ vs ¼", doc.Steps[0].ConceptualQuestions[0].Illustration.BeforeQuestion.Content)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		notFound  bool
		malformed bool
	}{
		{name: "missing file", file: "nope.json", notFound: true},
		{name: "truncated JSON", file: "truncated.json", malformed: true},
		{name: "missing steps key", file: "missing_steps.json", malformed: true},
		{name: "empty steps", file: "empty_steps.json", malformed: true},
		{name: "missing hint feedback", file: "missing_hint.json", malformed: true},
		{name: "wrong field type", file: "wrong_type.json", malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Nil(t, doc)

			assert.Equal(t, tt.notFound, errors.Is(err, ErrDocumentNotFound), "not found: %v", err)
			assert.Equal(t, tt.malformed, errors.Is(err, ErrMalformedDocument), "malformed: %v", err)

			if tt.notFound {
				var nf *DocumentNotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Contains(t, nf.Path, tt.file)
			}
			if tt.malformed {
				var md *MalformedDocumentError
				require.ErrorAs(t, err, &md)
				assert.NotEmpty(t, md.Reason)
			}
		})
	}
}

func TestLoadStepWithoutQuestions(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "no_questions.json"))
	require.NoError(t, err)

	assert.Empty(t, doc.Steps[0].ConceptualQuestions)
	assert.Equal(t, "Add 1/3 and 1/4", doc.ProblemStatement())
}

func TestParseAllowsExtraFields(t *testing.T) {
	data := []byte(`{
		"topic": "T", "title": "X", "difficulty": "hard",
		"questionData": {"QuestionText": "Q?", "Options": null},
		"introData": {"Voice": "v", "TopicExplanation": "e", "Visual": {"Content": "c", "Label": "l", "Type": "text", "Alt": "a"}},
		"steps": [{"Topic": "s", "Description": "d", "ConceptualQuestions": [], "Notes": {"Description": "n", "UpdatedExpression": "1"}, "Extra": true}]
	}`)

	doc, err := Parse("inline.json", data)
	require.NoError(t, err)
	assert.Equal(t, "Q?", doc.ProblemStatement())
	assert.Equal(t, 1, doc.StepCount())
}
