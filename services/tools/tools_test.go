package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tutoragents/models"
	"tutoragents/services/problems/problemstest"
	"tutoragents/services/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	effects []models.UIEffect
	err     error
}

func (h *recordingHook) Apply(ctx context.Context, effect models.UIEffect) error {
	if h.err != nil {
		return h.err
	}
	h.effects = append(h.effects, effect)
	return nil
}

func newOptions(hook EffectHook) Options {
	return Options{Agent: "stepTutor", Doc: problemstest.Sample(), Hook: hook}
}

func toJSON(t *testing.T, result models.ToolResult) map[string]any {
	t.Helper()
	out, err := resultMap(result)
	require.NoError(t, err)
	return out
}

func TestCheckMembership(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		allowed []string
		ok      bool
		message string
	}{
		{name: "celebration accepted", value: "celebration", allowed: BrainstormFeedbackTypes, ok: true},
		{name: "sarcasm rejected", value: "sarcasm", allowed: BrainstormFeedbackTypes, message: "Invalid feedback type: sarcasm"},
		{name: "case sensitive", value: "Hint", allowed: TutorFeedbackTypes, message: "Invalid feedback type: Hint"},
		{name: "empty rejected", value: "", allowed: TutorFeedbackTypes, message: "Invalid feedback type: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := CheckMembership("feedback type", tt.value, tt.allowed)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.False(t, res.Success)
				assert.Equal(t, tt.message, res.Message)
			}
		})
	}
}

func TestCheckStepNumber(t *testing.T) {
	doc := problemstest.Sample()
	for n := -1; n <= doc.StepCount()+2; n++ {
		res, ok := CheckStepNumber(n, doc)
		assert.Equal(t, n >= 1 && n <= doc.StepCount(), ok, "step %d", n)
		if !ok {
			assert.Equal(t, models.Reject("Invalid step number"), res)
		}
	}
}

func TestShowIntroVisual(t *testing.T) {
	hook := &recordingHook{}
	tool := NewShowIntroVisualTool(newOptions(hook))

	res, err := tool.Call(context.Background(), `{"content":"📦","label":"Open the box first","explanation":"Parentheses first"}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"success": true, "message": "Introduction visual shown successfully"}, toJSON(t, res))
	require.Len(t, hook.effects, 1)
	assert.Equal(t, "intro_visual", hook.effects[0].Kind)
	assert.Equal(t, "text", hook.effects[0].Payload["type"])
	assert.NotEmpty(t, hook.effects[0].ID)
}

func TestTutorFeedback(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		success bool
		message string
		effects int
	}{
		{
			name:    "hint on valid step",
			input:   `{"type":"hint","content":"🤔","label":"Try again","step_number":2,"question_index":0}`,
			success: true,
			message: "hint feedback shown successfully",
			effects: 1,
		},
		{
			name:    "brainstorm type is not a tutor type",
			input:   `{"type":"celebration","content":"🎉","label":"Yay","step_number":1}`,
			message: "Invalid feedback type: celebration",
		},
		{
			name:    "step out of range",
			input:   `{"type":"success","content":"🎉","label":"Yay","step_number":4}`,
			message: "Invalid step number",
		},
		{
			name:    "step zero",
			input:   `{"type":"illustration","content":"🔍","label":"Look","step_number":0}`,
			message: "Invalid step number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := &recordingHook{}
			res, err := NewTutorFeedbackTool(newOptions(hook)).Call(context.Background(), tt.input)
			require.NoError(t, err)

			assert.Equal(t, map[string]any{"success": tt.success, "message": tt.message}, toJSON(t, res))
			assert.Len(t, hook.effects, tt.effects)
		})
	}
}

func TestUpdateNotesSkipsInvalidEntries(t *testing.T) {
	hook := &recordingHook{}
	tool := NewUpdateNotesTool(newOptions(hook))

	input := `{"steps":[
		{"stepNumber":1,"description":"(3 + 1) = 4","updatedExpression":"4 × 2 − 5"},
		{"stepNumber":5,"description":"bogus","updatedExpression":"?"},
		{"stepNumber":3,"description":"8 − 5 = 3","updatedExpression":"3"}
	]}`
	res, err := tool.Call(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"success":     true,
		"message":     "Notes updated for 2 steps",
		"step_title":  "Subtraction",
		"total_steps": float64(3),
	}, toJSON(t, res))

	require.Len(t, hook.effects, 1)
	assert.Equal(t, 3, hook.effects[0].StepNumber)
	assert.Len(t, hook.effects[0].Payload["steps"], 2)
}

func TestUpdateNotesLastAcceptedNotHighest(t *testing.T) {
	tool := NewUpdateNotesTool(newOptions(nil))

	res, err := tool.Call(context.Background(), `[
		{"stepNumber":3,"description":"d","updatedExpression":"3"},
		{"stepNumber":1,"description":"d","updatedExpression":"4 × 2 − 5"},
		{"stepNumber":2,"description":"","updatedExpression":"8 − 5"},
		{"stepNumber":"two","description":"d","updatedExpression":"8 − 5"}
	]`)
	require.NoError(t, err)

	require.NotNil(t, res.StepTitle)
	assert.Equal(t, "Parentheses", *res.StepTitle)
	assert.Equal(t, "Notes updated for 2 steps", res.Message)
}

func TestUpdateNotesNothingAccepted(t *testing.T) {
	hook := &recordingHook{}
	res, err := NewUpdateNotesTool(newOptions(hook)).Call(context.Background(), `{"steps":[{"stepNumber":9}]}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"success":     true,
		"message":     "Notes updated for 0 steps",
		"step_title":  nil,
		"total_steps": float64(3),
	}, toJSON(t, res))
	assert.Empty(t, hook.effects)
}

func TestBrainstormNotes(t *testing.T) {
	expr := "4 × 2 − 5"
	tests := []struct {
		name     string
		input    models.BrainstormNotesInput
		expected map[string]any
	}{
		{
			name:  "with part solved",
			input: models.BrainstormNotesInput{DiscoveryType: "part_identified", StepNumber: 1, PartSolved: "the parentheses", CurrentExpression: &expr},
			expected: map[string]any{
				"success":            true,
				"message":            "Captured student part_identified on the parentheses",
				"current_expression": expr,
				"step_number":        float64(1),
			},
		},
		{
			name:  "without expression",
			input: models.BrainstormNotesInput{DiscoveryType: "synthesis", StepNumber: 3},
			expected: map[string]any{
				"success":            true,
				"message":            "Captured student synthesis",
				"current_expression": nil,
				"step_number":        float64(3),
			},
		},
		{
			name:     "unknown discovery type",
			input:    models.BrainstormNotesInput{DiscoveryType: "guess", StepNumber: 1},
			expected: map[string]any{"success": false, "message": "Invalid discovery type: guess"},
		},
		{
			name:     "step out of range",
			input:    models.BrainstormNotesInput{DiscoveryType: "breakthrough", StepNumber: 7},
			expected: map[string]any{"success": false, "message": "Invalid step number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.input)
			require.NoError(t, err)

			res, err := NewBrainstormNotesTool(newOptions(nil)).Call(context.Background(), string(raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, toJSON(t, res))
		})
	}
}

func TestBrainstormFeedback(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		success bool
		message string
	}{
		{name: "celebration", input: `{"type":"celebration","content":"🎉","label":"Great"}`, success: true, message: "celebration feedback shown successfully"},
		{name: "sarcasm", input: `{"type":"sarcasm","content":"🙄","label":"Sure"}`, message: "Invalid feedback type: sarcasm"},
		{name: "valid step", input: `{"type":"debate","content":"⚖️","label":"Two ways","step_number":2}`, success: true, message: "debate feedback shown successfully"},
		{name: "step out of range", input: `{"type":"debate","content":"⚖️","label":"Two ways","step_number":0}`, message: "Invalid step number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewBrainstormFeedbackTool(newOptions(nil)).Call(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestHookFailureFailsAcknowledgement(t *testing.T) {
	hook := &recordingHook{err: errors.New("ui offline")}
	res, err := NewTutorFeedbackTool(newOptions(hook)).Call(context.Background(),
		`{"type":"success","content":"🎉","label":"Yay","step_number":1}`)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to deliver show_visual_feedback: ui offline", res.Message)
}

func TestCallRejectsUndecodableInput(t *testing.T) {
	opts := newOptions(nil)
	for _, tool := range []Tool{
		NewShowIntroVisualTool(opts),
		NewTutorFeedbackTool(opts),
		NewUpdateNotesTool(opts),
		NewBrainstormNotesTool(opts),
		NewBrainstormFeedbackTool(opts),
	} {
		t.Run(tool.Name(), func(t *testing.T) {
			_, err := tool.Call(context.Background(), `{"type":`)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCallAcceptsIntegralFloats(t *testing.T) {
	hook := &recordingHook{}
	opts := newOptions(hook)

	res, err := NewTutorFeedbackTool(opts).Call(context.Background(),
		`{"type":"hint","content":"🤔","label":"Try again","step_number":1.0}`)
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = NewUpdateNotesTool(opts).Call(context.Background(),
		`{"steps":[{"stepNumber":2e0,"description":"4 × 2 = 8","updatedExpression":"8 − 5"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "Notes updated for 1 steps", res.Message)

	require.Len(t, hook.effects, 2)
	assert.Equal(t, 1, hook.effects[0].StepNumber)
	assert.Equal(t, 2, hook.effects[1].StepNumber)

	_, err = NewTutorFeedbackTool(opts).Call(context.Background(),
		`{"type":"hint","content":"🤔","label":"Try again","step_number":1.5}`)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTutorFeedbackTool(opts).Call(context.Background(), `{"type":"hint"} {}`)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestForKind(t *testing.T) {
	tests := []struct {
		kind  prompts.Kind
		names []string
	}{
		{kind: prompts.KindGreeter, names: []string{}},
		{kind: prompts.KindIntroGiver, names: []string{"show_intro_visual"}},
		{kind: prompts.KindQuestionReader, names: []string{}},
		{kind: prompts.KindBrainStormer, names: []string{"update_brainstorm_notes", "show_visual_feedback"}},
		{kind: prompts.KindStepTutor, names: []string{"update_notes", "show_visual_feedback"}},
		{kind: prompts.KindCloser, names: []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			names := []string{}
			for _, tool := range ForKind(tt.kind, newOptions(nil)) {
				names = append(names, tool.Name())
			}
			assert.Equal(t, tt.names, names)
		})
	}
}
