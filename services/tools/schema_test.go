package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSchemaEnums(t *testing.T) {
	opts := newOptions(nil)
	tests := []struct {
		name     string
		tool     Tool
		property string
		enum     []string
	}{
		{name: "tutor feedback", tool: NewTutorFeedbackTool(opts), property: "type", enum: TutorFeedbackTypes},
		{name: "brainstorm feedback", tool: NewBrainstormFeedbackTool(opts), property: "type", enum: BrainstormFeedbackTypes},
		{name: "brainstorm notes", tool: NewBrainstormNotesTool(opts), property: "discovery_type", enum: DiscoveryTypes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop, ok := tt.tool.InputSchema().Properties.Get(tt.property)
			require.True(t, ok)

			values := []string{}
			for _, v := range prop.Enum {
				values = append(values, v.(string))
			}
			assert.Equal(t, tt.enum, values)
		})
	}
}

func TestInputSchemaRequired(t *testing.T) {
	opts := newOptions(nil)

	intro := NewShowIntroVisualTool(opts).InputSchema()
	assert.ElementsMatch(t, []string{"content", "label", "explanation"}, intro.Required)

	feedback := NewBrainstormFeedbackTool(opts).InputSchema()
	assert.ElementsMatch(t, []string{"type", "content", "label"}, feedback.Required)
}

func TestGenaiDeclaration(t *testing.T) {
	decl := GenaiDeclaration(NewUpdateNotesTool(newOptions(nil)))
	assert.Equal(t, "update_notes", decl.Name)

	raw, err := json.Marshal(decl.ParametersJsonSchema)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	assert.Equal(t, "object", schema["type"])
	assert.NotContains(t, schema, "$schema")
	steps := schema["properties"].(map[string]any)["steps"].(map[string]any)
	assert.Equal(t, "array", steps["type"])
}

func TestAnthropicAndLangchainDeclarations(t *testing.T) {
	tool := NewShowIntroVisualTool(newOptions(nil))

	param := AnthropicToolParam(tool)
	assert.Equal(t, "show_intro_visual", param.Name)
	assert.NotNil(t, param.InputSchema.Properties)
	assert.ElementsMatch(t, []string{"content", "label", "explanation"}, param.InputSchema.Required)

	feedbackTool := NewTutorFeedbackTool(newOptions(nil))
	feedback := AnthropicToolParam(feedbackTool)
	assert.Equal(t, feedbackTool.InputSchema().Required, feedback.InputSchema.Required)
	assert.Contains(t, feedback.InputSchema.Required, "type")

	lc := LangchainTool(tool)
	assert.Equal(t, "function", lc.Type)
	require.NotNil(t, lc.Function)
	assert.Equal(t, tool.Description(), lc.Function.Description)
}

func TestADKTool(t *testing.T) {
	opts := newOptions(nil)
	for _, tool := range ForKind("stepTutor", opts) {
		adk, err := ADKTool(tool)
		require.NoError(t, err)
		assert.Equal(t, tool.Name(), adk.Name())
		assert.Equal(t, tool.Description(), adk.Description())
	}
}
