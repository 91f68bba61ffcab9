package tools

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	adkschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/tmc/langchaingo/llms"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
	"google.golang.org/genai"
)

func generateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	return schema
}

// withEnum restricts a top level string property to the given values.
func withEnum(schema *jsonschema.Schema, property string, values []string) *jsonschema.Schema {
	if prop, ok := schema.Properties.Get(property); ok && prop != nil {
		prop.Enum = lo.ToAnySlice(values)
	}
	return schema
}

func GenaiDeclaration(t Tool) *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:                 t.Name(),
		Description:          t.Description(),
		ParametersJsonSchema: t.InputSchema(),
	}
}

func AnthropicToolParam(t Tool) anthropic.ToolParam {
	return anthropic.ToolParam{
		Name:        t.Name(),
		Description: anthropic.String(t.Description()),
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: t.InputSchema().Properties,
			Required:   t.InputSchema().Required,
		},
	}
}

func LangchainTool(t Tool) llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.InputSchema(),
		},
	}
}

// ADKTool wraps a tool as an ADK function tool. Arguments arrive as a decoded
// map and are handed to Call as JSON so both entry points share validation.
func ADKTool(t Tool) (tool.Tool, error) {
	schema, err := adkInputSchema(t)
	if err != nil {
		return nil, err
	}
	return functiontool.New(functiontool.Config{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: schema,
	}, func(ctx tool.Context, args map[string]any) (map[string]any, error) {
		raw, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s arguments: %w", t.Name(), err)
		}
		result, err := t.Call(ctx, string(raw))
		if err != nil {
			return nil, err
		}
		return resultMap(result)
	})
}

func adkInputSchema(t Tool) (*adkschema.Schema, error) {
	raw, err := json.Marshal(t.InputSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s schema: %w", t.Name(), err)
	}
	var schema adkschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("failed to convert %s schema: %w", t.Name(), err)
	}
	return &schema, nil
}

func resultMap(result any) (map[string]any, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode tool result: %w", err)
	}
	return out, nil
}
