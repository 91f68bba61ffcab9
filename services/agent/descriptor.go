package agent

import (
	"fmt"

	"tutoragents/config"
	"tutoragents/models"
	"tutoragents/platform/logger"
	"tutoragents/services/prompts"
	"tutoragents/services/tools"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

var descriptions = map[prompts.Kind]string{
	prompts.KindGreeter:        "The initial agent that welcomes and greets the user to the tutoring session.",
	prompts.KindIntroGiver:     "The agent that introduces the concept with a visual aid and explanation.",
	prompts.KindQuestionReader: "The agent that reads out the question/problem with options and routes them to the correct downstream agent.",
	prompts.KindBrainStormer:   "A natural brainstorming tutor that guides students through discovery using the ASK → EXPLORE → CONNECT framework.",
	prompts.KindStepTutor:      "The agent that guides the student through the problem-solving process step by step.",
	prompts.KindCloser:         "The final agent that summarizes the session and provides closure to the user.",
}

// Descriptor is everything the hosted runtime needs to run one agent.
type Descriptor struct {
	Name        string
	Kind        prompts.Kind
	Model       string
	Description string
	Problem     string
	Instruction string
	Tools       []tools.Tool
}

type BuildOptions struct {
	// Name defaults to the kind.
	Name string
	// Model defaults to config.DefaultModel.
	Model     string
	ProblemID string
	Hook      tools.EffectHook
	Log       *logger.Logger
}

// Build renders the instruction for kind and binds the kind's tools to doc.
func Build(doc *models.ProblemDocument, kind prompts.Kind, opts BuildOptions) (*Descriptor, error) {
	instruction, err := prompts.Render(doc, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s agent: %w", kind, err)
	}

	name := lo.Ternary(opts.Name != "", opts.Name, string(kind))
	model := lo.Ternary(opts.Model != "", opts.Model, config.DefaultModel)

	return &Descriptor{
		Name:        name,
		Kind:        kind,
		Model:       model,
		Description: descriptions[kind],
		Problem:     opts.ProblemID,
		Instruction: instruction,
		Tools: tools.ForKind(kind, tools.Options{
			Agent: name,
			Doc:   doc,
			Hook:  opts.Hook,
			Log:   opts.Log,
		}),
	}, nil
}

func (d *Descriptor) Tool(name string) (tools.Tool, bool) {
	return lo.Find(d.Tools, func(t tools.Tool) bool {
		return t.Name() == name
	})
}

func (d *Descriptor) ToolNames() []string {
	return lo.Map(d.Tools, func(t tools.Tool, _ int) string {
		return t.Name()
	})
}

func (d *Descriptor) FunctionDeclarations() []*genai.FunctionDeclaration {
	return lo.Map(d.Tools, func(t tools.Tool, _ int) *genai.FunctionDeclaration {
		return tools.GenaiDeclaration(t)
	})
}

func (d *Descriptor) Summary() models.AgentSummary {
	return models.AgentSummary{
		Name:        d.Name,
		Model:       d.Model,
		Description: d.Description,
		Tools:       d.ToolNames(),
		Problem:     d.Problem,
	}
}

func (d *Descriptor) Detail() models.AgentDetail {
	return models.AgentDetail{
		AgentSummary:         d.Summary(),
		Instruction:          d.Instruction,
		FunctionDeclarations: d.FunctionDeclarations(),
	}
}
