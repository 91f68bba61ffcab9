package agent

import (
	"fmt"

	"tutoragents/services/tools"

	adkagent "google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"
)

// NewADKAgent binds a descriptor to an ADK LLM agent driven by llm.
func NewADKAgent(d *Descriptor, llm model.LLM) (adkagent.Agent, error) {
	adkTools := make([]tool.Tool, 0, len(d.Tools))
	for _, t := range d.Tools {
		bound, err := tools.ADKTool(t)
		if err != nil {
			return nil, fmt.Errorf("failed to bind tool %s of %s: %w", t.Name(), d.Name, err)
		}
		adkTools = append(adkTools, bound)
	}

	// The instruction is already rendered; a provider keeps ADK from reading
	// braces in problem text as session state placeholders.
	instruction := d.Instruction
	return llmagent.New(llmagent.Config{
		Name:        d.Name,
		Description: d.Description,
		Model:       llm,
		InstructionProvider: func(adkagent.ReadonlyContext) (string, error) {
			return instruction, nil
		},
		Tools: adkTools,
	})
}

// NewADKAgents binds every agent of the service, in session order.
func (s *Service) NewADKAgents(llm model.LLM) ([]adkagent.Agent, error) {
	out := make([]adkagent.Agent, 0, len(s.agents))
	for _, d := range s.agents {
		a, err := NewADKAgent(d, llm)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// SessionAgentName is the root agent the ADK runtime starts a tutoring
// session from.
const SessionAgentName = "tutoring_session"

// NewADKLoader builds the runtime agent tree: a sequential root running every
// phase agent in session order.
func (s *Service) NewADKLoader(llm model.LLM) (adkagent.Loader, error) {
	phases, err := s.NewADKAgents(llm)
	if err != nil {
		return nil, err
	}

	root, err := sequentialagent.New(sequentialagent.Config{
		AgentConfig: adkagent.Config{
			Name:        SessionAgentName,
			Description: "Walks a student through one math problem, phase by phase.",
			SubAgents:   phases,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build session agent: %w", err)
	}
	return adkagent.NewSingleLoader(root), nil
}
