package agent

import (
	"context"
	"errors"
	"fmt"

	"tutoragents/models"
	"tutoragents/platform/logger"
	"tutoragents/services/session"
	"tutoragents/services/tools"
)

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrToolNotFound  = errors.New("tool not found")
)

// DocumentSource resolves a problem id to its loaded document.
type DocumentSource interface {
	Get(id string) (*models.ProblemDocument, error)
}

// Service owns the agents of one session and routes tool calls to them.
type Service struct {
	agents []*Descriptor
	byName map[string]*Descriptor
	log    *logger.Logger
}

func NewService(log *logger.Logger, descriptors ...*Descriptor) (*Service, error) {
	s := &Service{
		byName: make(map[string]*Descriptor, len(descriptors)),
		log:    logger.OrNop(log),
	}
	for _, d := range descriptors {
		if _, dup := s.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate agent %q", d.Name)
		}
		s.byName[d.Name] = d
		s.agents = append(s.agents, d)
	}
	return s, nil
}

// FromPlan builds one agent per phase. Any document error aborts the whole
// session: an agent without its document cannot be constructed.
func FromPlan(plan session.Plan, docs DocumentSource, defaultModel string, hook tools.EffectHook, log *logger.Logger) (*Service, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	log = logger.OrNop(log)

	descriptors := make([]*Descriptor, 0, len(plan.Phases))
	for _, phase := range plan.Phases {
		doc, err := docs.Get(phase.Problem)
		if err != nil {
			return nil, fmt.Errorf("failed to load problem %s for %s: %w", phase.Problem, phase.Name, err)
		}
		model := phase.Model
		if model == "" {
			model = defaultModel
		}
		d, err := Build(doc, phase.Kind, BuildOptions{
			Name:      phase.Name,
			Model:     model,
			ProblemID: phase.Problem,
			Hook:      hook,
			Log:       log,
		})
		if err != nil {
			return nil, err
		}
		log.Info("agent registered", "agent", d.Name, "kind", d.Kind, "problem", d.Problem, "tools", d.ToolNames())
		descriptors = append(descriptors, d)
	}
	return NewService(log, descriptors...)
}

func (s *Service) Agents() []*Descriptor {
	return s.agents
}

func (s *Service) Agent(name string) (*Descriptor, error) {
	d, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return d, nil
}

// Call runs a tool of the named agent with a raw JSON input.
func (s *Service) Call(ctx context.Context, agentName, toolName, input string) (models.ToolResult, error) {
	d, err := s.Agent(agentName)
	if err != nil {
		return models.ToolResult{}, err
	}
	t, ok := d.Tool(toolName)
	if !ok {
		return models.ToolResult{}, fmt.Errorf("%w: %s has no tool %s", ErrToolNotFound, agentName, toolName)
	}

	result, err := t.Call(ctx, input)
	if err != nil {
		s.log.Warn("tool call failed", "agent", agentName, "tool", toolName, "error", err)
		return models.ToolResult{}, err
	}
	return result, nil
}
