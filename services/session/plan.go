// Package session describes which agents run in a tutoring session and in
// which order. Handoff carries no data: every phase loads its own document.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"tutoragents/services/prompts"

	"gopkg.in/yaml.v3"
)

var ErrInvalidPlan = errors.New("invalid session plan")

type Phase struct {
	Name    string       `yaml:"name" json:"name"`
	Kind    prompts.Kind `yaml:"kind" json:"kind"`
	Problem string       `yaml:"problem" json:"problem"`
	Model   string       `yaml:"model,omitempty" json:"model,omitempty"`
}

type Plan struct {
	Phases []Phase `yaml:"phases" json:"phases"`
}

// DefaultPlan is the six phase session: everything on hard3 except the
// brainstormer, which works on hard4.
func DefaultPlan() Plan {
	phases := make([]Phase, 0, len(prompts.Kinds()))
	for _, kind := range prompts.Kinds() {
		problem := "hard3"
		if kind == prompts.KindBrainStormer {
			problem = "hard4"
		}
		phases = append(phases, Phase{Name: string(kind), Kind: kind, Problem: problem})
	}
	return Plan{Phases: phases}
}

func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read session plan %s: %w", path, err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes and validates a YAML roster. Unknown keys are rejected.
func ParsePlan(data []byte) (Plan, error) {
	var plan Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (p Plan) Validate() error {
	if len(p.Phases) == 0 {
		return fmt.Errorf("%w: no phases", ErrInvalidPlan)
	}
	seen := make(map[string]bool, len(p.Phases))
	for i, phase := range p.Phases {
		if strings.TrimSpace(phase.Name) == "" {
			return fmt.Errorf("%w: phase %d has no name", ErrInvalidPlan, i+1)
		}
		if seen[phase.Name] {
			return fmt.Errorf("%w: duplicate phase %q", ErrInvalidPlan, phase.Name)
		}
		seen[phase.Name] = true
		if _, err := prompts.ParseKind(string(phase.Kind)); err != nil {
			return fmt.Errorf("%w: phase %q: %v", ErrInvalidPlan, phase.Name, err)
		}
		if strings.TrimSpace(phase.Problem) == "" {
			return fmt.Errorf("%w: phase %q has no problem", ErrInvalidPlan, phase.Name)
		}
	}
	return nil
}

func (p Plan) Phase(name string) (Phase, bool) {
	for _, phase := range p.Phases {
		if phase.Name == name {
			return phase, true
		}
	}
	return Phase{}, false
}

// Next returns the phase that follows name. ok is false for the last phase
// and for unknown names.
func (p Plan) Next(name string) (next Phase, ok bool) {
	for i, phase := range p.Phases {
		if phase.Name == name && i+1 < len(p.Phases) {
			return p.Phases[i+1], true
		}
	}
	return Phase{}, false
}

// Problems lists the distinct problem ids in first-use order.
func (p Plan) Problems() []string {
	var ids []string
	seen := map[string]bool{}
	for _, phase := range p.Phases {
		if !seen[phase.Problem] {
			seen[phase.Problem] = true
			ids = append(ids, phase.Problem)
		}
	}
	return ids
}
