package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tutoragents/models"
	"tutoragents/platform/logger"
	"tutoragents/services/prompts"

	"github.com/invopop/jsonschema"
)

var ErrInvalidInput = errors.New("invalid tool input")

// Tool is one callable the hosted runtime may invoke. Validation failures are
// reported in the result; the error is reserved for input that is not JSON of
// the expected shape.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (models.ToolResult, error)
	InputSchema() *jsonschema.Schema
}

// Options carries what every tool of one agent shares.
type Options struct {
	Agent string
	Doc   *models.ProblemDocument
	Hook  EffectHook
	Log   *logger.Logger
}

// ForKind returns the tools an agent of the given kind exposes, in
// declaration order. Kinds without tools get an empty list.
func ForKind(kind prompts.Kind, opts Options) []Tool {
	switch kind {
	case prompts.KindIntroGiver:
		return []Tool{NewShowIntroVisualTool(opts)}
	case prompts.KindStepTutor:
		return []Tool{NewUpdateNotesTool(opts), NewTutorFeedbackTool(opts)}
	case prompts.KindBrainStormer:
		return []Tool{NewBrainstormNotesTool(opts), NewBrainstormFeedbackTool(opts)}
	default:
		return []Tool{}
	}
}

type base struct {
	agent string
	doc   *models.ProblemDocument
	hook  EffectHook
	log   *logger.Logger
}

func newBase(opts Options) base {
	log := logger.OrNop(opts.Log)
	hook := opts.Hook
	if hook == nil {
		hook = NewLogHook(log)
	}
	return base{agent: opts.Agent, doc: opts.Doc, hook: hook, log: log}
}

func (b base) called(tool string, kv ...any) {
	b.log.Debug("tool called", append([]any{"agent", b.agent, "tool", tool}, kv...)...)
}

func (b base) reject(tool string, result models.ToolResult) models.ToolResult {
	b.log.Warn("tool rejected", "agent", b.agent, "tool", tool, "message", result.Message)
	return result
}

// deliver hands the effect to the hook and turns a delivery failure into a
// failed acknowledgement.
func (b base) deliver(ctx context.Context, tool, kind string, step int, payload any, ack models.ToolResult) models.ToolResult {
	fields, err := resultMap(payload)
	if err == nil {
		err = b.hook.Apply(ctx, newEffect(b.agent, tool, kind, step, fields))
	}
	if err != nil {
		b.log.Error("failed to deliver effect", "agent", b.agent, "tool", tool, "error", err)
		return models.Reject(fmt.Sprintf("Failed to deliver %s: %v", tool, err))
	}
	b.log.Info("tool acknowledged", "agent", b.agent, "tool", tool, "message", ack.Message)
	return ack
}

func decodeInput(tool, input string, v any) error {
	data := bytes.TrimSpace([]byte(input))
	if len(data) == 0 {
		data = []byte("{}")
	}
	if err := unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: failed to parse %s input: %v", ErrInvalidInput, tool, err)
	}
	return nil
}

type ShowIntroVisualTool struct {
	base
}

func NewShowIntroVisualTool(opts Options) ShowIntroVisualTool {
	return ShowIntroVisualTool{base: newBase(opts)}
}

func (t ShowIntroVisualTool) Name() string {
	return "show_intro_visual"
}

func (t ShowIntroVisualTool) Description() string {
	return "Shows introduction visual content and explanation in the main area."
}

func (t ShowIntroVisualTool) Call(ctx context.Context, input string) (models.ToolResult, error) {
	var params models.ShowIntroVisualInput
	if err := decodeInput(t.Name(), input, &params); err != nil {
		return models.ToolResult{}, err
	}
	if params.Type == "" {
		params.Type = "text"
	}
	t.called(t.Name(), "content", params.Content, "label", params.Label, "type", params.Type)

	return t.deliver(ctx, t.Name(), "intro_visual", 0, params,
		models.Ack("Introduction visual shown successfully")), nil
}

func (t ShowIntroVisualTool) InputSchema() *jsonschema.Schema {
	return generateSchema[models.ShowIntroVisualInput]()
}

// TutorFeedbackTool is the step tutor's show_visual_feedback.
type TutorFeedbackTool struct {
	base
}

func NewTutorFeedbackTool(opts Options) TutorFeedbackTool {
	return TutorFeedbackTool{base: newBase(opts)}
}

func (t TutorFeedbackTool) Name() string {
	return "show_visual_feedback"
}

func (t TutorFeedbackTool) Description() string {
	return "Shows visual feedback in the main area based on student responses or before asking questions."
}

func (t TutorFeedbackTool) Call(ctx context.Context, input string) (models.ToolResult, error) {
	var params models.TutorFeedbackInput
	if err := decodeInput(t.Name(), input, &params); err != nil {
		return models.ToolResult{}, err
	}
	t.called(t.Name(), "type", params.Type, "step", params.StepNumber)

	if res, ok := CheckMembership("feedback type", params.Type, TutorFeedbackTypes); !ok {
		return t.reject(t.Name(), res), nil
	}
	if res, ok := CheckStepNumber(params.StepNumber, t.doc); !ok {
		return t.reject(t.Name(), res), nil
	}

	return t.deliver(ctx, t.Name(), params.Type, params.StepNumber, params,
		models.Ack(fmt.Sprintf("%s feedback shown successfully", params.Type))), nil
}

func (t TutorFeedbackTool) InputSchema() *jsonschema.Schema {
	return withEnum(generateSchema[models.TutorFeedbackInput](), "type", TutorFeedbackTypes)
}

// UpdateNotesTool records completed steps. Entries are validated one by one
// and bad entries are skipped without failing the batch.
type UpdateNotesTool struct {
	base
}

func NewUpdateNotesTool(opts Options) UpdateNotesTool {
	return UpdateNotesTool{base: newBase(opts)}
}

func (t UpdateNotesTool) Name() string {
	return "update_notes"
}

func (t UpdateNotesTool) Description() string {
	return "Updates the tutoring notes when steps are completed. Can handle multiple steps at once. " +
		"Each step should have: stepNumber, description, updatedExpression."
}

func (t UpdateNotesTool) Call(ctx context.Context, input string) (models.ToolResult, error) {
	entries, err := t.decodeEntries(input)
	if err != nil {
		return models.ToolResult{}, err
	}
	t.called(t.Name(), "entries", len(entries))

	var (
		accepted []models.NoteEntry
		last     *models.StepRecord
	)
	for i, raw := range entries {
		var entry models.NoteEntry
		if err := unmarshal(raw, &entry); err != nil {
			t.log.Warn("note entry skipped", "index", i, "reason", "undecodable", "error", err)
			continue
		}
		if entry.StepNumber == 0 || entry.Description == "" || entry.UpdatedExpression == "" {
			t.log.Warn("note entry skipped", "index", i, "reason", "missing required fields")
			continue
		}
		step, ok := t.doc.Step(entry.StepNumber)
		if !ok {
			t.log.Warn("note entry skipped", "index", i, "reason", "invalid step number",
				"step", entry.StepNumber, "total_steps", t.doc.StepCount())
			continue
		}
		accepted = append(accepted, entry)
		last = &step
	}

	result := models.Ack(fmt.Sprintf("Notes updated for %d steps", len(accepted)))
	result.NotesProgress = &models.NotesProgress{TotalSteps: t.doc.StepCount()}
	if last == nil {
		return result, nil
	}
	title := last.Topic
	result.StepTitle = &title

	payload := models.UpdateNotesInput{Steps: accepted}
	return t.deliver(ctx, t.Name(), "notes", accepted[len(accepted)-1].StepNumber, payload, result), nil
}

// decodeEntries accepts either {"steps": [...]} or a bare array.
func (t UpdateNotesTool) decodeEntries(input string) ([]json.RawMessage, error) {
	data := bytes.TrimSpace([]byte(input))
	if bytes.HasPrefix(data, []byte("[")) {
		var entries []json.RawMessage
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s input: %v", ErrInvalidInput, t.Name(), err)
		}
		return entries, nil
	}
	var params struct {
		Steps []json.RawMessage `json:"steps"`
	}
	if err := decodeInput(t.Name(), string(data), &params); err != nil {
		return nil, err
	}
	return params.Steps, nil
}

func (t UpdateNotesTool) InputSchema() *jsonschema.Schema {
	return generateSchema[models.UpdateNotesInput]()
}

type BrainstormNotesTool struct {
	base
}

func NewBrainstormNotesTool(opts Options) BrainstormNotesTool {
	return BrainstormNotesTool{base: newBase(opts)}
}

func (t BrainstormNotesTool) Name() string {
	return "update_brainstorm_notes"
}

func (t BrainstormNotesTool) Description() string {
	return "Captures student discoveries, ideas, and progress through brainstorming and debate."
}

func (t BrainstormNotesTool) Call(ctx context.Context, input string) (models.ToolResult, error) {
	var params models.BrainstormNotesInput
	if err := decodeInput(t.Name(), input, &params); err != nil {
		return models.ToolResult{}, err
	}
	t.called(t.Name(), "discovery_type", params.DiscoveryType, "step", params.StepNumber, "ideas", params.StudentIdeas)

	if res, ok := CheckMembership("discovery type", params.DiscoveryType, DiscoveryTypes); !ok {
		return t.reject(t.Name(), res), nil
	}
	if res, ok := CheckStepNumber(params.StepNumber, t.doc); !ok {
		return t.reject(t.Name(), res), nil
	}

	message := "Captured student " + params.DiscoveryType
	if params.PartSolved != "" {
		message += " on " + params.PartSolved
	}
	result := models.Ack(message)
	result.BrainstormCapture = &models.BrainstormCapture{
		CurrentExpression: params.CurrentExpression,
		StepNumber:        params.StepNumber,
	}
	return t.deliver(ctx, t.Name(), params.DiscoveryType, params.StepNumber, params, result), nil
}

func (t BrainstormNotesTool) InputSchema() *jsonschema.Schema {
	return withEnum(generateSchema[models.BrainstormNotesInput](), "discovery_type", DiscoveryTypes)
}

// BrainstormFeedbackTool is the brainstormer's show_visual_feedback. The step
// number is optional and only checked when present.
type BrainstormFeedbackTool struct {
	base
}

func NewBrainstormFeedbackTool(opts Options) BrainstormFeedbackTool {
	return BrainstormFeedbackTool{base: newBase(opts)}
}

func (t BrainstormFeedbackTool) Name() string {
	return "show_visual_feedback"
}

func (t BrainstormFeedbackTool) Description() string {
	return "Shows visual feedback for discoveries, debates, and breakthroughs during brainstorming."
}

func (t BrainstormFeedbackTool) Call(ctx context.Context, input string) (models.ToolResult, error) {
	var params models.BrainstormFeedbackInput
	if err := decodeInput(t.Name(), input, &params); err != nil {
		return models.ToolResult{}, err
	}
	t.called(t.Name(), "type", params.Type, "content", params.Content, "label", params.Label)

	if res, ok := CheckMembership("feedback type", params.Type, BrainstormFeedbackTypes); !ok {
		return t.reject(t.Name(), res), nil
	}
	step := 0
	if params.StepNumber != nil {
		step = *params.StepNumber
		if res, ok := CheckStepNumber(step, t.doc); !ok {
			return t.reject(t.Name(), res), nil
		}
	}

	return t.deliver(ctx, t.Name(), params.Type, step, params,
		models.Ack(fmt.Sprintf("%s feedback shown successfully", params.Type))), nil
}

func (t BrainstormFeedbackTool) InputSchema() *jsonschema.Schema {
	return withEnum(generateSchema[models.BrainstormFeedbackInput](), "type", BrainstormFeedbackTypes)
}
