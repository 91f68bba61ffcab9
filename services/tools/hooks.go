package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutoragents/models"
	"tutoragents/platform/logger"

	"github.com/google/uuid"
)

// EffectHook delivers the UI side effect of an accepted tool call. Tools never
// call the UI themselves; whoever builds the tools decides where effects go.
type EffectHook interface {
	Apply(ctx context.Context, effect models.UIEffect) error
}

type HookFunc func(ctx context.Context, effect models.UIEffect) error

func (f HookFunc) Apply(ctx context.Context, effect models.UIEffect) error {
	return f(ctx, effect)
}

// LogHook only records the effect. It is the default when nothing else is wired.
type LogHook struct {
	log *logger.Logger
}

func NewLogHook(log *logger.Logger) LogHook {
	return LogHook{log: logger.OrNop(log)}
}

func (h LogHook) Apply(ctx context.Context, effect models.UIEffect) error {
	h.log.Info("ui effect",
		"id", effect.ID,
		"agent", effect.Agent,
		"tool", effect.Tool,
		"kind", effect.Kind,
		"step", effect.StepNumber,
	)
	return nil
}

type EffectRepository interface {
	SaveEffect(ctx context.Context, effect *models.UIEffect) error
}

// OutboxHook persists effects so a UI poller can pick them up.
type OutboxHook struct {
	repo EffectRepository
}

func NewOutboxHook(repo EffectRepository) OutboxHook {
	return OutboxHook{repo: repo}
}

func (h OutboxHook) Apply(ctx context.Context, effect models.UIEffect) error {
	if err := h.repo.SaveEffect(ctx, &effect); err != nil {
		return fmt.Errorf("failed to save effect: %w", err)
	}
	return nil
}

// Chain applies every hook in order and joins their failures.
func Chain(hooks ...EffectHook) EffectHook {
	return HookFunc(func(ctx context.Context, effect models.UIEffect) error {
		var errs []error
		for _, h := range hooks {
			if err := h.Apply(ctx, effect); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

func newEffect(agent, tool, kind string, step int, payload map[string]any) models.UIEffect {
	return models.UIEffect{
		ID:         uuid.NewString(),
		Agent:      agent,
		Tool:       tool,
		Kind:       kind,
		StepNumber: step,
		Payload:    payload,
		CreatedAt:  time.Now().UTC(),
	}
}
