package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tutoragents/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const createEffectsTable = `
	CREATE SCHEMA IF NOT EXISTS tutoring;
	CREATE TABLE IF NOT EXISTS tutoring.ui_effects (
		id          UUID PRIMARY KEY,
		agent       TEXT NOT NULL,
		tool        TEXT NOT NULL,
		kind        TEXT NOT NULL,
		step_number INTEGER NOT NULL DEFAULT 0,
		payload     JSONB NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

type EffectRepository interface {
	SaveEffect(ctx context.Context, effect *models.UIEffect) error
	ListEffects(ctx context.Context, agent string, since time.Time, limit int) ([]*models.UIEffect, error)
}

type PostgresEffectRepository struct {
	db *sql.DB
}

func NewPostgresEffectRepository(databaseURL string) (*PostgresEffectRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresEffectRepository{db: db}, nil
}

// EnsureSchema creates the outbox table when it does not exist yet.
func (r *PostgresEffectRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createEffectsTable); err != nil {
		return fmt.Errorf("failed to create effects table: %w", err)
	}
	return nil
}

func (r *PostgresEffectRepository) SaveEffect(ctx context.Context, effect *models.UIEffect) error {
	if effect.ID == "" {
		effect.ID = uuid.NewString()
	}
	if effect.CreatedAt.IsZero() {
		effect.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(effect.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal effect payload: %w", err)
	}

	query := `
		INSERT INTO tutoring.ui_effects (id, agent, tool, kind, step_number, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		effect.ID, effect.Agent, effect.Tool, effect.Kind, effect.StepNumber, payload, effect.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert effect: %w", err)
	}

	return nil
}

// ListEffects returns the effects of one agent created after since, oldest
// first. An empty agent matches every agent.
func (r *PostgresEffectRepository) ListEffects(ctx context.Context, agent string, since time.Time, limit int) ([]*models.UIEffect, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, agent, tool, kind, step_number, payload, created_at
		FROM tutoring.ui_effects
		WHERE ($1 = '' OR agent = $1) AND created_at > $2
		ORDER BY created_at ASC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, agent, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query effects: %w", err)
	}
	defer rows.Close()

	var effects []*models.UIEffect
	for rows.Next() {
		effect := &models.UIEffect{}
		var payload []byte
		err := rows.Scan(&effect.ID, &effect.Agent, &effect.Tool, &effect.Kind,
			&effect.StepNumber, &payload, &effect.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan effect: %w", err)
		}
		if err := json.Unmarshal(payload, &effect.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode effect payload: %w", err)
		}
		effects = append(effects, effect)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate effects: %w", err)
	}

	return effects, nil
}

func (r *PostgresEffectRepository) Close() error {
	return r.db.Close()
}
