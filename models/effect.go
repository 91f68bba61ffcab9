package models

import "time"

// UIEffect is the side effect an accepted tool call asks the UI layer to perform.
type UIEffect struct {
	ID         string         `json:"id" db:"id"`
	Agent      string         `json:"agent" db:"agent"`
	Tool       string         `json:"tool" db:"tool"`
	Kind       string         `json:"kind" db:"kind"`
	StepNumber int            `json:"step_number,omitempty" db:"step_number"`
	Payload    map[string]any `json:"payload,omitempty" db:"payload"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

type EffectListResponse struct {
	Effects []*UIEffect `json:"effects"`
}
