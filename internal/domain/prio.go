package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PrioLevelUrgent is the level the dashboard summary singles out.
const PrioLevelUrgent = "urgent"

// ErrEmptyPrioLevel is returned when a priority has no level text.
var ErrEmptyPrioLevel = fmt.Errorf("%w: prio level cannot be empty", ErrValidation)

// Prio is the required priority of a task. Level is free text ("urgent",
// "medium", "low"); IconPath points at the client-side icon asset.
type Prio struct {
	ID        uuid.UUID `json:"id"`
	Level     string    `json:"level"`
	IconPath  string    `json:"icon_path"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPrio creates a new Prio with a fresh ID.
// Returns an error if validation fails.
func NewPrio(level, iconPath string) (*Prio, error) {
	prio := &Prio{
		ID:        uuid.New(),
		Level:     level,
		IconPath:  iconPath,
		CreatedAt: time.Now().UTC(),
	}

	if err := prio.Validate(); err != nil {
		return nil, err
	}

	return prio, nil
}

// Validate checks if the Prio has valid data.
func (p *Prio) Validate() error {
	if p.Level == "" {
		return ErrEmptyPrioLevel
	}
	return nil
}

// IsUrgent reports whether this priority is the urgent level.
func (p *Prio) IsUrgent() bool {
	return p.Level == PrioLevelUrgent
}
