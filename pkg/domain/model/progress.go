package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

// ProgressEvent is a fire-and-forget notification about one completed step
// of a space pipeline. Events are emitted best effort and must never block
// or fail the pipeline that produced them.
type ProgressEvent struct {
	ID        string
	Space     string
	Step      types.StepKind
	Status    types.StepStatus
	Detail    string
	EmittedAt time.Time
}

// NewProgressEvent creates a progress event for a completed step
func NewProgressEvent(space string, step types.StepKind, status types.StepStatus, detail string) *ProgressEvent {
	return &ProgressEvent{
		ID:        uuid.New().String(),
		Space:     space,
		Step:      step,
		Status:    status,
		Detail:    detail,
		EmittedAt: time.Now(),
	}
}
