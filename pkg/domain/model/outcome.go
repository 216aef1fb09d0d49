package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

// StepResult records the terminal state of one onboarding step
type StepResult struct {
	Kind   types.StepKind
	Status types.StepStatus
	// Error holds the failure detail when Status is StepFailed
	Error string
	// Ambiguous marks a create call that timed out without a definitive
	// response; the remote side effect may have occurred (at-least-once),
	// so the result needs manual review for duplicates
	Ambiguous bool
}

// SpaceOutcome records the result of one requested space. The step list
// reflects true execution order, with CreateSpace always first; it is
// finalized once the space's pipeline ends and never mutated afterwards.
type SpaceOutcome struct {
	Name      string
	SpaceID   types.SpaceID
	InviteURL string
	Steps     []StepResult
	Status    types.OutcomeStatus
}

// NewSpaceOutcome starts an outcome record for a space pipeline
func NewSpaceOutcome(name string) *SpaceOutcome {
	return &SpaceOutcome{Name: name}
}

// RecordStep appends a step result preserving execution order
func (o *SpaceOutcome) RecordStep(result StepResult) {
	o.Steps = append(o.Steps, result)
}

// StepFor returns the recorded result for a step kind, if present
func (o *SpaceOutcome) StepFor(kind types.StepKind) (StepResult, bool) {
	for _, s := range o.Steps {
		if s.Kind == kind {
			return s, true
		}
	}
	return StepResult{}, false
}

// MarkNotAttempted finalizes the outcome for a space whose pipeline never
// started because the run was cancelled. All steps are recorded as skipped
// so the result still lists every requested space explicitly.
func (o *SpaceOutcome) MarkNotAttempted() {
	o.Steps = []StepResult{
		{Kind: types.StepCreateSpace, Status: types.StepSkipped},
		{Kind: types.StepFriendRequest, Status: types.StepSkipped},
		{Kind: types.StepDirectMessage, Status: types.StepSkipped},
		{Kind: types.StepRoleGrant, Status: types.StepSkipped},
	}
	o.Status = types.OutcomeNotAttempted
}

// Finalize derives the overall status from the recorded steps:
// Failed when CreateSpace itself failed, Success when CreateSpace and every
// enabled step succeeded, PartialSuccess otherwise.
func (o *SpaceOutcome) Finalize(opts Options) {
	if o.Status == types.OutcomeNotAttempted {
		return
	}

	create, ok := o.StepFor(types.StepCreateSpace)
	if !ok || create.Status != types.StepSucceeded {
		o.Status = types.OutcomeFailed
		return
	}

	enabled := map[types.StepKind]bool{
		types.StepFriendRequest: opts.FriendRequest,
		types.StepDirectMessage: opts.DirectMessage,
		types.StepRoleGrant:     opts.RoleGrant,
	}

	o.Status = types.OutcomeSuccess
	for _, step := range o.Steps {
		if step.Kind == types.StepCreateSpace || !enabled[step.Kind] {
			continue
		}
		if step.Status != types.StepSucceeded {
			o.Status = types.OutcomePartialSuccess
			return
		}
	}
}

// ResultCounts aggregates outcome statuses of a run
type ResultCounts struct {
	Succeeded    int
	Partial      int
	Failed       int
	NotAttempted int
}

// ProvisionResult is the final ordered result of a provisioning run,
// immutable once returned by the orchestrator
type ProvisionResult struct {
	RunID      string
	Outcomes   []SpaceOutcome
	Counts     ResultCounts
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewProvisionResult starts a result record for a run
func NewProvisionResult() *ProvisionResult {
	return &ProvisionResult{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// Finalize computes aggregate counts from the recorded outcomes
func (r *ProvisionResult) Finalize() {
	r.FinishedAt = time.Now()
	r.Counts = ResultCounts{}
	for _, o := range r.Outcomes {
		switch o.Status {
		case types.OutcomeSuccess:
			r.Counts.Succeeded++
		case types.OutcomePartialSuccess:
			r.Counts.Partial++
		case types.OutcomeNotAttempted:
			r.Counts.NotAttempted++
		default:
			r.Counts.Failed++
		}
	}
}
