package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

func allSteps() model.Options {
	return model.Options{FriendRequest: true, DirectMessage: true, RoleGrant: true}
}

func TestSpaceOutcomeFinalize(t *testing.T) {
	t.Run("All enabled steps succeeded", func(t *testing.T) {
		o := model.NewSpaceOutcome("Alpha")
		o.RecordStep(model.StepResult{Kind: types.StepCreateSpace, Status: types.StepSucceeded})
		o.RecordStep(model.StepResult{Kind: types.StepFriendRequest, Status: types.StepSucceeded})
		o.RecordStep(model.StepResult{Kind: types.StepDirectMessage, Status: types.StepSucceeded})
		o.RecordStep(model.StepResult{Kind: types.StepRoleGrant, Status: types.StepSucceeded})
		o.Finalize(allSteps())
		gt.Equal(t, types.OutcomeSuccess, o.Status)
	})

	t.Run("Disabled steps do not count against success", func(t *testing.T) {
		o := model.NewSpaceOutcome("Alpha")
		o.RecordStep(model.StepResult{Kind: types.StepCreateSpace, Status: types.StepSucceeded})
		o.RecordStep(model.StepResult{Kind: types.StepFriendRequest, Status: types.StepSkipped})
		o.RecordStep(model.StepResult{Kind: types.StepDirectMessage, Status: types.StepSkipped})
		o.RecordStep(model.StepResult{Kind: types.StepRoleGrant, Status: types.StepSkipped})
		o.Finalize(model.Options{})
		gt.Equal(t, types.OutcomeSuccess, o.Status)
	})

	t.Run("Enabled step failed", func(t *testing.T) {
		o := model.NewSpaceOutcome("Alpha")
		o.RecordStep(model.StepResult{Kind: types.StepCreateSpace, Status: types.StepSucceeded})
		o.RecordStep(model.StepResult{Kind: types.StepDirectMessage, Status: types.StepFailed, Error: "no invite"})
		o.Finalize(model.Options{DirectMessage: true})
		gt.Equal(t, types.OutcomePartialSuccess, o.Status)
	})

	t.Run("Enabled step skipped by cancellation", func(t *testing.T) {
		o := model.NewSpaceOutcome("Alpha")
		o.RecordStep(model.StepResult{Kind: types.StepCreateSpace, Status: types.StepSucceeded})
		o.RecordStep(model.StepResult{Kind: types.StepFriendRequest, Status: types.StepSkipped})
		o.Finalize(model.Options{FriendRequest: true})
		gt.Equal(t, types.OutcomePartialSuccess, o.Status)
	})

	t.Run("Space creation failed", func(t *testing.T) {
		o := model.NewSpaceOutcome("Alpha")
		o.RecordStep(model.StepResult{Kind: types.StepCreateSpace, Status: types.StepFailed, Error: "boom"})
		o.Finalize(allSteps())
		gt.Equal(t, types.OutcomeFailed, o.Status)
	})

	t.Run("Not attempted is sticky", func(t *testing.T) {
		o := model.NewSpaceOutcome("Alpha")
		o.MarkNotAttempted()
		o.Finalize(allSteps())
		gt.Equal(t, types.OutcomeNotAttempted, o.Status)
		gt.Equal(t, 4, len(o.Steps))
		for _, s := range o.Steps {
			gt.Equal(t, types.StepSkipped, s.Status)
		}
	})
}

func TestProvisionResultFinalize(t *testing.T) {
	r := model.NewProvisionResult()
	gt.True(t, r.RunID != "")

	statuses := []types.OutcomeStatus{
		types.OutcomeSuccess,
		types.OutcomeSuccess,
		types.OutcomePartialSuccess,
		types.OutcomeFailed,
		types.OutcomeNotAttempted,
	}
	for i, st := range statuses {
		r.Outcomes = append(r.Outcomes, model.SpaceOutcome{Name: string(rune('A' + i)), Status: st})
	}

	r.Finalize()

	gt.Equal(t, 2, r.Counts.Succeeded)
	gt.Equal(t, 1, r.Counts.Partial)
	gt.Equal(t, 1, r.Counts.Failed)
	gt.Equal(t, 1, r.Counts.NotAttempted)
	gt.False(t, r.FinishedAt.Before(r.StartedAt))
}
