package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/domain/interfaces"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
	"github.com/secmon-lab/roost/pkg/service/chatapi"
	"github.com/secmon-lab/roost/pkg/utils/apperr"
	"github.com/secmon-lab/roost/pkg/utils/async"
)

// Provision orchestrates a batch provisioning run: it creates each requested
// space, runs the invitation workflow, and aggregates per-space outcomes.
// A single space's failure never aborts the batch; only configuration errors
// detected before the first network call are fatal.
type Provision struct {
	api        interfaces.ChatAPI
	invitation *Invitation
	notifier   interfaces.Notifier
	observer   interfaces.ProgressObserver
}

// ProvisionOption configures the orchestrator
type ProvisionOption func(*Provision)

// WithNotifier injects a result notifier for per-space reporting
func WithNotifier(n interfaces.Notifier) ProvisionOption {
	return func(p *Provision) {
		p.notifier = n
	}
}

// WithObserver injects a fire-and-forget progress observer
func WithObserver(o interfaces.ProgressObserver) ProvisionOption {
	return func(p *Provision) {
		p.observer = o
	}
}

// NewProvision creates a provisioning orchestrator
func NewProvision(api interfaces.ChatAPI, opts ...ProvisionOption) *Provision {
	p := &Provision{
		api:        api,
		invitation: NewInvitation(api),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the provisioning run. The returned result always contains one
// outcome per requested space in the original request order, regardless of
// completion order or cancellation.
func (u *Provision) Run(ctx context.Context, req *model.ProvisionRequest) (*model.ProvisionResult, error) {
	if req == nil {
		return nil, goerr.New("provision request is nil", goerr.T(model.ErrTagConfiguration))
	}
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid provision request")
	}

	logger := ctxlog.From(ctx)
	logger.Info("starting provisioning run",
		"spaces", len(req.Spaces),
		"concurrency", req.Concurrency,
		"friendRequest", req.Options.FriendRequest,
		"directMessage", req.Options.DirectMessage,
		"roleGrant", req.Options.RoleGrant,
	)

	result := model.NewProvisionResult()
	outcomes := make([]model.SpaceOutcome, len(req.Spaces))

	sem := make(chan struct{}, req.Concurrency)
	var wg sync.WaitGroup

	for i, name := range req.Spaces {
		if err := acquire(ctx, sem); err != nil {
			// Cancellation: unstarted spaces are recorded explicitly
			// instead of being silently dropped
			outcome := model.NewSpaceOutcome(name)
			outcome.MarkNotAttempted()
			outcomes[i] = *outcome
			continue
		}

		wg.Add(1)
		go func(idx int, spaceName string) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[idx] = *u.provisionSpace(ctx, spaceName, req)
		}(i, name)
	}

	wg.Wait()

	result.Outcomes = outcomes
	result.Finalize()

	logger.Info("provisioning run finished",
		"succeeded", result.Counts.Succeeded,
		"partial", result.Counts.Partial,
		"failed", result.Counts.Failed,
		"notAttempted", result.Counts.NotAttempted,
	)

	return result, nil
}

// provisionSpace runs one space's pipeline: create the space, issue an
// invite, then run the onboarding steps strictly sequentially
func (u *Provision) provisionSpace(ctx context.Context, name string, req *model.ProvisionRequest) *model.SpaceOutcome {
	logger := ctxlog.From(ctx)
	outcome := model.NewSpaceOutcome(name)

	space, err := u.api.CreateSpace(ctx, name)
	if err != nil {
		logger.Warn("space creation failed", "space", name, "error", err)
		outcome.RecordStep(model.StepResult{
			Kind:      types.StepCreateSpace,
			Status:    types.StepFailed,
			Error:     err.Error(),
			Ambiguous: chatapi.IsAmbiguous(err),
		})
		u.emit(ctx, name, types.StepCreateSpace, types.StepFailed, err.Error())

		// Later steps never report success when creation failed
		for _, kind := range []types.StepKind{types.StepFriendRequest, types.StepDirectMessage, types.StepRoleGrant} {
			outcome.RecordStep(model.StepResult{Kind: kind, Status: types.StepSkipped})
		}
		outcome.Finalize(req.Options)
		u.notifySpace(ctx, outcome)
		return outcome
	}

	outcome.SpaceID = space.ID
	outcome.RecordStep(model.StepResult{Kind: types.StepCreateSpace, Status: types.StepSucceeded})
	u.emit(ctx, name, types.StepCreateSpace, types.StepSucceeded, "")
	logger.Info("space created", "space", name, "spaceID", space.ID)

	inviteURL := u.ensureInvite(ctx, space)
	outcome.InviteURL = inviteURL

	var recipient *model.Recipient
	if req.Recipient != nil {
		recipient = req.Recipient.Clone()
	} else {
		recipient = &model.Recipient{}
	}

	for _, step := range u.invitation.Onboard(ctx, space, inviteURL, recipient, req.Options) {
		outcome.RecordStep(step)
		u.emit(ctx, name, step.Kind, step.Status, step.Error)
	}

	outcome.Finalize(req.Options)
	u.notifySpace(ctx, outcome)
	return outcome
}

// ensureInvite issues an invite link for the space, creating a default text
// channel first when the space came without one. Best effort: a missing
// invite surfaces later as a direct message step failure.
func (u *Provision) ensureInvite(ctx context.Context, space *model.CreatedSpace) string {
	channelID := space.SystemChannelID
	if channelID == "" {
		created, err := u.api.CreateDefaultChannel(ctx, space.ID)
		if err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to create default channel", goerr.V("space", space.Name)))
			return ""
		}
		channelID = created
	}

	invite, err := u.api.CreateInvite(ctx, channelID)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to create invite", goerr.V("space", space.Name)))
		return ""
	}
	return invite.URL
}

// emit publishes a progress event without ever blocking the pipeline
func (u *Provision) emit(ctx context.Context, space string, step types.StepKind, status types.StepStatus, detail string) {
	if u.observer == nil {
		return
	}

	event := model.NewProgressEvent(space, step, status, detail)
	async.Dispatch(ctx, func(ctx context.Context) error {
		u.observer.OnStep(ctx, event)
		return nil
	})
}

// notifySpace reports a finalized outcome fire-and-forget; delivery failure
// never affects the pipeline
func (u *Provision) notifySpace(ctx context.Context, outcome *model.SpaceOutcome) {
	if u.notifier == nil {
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		return u.notifier.NotifySpace(ctx, outcome)
	})
}

func acquire(ctx context.Context, sem chan struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sem <- struct{}{}:
		return nil
	}
}
