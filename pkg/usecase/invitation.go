package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/roost/pkg/domain/interfaces"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
	"github.com/secmon-lab/roost/pkg/service/chatapi"
)

// Role created for the recipient when the role grant option is enabled
const adminRoleName = "AutoAdmin"

// Invitation executes the onboarding steps for one created space
type Invitation struct {
	api interfaces.ChatAPI
}

// NewInvitation creates an invitation workflow
func NewInvitation(api interfaces.ChatAPI) *Invitation {
	return &Invitation{api: api}
}

// Onboard runs the onboarding steps in fixed order: friend request, direct
// message with the invite link, role grant. Disabled steps are recorded as
// skipped. Step failures are captured as results and never escalate past
// this boundary; the ordered step list is returned unconditionally.
//
// The recipient must be an independent copy per space pipeline: a friend
// request response may resolve its user ID for the following steps.
func (u *Invitation) Onboard(ctx context.Context, space *model.CreatedSpace, inviteURL string, recipient *model.Recipient, opts model.Options) []model.StepResult {
	steps := make([]model.StepResult, 0, 3)
	steps = append(steps, u.friendRequest(ctx, recipient, opts))
	steps = append(steps, u.directMessage(ctx, space, inviteURL, recipient, opts))
	steps = append(steps, u.roleGrant(ctx, space, recipient, opts))
	return steps
}

func (u *Invitation) friendRequest(ctx context.Context, recipient *model.Recipient, opts model.Options) model.StepResult {
	if !opts.FriendRequest {
		return model.StepResult{Kind: types.StepFriendRequest, Status: types.StepSkipped}
	}
	if skipped, ok := canceledStep(ctx, types.StepFriendRequest); ok {
		return skipped
	}

	userID, err := u.api.SendFriendRequest(ctx, recipient)
	if err != nil {
		// A failed friend request does not block the following steps; a DM
		// can sometimes still be delivered to a non-friend
		ctxlog.From(ctx).Warn("friend request failed",
			"recipient", recipient.Display(), "error", err)
		return failedStep(types.StepFriendRequest, err)
	}

	if userID != "" {
		recipient.UserID = userID
	}
	return model.StepResult{Kind: types.StepFriendRequest, Status: types.StepSucceeded}
}

func (u *Invitation) directMessage(ctx context.Context, space *model.CreatedSpace, inviteURL string, recipient *model.Recipient, opts model.Options) model.StepResult {
	if !opts.DirectMessage {
		return model.StepResult{Kind: types.StepDirectMessage, Status: types.StepSkipped}
	}
	if skipped, ok := canceledStep(ctx, types.StepDirectMessage); ok {
		return skipped
	}

	if !recipient.Resolved() {
		return model.StepResult{
			Kind:   types.StepDirectMessage,
			Status: types.StepFailed,
			Error:  "recipient user ID is not resolved; cannot open a direct message",
		}
	}
	if inviteURL == "" {
		return model.StepResult{
			Kind:   types.StepDirectMessage,
			Status: types.StepFailed,
			Error:  "no invite link available for the space",
		}
	}

	content := fmt.Sprintf("Hello %s!\nYou have been invited to join **%s**.\nUse this invite link to join: %s",
		recipient.Display(), space.Name, inviteURL)

	if err := u.api.SendDirectMessage(ctx, recipient.UserID, content); err != nil {
		ctxlog.From(ctx).Warn("direct message failed",
			"recipient", recipient.Display(), "space", space.Name, "error", err)
		return failedStep(types.StepDirectMessage, err)
	}

	return model.StepResult{Kind: types.StepDirectMessage, Status: types.StepSucceeded}
}

// roleGrant creates the admin role and attempts the member assignment. The
// recipient may not have accepted the invite yet, so a grant failure is
// expected and recorded rather than escalated.
func (u *Invitation) roleGrant(ctx context.Context, space *model.CreatedSpace, recipient *model.Recipient, opts model.Options) model.StepResult {
	if !opts.RoleGrant {
		return model.StepResult{Kind: types.StepRoleGrant, Status: types.StepSkipped}
	}
	if skipped, ok := canceledStep(ctx, types.StepRoleGrant); ok {
		return skipped
	}

	if !recipient.Resolved() {
		return model.StepResult{
			Kind:   types.StepRoleGrant,
			Status: types.StepFailed,
			Error:  "recipient user ID is not resolved; cannot grant a role",
		}
	}

	roleID, err := u.api.CreateRole(ctx, space.ID, adminRoleName)
	if err != nil {
		return failedStep(types.StepRoleGrant, err)
	}

	if err := u.api.GrantRole(ctx, space.ID, recipient.UserID, roleID); err != nil {
		ctxlog.From(ctx).Warn("role grant failed; the recipient may not have joined yet",
			"recipient", recipient.Display(), "space", space.Name, "error", err)
		return failedStep(types.StepRoleGrant, err)
	}

	return model.StepResult{Kind: types.StepRoleGrant, Status: types.StepSucceeded}
}

func failedStep(kind types.StepKind, err error) model.StepResult {
	return model.StepResult{
		Kind:      kind,
		Status:    types.StepFailed,
		Error:     err.Error(),
		Ambiguous: chatapi.IsAmbiguous(err),
	}
}

// canceledStep skips a step when the run was canceled; the pipeline finishes
// its current step and then stops without attempting further calls
func canceledStep(ctx context.Context, kind types.StepKind) (model.StepResult, bool) {
	if ctx.Err() == nil {
		return model.StepResult{}, false
	}
	return model.StepResult{
		Kind:   kind,
		Status: types.StepSkipped,
		Error:  "run canceled before the step started",
	}, true
}
