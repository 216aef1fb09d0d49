package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roost/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
	"github.com/secmon-lab/roost/pkg/service/chatapi"
	"github.com/secmon-lab/roost/pkg/usecase"
)

func testSpace() *model.CreatedSpace {
	return &model.CreatedSpace{ID: "100", Name: "Alpha", SystemChannelID: "200"}
}

func stepByKind(t *testing.T, steps []model.StepResult, kind types.StepKind) model.StepResult {
	t.Helper()
	for _, s := range steps {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("step %s not found", kind)
	return model.StepResult{}
}

func TestInvitationOnboard(t *testing.T) {
	ctx := context.Background()

	t.Run("All steps succeed in order", func(t *testing.T) {
		mock := &mocks.ChatAPIMock{
			SendFriendRequestFunc: func(ctx context.Context, recipient *model.Recipient) (types.UserID, error) {
				return "777", nil
			},
			SendDirectMessageFunc: func(ctx context.Context, userID types.UserID, content string) error {
				gt.Equal(t, types.UserID("777"), userID)
				return nil
			},
			CreateRoleFunc: func(ctx context.Context, spaceID types.SpaceID, name string) (types.RoleID, error) {
				gt.Equal(t, "AutoAdmin", name)
				return "r1", nil
			},
			GrantRoleFunc: func(ctx context.Context, spaceID types.SpaceID, userID types.UserID, roleID types.RoleID) error {
				return nil
			},
		}

		recipient := &model.Recipient{Raw: "alice#0042", Username: "alice", Discriminator: "0042"}
		opts := model.Options{FriendRequest: true, DirectMessage: true, RoleGrant: true}

		steps := usecase.NewInvitation(mock).Onboard(ctx, testSpace(), "https://invite.example.com/abc", recipient, opts)

		gt.Equal(t, 3, len(steps))
		gt.Equal(t, types.StepFriendRequest, steps[0].Kind)
		gt.Equal(t, types.StepDirectMessage, steps[1].Kind)
		gt.Equal(t, types.StepRoleGrant, steps[2].Kind)
		for _, s := range steps {
			gt.Equal(t, types.StepSucceeded, s.Status)
		}

		// The friend request response resolved the recipient
		gt.Equal(t, types.UserID("777"), recipient.UserID)
	})

	t.Run("Disabled steps are skipped without API calls", func(t *testing.T) {
		mock := &mocks.ChatAPIMock{
			SendDirectMessageFunc: func(ctx context.Context, userID types.UserID, content string) error {
				return nil
			},
		}

		recipient := &model.Recipient{Raw: "123456789", UserID: "123456789"}
		opts := model.Options{DirectMessage: true}

		steps := usecase.NewInvitation(mock).Onboard(ctx, testSpace(), "https://invite.example.com/abc", recipient, opts)

		gt.Equal(t, types.StepSkipped, stepByKind(t, steps, types.StepFriendRequest).Status)
		gt.Equal(t, types.StepSucceeded, stepByKind(t, steps, types.StepDirectMessage).Status)
		gt.Equal(t, types.StepSkipped, stepByKind(t, steps, types.StepRoleGrant).Status)
		gt.Equal(t, 0, len(mock.SendFriendRequestCalls()))
		gt.Equal(t, 0, len(mock.CreateRoleCalls()))
	})

	t.Run("Friend request failure does not block the direct message", func(t *testing.T) {
		mock := &mocks.ChatAPIMock{
			SendFriendRequestFunc: func(ctx context.Context, recipient *model.Recipient) (types.UserID, error) {
				return "", goerr.New("blocked")
			},
			SendDirectMessageFunc: func(ctx context.Context, userID types.UserID, content string) error {
				return nil
			},
		}

		recipient := &model.Recipient{Raw: "123456789", UserID: "123456789"}
		opts := model.Options{FriendRequest: true, DirectMessage: true}

		steps := usecase.NewInvitation(mock).Onboard(ctx, testSpace(), "https://invite.example.com/abc", recipient, opts)

		gt.Equal(t, types.StepFailed, stepByKind(t, steps, types.StepFriendRequest).Status)
		gt.Equal(t, types.StepSucceeded, stepByKind(t, steps, types.StepDirectMessage).Status)
	})

	t.Run("Direct message fails for an unresolved recipient", func(t *testing.T) {
		mock := &mocks.ChatAPIMock{
			SendFriendRequestFunc: func(ctx context.Context, recipient *model.Recipient) (types.UserID, error) {
				// Handle accepted but no user echoed back
				return "", nil
			},
		}

		recipient := &model.Recipient{Raw: "alice#0042", Username: "alice", Discriminator: "0042"}
		opts := model.Options{FriendRequest: true, DirectMessage: true}

		steps := usecase.NewInvitation(mock).Onboard(ctx, testSpace(), "https://invite.example.com/abc", recipient, opts)

		dm := stepByKind(t, steps, types.StepDirectMessage)
		gt.Equal(t, types.StepFailed, dm.Status)
		gt.S(t, dm.Error).Contains("not resolved")
		gt.Equal(t, 0, len(mock.SendDirectMessageCalls()))
	})

	t.Run("Direct message fails without an invite link", func(t *testing.T) {
		mock := &mocks.ChatAPIMock{}

		recipient := &model.Recipient{Raw: "123456789", UserID: "123456789"}
		opts := model.Options{DirectMessage: true}

		steps := usecase.NewInvitation(mock).Onboard(ctx, testSpace(), "", recipient, opts)

		dm := stepByKind(t, steps, types.StepDirectMessage)
		gt.Equal(t, types.StepFailed, dm.Status)
		gt.S(t, dm.Error).Contains("invite")
	})

	t.Run("Role grant failure is recorded as a step failure", func(t *testing.T) {
		mock := &mocks.ChatAPIMock{
			CreateRoleFunc: func(ctx context.Context, spaceID types.SpaceID, name string) (types.RoleID, error) {
				return "r1", nil
			},
			GrantRoleFunc: func(ctx context.Context, spaceID types.SpaceID, userID types.UserID, roleID types.RoleID) error {
				return goerr.New("member not found")
			},
		}

		recipient := &model.Recipient{Raw: "123456789", UserID: "123456789"}
		opts := model.Options{RoleGrant: true}

		steps := usecase.NewInvitation(mock).Onboard(ctx, testSpace(), "https://invite.example.com/abc", recipient, opts)

		grant := stepByKind(t, steps, types.StepRoleGrant)
		gt.Equal(t, types.StepFailed, grant.Status)
		gt.S(t, grant.Error).Contains("member not found")
	})

	t.Run("Ambiguous API errors are flagged on the step", func(t *testing.T) {
		mock := &mocks.ChatAPIMock{
			SendFriendRequestFunc: func(ctx context.Context, recipient *model.Recipient) (types.UserID, error) {
				return "", goerr.New("timed out", goerr.T(chatapi.ErrTagAmbiguous))
			},
		}

		recipient := &model.Recipient{Raw: "123456789", UserID: "123456789"}
		opts := model.Options{FriendRequest: true}

		steps := usecase.NewInvitation(mock).Onboard(ctx, testSpace(), "", recipient, opts)

		fr := stepByKind(t, steps, types.StepFriendRequest)
		gt.Equal(t, types.StepFailed, fr.Status)
		gt.True(t, fr.Ambiguous)
	})

	t.Run("Cancellation skips the remaining steps", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		mock := &mocks.ChatAPIMock{}
		recipient := &model.Recipient{Raw: "123456789", UserID: "123456789"}
		opts := model.Options{FriendRequest: true, DirectMessage: true, RoleGrant: true}

		steps := usecase.NewInvitation(mock).Onboard(canceled, testSpace(), "https://invite.example.com/abc", recipient, opts)

		for _, s := range steps {
			gt.Equal(t, types.StepSkipped, s.Status)
		}
		gt.Equal(t, 0, len(mock.SendFriendRequestCalls()))
	})
}
