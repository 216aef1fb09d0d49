package interfaces

//go:generate moq -out mocks/chat_mock.go -pkg mocks . ChatAPI

import (
	"context"

	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

// ChatAPI defines the logical operations the orchestrator needs from the
// remote chat platform. The concrete wire encoding, rate-limit accounting
// and retry behavior live in pkg/service/chatapi.
type ChatAPI interface {
	// CreateSpace creates a new space and returns its identifiers
	CreateSpace(ctx context.Context, name string) (*model.CreatedSpace, error)

	// CreateDefaultChannel creates a text channel usable for invites when
	// the space was created without a system channel
	CreateDefaultChannel(ctx context.Context, spaceID types.SpaceID) (types.ChannelID, error)

	// CreateInvite issues a shareable invite for a channel
	CreateInvite(ctx context.Context, channelID types.ChannelID) (*model.Invite, error)

	// SendFriendRequest sends a friend request to the recipient and returns
	// the resolved user ID
	SendFriendRequest(ctx context.Context, recipient *model.Recipient) (types.UserID, error)

	// SendDirectMessage delivers a direct message to a user
	SendDirectMessage(ctx context.Context, userID types.UserID, content string) error

	// CreateRole creates a role with elevated permissions in a space
	CreateRole(ctx context.Context, spaceID types.SpaceID, name string) (types.RoleID, error)

	// GrantRole assigns a role to a space member
	GrantRole(ctx context.Context, spaceID types.SpaceID, userID types.UserID, roleID types.RoleID) error
}
