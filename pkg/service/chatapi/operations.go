package chatapi

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

// Invite tuning mirrors the platform defaults for onboarding links
const (
	inviteMaxAgeSeconds = 86400
	defaultChannelName  = "general"
)

// CreateSpace creates a new space (guild) and returns its identifiers
func (c *Client) CreateSpace(ctx context.Context, name string) (*model.CreatedSpace, error) {
	req := struct {
		Name string `json:"name"`
	}{Name: name}

	var resp struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		SystemChannelID string `json:"system_channel_id"`
	}

	if err := c.do(ctx, http.MethodPost, "/guilds", RouteCreateSpace, req, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to create space", goerr.V("name", name))
	}
	if resp.ID == "" {
		return nil, goerr.New("space creation response did not contain an ID",
			goerr.T(ErrTagUnknown), goerr.V("name", name))
	}

	return &model.CreatedSpace{
		ID:              types.SpaceID(resp.ID),
		Name:            resp.Name,
		SystemChannelID: types.ChannelID(resp.SystemChannelID),
	}, nil
}

// CreateDefaultChannel creates a text channel for invites in a space that
// was created without a system channel
func (c *Client) CreateDefaultChannel(ctx context.Context, spaceID types.SpaceID) (types.ChannelID, error) {
	req := struct {
		Name string `json:"name"`
		Type int    `json:"type"`
	}{Name: defaultChannelName, Type: 0}

	var resp struct {
		ID string `json:"id"`
	}

	path := "/guilds/" + spaceID.String() + "/channels"
	if err := c.do(ctx, http.MethodPost, path, RouteCreateChannel, req, &resp); err != nil {
		return "", goerr.Wrap(err, "failed to create default channel", goerr.V("spaceID", spaceID))
	}

	return types.ChannelID(resp.ID), nil
}

// CreateInvite issues a shareable invite for a channel
func (c *Client) CreateInvite(ctx context.Context, channelID types.ChannelID) (*model.Invite, error) {
	req := struct {
		MaxAge  int  `json:"max_age"`
		MaxUses int  `json:"max_uses"`
		Unique  bool `json:"unique"`
	}{MaxAge: inviteMaxAgeSeconds, MaxUses: 0, Unique: true}

	var resp struct {
		Code string `json:"code"`
	}

	path := "/channels/" + channelID.String() + "/invites"
	if err := c.do(ctx, http.MethodPost, path, RouteCreateInvite, req, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to create invite", goerr.V("channelID", channelID))
	}

	return &model.Invite{
		Code:      types.InviteCode(resp.Code),
		URL:       c.inviteBase + "/" + resp.Code,
		ChannelID: channelID,
	}, nil
}

// SendFriendRequest sends a friend request to the recipient. When the
// recipient is identified by handle, the resolved user ID from the response
// is returned; an empty ID with a nil error means the request was accepted
// but the remote API did not echo the user back.
func (c *Client) SendFriendRequest(ctx context.Context, recipient *model.Recipient) (types.UserID, error) {
	if recipient.Resolved() {
		req := struct {
			Type int `json:"type"`
		}{Type: 1}

		path := "/users/@me/relationships/" + recipient.UserID.String()
		if err := c.do(ctx, http.MethodPut, path, RouteRelationship, req, nil); err != nil {
			return "", goerr.Wrap(err, "failed to send friend request",
				goerr.V("recipient", recipient.Display()))
		}
		return recipient.UserID, nil
	}

	req := struct {
		Username      string `json:"username"`
		Discriminator string `json:"discriminator"`
	}{Username: recipient.Username, Discriminator: recipient.Discriminator}

	var resp struct {
		ID   string `json:"id"`
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}

	if err := c.do(ctx, http.MethodPost, "/users/@me/relationships", RouteRelationship, req, &resp); err != nil {
		return "", goerr.Wrap(err, "failed to send friend request",
			goerr.V("recipient", recipient.Display()))
	}

	if resp.User.ID != "" {
		return types.UserID(resp.User.ID), nil
	}
	return types.UserID(resp.ID), nil
}

// SendDirectMessage opens a direct message channel with the user and posts
// the content into it
func (c *Client) SendDirectMessage(ctx context.Context, userID types.UserID, content string) error {
	openReq := struct {
		RecipientID string `json:"recipient_id"`
	}{RecipientID: userID.String()}

	var openResp struct {
		ID string `json:"id"`
	}

	if err := c.do(ctx, http.MethodPost, "/users/@me/channels", RouteOpenDM, openReq, &openResp); err != nil {
		return goerr.Wrap(err, "failed to open direct message channel", goerr.V("userID", userID))
	}

	msgReq := struct {
		Content string `json:"content"`
	}{Content: content}

	path := "/channels/" + openResp.ID + "/messages"
	if err := c.do(ctx, http.MethodPost, path, RouteCreateMessage, msgReq, nil); err != nil {
		return goerr.Wrap(err, "failed to send direct message", goerr.V("userID", userID))
	}

	return nil
}

// CreateRole creates a role with administrator permissions in a space
func (c *Client) CreateRole(ctx context.Context, spaceID types.SpaceID, name string) (types.RoleID, error) {
	req := struct {
		Name        string `json:"name"`
		Permissions string `json:"permissions"`
	}{Name: name, Permissions: "8"} // administrator permission bit

	var resp struct {
		ID string `json:"id"`
	}

	path := "/guilds/" + spaceID.String() + "/roles"
	if err := c.do(ctx, http.MethodPost, path, RouteCreateRole, req, &resp); err != nil {
		return "", goerr.Wrap(err, "failed to create role",
			goerr.V("spaceID", spaceID), goerr.V("name", name))
	}

	return types.RoleID(resp.ID), nil
}

// GrantRole assigns a role to a space member
func (c *Client) GrantRole(ctx context.Context, spaceID types.SpaceID, userID types.UserID, roleID types.RoleID) error {
	path := "/guilds/" + spaceID.String() + "/members/" + userID.String() + "/roles/" + roleID.String()
	if err := c.do(ctx, http.MethodPut, path, RouteAssignRole, nil, nil); err != nil {
		return goerr.Wrap(err, "failed to grant role",
			goerr.V("spaceID", spaceID), goerr.V("userID", userID), goerr.V("roleID", roleID))
	}
	return nil
}

// CheckAuth verifies the configured token against the current-user endpoint
func (c *Client) CheckAuth(ctx context.Context) (types.UserID, error) {
	var resp struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	if err := c.do(ctx, http.MethodGet, "/users/@me", RouteCurrentUser, nil, &resp); err != nil {
		return "", goerr.Wrap(err, "failed to verify authentication")
	}

	return types.UserID(resp.ID), nil
}
