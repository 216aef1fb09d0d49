package model

import "github.com/secmon-lab/roost/pkg/domain/types"

// CreatedSpace holds the identifiers returned by a successful space creation
type CreatedSpace struct {
	ID   types.SpaceID
	Name string
	// SystemChannelID is the default text channel, if the remote API
	// assigned one at creation time
	SystemChannelID types.ChannelID
}

// Invite holds an invite issued for a space channel
type Invite struct {
	Code      types.InviteCode
	URL       string
	ChannelID types.ChannelID
}
