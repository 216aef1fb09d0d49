package types

// SpaceID represents a provisioned space (guild) identifier
type SpaceID string

// String returns the string representation
func (id SpaceID) String() string {
	return string(id)
}

// ChannelID represents a text channel identifier within a space
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// UserID represents a remote platform user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// RoleID represents a role identifier within a space
type RoleID string

// String returns the string representation
func (id RoleID) String() string {
	return string(id)
}

// InviteCode represents an invite code issued for a space channel
type InviteCode string

// String returns the string representation
func (c InviteCode) String() string {
	return string(c)
}

// RouteKey identifies a rate-limit bucket for an API operation category
type RouteKey string

// String returns the string representation
func (k RouteKey) String() string {
	return string(k)
}
