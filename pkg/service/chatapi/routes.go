package chatapi

import "github.com/secmon-lab/roost/pkg/domain/types"

// Rate-limit bucket keys, one per API operation category. Path parameters
// are excluded so all calls of a category share one budget window.
const (
	RouteCreateSpace   types.RouteKey = "POST /guilds"
	RouteCreateChannel types.RouteKey = "POST /guilds/channels"
	RouteCreateInvite  types.RouteKey = "POST /channels/invites"
	RouteRelationship  types.RouteKey = "PUT /users/@me/relationships"
	RouteOpenDM        types.RouteKey = "POST /users/@me/channels"
	RouteCreateMessage types.RouteKey = "POST /channels/messages"
	RouteCreateRole    types.RouteKey = "POST /guilds/roles"
	RouteAssignRole    types.RouteKey = "PUT /guilds/members/roles"
	RouteCurrentUser   types.RouteKey = "GET /users/@me"
)

// ambiguousOnTimeout reports whether a timed-out call on the route may have
// left a visible side effect that must not be blindly re-issued. Creating a
// space or an invite twice produces duplicates the caller cannot undo, so
// those timeouts are surfaced instead of retried (at-least-once semantics).
func ambiguousOnTimeout(route types.RouteKey) bool {
	switch route {
	case RouteCreateSpace, RouteCreateInvite:
		return true
	default:
		return false
	}
}
