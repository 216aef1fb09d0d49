package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Request holds the provisioning request inputs collected from flags,
// environment, a plan file, or interactive prompts
type Request struct {
	Spaces        []string
	Recipient     string
	FriendRequest bool
	DirectMessage bool
	RoleGrant     bool
	PlanPath      string
}

// Flags returns CLI flags for Request configuration
func (r *Request) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "space",
			Usage:       "Space name to create (repeatable; duplicates allowed)",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ROOST_SPACES"),
			Destination: &r.Spaces,
		},
		&cli.StringFlag{
			Name:        "recipient",
			Usage:       "Onboarding recipient: numeric user ID or username#1234",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ROOST_RECIPIENT"),
			Destination: &r.Recipient,
		},
		&cli.BoolFlag{
			Name:        "friend-request",
			Usage:       "Send a friend request to the recipient",
			Category:    "Provisioning",
			Value:       true,
			Sources:     cli.EnvVars("ROOST_FRIEND_REQUEST"),
			Destination: &r.FriendRequest,
		},
		&cli.BoolFlag{
			Name:        "direct-message",
			Usage:       "Send the invite link to the recipient via direct message",
			Category:    "Provisioning",
			Value:       true,
			Sources:     cli.EnvVars("ROOST_DIRECT_MESSAGE"),
			Destination: &r.DirectMessage,
		},
		&cli.BoolFlag{
			Name:        "role-grant",
			Usage:       "Create an administrator role and grant it to the recipient",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ROOST_ROLE_GRANT"),
			Destination: &r.RoleGrant,
		},
		&cli.StringFlag{
			Name:        "plan",
			Usage:       "Path to a YAML provisioning plan file",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ROOST_PLAN"),
			Destination: &r.PlanPath,
		},
	}
}

// LogValue returns structured log value
func (r Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("spaces", len(r.Spaces)),
		slog.String("recipient", r.Recipient),
		slog.Bool("friend_request", r.FriendRequest),
		slog.Bool("direct_message", r.DirectMessage),
		slog.Bool("role_grant", r.RoleGrant),
		slog.String("plan", r.PlanPath),
	)
}
