package model

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Plan is a declarative provisioning plan loaded from a YAML file as an
// alternative to interactive prompts
type Plan struct {
	Spaces    []string    `yaml:"spaces"`
	Recipient string      `yaml:"recipient"`
	Options   PlanOptions `yaml:"options"`
	Webhook   PlanWebhook `yaml:"webhook"`
}

// PlanOptions mirrors Options with YAML tags
type PlanOptions struct {
	FriendRequest bool `yaml:"friend_request"`
	DirectMessage bool `yaml:"direct_message"`
	RoleGrant     bool `yaml:"role_grant"`
}

// PlanWebhook holds optional webhook reporting settings
type PlanWebhook struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
}

// LoadPlan reads and parses a provisioning plan file
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read plan file",
			goerr.T(ErrTagConfiguration), goerr.V("path", path))
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, goerr.Wrap(err, "failed to parse plan file",
			goerr.T(ErrTagConfiguration), goerr.V("path", path))
	}

	return &plan, nil
}

// ToOptions converts the plan options to domain options
func (p *Plan) ToOptions() Options {
	return Options{
		FriendRequest: p.Options.FriendRequest,
		DirectMessage: p.Options.DirectMessage,
		RoleGrant:     p.Options.RoleGrant,
	}
}
