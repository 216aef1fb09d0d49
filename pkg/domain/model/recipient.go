package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

var (
	numericIDPattern     = regexp.MustCompile(`^\d{5,}$`)
	discriminatorPattern = regexp.MustCompile(`^\d{4}$`)
)

// Recipient identifies the user to be onboarded into each provisioned space.
// It is parsed from either a numeric user ID or a username#1234 handle; when
// only a handle is known, the user ID is resolved from the friend request
// response during the run.
type Recipient struct {
	Raw           string
	UserID        types.UserID
	Username      string
	Discriminator string
}

// ParseRecipient parses a raw recipient identifier
func ParseRecipient(raw string) (*Recipient, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, goerr.Wrap(ErrInvalidRecipient, "empty identifier")
	}

	if numericIDPattern.MatchString(raw) {
		return &Recipient{
			Raw:    raw,
			UserID: types.UserID(raw),
		}, nil
	}

	if name, disc, ok := strings.Cut(raw, "#"); ok {
		if name == "" || !discriminatorPattern.MatchString(disc) {
			return nil, goerr.Wrap(ErrInvalidRecipient, "malformed handle", goerr.V("identifier", raw))
		}
		return &Recipient{
			Raw:           raw,
			Username:      name,
			Discriminator: disc,
		}, nil
	}

	return nil, goerr.Wrap(ErrInvalidRecipient, "unrecognized identifier", goerr.V("identifier", raw))
}

// Resolved reports whether the recipient's numeric user ID is known
func (r *Recipient) Resolved() bool {
	return r.UserID != ""
}

// Display returns a human-readable label for the recipient
func (r *Recipient) Display() string {
	if r.Username != "" && r.Discriminator != "" {
		return r.Username + "#" + r.Discriminator
	}
	if r.Username != "" {
		return r.Username
	}
	return r.UserID.String()
}

// Clone returns an independent copy so concurrent space pipelines never
// share mutable recipient state
func (r *Recipient) Clone() *Recipient {
	cp := *r
	return &cp
}
