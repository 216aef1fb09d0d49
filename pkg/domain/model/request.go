package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Space names are limited by the remote API
const maxSpaceNameLength = 95

var spaceNameSanitizer = regexp.MustCompile(`[^\w\s-]`)

// Options controls which onboarding steps run for each provisioned space
type Options struct {
	FriendRequest bool
	DirectMessage bool
	RoleGrant     bool
}

// RetryPolicy holds retry and backoff tuning for the API client
type RetryPolicy struct {
	// MaxAttempts bounds attempts for retriable server and network errors
	MaxAttempts int
	// MaxRateLimitRetries bounds retries driven by 429 responses
	MaxRateLimitRetries int
	BaseDelay           time.Duration
	MaxDelay            time.Duration
	// MaxRateLimitWait bounds a single wait for a rate-limit window reset
	MaxRateLimitWait time.Duration
}

// DefaultRetryPolicy returns the standard retry tuning
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:         3,
		MaxRateLimitRetries: 5,
		BaseDelay:           500 * time.Millisecond,
		MaxDelay:            30 * time.Second,
		MaxRateLimitWait:    2 * time.Minute,
	}
}

// ProvisionRequest is the immutable input of one provisioning run
type ProvisionRequest struct {
	Spaces      []string
	Recipient   *Recipient
	Options     Options
	Retry       RetryPolicy
	Concurrency int
}

// SanitizeSpaceName strips characters the remote API rejects and trims the
// result to the permitted length
func SanitizeSpaceName(name string) (string, error) {
	cleaned := strings.TrimSpace(spaceNameSanitizer.ReplaceAllString(name, ""))
	if cleaned == "" {
		return "", goerr.Wrap(ErrEmptySpaceName, "invalid space name", goerr.V("name", name))
	}
	if len(cleaned) > maxSpaceNameLength {
		cleaned = cleaned[:maxSpaceNameLength]
	}
	return cleaned, nil
}

// NewProvisionRequest builds a validated request from raw space names.
// Duplicate names are allowed; order is preserved.
func NewProvisionRequest(rawNames []string, recipient *Recipient, opts Options) (*ProvisionRequest, error) {
	if len(rawNames) == 0 {
		return nil, ErrNoSpaces
	}

	spaces := make([]string, 0, len(rawNames))
	for _, raw := range rawNames {
		name, err := SanitizeSpaceName(raw)
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, name)
	}

	return &ProvisionRequest{
		Spaces:      spaces,
		Recipient:   recipient,
		Options:     opts,
		Retry:       DefaultRetryPolicy(),
		Concurrency: 2,
	}, nil
}

// Validate checks the request before any network call
func (r *ProvisionRequest) Validate() error {
	if len(r.Spaces) == 0 {
		return ErrNoSpaces
	}
	for _, name := range r.Spaces {
		if strings.TrimSpace(name) == "" {
			return ErrEmptySpaceName
		}
	}
	if r.needsRecipient() {
		if r.Recipient == nil {
			return goerr.Wrap(ErrInvalidRecipient, "recipient is required for the enabled onboarding steps")
		}
		if !r.Recipient.Resolved() && r.Recipient.Username == "" {
			return goerr.Wrap(ErrInvalidRecipient, "recipient is unset")
		}
	}
	if r.Concurrency < 1 {
		return goerr.New("concurrency must be at least 1",
			goerr.T(ErrTagConfiguration), goerr.V("concurrency", r.Concurrency))
	}
	return nil
}

func (r *ProvisionRequest) needsRecipient() bool {
	return r.Options.FriendRequest || r.Options.DirectMessage || r.Options.RoleGrant
}
