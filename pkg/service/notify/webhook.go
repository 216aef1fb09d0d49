package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/domain/interfaces"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
	"github.com/slack-go/slack"
)

const defaultWebhookTimeout = 30 * time.Second

// WebhookNotifier delivers provisioning reports to an incoming webhook.
// Delivery is best effort; the provisioning pipeline never depends on it.
type WebhookNotifier struct {
	url        string
	username   string
	httpClient *http.Client
}

// Option configures a WebhookNotifier
type Option func(*WebhookNotifier)

// WithUsername overrides the webhook display name
func WithUsername(name string) Option {
	return func(n *WebhookNotifier) {
		n.username = name
	}
}

// WithHTTPClient replaces the HTTP client used for delivery
func WithHTTPClient(hc *http.Client) Option {
	return func(n *WebhookNotifier) {
		n.httpClient = hc
	}
}

// NewWebhook creates a webhook notifier for the given URL
func NewWebhook(url string, opts ...Option) *WebhookNotifier {
	n := &WebhookNotifier{url: url}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var _ interfaces.Notifier = &WebhookNotifier{}

// NotifySpace reports a single finalized space outcome
func (n *WebhookNotifier) NotifySpace(ctx context.Context, outcome *model.SpaceOutcome) error {
	msg := &slack.WebhookMessage{
		Username: n.username,
		Text:     fmt.Sprintf("Space %q finished with status %s", outcome.Name, outcome.Status),
		Blocks:   &slack.Blocks{BlockSet: buildOutcomeBlocks(outcome)},
	}

	if err := n.post(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to deliver space notification",
			goerr.V("space", outcome.Name))
	}
	return nil
}

// NotifyResult reports the aggregate result of a completed run
func (n *WebhookNotifier) NotifyResult(ctx context.Context, result *model.ProvisionResult) error {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "Provisioning run finished", false, false)),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf(
				"*Run*: `%s`\n*Succeeded*: %d  *Partial*: %d  *Failed*: %d  *Not attempted*: %d",
				result.RunID,
				result.Counts.Succeeded,
				result.Counts.Partial,
				result.Counts.Failed,
				result.Counts.NotAttempted,
			), false, false),
			nil, nil,
		),
	}

	for i := range result.Outcomes {
		blocks = append(blocks, buildOutcomeBlocks(&result.Outcomes[i])...)
	}

	msg := &slack.WebhookMessage{
		Username: n.username,
		Text: fmt.Sprintf("Provisioning run finished: %d succeeded, %d partial, %d failed",
			result.Counts.Succeeded, result.Counts.Partial, result.Counts.Failed),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}

	if err := n.post(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to deliver result notification",
			goerr.V("runID", result.RunID))
	}
	return nil
}

func (n *WebhookNotifier) post(ctx context.Context, msg *slack.WebhookMessage) error {
	postCtx, cancel := context.WithTimeout(ctx, defaultWebhookTimeout)
	defer cancel()

	if n.httpClient != nil {
		return slack.PostWebhookCustomHTTPContext(postCtx, n.url, n.httpClient, msg)
	}
	return slack.PostWebhookContext(postCtx, n.url, msg)
}

func buildOutcomeBlocks(outcome *model.SpaceOutcome) []slack.Block {
	text := fmt.Sprintf("%s *%s*: %s", statusEmoji(outcome.Status), outcome.Name, outcome.Status)
	if outcome.InviteURL != "" {
		text += fmt.Sprintf("\nInvite: %s", outcome.InviteURL)
	}
	for _, step := range outcome.Steps {
		if step.Status == types.StepFailed {
			text += fmt.Sprintf("\n• %s failed: %s", step.Kind, step.Error)
			if step.Ambiguous {
				text += " (side effect may have occurred; review for duplicates)"
			}
		}
	}

	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func statusEmoji(status types.OutcomeStatus) string {
	switch status {
	case types.OutcomeSuccess:
		return "✅"
	case types.OutcomePartialSuccess:
		return "⚠️"
	case types.OutcomeNotAttempted:
		return "⏭️"
	default:
		return "❌"
	}
}
