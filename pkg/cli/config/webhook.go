package config

import (
	"log/slog"

	"github.com/secmon-lab/roost/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Webhook holds optional webhook reporting configuration
type Webhook struct {
	URL      string
	Username string
	PerSpace bool
}

// Flags returns CLI flags for Webhook configuration
func (w *Webhook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-url",
			Usage:       "Incoming webhook URL for result reporting",
			Category:    "Webhook",
			Sources:     cli.EnvVars("ROOST_WEBHOOK_URL"),
			Destination: &w.URL,
		},
		&cli.StringFlag{
			Name:        "webhook-username",
			Usage:       "Display name for webhook messages",
			Category:    "Webhook",
			Sources:     cli.EnvVars("ROOST_WEBHOOK_USERNAME"),
			Destination: &w.Username,
		},
		&cli.BoolFlag{
			Name:        "webhook-per-space",
			Usage:       "Send a webhook notification after each space instead of only the final summary",
			Category:    "Webhook",
			Sources:     cli.EnvVars("ROOST_WEBHOOK_PER_SPACE"),
			Destination: &w.PerSpace,
		},
	}
}

// IsConfigured checks if webhook reporting is enabled
func (w *Webhook) IsConfigured() bool {
	return w.URL != ""
}

// ConfigureOptional creates a webhook notifier if configured, returns nil if not
func (w *Webhook) ConfigureOptional(logger *slog.Logger) *notify.WebhookNotifier {
	if !w.IsConfigured() {
		logger.Debug("Webhook not configured - result reporting disabled")
		return nil
	}

	var opts []notify.Option
	if w.Username != "" {
		opts = append(opts, notify.WithUsername(w.Username))
	}
	return notify.NewWebhook(w.URL, opts...)
}

// LogValue returns structured log value
func (w Webhook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("configured", w.URL != ""),
		slog.Bool("per_space", w.PerSpace),
		slog.String("username", w.Username),
	)
}
