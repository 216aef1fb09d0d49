package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/service/chatapi"
	"github.com/urfave/cli/v3"
)

// API holds chat platform API configuration
type API struct {
	Token       string
	BaseURL     string
	Timeout     time.Duration
	Concurrency int

	MaxAttempts         int
	MaxRateLimitRetries int
	BaseDelay           time.Duration
	MaxDelay            time.Duration
	MaxRateLimitWait    time.Duration
}

// Flags returns CLI flags for API configuration
func (a *API) Flags() []cli.Flag {
	defaults := model.DefaultRetryPolicy()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Usage:       "Chat platform API token",
			Category:    "API",
			Sources:     cli.EnvVars("ROOST_TOKEN"),
			Destination: &a.Token,
		},
		&cli.StringFlag{
			Name:        "api-base-url",
			Usage:       "Chat platform API base URL",
			Category:    "API",
			Value:       "https://discord.com/api/v10",
			Sources:     cli.EnvVars("ROOST_API_BASE_URL"),
			Destination: &a.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "api-timeout",
			Usage:       "Per-call timeout for API requests",
			Category:    "API",
			Value:       15 * time.Second,
			Sources:     cli.EnvVars("ROOST_API_TIMEOUT"),
			Destination: &a.Timeout,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of spaces provisioned concurrently (1-3 recommended)",
			Category:    "API",
			Value:       2,
			Sources:     cli.EnvVars("ROOST_CONCURRENCY"),
			Destination: &a.Concurrency,
		},
		&cli.IntFlag{
			Name:        "max-attempts",
			Usage:       "Maximum attempts for retriable server or network errors",
			Category:    "Retry",
			Value:       defaults.MaxAttempts,
			Sources:     cli.EnvVars("ROOST_MAX_ATTEMPTS"),
			Destination: &a.MaxAttempts,
		},
		&cli.IntFlag{
			Name:        "max-rate-limit-retries",
			Usage:       "Maximum retries after 429 responses",
			Category:    "Retry",
			Value:       defaults.MaxRateLimitRetries,
			Sources:     cli.EnvVars("ROOST_MAX_RATE_LIMIT_RETRIES"),
			Destination: &a.MaxRateLimitRetries,
		},
		&cli.DurationFlag{
			Name:        "base-delay",
			Usage:       "Initial backoff delay for retries",
			Category:    "Retry",
			Value:       defaults.BaseDelay,
			Sources:     cli.EnvVars("ROOST_BASE_DELAY"),
			Destination: &a.BaseDelay,
		},
		&cli.DurationFlag{
			Name:        "max-delay",
			Usage:       "Maximum backoff delay for retries",
			Category:    "Retry",
			Value:       defaults.MaxDelay,
			Sources:     cli.EnvVars("ROOST_MAX_DELAY"),
			Destination: &a.MaxDelay,
		},
		&cli.DurationFlag{
			Name:        "max-rate-limit-wait",
			Usage:       "Maximum wait for a rate-limit window reset before failing",
			Category:    "Retry",
			Value:       defaults.MaxRateLimitWait,
			Sources:     cli.EnvVars("ROOST_MAX_RATE_LIMIT_WAIT"),
			Destination: &a.MaxRateLimitWait,
		},
	}
}

// RetryPolicy builds the retry tuning from the configured values
func (a *API) RetryPolicy() model.RetryPolicy {
	return model.RetryPolicy{
		MaxAttempts:         a.MaxAttempts,
		MaxRateLimitRetries: a.MaxRateLimitRetries,
		BaseDelay:           a.BaseDelay,
		MaxDelay:            a.MaxDelay,
		MaxRateLimitWait:    a.MaxRateLimitWait,
	}
}

// Validate validates the API configuration
func (a *API) Validate() error {
	if a.Token == "" {
		return goerr.New("API token is required", goerr.T(model.ErrTagConfiguration))
	}
	if a.Concurrency < 1 {
		return goerr.New("concurrency must be at least 1",
			goerr.T(model.ErrTagConfiguration), goerr.V("concurrency", a.Concurrency))
	}
	return nil
}

// Configure creates the chat API client
func (a *API) Configure() *chatapi.Client {
	return chatapi.New(a.Token,
		chatapi.WithBaseURL(a.BaseURL),
		chatapi.WithTimeout(a.Timeout),
		chatapi.WithRetryPolicy(a.RetryPolicy()),
	)
}

// LogValue returns structured log value; the token itself is never logged
func (a API) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", a.Token != ""),
		slog.String("base_url", a.BaseURL),
		slog.Duration("timeout", a.Timeout),
		slog.Int("concurrency", a.Concurrency),
		slog.Int("max_attempts", a.MaxAttempts),
	)
}
