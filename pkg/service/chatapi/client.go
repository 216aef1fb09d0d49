package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/domain/interfaces"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

const (
	defaultBaseURL    = "https://discord.com/api/v10"
	defaultInviteBase = "https://discord.gg"
	defaultTimeout    = 15 * time.Second

	headerRemaining  = "X-RateLimit-Remaining"
	headerResetAfter = "X-RateLimit-Reset-After"
	headerRetryAfter = "Retry-After"
)

// Client issues REST calls against the chat platform, consulting the shared
// rate budget ledger before every request and retrying transient failures
// per the configured policy
type Client struct {
	httpClient *http.Client
	baseURL    string
	inviteBase string
	token      string
	ledger     *Ledger
	retry      model.RetryPolicy
	timeout    time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithInviteBaseURL overrides the base URL used to build invite links
func WithInviteBaseURL(u string) Option {
	return func(c *Client) {
		c.inviteBase = u
	}
}

// WithRetryPolicy replaces the retry tuning
func WithRetryPolicy(p model.RetryPolicy) Option {
	return func(c *Client) {
		c.retry = p
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLedger injects a shared rate budget ledger
func WithLedger(l *Ledger) Option {
	return func(c *Client) {
		c.ledger = l
	}
}

// New creates a chat API client
func New(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		inviteBase: defaultInviteBase,
		token:      token,
		ledger:     NewLedger(),
		retry:      model.DefaultRetryPolicy(),
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.ChatAPI = &Client{}

// do executes one logical API call: reserve budget, issue the request,
// classify the response, and retry per policy. Errors it returns are
// terminal; all retriable conditions are handled internally.
func (c *Client) do(ctx context.Context, method, path string, route types.RouteKey, reqBody, respBody any) error {
	var encoded []byte
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.T(ErrTagUnknown))
		}
		encoded = data
	}

	var (
		attempts    int
		rateRetries int
	)

	for {
		if err := c.ledger.Reserve(ctx, route, c.retry.MaxRateLimitWait); err != nil {
			return err
		}

		status, header, data, err := c.issue(ctx, method, path, encoded)
		if err != nil {
			if ctx.Err() != nil {
				return goerr.Wrap(err, "request canceled",
					goerr.T(ErrTagNetworkError), goerr.V("route", route))
			}
			if isTimeout(err) && ambiguousOnTimeout(route) {
				return goerr.Wrap(err, "request timed out without a definitive response; the remote side effect may have occurred",
					goerr.T(ErrTagNetworkError), goerr.T(ErrTagAmbiguous),
					goerr.V("route", route))
			}

			attempts++
			if attempts >= c.retry.MaxAttempts {
				return goerr.Wrap(err, "network failure after exhausting retries",
					goerr.T(ErrTagNetworkError),
					goerr.V("route", route), goerr.V("attempts", attempts))
			}
			if err := c.backoff(ctx, attempts); err != nil {
				return err
			}
			continue
		}

		c.updateBudget(route, header)

		switch {
		case status >= 200 && status < 300:
			if respBody != nil && len(data) > 0 {
				if err := json.Unmarshal(data, respBody); err != nil {
					return goerr.Wrap(err, "failed to decode response body",
						goerr.T(ErrTagUnknown), goerr.V("route", route))
				}
			}
			return nil

		case status == http.StatusTooManyRequests:
			retryAfter := parseRetryAfter(header, data)
			c.ledger.Exhaust(route, time.Now().Add(retryAfter))
			ctxlog.From(ctx).Debug("rate limited by remote API",
				"route", route, "retryAfter", retryAfter)

			rateRetries++
			if rateRetries > c.retry.MaxRateLimitRetries {
				return goerr.New("rate limited after exhausting retries",
					goerr.T(ErrTagRateLimited),
					goerr.V("route", route), goerr.V("retries", rateRetries))
			}
			// The next Reserve waits out the window, bounded by MaxRateLimitWait
			continue

		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return goerr.New("authorization rejected by the remote API",
				goerr.T(ErrTagUnauthorized),
				goerr.V("route", route), goerr.V("status", status))

		case status == http.StatusNotFound:
			return goerr.New("resource not found",
				goerr.T(ErrTagNotFound), goerr.V("route", route))

		case status >= 500:
			attempts++
			if attempts >= c.retry.MaxAttempts {
				return goerr.New("server error after exhausting retries",
					goerr.T(ErrTagServerError),
					goerr.V("route", route), goerr.V("status", status),
					goerr.V("attempts", attempts))
			}
			if err := c.backoff(ctx, attempts); err != nil {
				return err
			}
			continue

		case status >= 400:
			return goerr.New("request rejected by the remote API",
				goerr.T(ErrTagUnknown),
				goerr.V("route", route), goerr.V("status", status),
				goerr.V("body", string(data)))

		default:
			return goerr.New("unexpected response status",
				goerr.T(ErrTagUnknown),
				goerr.V("route", route), goerr.V("status", status))
		}
	}
}

func (c *Client) issue(ctx context.Context, method, path string, body []byte) (int, http.Header, []byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(callCtx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, nil, goerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	return resp.StatusCode, resp.Header, data, nil
}

// backoff sleeps with exponential backoff plus jitter before the next attempt
func (c *Client) backoff(ctx context.Context, attempt int) error {
	delay := c.retry.BaseDelay << (attempt - 1)
	if delay > c.retry.MaxDelay {
		delay = c.retry.MaxDelay
	}
	if delay > 0 {
		delay += rand.N(delay/2 + 1)
	}

	select {
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "canceled during retry backoff",
			goerr.T(ErrTagNetworkError))
	case <-time.After(delay):
		return nil
	}
}

func (c *Client) updateBudget(route types.RouteKey, header http.Header) {
	remaining, err := strconv.Atoi(header.Get(headerRemaining))
	if err != nil {
		// No authoritative budget headers; the reserve-time decrement stands
		return
	}

	resetAfter, err := strconv.ParseFloat(header.Get(headerResetAfter), 64)
	if err != nil {
		return
	}

	c.ledger.Update(route, remaining, time.Now().Add(time.Duration(resetAfter*float64(time.Second))))
}

func parseRetryAfter(header http.Header, body []byte) time.Duration {
	if v := header.Get(headerRetryAfter); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
	}

	var resp struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.RetryAfter > 0 {
		return time.Duration(resp.RetryAfter * float64(time.Second))
	}

	return time.Second
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return errors.Is(err, context.DeadlineExceeded)
}
