package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/cli/config"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdProvision() *cli.Command {
	var (
		apiCfg     config.API
		webhookCfg config.Webhook
		reqCfg     config.Request
	)

	flags := joinFlags(
		apiCfg.Flags(),
		webhookCfg.Flags(),
		reqCfg.Flags(),
	)

	return &cli.Command{
		Name:  "provision",
		Usage: "Create spaces and onboard the recipient",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if reqCfg.PlanPath != "" {
				if err := applyPlan(&reqCfg, &webhookCfg); err != nil {
					return err
				}
			}

			// Prompt interactively for anything still missing when
			// attached to a terminal
			if err := promptMissing(ctx, &apiCfg, &webhookCfg, &reqCfg); err != nil {
				return err
			}

			if err := apiCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting provisioning run",
				"api", apiCfg,
				"webhook", webhookCfg,
				"request", reqCfg,
			)

			opts := model.Options{
				FriendRequest: reqCfg.FriendRequest,
				DirectMessage: reqCfg.DirectMessage,
				RoleGrant:     reqCfg.RoleGrant,
			}

			var recipient *model.Recipient
			if reqCfg.Recipient != "" {
				parsed, err := model.ParseRecipient(reqCfg.Recipient)
				if err != nil {
					return err
				}
				recipient = parsed
			} else {
				// No recipient means nothing to onboard
				opts = model.Options{}
			}

			req, err := model.NewProvisionRequest(reqCfg.Spaces, recipient, opts)
			if err != nil {
				return err
			}
			req.Retry = apiCfg.RetryPolicy()
			req.Concurrency = apiCfg.Concurrency

			api := apiCfg.Configure()

			me, err := api.CheckAuth(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to authenticate with the chat platform; verify the token")
			}
			logger.Info("Authenticated", "userID", me)

			notifier := webhookCfg.ConfigureOptional(logger)

			ucOpts := []usecase.ProvisionOption{
				usecase.WithObserver(newProgressPrinter(os.Stdout)),
			}
			if notifier != nil && webhookCfg.PerSpace {
				ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
			}

			uc := usecase.NewProvision(api, ucOpts...)

			// Ctrl-C cancels cooperatively; completed outcomes are kept and
			// unstarted spaces are reported as not attempted
			runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := uc.Run(runCtx, req)
			if err != nil {
				return err
			}

			if notifier != nil {
				if err := notifier.NotifyResult(ctx, result); err != nil {
					logger.Warn("Failed to deliver webhook summary", "error", err)
				}
			}

			fmt.Fprintln(os.Stdout, renderSummary(result))
			return nil
		},
	}
}

// applyPlan fills request and webhook settings from a plan file; explicit
// flags keep precedence over plan values
func applyPlan(reqCfg *config.Request, webhookCfg *config.Webhook) error {
	plan, err := model.LoadPlan(reqCfg.PlanPath)
	if err != nil {
		return err
	}

	if len(reqCfg.Spaces) == 0 {
		reqCfg.Spaces = plan.Spaces
	}
	if reqCfg.Recipient == "" {
		reqCfg.Recipient = plan.Recipient
	}
	opts := plan.ToOptions()
	reqCfg.FriendRequest = opts.FriendRequest
	reqCfg.DirectMessage = opts.DirectMessage
	reqCfg.RoleGrant = opts.RoleGrant

	if webhookCfg.URL == "" && plan.Webhook.URL != "" {
		webhookCfg.URL = plan.Webhook.URL
		webhookCfg.Username = plan.Webhook.Username
	}

	return nil
}
