package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/cli/config"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"golang.org/x/term"
)

const tosWarning = "This tool automates actions on a user account using your token.\n" +
	"Automating a user account may violate the platform's Terms of Service.\n" +
	"Proceed at your own risk. Never share your token and keep it secure."

// promptMissing interactively collects any inputs still missing after flags,
// environment and plan file were applied. It is a no-op when stdin is not a
// terminal; validation reports the missing values instead.
func promptMissing(ctx context.Context, apiCfg *config.API, webhookCfg *config.Webhook, reqCfg *config.Request) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	needWizard := len(reqCfg.Spaces) == 0
	needToken := apiCfg.Token == ""

	if needWizard || needToken {
		fmt.Fprintln(os.Stderr, renderBanner(tosWarning))
	}

	if needWizard {
		if err := runWizard(ctx, webhookCfg, reqCfg); err != nil {
			return err
		}
	}

	if needToken {
		token, err := readToken()
		if err != nil {
			return err
		}
		apiCfg.Token = token
	}

	return nil
}

func runWizard(ctx context.Context, webhookCfg *config.Webhook, reqCfg *config.Request) error {
	var spacesRaw string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Space names").
				Description("Comma-separated names of the spaces to create").
				Placeholder("Alpha, Beta").
				Value(&spacesRaw).
				Validate(validateSpaceNames),
			huh.NewInput().
				Title("Recipient").
				Description("Numeric user ID or username#1234; leave empty to skip onboarding").
				Value(&reqCfg.Recipient).
				Validate(validateRecipient),
		).Title("Spaces"),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Send friend request?").
				Value(&reqCfg.FriendRequest),
			huh.NewConfirm().
				Title("Send invite link via direct message?").
				Value(&reqCfg.DirectMessage),
			huh.NewConfirm().
				Title("Grant administrator role automatically?").
				Value(&reqCfg.RoleGrant),
		).Title("Onboarding"),
		huh.NewGroup(
			huh.NewInput().
				Title("Webhook URL (optional)").
				Description("Incoming webhook for result reporting; leave empty to disable").
				Value(&webhookCfg.URL),
		).Title("Reporting"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return goerr.Wrap(err, "interactive prompt aborted")
	}

	reqCfg.Spaces = parseSpaceNames(spacesRaw)
	return nil
}

func readToken() (string, error) {
	fmt.Fprint(os.Stderr, "Enter the API token (input hidden): ")
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read token")
	}
	return strings.TrimSpace(string(data)), nil
}

func parseSpaceNames(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func validateSpaceNames(raw string) error {
	names := parseSpaceNames(raw)
	if len(names) == 0 {
		return goerr.New("at least one space name is required")
	}
	for _, name := range names {
		if _, err := model.SanitizeSpaceName(name); err != nil {
			return err
		}
	}
	return nil
}

func validateRecipient(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	_, err := model.ParseRecipient(raw)
	return err
}
