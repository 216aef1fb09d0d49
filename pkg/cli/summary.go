package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/secmon-lab/roost/pkg/domain/interfaces"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

const timeRounding = 100 * time.Millisecond

func outcomeStyle(status types.OutcomeStatus) lipgloss.Style {
	switch status {
	case types.OutcomeSuccess:
		return successStyle
	case types.OutcomePartialSuccess:
		return partialStyle
	case types.OutcomeNotAttempted:
		return skippedStyle
	default:
		return failedStyle
	}
}

func stepStyle(status types.StepStatus) lipgloss.Style {
	switch status {
	case types.StepSucceeded:
		return successStyle
	case types.StepSkipped:
		return skippedStyle
	default:
		return failedStyle
	}
}

// renderSummary formats the final run result for terminal output
func renderSummary(result *model.ProvisionResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Provisioning result"))
	b.WriteString("\n\n")

	for _, outcome := range result.Outcomes {
		mark := outcomeStyle(outcome.Status).Render(statusMark(outcome.Status))
		fmt.Fprintf(&b, "%s %s\n", mark, outcome.Name)

		if outcome.InviteURL != "" {
			fmt.Fprintf(&b, "    invite: %s\n", outcome.InviteURL)
		}
		for _, step := range outcome.Steps {
			if step.Kind == types.StepCreateSpace && step.Status == types.StepSucceeded {
				continue
			}
			line := fmt.Sprintf("%s: %s", step.Kind, step.Status)
			if step.Error != "" {
				line += " (" + step.Error + ")"
			}
			if step.Ambiguous {
				line += " [needs review: the request timed out and may have taken effect]"
			}
			fmt.Fprintf(&b, "    %s\n", stepStyle(step.Status).Render(line))
		}
	}

	elapsed := result.FinishedAt.Sub(result.StartedAt).Round(timeRounding)
	fmt.Fprintf(&b, "\n%d succeeded, %d partial, %d failed, %d not attempted (%s)",
		result.Counts.Succeeded, result.Counts.Partial,
		result.Counts.Failed, result.Counts.NotAttempted, elapsed)

	return b.String()
}

func statusMark(status types.OutcomeStatus) string {
	switch status {
	case types.OutcomeSuccess:
		return "✔"
	case types.OutcomePartialSuccess:
		return "◐"
	case types.OutcomeNotAttempted:
		return "-"
	default:
		return "✘"
	}
}

// progressPrinter writes one line per completed step as the run progresses.
// Events may arrive concurrently from multiple space pipelines.
type progressPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

func newProgressPrinter(out io.Writer) *progressPrinter {
	return &progressPrinter{out: out}
}

var _ interfaces.ProgressObserver = &progressPrinter{}

func (p *progressPrinter) OnStep(_ context.Context, ev *model.ProgressEvent) {
	line := fmt.Sprintf("[%s] %s: %s", ev.Space, ev.Step, ev.Status)
	if ev.Detail != "" {
		line += " (" + ev.Detail + ")"
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, stepStyle(ev.Status).Render(line))
}
