package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/mpontes/stowaway/pkg/types"
)

// StatusStyle returns the pterm style for a step status
func StatusStyle(status types.StepStatus) *pterm.Style {
	switch status {
	case types.StepSucceeded:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StepFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderSummary renders the final run report: per-pack outcomes, the
// installer step results, and a pointer to the full log file.
func RenderSummary(report *types.DeploymentReport, logPath string) string {
	if termenv.EnvNoColor() {
		pterm.DisableColor()
	}

	var b strings.Builder

	b.WriteString(Get("Title").Render("Deployment summary") + "\n")

	if report.Total() == 0 {
		b.WriteString(Get("Muted").Render("No packs found") + "\n")
	}

	for _, name := range report.Succeeded {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			pterm.NewStyle(pterm.FgGreen).Sprint("deployed"), name))
	}
	for _, name := range report.Failed {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("failed"), name))
	}

	if len(report.Steps) > 0 {
		b.WriteString(Get("Title").Render("Post-deploy steps") + "\n")
		for _, step := range report.Steps {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				StatusStyle(step.Status).Sprint(string(step.Status)), step.Name))
		}
	}

	if report.HasFailures() {
		b.WriteString(Get("Warning").Render(
			fmt.Sprintf("%d of %d packs failed", len(report.Failed), report.Total())) + "\n")
	}
	b.WriteString(Get("Muted").Render("Full log: "+logPath) + "\n")

	return b.String()
}

// RenderPackList renders the list command output
func RenderPackList(packList []types.Pack) string {
	if len(packList) == 0 {
		return Get("Muted").Render("No packs found")
	}

	var b strings.Builder
	b.WriteString(Get("Title").Render("Available packs") + "\n")
	for _, p := range packList {
		b.WriteString(fmt.Sprintf("  %s %s\n", pterm.Info.Prefix.Text,
			pterm.NewStyle(pterm.Bold).Sprint(p.Name)))
		b.WriteString("    " + Get("Muted").Render(p.Path) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
