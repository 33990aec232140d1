// Package report renders session analytics for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("#a6e3a1")
	colorYellow = lipgloss.Color("#f9e2af")
	colorRed    = lipgloss.Color("#f38ba8")
	colorBlue   = lipgloss.Color("#74c7ec")
	colorMuted  = lipgloss.Color("#a6adc8")
	colorBorder = lipgloss.Color("#45475a")

	titleStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(18)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	paneStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	case score >= 50:
		return lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	}
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// Render formats a session's analytics as a boxed summary followed by one
// line per attention break.
func Render(a *entity.SessionAnalytics) string {
	summary := strings.Join([]string{
		titleStyle.Render("FlowBreak session report"),
		"",
		row("Focus score", scoreStyle(a.FocusScore).Render(fmt.Sprintf("%d/%d", a.FocusScore, a.MaxScore))),
		row("Penalty", fmt.Sprintf("%g", a.Penalty)),
		row("Diagnostics", mutedStyle.Render(fmt.Sprintf("breaks %g, idle %g, distraction %g",
			a.Details.AttentionBreakPenalty, a.Details.IdlePenalty, a.Details.DistractionPenalty))),
		row("Attention breaks", fmt.Sprintf("%d", a.AttentionBreaks)),
		row("Idle minutes", fmt.Sprintf("%g", a.IdleMinutes)),
		row("Events", fmt.Sprintf("%d", a.TotalEvents)),
		row("Domains", fmt.Sprintf("%d productive, %d neutral, %d distracting",
			a.DomainSummary.Productive, a.DomainSummary.Neutral, a.DomainSummary.Distracting)),
	}, "\n")

	var b strings.Builder
	b.WriteString(paneStyle.Render(summary))
	b.WriteString("\n")

	if len(a.AttentionBreakDetails) == 0 {
		b.WriteString(mutedStyle.Render("No attention breaks detected."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render("Attention breaks"))
	b.WriteString("\n")
	for _, br := range a.AttentionBreakDetails {
		window := utils.FormatPeriod(br.StartTime, br.EndTime)
		b.WriteString(fmt.Sprintf("%s  %s\n", mutedStyle.Render(window), string(br.Reason)))
		if br.Explanation != "" {
			b.WriteString("  " + br.Explanation + "\n")
		}
	}

	return b.String()
}
