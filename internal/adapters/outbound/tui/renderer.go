package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkraft/ciusage/internal/domain"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	numberStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary formats the outcome of a run for terminal output.
func RenderSummary(result *domain.RunResult) string {
	var b strings.Builder

	title := headerStyle.Render("ciusage")
	subtitle := dimStyle.Render("Collectinfo License Usage")
	total := numberStyle.Render(fmt.Sprintf("%.2f GB", result.TotalGB()))
	counts := dimStyle.Render(fmt.Sprintf("%d processed · %d skipped · %d failed",
		result.Processed(), len(result.Skipped), len(result.Failed)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + total + "\n" + counts))
	b.WriteString("\n\n")

	if len(result.Rows) > 0 {
		b.WriteString("  " + titleStyle.Render("Results") + "\n\n")
		for _, row := range result.Rows {
			usage := fmt.Sprintf("%12.2f GB", row.LicenseUsageGB)
			fmt.Fprintf(&b, "    %s %s %s\n",
				passStyle.Render("●"),
				padRight(row.File, 36),
				padRight(row.ClusterName, 20)+" "+numberStyle.Render(usage),
			)
		}
		b.WriteString("\n")
	}

	if len(result.Failed) > 0 {
		b.WriteString("  " + titleStyle.Render("Failed") + "\n\n")
		for _, f := range result.Failed {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"), f.Name)
			fmt.Fprintf(&b, "         %s\n", dimStyle.Render(f.Error))
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n")
	if result.OutputPath != "" {
		fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("✔"), dimStyle.Render("Results written to "+result.OutputPath))
	}
	if result.CacheHits > 0 {
		fmt.Fprintf(&b, "  %s\n", faintStyle.Render(fmt.Sprintf("%d results served from cache", result.CacheHits)))
	}
	return b.String()
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		id := e.RunID
		if len(id) > 8 {
			id = id[:8]
		}
		if id == "" {
			id = "········"
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02 15:04")),
			faintStyle.Render(id),
			numberStyle.Render(fmt.Sprintf("%.2f GB", e.TotalGB)),
			dimStyle.Render(fmt.Sprintf("%d files", e.Processed)),
		)

		if i > 0 {
			diff := domain.RoundGB(e.TotalGB - entries[i-1].TotalGB)
			if diff > 0 {
				line += "  " + warnStyle.Render(fmt.Sprintf("↑%.2f", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%.2f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
