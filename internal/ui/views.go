package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderScanView renders the main scanning view
func renderScanView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// Show queue
	b.WriteString(renderShowQueue(m))
	b.WriteString("\n")

	// Overall progress
	b.WriteString(renderOverallProgress(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#005FAF")).
		Render("Kanarate 🗣 - Subtitle Articulation Rates")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Scanning %d show(s)", m.TotalShows))

	return title + "\n" + subtitle
}

// renderShowQueue renders the list of shows with their status
func renderShowQueue(m Model) string {
	var b strings.Builder

	for _, show := range m.Shows {
		b.WriteString(renderShowEntry(show))
		b.WriteString("\n")
	}

	return b.String()
}

// renderShowEntry renders a single show entry in the queue
func renderShowEntry(show ShowProgress) string {
	switch show.Status {
	case StatusComplete:
		// ✓ completed show with summary
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		summary := fmt.Sprintf("%d units | %.2f min | %.2f/min",
			show.Row.Units, show.Row.Minutes, show.Row.Rate)
		return fmt.Sprintf(" %s %s\n   %s", icon, show.Name, summary)

	case StatusScanning:
		// ⚙ active show with episode progress
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n%s", icon, show.Name, renderShowDetails(show))

	case StatusSkipped:
		// ∅ no valid speaking time found
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("∅")
		return fmt.Sprintf(" %s %s\n   No valid subtitle entries", icon, show.Name)

	case StatusError:
		// ✗ failed show
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error", icon, show.Name)

	default:
		// ○ queued show
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, show.Name)
	}
}

// renderShowDetails renders detailed progress for the active show
func renderShowDetails(show ShowProgress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#005FAF")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder

	content.WriteString(fmt.Sprintf("Episodes scanned: %d", show.EpisodesDone))
	if show.EpisodesFailed > 0 {
		content.WriteString(fmt.Sprintf(" (%d failed)", show.EpisodesFailed))
	}
	content.WriteString("\n")

	if show.CurrentFile != "" {
		content.WriteString(fmt.Sprintf("📄 %s\n", filepath.Base(show.CurrentFile)))
	}
	content.WriteString(fmt.Sprintf("⏱  Elapsed: %.1fs", show.ElapsedTime.Seconds()))

	return box.Render(content.String())
}

// renderOverallProgress renders the overall progress footer
func renderOverallProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	// Show current show being scanned
	var content string
	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Shows) {
		current := m.CurrentIndex + 1 // 1-indexed for display
		content = fmt.Sprintf("Scanning show %d of %d (%d complete)",
			current, m.TotalShows, m.CompletedShows)
	} else {
		content = fmt.Sprintf("Overall Progress: %d/%d complete", m.CompletedShows, m.TotalShows)
	}

	return box.Render(content)
}

// renderCompletionSummary renders the final completion summary
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Scan Complete!")
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Shows scanned: %d | With data: %d | Empty: %d\n",
		m.TotalShows, m.CompletedShows, m.SkippedShows))
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	b.WriteString("Rate table follows below.\n")

	return b.String()
}
