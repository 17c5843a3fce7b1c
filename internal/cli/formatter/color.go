package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor maps a conflict severity to its display style.
func SeverityColor(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityCritical:
		return StyleRed.Bold(true)
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	case domain.SeverityLow:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeverityBadge renders e.g. "● HIGH" in the severity's color.
func SeverityBadge(s domain.Severity) string {
	if s == "" {
		return StyleGreen.Render("● CLEAR")
	}
	return SeverityColor(s).Render("● " + strings.ToUpper(string(s)))
}

// RiskScore renders a 0-100 risk score, red from 50 and yellow from 25.
func RiskScore(score int) string {
	text := fmt.Sprintf("%d/100", score)
	switch {
	case score >= 50:
		return StyleRed.Render(text)
	case score >= 25:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

func ActionBadge(a domain.RecommendedAction) string {
	switch a {
	case domain.ActionAutoApply:
		return StyleGreen.Render("▶ AUTO APPLY")
	case domain.ActionPresentOptions:
		return StyleYellow.Render("◆ PRESENT OPTIONS")
	case domain.ActionManualReview:
		return StyleRed.Render("▲ MANUAL REVIEW")
	default:
		return StyleDim.Render(string(a))
	}
}

// StatusPill returns a colored indicator for an appointment status.
func StatusPill(status domain.AppointmentStatus) string {
	switch status {
	case domain.StatusScheduled:
		return StyleGreen.Render("● Scheduled")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusCancelled:
		return StyleDim.Render("✖ Cancelled")
	case domain.StatusNoShow:
		return StyleYellow.Render("⊘ No-show")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders an upper-cased section title with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	return StyleHeader.Render(upper) + "\n" + StyleDim.Render(strings.Repeat("─", len(upper)))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
