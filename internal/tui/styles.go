package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/shootcal/internal/model"
)

// Color palette
var (
	// Payment urgency colors
	Overdue  = lipgloss.Color("#FF6B6B") // Red
	DueSoon  = lipgloss.Color("#FFB347") // Orange
	Upcoming = lipgloss.Color("#95E1A3") // Green

	// Day cell colors
	CanceledBg = lipgloss.Color("#3a3a3a")
	TodayRing  = lipgloss.Color("#4ECDC4")

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Black     = lipgloss.Color("#000000")
)

const cellWidth = 6

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	WeekdayStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(TextMuted)

	// Day cells
	CellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	CanceledCellStyle = CellStyle.
				Background(CanceledBg).
				Foreground(TextMuted).
				Strikethrough(true)

	// Side panel
	PanelStyle = lipgloss.NewStyle().
			Width(42).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(Border).
			Padding(0, 2)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Prompt and search modals
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// ContrastText picks black or white text for a #RRGGBB background using
// perceived luminance. Malformed colors get black.
func ContrastText(hex string) lipgloss.Color {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return Black
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return Black
	}
	r := float64(rgb >> 16 & 0xFF)
	g := float64(rgb >> 8 & 0xFF)
	b := float64(rgb & 0xFF)

	luminance := (0.299*r + 0.587*g + 0.114*b) / 255
	if luminance > 0.5 {
		return Black
	}
	return Text
}

// urgencyStyle colors a payment line by how close it is to due
func urgencyStyle(u model.Urgency) lipgloss.Style {
	switch u {
	case model.UrgencyOverdue:
		return lipgloss.NewStyle().Foreground(Overdue).Bold(true)
	case model.UrgencyDueSoon:
		return lipgloss.NewStyle().Foreground(DueSoon)
	default:
		return lipgloss.NewStyle().Foreground(Upcoming)
	}
}
