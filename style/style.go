package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle row
	HlCellStyle      = lipgloss.NewStyle().Background(lipgloss.Color("238")) // Focused square
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Muted grey text
	TitleStyle       = lipgloss.NewStyle().Bold(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	UnStyle          = lipgloss.NewStyle()

	// Wizard step indicator
	StepDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))            // Green
	StepCurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("71")).Bold(true) // Field green
	StepPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))           // Grey

	UrgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// RowStyler returns a StyleFunc that highlights the selected row
func RowStyler(selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == selectedRow {
			return HlRowStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
