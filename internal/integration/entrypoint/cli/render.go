package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)

// renderTitle renders a title in a rounded box.
func renderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	return box.Render(titleStyle.Render(title))
}

// renderTable renders a bordered table. The first column is left aligned,
// every other column is right aligned.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := valueStyle.Padding(0, 1)
			if row == table.HeaderRow {
				style = headerStyle.Padding(0, 1)
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	return t.String()
}

// renderProgressBar renders pct (0-100) as a bar of the given width.
func renderProgressBar(pct decimal.Decimal, width int) string {
	filled := int(pct.Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).IntPart())
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return progressStyle(pct).Render(bar)
}

func progressStyle(pct decimal.Decimal) lipgloss.Style {
	switch {
	case pct.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return lipgloss.NewStyle().Foreground(colorGreen)
	case pct.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return lipgloss.NewStyle().Foreground(colorAccent)
	default:
		return lipgloss.NewStyle().Foreground(colorOrange)
	}
}

// statusLabel summarizes the deadline and pacing state of a goal.
func statusLabel(m entity.GoalMetrics) string {
	switch {
	case m.Completed:
		return lipgloss.NewStyle().Foreground(colorGreen).Render("completed")
	case m.Overdue:
		return lipgloss.NewStyle().Foreground(colorRed).Render("overdue")
	case m.Urgency == entity.GoalUrgencyCritical:
		return lipgloss.NewStyle().Foreground(colorRed).Render("critical")
	case m.Pacing == entity.GoalPacingBehindPace:
		return lipgloss.NewStyle().Foreground(colorOrange).Render("behind pace")
	case m.Urgency == entity.GoalUrgencyWarning:
		return lipgloss.NewStyle().Foreground(colorOrange).Render("due soon")
	default:
		return mutedStyle.Render("on track")
	}
}
