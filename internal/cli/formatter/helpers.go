package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TaskStatusPill returns a colored status indicator for a task.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskCompleted:
		return StyleGreen.Render("done")
	case domain.TaskInProgress:
		return StyleYellow.Render("in progress")
	case domain.TaskPending:
		return StyleDim.Render("pending")
	default:
		return StyleDim.Render(string(status))
	}
}

// DelayPill returns a colored delay indicator for a completed task.
func DelayPill(d domain.DelayBucket, delayMin int) string {
	switch d {
	case domain.DelayLate:
		return StyleRed.Render(plural(delayMin, "min late"))
	case domain.DelayGrace:
		return StyleYellow.Render("1 min late")
	default:
		return StyleGreen.Render("on time")
	}
}

// TeamPill renders a short colored tag per responsible team.
func TeamPill(team domain.Team) string {
	switch team {
	case domain.TeamGroundHandling:
		return StyleBlue.Render("RAMP")
	case domain.TeamGateBoarding:
		return StylePurple.Render("GATE")
	case domain.TeamFuel:
		return StyleYellow.Render("FUEL")
	case domain.TeamCleaning:
		return StyleGreen.Render("CLEAN")
	case domain.TeamCatering:
		return StyleFg.Render("CATER")
	case domain.TeamFlightCrew:
		return StyleRed.Render("CREW")
	default:
		return StyleDim.Render(string(team))
	}
}

func plural(n int, suffix string) string {
	return fmt.Sprintf("%d %s", n, suffix)
}
