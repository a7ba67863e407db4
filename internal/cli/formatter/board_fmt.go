package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tarmac/internal/app"
	"github.com/alexanderramin/tarmac/internal/domain"
)

const boardProgressBarWidth = 10

const clockLayout = "15:04"

// FormatBoard formats a BoardResponse into a styled per-task schedule table.
func FormatBoard(resp *app.BoardResponse) string {
	var b strings.Builder

	t := resp.Turnaround
	b.WriteString(fmt.Sprintf("%s  %s\n",
		Bold(t.FlightNumber),
		Dim(fmt.Sprintf("arr %s  dep %s  stand %s",
			t.ScheduledArrival.UTC().Format(clockLayout),
			t.ScheduledDeparture.UTC().Format(clockLayout),
			orDash(t.Stand)))))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		TurnaroundIndicator(resp.Status),
		RenderProgress(float64(resp.ProgressPct)/100, boardProgressBarWidth),
		Dim(fmt.Sprintf("projected %d min", resp.DurationMin))))

	headers := []string{"ID", "TASK", "TEAM", "PLANNED", "ACTUAL", "STATUS", "DELAY"}
	rows := make([][]string, 0, len(resp.Tasks))

	for _, task := range resp.Tasks {
		planned := fmt.Sprintf("%s–%s",
			task.PlannedStart.UTC().Format(clockLayout),
			task.PlannedEnd.UTC().Format(clockLayout))

		actual := Dim("--")
		if task.ActualCompletion != nil {
			actual = StyleFg.Render(task.ActualCompletion.UTC().Format(clockLayout))
		}

		delay := Dim("--")
		if task.Status == domain.TaskCompleted {
			delay = DelayPill(task.Delay, task.DelayMin)
		}

		rows = append(rows, []string{
			Dim(fmt.Sprintf("%2d", task.TaskID)),
			StyleFg.Render(task.Title),
			TeamPill(task.Team),
			StyleFg.Render(planned),
			actual,
			TaskStatusPill(task.Status),
			delay,
		})
	}

	b.WriteString(RenderTable(headers, rows))

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	return RenderBox("Turnaround "+t.FlightNumber, b.String())
}

// FormatStatus formats the fleet-wide overview.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	headers := []string{"FLIGHT", "ARRIVAL", "PROGRESS", "STATUS", "PROJECTED"}
	rows := make([][]string, 0, len(resp.Boards))

	for _, board := range resp.Boards {
		rows = append(rows, []string{
			Bold(board.Turnaround.FlightNumber),
			StyleFg.Render(board.Turnaround.ScheduledArrival.UTC().Format("2006-01-02 15:04")),
			RenderProgress(float64(board.ProgressPct)/100, boardProgressBarWidth),
			TurnaroundIndicator(board.Status),
			StyleFg.Render(fmt.Sprintf("%d min", board.DurationMin)),
		})
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	delayedPart := StyleRed.Render(fmt.Sprintf("%d Delayed", resp.CountDelayed))
	onTimePart := StyleGreen.Render(fmt.Sprintf("%d On Time", resp.CountOnTime))
	cancelledPart := StyleDim.Render(fmt.Sprintf("%d Cancelled", resp.CountCancelled))
	b.WriteString(fmt.Sprintf("%s, %s, %s\n", delayedPart, onTimePart, cancelledPart))

	return RenderBox("Status", b.String())
}

// FormatCatalog renders the static task catalog.
func FormatCatalog(defs []domain.TaskDefinition) string {
	headers := []string{"ID", "KEY", "TASK", "TEAM", "TIMEOUT", "DEPENDS ON"}
	rows := make([][]string, 0, len(defs))

	for _, def := range defs {
		timeout := fmt.Sprintf("%d min", def.TimeoutMin)
		if def.IsMilestone() {
			timeout = Dim("milestone")
		}
		deps := Dim("--")
		if len(def.Dependencies) > 0 {
			deps = StyleFg.Render(strings.Join(def.Dependencies, ", "))
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%2d", def.ID)),
			StyleBlue.Render(def.Key),
			StyleFg.Render(def.Title),
			TeamPill(def.Team),
			StyleFg.Render(timeout),
			deps,
		})
	}

	return RenderTable(headers, rows)
}

// FormatTurnaround renders a single turnaround's fields.
func FormatTurnaround(t *domain.Turnaround) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold(t.FlightNumber), Dim(t.ID)))
	b.WriteString(fmt.Sprintf("Stand:     %s\n", orDash(t.Stand)))
	b.WriteString(fmt.Sprintf("Arrival:   %s\n", t.ScheduledArrival.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Departure: %s\n", t.ScheduledDeparture.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Status:    %s\n", TurnaroundIndicator(t.Status)))
	if t.CancelledAt != nil {
		b.WriteString(fmt.Sprintf("Cancelled: %s\n", t.CancelledAt.UTC().Format(time.RFC3339)))
	}
	return b.String()
}

// FormatTurnaroundList renders the turnaround list table.
func FormatTurnaroundList(list []*domain.Turnaround) string {
	if len(list) == 0 {
		return Dim("No turnarounds. Add one with: tarmac turnaround add") + "\n"
	}

	headers := []string{"FLIGHT", "STAND", "ARRIVAL", "DEPARTURE", "STATUS"}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{
			Bold(t.FlightNumber),
			StyleFg.Render(orDash(t.Stand)),
			StyleFg.Render(t.ScheduledArrival.UTC().Format("2006-01-02 15:04")),
			StyleFg.Render(t.ScheduledDeparture.UTC().Format("2006-01-02 15:04")),
			TurnaroundIndicator(t.Status),
		})
	}
	return RenderTable(headers, rows)
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
