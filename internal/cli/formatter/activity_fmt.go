package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/schedule"
)

// DurationBadge renders a colored size badge: S green, M yellow, L red.
func DurationBadge(d domain.DurationSize) string {
	label := fmt.Sprintf("%s (%du)", d, schedule.Units(d))
	switch d {
	case domain.DurationSmall:
		return StyleGreen.Render(label)
	case domain.DurationMedium:
		return StyleYellow.Render(label)
	case domain.DurationLarge:
		return StyleRed.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// FormatActivities renders a container's activities as a table ordered by
// position. Unscheduled activities show a dimmed placeholder for due date
// and start time.
func FormatActivities(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return Dim("No activities.") + "\n"
	}

	headers := []string{"POS", "TITLE", "SIZE", "DUE", "START", "DONE"}
	rows := make([][]string, 0, len(activities))

	for _, a := range activities {
		title := a.Title
		if a.IsPriority {
			title = "! " + title
		}
		styledTitle := Bold(title)
		if a.IsCompleted {
			styledTitle = StyleStrike.Render(title)
		}

		due := Dim("--")
		start := Dim("--")
		if a.IsScheduled() {
			due = StyleFg.Render(a.DueDate.Format("2006-01-02"))
			start = StyleFg.Render(a.StartTime)
		}

		done := ""
		if a.IsCompleted {
			done = StyleGreen.Render("✓")
		}

		rows = append(rows, []string{
			strconv.Itoa(a.Position),
			styledTitle,
			DurationBadge(a.Duration),
			due,
			start,
			done,
		})
	}

	return RenderTable(headers, rows)
}

// FormatActivityLine renders a one-line confirmation for a single activity.
func FormatActivityLine(a *domain.Activity) string {
	line := fmt.Sprintf("%s %s", Bold(a.Title), DurationBadge(a.Duration))
	if a.IsScheduled() {
		line += " " + Dim("due "+a.DueDate.Format("2006-01-02"))
	}
	return line
}
