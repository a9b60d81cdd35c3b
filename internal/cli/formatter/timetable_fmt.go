package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/service"
)

// FormatDayView renders one timetable day: a dated header with past/today
// markers, the slot grid, and navigation hints that disappear at the week
// edges.
func FormatDayView(view *service.DayView) string {
	var b strings.Builder

	title := view.Date.Format("Monday 2006-01-02")
	switch view.Status {
	case domain.DayToday:
		title += "  (today)"
	case domain.DayPast:
		title += "  (past)"
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	for _, slot := range view.Slots {
		style := StyleFg
		if view.Status == domain.DayPast {
			style = StyleDim
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(slot), style.Render(strings.Repeat("·", 30))))
	}
	b.WriteString(fmt.Sprintf("\n%s slots of %d min, day ends at %s\n",
		Bold(fmt.Sprintf("%d", len(view.Slots))), view.UnitMinutes, Bold(view.DayEnd)))

	var hints []string
	if !view.IsFirstDay {
		hints = append(hints, "prev: previous day")
	}
	if !view.IsLastDay {
		hints = append(hints, "next: following day")
	}
	if len(hints) > 0 {
		b.WriteString(Dim(strings.Join(hints, "  |  ")) + "\n")
	}
	return b.String()
}
