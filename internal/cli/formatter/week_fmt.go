package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/service"
)

// FormatWeekSummary renders the weekly dashboard: range, goal, capacity
// bar against the WIP limit, and activity stats for the week.
func FormatWeekSummary(sum *service.WeekSummary) string {
	var b strings.Builder

	rangeLine := fmt.Sprintf("Week of %s to %s",
		sum.WeekStart.Format("Mon 2006-01-02"),
		sum.WeekEnd.Format("Mon 2006-01-02"))
	b.WriteString(Header(rangeLine))
	b.WriteString("\n\n")

	if sum.Goal != nil {
		b.WriteString(Bold("Goal: ") + StyleFg.Render(sum.Goal.Content) + "\n\n")
	} else {
		b.WriteString(Dim("No goal set for this week.") + "\n\n")
	}

	b.WriteString(fmt.Sprintf("Load  %s  %s\n",
		RenderCapacityBar(sum.Report),
		WipIndicator(sum.Report.Status)))
	b.WriteString(fmt.Sprintf("      %s of %s units\n\n",
		Bold(fmt.Sprintf("%d", sum.Report.TotalUnits)),
		Bold(fmt.Sprintf("%d", sum.WipLimit))))

	b.WriteString(formatStats(sum))
	return b.String()
}

func formatStats(sum *service.WeekSummary) string {
	s := sum.Stats
	if s.Count == 0 {
		return Dim("No activities due this week.") + "\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d activities due, %d done (%.1f%%)\n",
		s.Count, s.CompletedCount, s.CompletionRate))

	parts := make([]string, 0, 3)
	for _, d := range []domain.DurationSize{domain.DurationSmall, domain.DurationMedium, domain.DurationLarge} {
		if n := s.ByDuration[d]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d×%s", n, d))
		}
	}
	if len(parts) > 0 {
		b.WriteString(Dim(strings.Join(parts, ", ")) + "\n")
	}
	return b.String()
}
