package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/semainier/internal/schedule"
)

const (
	filledBlock      = "█"
	emptyBlock       = "░"
	capacityBarWidth = 20
)

// RenderCapacityBar renders the weekly load as a bar like [████░░░░] 45.0%.
// The bar fills toward the WIP limit and is colored by the report status.
func RenderCapacityBar(report schedule.WipReport) string {
	frac := report.Percentage / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(frac * float64(capacityBarWidth))
	if filled > capacityBarWidth {
		filled = capacityBarWidth
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, capacityBarWidth-filled)

	style := WipColor(report.Status)
	return fmt.Sprintf("[%s] %.1f%%", style.Render(bar), report.Percentage)
}
