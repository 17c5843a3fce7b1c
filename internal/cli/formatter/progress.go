package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUtilization draws a booked-share bar like [████░░░░]  45%. The bar is
// green under target, yellow within 10 points of it and red above it.
func RenderUtilization(pct, target float64, width int) string {
	width = max(width, 2)
	clamped := min(max(pct, 0), 100)

	filled := int(clamped / 100 * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct > target:
		style = StyleRed
	case pct > target-10:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}
