package plotconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// highlightAlpha is the alpha suffix used for cursor highlight strokes.
const highlightAlpha = "80"

// WithOpacity returns color with an 8-bit hex alpha suffix for opacity in
// [0, 1]. "#rgb" is expanded to "#rrggbb" and an existing "#rrggbbaa" alpha
// is replaced; hex digits keep their case. Other colors get the suffix
// appended verbatim and an empty color stays empty.
func WithOpacity(color string, opacity float64) string {
	return withAlpha(color, opacity)
}

func withAlpha(color string, opacity float64) string {
	if color == "" {
		return ""
	}
	opacity = math.Max(0, math.Min(1, opacity))
	return appendAlpha(color, fmt.Sprintf("%02x", int(math.Round(opacity*255))))
}

// appendAlpha sets the alpha channel of a hex color, keeping the caller's
// digits and case. Non-hex colors get the suffix appended verbatim.
func appendAlpha(color, alpha string) string {
	switch {
	case color == "":
		return ""
	case len(color) == 4 && isHex(color):
		var b strings.Builder
		b.WriteByte('#')
		for _, d := range color[1:] {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		return b.String() + alpha
	case len(color) == 7 && isHex(color):
		return color + alpha
	case len(color) == 9 && isHex(color[:7]):
		if _, err := strconv.ParseUint(color[7:], 16, 8); err == nil {
			return color[:7] + alpha
		}
	}
	return color + alpha
}

func isHex(color string) bool {
	_, err := colorful.Hex(color)
	return err == nil
}
