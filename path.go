package taskviz

import (
	"strconv"
	"strings"

	"github.com/midbel/slices"
)

// LinePath builds an SVG path data string from an ordered list of
// pixel points: empty for no points, a bare moveto for a single point,
// one lineto per subsequent point otherwise. Input order is preserved
// and coincident points are kept.
func LinePath(points []PixelPoint) string {
	if len(points) == 0 {
		return ""
	}
	var (
		str = new(strings.Builder)
		fst = slices.Fst(points)
	)
	str.WriteString("M ")
	writePos(str, fst.X, fst.Y)
	for _, pt := range slices.Rest(points) {
		str.WriteString(" L ")
		writePos(str, pt.X, pt.Y)
	}
	return str.String()
}

// AreaPath builds the closed polygon bounded above by the line through
// points and below by baseline. Its leading segments are exactly the
// line path, so a renderer can stack both on the same coordinates.
func AreaPath(points []PixelPoint, baseline float64) string {
	if len(points) == 0 {
		return ""
	}
	var str strings.Builder
	str.WriteString(LinePath(points))
	str.WriteString(" L ")
	writePos(&str, slices.Lst(points).X, baseline)
	str.WriteString(" L ")
	writePos(&str, slices.Fst(points).X, baseline)
	str.WriteString(" Z")
	return str.String()
}

func writePos(str *strings.Builder, x, y float64) {
	str.WriteString(formatNumber(x))
	str.WriteRune(' ')
	str.WriteString(formatNumber(y))
}

// formatNumber keeps full float precision with the shortest exact
// representation, so identical input always yields identical strings.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
