package taskviz

import (
	"math"
	"strings"
)

// CategoryValue is one labeled magnitude of a categorical dataset.
type CategoryValue struct {
	Label string
	Value float64
}

// ArcSlice is one angular sector of a donut or pie. Angles are radians;
// slices are contiguous in input order and the last EndAngle equals the
// first StartAngle plus a full turn when the total is positive.
type ArcSlice struct {
	Label      string
	Value      float64
	StartAngle float64
	EndAngle   float64
	Path       string
}

func (a ArcSlice) Span() float64 {
	return a.EndAngle - a.StartAngle
}

const (
	fullTurn = 2 * math.Pi
	// sectors start at 12 o'clock and run clockwise
	sectorStart = -math.Pi / 2
)

// SectorConfig fixes the circle geometry sectors are laid out on. A
// zero InnerRadius yields pie wedges, a positive one donut segments.
type SectorConfig struct {
	CX          float64
	CY          float64
	OuterRadius float64
	InnerRadius float64
}

// DonutConfig centers a ring of the given thickness in the viewport.
func DonutConfig(vp Viewport, pad Padding, thickness float64) SectorConfig {
	var (
		width  = vp.Width - pad.Horizontal()
		height = vp.Height - pad.Vertical()
		outer  = math.Min(width, height) / 2
	)
	if thickness <= 0 || thickness > outer {
		thickness = outer / 3
	}
	return SectorConfig{
		CX:          pad.Left + width/2,
		CY:          pad.Top + height/2,
		OuterRadius: outer,
		InnerRadius: outer - thickness,
	}
}

// Build lays items out as contiguous sectors, each span proportional
// to its share of the positive total. A zero or negative total yields
// nil: nothing to render. Non positive values keep their position in
// the output as zero-span slices with an empty path.
func (c SectorConfig) Build(items []CategoryValue) []ArcSlice {
	var total float64
	for _, it := range items {
		if it.Value > 0 {
			total += it.Value
		}
	}
	if total <= 0 {
		return nil
	}
	var (
		all   = make([]ArcSlice, 0, len(items))
		cum   float64
		angle = sectorStart
	)
	for _, it := range items {
		sl := ArcSlice{
			Label:      it.Label,
			Value:      it.Value,
			StartAngle: angle,
			EndAngle:   angle,
		}
		if it.Value > 0 {
			cum += it.Value
			sl.EndAngle = sectorStart + (cum/total)*fullTurn
			sl.Path = c.sectorPath(sl.StartAngle, sl.EndAngle)
		}
		angle = sl.EndAngle
		all = append(all, sl)
	}
	return all
}

// PointAt converts polar coordinates on the sector circle back to
// viewport pixels.
func (c SectorConfig) PointAt(angle, radius float64) (float64, float64) {
	return c.CX + radius*math.Cos(angle), c.CY + radius*math.Sin(angle)
}

func (c SectorConfig) sectorPath(from, to float64) string {
	var (
		str   strings.Builder
		span  = to - from
		full  = span >= fullTurn-1e-9
		large = span > math.Pi
	)
	ox, oy := c.PointAt(from, c.OuterRadius)
	str.WriteString("M ")
	writePos(&str, ox, oy)
	if full {
		// a single SVG arc cannot sweep a whole turn
		mx, my := c.PointAt(from+math.Pi, c.OuterRadius)
		writeArc(&str, c.OuterRadius, false, true, mx, my)
		writeArc(&str, c.OuterRadius, false, true, ox, oy)
	} else {
		ex, ey := c.PointAt(to, c.OuterRadius)
		writeArc(&str, c.OuterRadius, large, true, ex, ey)
	}
	switch {
	case c.InnerRadius > 0 && full:
		ix, iy := c.PointAt(from, c.InnerRadius)
		mx, my := c.PointAt(from+math.Pi, c.InnerRadius)
		str.WriteString(" L ")
		writePos(&str, ix, iy)
		writeArc(&str, c.InnerRadius, false, false, mx, my)
		writeArc(&str, c.InnerRadius, false, false, ix, iy)
	case c.InnerRadius > 0:
		ex, ey := c.PointAt(to, c.InnerRadius)
		sx, sy := c.PointAt(from, c.InnerRadius)
		str.WriteString(" L ")
		writePos(&str, ex, ey)
		writeArc(&str, c.InnerRadius, large, false, sx, sy)
	case !full:
		str.WriteString(" L ")
		writePos(&str, c.CX, c.CY)
	}
	str.WriteString(" Z")
	return str.String()
}

func writeArc(str *strings.Builder, radius float64, large, sweep bool, x, y float64) {
	str.WriteString(" A ")
	str.WriteString(formatNumber(radius))
	str.WriteRune(' ')
	str.WriteString(formatNumber(radius))
	str.WriteString(" 0 ")
	str.WriteString(arcFlag(large))
	str.WriteRune(' ')
	str.WriteString(arcFlag(sweep))
	str.WriteRune(' ')
	writePos(str, x, y)
}

func arcFlag(set bool) string {
	if set {
		return "1"
	}
	return "0"
}
