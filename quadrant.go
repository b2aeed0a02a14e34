package taskviz

import (
	"time"
)

// Quadrant classifies a dimension by comparing its two scores against
// the midpoint of their declared range.
type Quadrant int

const (
	QuadrantOptimal Quadrant = iota
	QuadrantAligned
	QuadrantNeglected
	QuadrantOverinvested
)

func (q Quadrant) String() string {
	switch q {
	case QuadrantAligned:
		return "aligned"
	case QuadrantNeglected:
		return "neglected"
	case QuadrantOverinvested:
		return "overinvested"
	default:
		return "optimal"
	}
}

// Classify buckets an importance/time-spent pair. Scores equal to the
// midpoint count as high.
func Classify(importance, timeSpent, midpoint float64) Quadrant {
	switch {
	case importance >= midpoint && timeSpent >= midpoint:
		return QuadrantAligned
	case importance >= midpoint:
		return QuadrantNeglected
	case timeSpent >= midpoint:
		return QuadrantOverinvested
	default:
		return QuadrantOptimal
	}
}

// Dimension is one item of a bubble matrix: a key with two bounded
// scores.
type Dimension struct {
	Key        string
	Importance float64
	TimeSpent  float64
}

type BubblePoint struct {
	DimensionKey string
	Importance   float64
	TimeSpent    float64
	Quadrant     Quadrant
	X            float64
	Y            float64
	Delay        time.Duration
}

// DefaultBubbleRadius is the radius renderers draw bubbles with and the
// unit collisions are nudged by.
const DefaultBubbleRadius = 8.0

// Matrix places dimensions on a two axis grid: time spent across,
// importance up, both scaled over the declared [Min, Max] score range.
type Matrix struct {
	Min      float64
	Max      float64
	Viewport Viewport
	Padding  Padding
	Radius   float64
}

func (m Matrix) Midpoint() float64 {
	return (m.Min + m.Max) / 2
}

// Build positions every dimension and tags it with its quadrant.
// Items landing on the exact same pixel are shifted right by one
// bubble diameter per duplicate, in input order, so repeated calls
// stay byte stable.
func (m Matrix) Build(items []Dimension) []BubblePoint {
	radius := m.Radius
	if radius <= 0 {
		radius = DefaultBubbleRadius
	}
	var (
		mid  = m.Midpoint()
		all  = make([]BubblePoint, 0, len(items))
		seen = make(map[[2]float64]int, len(items))
	)
	for _, it := range items {
		pt := BubblePoint{
			DimensionKey: it.Key,
			Importance:   it.Importance,
			TimeSpent:    it.TimeSpent,
			Quadrant:     Classify(it.Importance, it.TimeSpent, mid),
			X:            m.scaleX(it.TimeSpent),
			Y:            m.scaleY(it.Importance),
		}
		at := [2]float64{pt.X, pt.Y}
		if n := seen[at]; n > 0 {
			pt.X += float64(n) * radius * 2
		}
		seen[at]++
		all = append(all, pt)
	}
	return all
}

func (m Matrix) scaleX(v float64) float64 {
	width := m.Viewport.Width - m.Padding.Horizontal()
	if m.Max <= m.Min {
		return m.Padding.Left + width/2
	}
	return m.Padding.Left + ((v-m.Min)/(m.Max-m.Min))*width
}

func (m Matrix) scaleY(v float64) float64 {
	height := m.Viewport.Height - m.Padding.Vertical()
	if m.Max <= m.Min {
		return m.Padding.Top + height/2
	}
	return m.Padding.Top + height - ((v-m.Min)/(m.Max-m.Min))*height
}
