package taskviz

import (
	"time"
)

// Stagger assigns reveal delays: a large step between series and a
// smaller one between points, producing a left to right, series by
// series reveal. It is pure metadata for a renderer.
type Stagger struct {
	Serie time.Duration
	Point time.Duration
}

var DefaultStagger = Stagger{
	Serie: 400 * time.Millisecond,
	Point: 40 * time.Millisecond,
}

// StaggerFor widens the series step so every point of a series is
// revealed before the next series starts.
func StaggerFor(domain int) Stagger {
	st := DefaultStagger
	if d := st.Point * time.Duration(domain); d > st.Serie {
		st.Serie = d
	}
	return st
}

func (s Stagger) Delay(serie, point int) time.Duration {
	return time.Duration(serie)*s.Serie + time.Duration(point)*s.Point
}

// SliceDelay staggers elements of a single sequence, such as donut
// sectors or bars.
func (s Stagger) SliceDelay(i int) time.Duration {
	return time.Duration(i) * s.Point
}

// Schedule returns a copy of geoms with series and point delays filled
// in. The input is left untouched.
func Schedule(geoms []SeriesGeometry, st Stagger) []SeriesGeometry {
	all := make([]SeriesGeometry, len(geoms))
	for i, g := range geoms {
		g.Delay = st.Delay(i, 0)
		points := make([]PixelPoint, len(g.Points))
		for j, pt := range g.Points {
			pt.Delay = st.Delay(i, j)
			points[j] = pt
		}
		g.Points = points
		all[i] = g
	}
	return all
}
