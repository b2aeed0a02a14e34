package taskviz

import (
	"time"
)

// Series names one data channel of a dataset. Identity is Key.
type Series struct {
	Key   string
	Label string
	Color string
}

// Entry is one time bucket of a dataset: a date and one value per
// series key. Missing keys read as zero.
type Entry struct {
	Date   time.Time
	Values map[string]float64
}

type Dataset []Entry

func (d Dataset) Dates() []time.Time {
	all := make([]time.Time, len(d))
	for i := range d {
		all[i] = d[i].Date
	}
	return all
}

func (d Dataset) Values(key string) []float64 {
	all := make([]float64, len(d))
	for i := range d {
		all[i] = d[i].Values[key]
	}
	return all
}

// PixelPoint is a projected observation. Value and Date are carried
// through unchanged for labeling.
type PixelPoint struct {
	X     float64
	Y     float64
	Value float64
	Date  time.Time
	Delay time.Duration
}

// SeriesGeometry is the renderable form of one series. It is rebuilt
// from scratch on every call and never mutated in place.
type SeriesGeometry struct {
	Key      string
	Label    string
	Color    string
	Points   []PixelPoint
	Total    float64
	LinePath string
	AreaPath string
	Delay    time.Duration
}

// BuildSeries projects every series of a dataset into pixel space and
// derives its line and area paths. All series share the same domain
// length and ordering.
func BuildSeries(ds Dataset, series []Series, max float64, vp Viewport, pad Padding) []SeriesGeometry {
	var (
		scale = NewScale(len(ds), max, vp, pad)
		all   = make([]SeriesGeometry, 0, len(series))
	)
	for _, s := range series {
		geo := SeriesGeometry{
			Key:   s.Key,
			Label: s.Label,
			Color: s.Color,
		}
		geo.Points = make([]PixelPoint, 0, len(ds))
		for i, e := range ds {
			value := e.Values[s.Key]
			geo.Total += value
			geo.Points = append(geo.Points, PixelPoint{
				X:     scale.X(i),
				Y:     scale.Y(value),
				Value: value,
				Date:  e.Date,
			})
		}
		geo.LinePath = LinePath(geo.Points)
		geo.AreaPath = AreaPath(geo.Points, scale.Baseline())
		all = append(all, geo)
	}
	return all
}

// MaxOf returns the maximum value across all given series with a floor
// of one, the usual maximum handed to BuildSeries.
func MaxOf(ds Dataset, series []Series) float64 {
	max := 1.0
	for _, e := range ds {
		for _, s := range series {
			if v := e.Values[s.Key]; v > max {
				max = v
			}
		}
	}
	return max
}
