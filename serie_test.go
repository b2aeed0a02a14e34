package taskviz

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	var (
		ds   Dataset
		when = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		open = []float64{3, 5, 2}
	)
	for i, v := range open {
		ds = append(ds, Entry{
			Date:   when.AddDate(0, 0, i),
			Values: map[string]float64{"open": v},
		})
	}
	return ds
}

func TestBuildSeries(t *testing.T) {
	var (
		ds     = sampleDataset()
		series = []Series{{Key: "open", Label: "Open", Color: "#1f77b4"}}
	)
	geoms := BuildSeries(ds, series, 5, Viewport{Width: 800, Height: 200}, PadAll(10))
	require.Len(t, geoms, 1)

	geo := geoms[0]
	assert.Equal(t, "open", geo.Key)
	assert.Equal(t, 10.0, geo.Total)
	require.Len(t, geo.Points, 3)

	assert.Equal(t, 10.0, geo.Points[1].Y, "max value reaches the top")
	assert.Equal(t, 118.0, geo.Points[2].Y)
	assert.Equal(t, 5.0, geo.Points[1].Value, "raw value carried through")
	assert.Equal(t, ds[1].Date, geo.Points[1].Date)

	assert.Equal(t, LinePath(geo.Points), geo.LinePath)
	assert.Equal(t, AreaPath(geo.Points, 190), geo.AreaPath)
	assert.True(t, strings.HasSuffix(geo.AreaPath, "Z"))
}

func TestBuildSeriesIdempotent(t *testing.T) {
	var (
		ds     = sampleDataset()
		series = []Series{{Key: "open"}, {Key: "completed"}}
		vp     = Viewport{Width: 800, Height: 200}
	)
	fst := BuildSeries(ds, series, 5, vp, PadAll(10))
	snd := BuildSeries(ds, series, 5, vp, PadAll(10))
	assert.Equal(t, fst, snd, "identical inputs yield byte identical geometry")
}

func TestBuildSeriesMissingKey(t *testing.T) {
	geoms := BuildSeries(sampleDataset(), []Series{{Key: "completed"}}, 5, Viewport{Width: 800, Height: 200}, PadAll(10))
	require.Len(t, geoms, 1)
	assert.Zero(t, geoms[0].Total)
	for _, pt := range geoms[0].Points {
		assert.Equal(t, 190.0, pt.Y, "missing values sit on the baseline")
	}
}

func TestBuildSeriesEmptyDataset(t *testing.T) {
	geoms := BuildSeries(nil, []Series{{Key: "open"}}, 5, Viewport{Width: 800, Height: 200}, PadAll(10))
	require.Len(t, geoms, 1)
	assert.Empty(t, geoms[0].Points)
	assert.Equal(t, "", geoms[0].LinePath)
	assert.Equal(t, "", geoms[0].AreaPath)
}

func TestMaxOf(t *testing.T) {
	ds := sampleDataset()
	assert.Equal(t, 5.0, MaxOf(ds, []Series{{Key: "open"}}))
	assert.Equal(t, 1.0, MaxOf(ds, []Series{{Key: "completed"}}), "floor of one")
	assert.Equal(t, 1.0, MaxOf(nil, nil))
}

func TestDatasetAccessors(t *testing.T) {
	ds := sampleDataset()
	dates := ds.Dates()
	require.Len(t, dates, 3)
	assert.True(t, dates[0].Before(dates[2]))
	assert.Equal(t, []float64{3, 5, 2}, ds.Values("open"))
}
