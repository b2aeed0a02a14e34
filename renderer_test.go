package taskviz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTimeSeries(t *testing.T) {
	var (
		chart = Chart{Width: 800, Height: 200, Padding: PadAll(10)}
		serie = []Series{{Key: "open", Label: "Open", Color: Category10.Color(0)}}
		ds    = sampleDataset()
	)
	geoms := BuildSeries(ds, serie, 5, chart.Viewport(), chart.Padding)
	labels := SelectLabels(ds.Dates(), Daily)

	var buf bytes.Buffer
	RenderTimeSeries(&buf, chart, geoms, labels, true)
	require.NotZero(t, buf.Len())
	assert.Contains(t, buf.String(), "<svg")

	var again bytes.Buffer
	RenderTimeSeries(&again, chart, geoms, labels, true)
	assert.Equal(t, buf.String(), again.String(), "rendering is deterministic")
}

func TestRenderDonut(t *testing.T) {
	var (
		chart = Chart{Width: 400, Height: 400, Padding: PadAll(20)}
		cfg   = DonutConfig(chart.Viewport(), chart.Padding, 60)
		items = []CategoryValue{{Label: "Open", Value: 12}, {Label: "Done", Value: 23}}
	)
	var buf bytes.Buffer
	RenderDonut(&buf, chart, cfg, cfg.Build(items), Category10)
	assert.NotZero(t, buf.Len())
}

func TestRenderBars(t *testing.T) {
	var (
		chart = Chart{Width: 800, Height: 200, Padding: PadAll(10)}
		cfg   = BarConfig{Viewport: chart.Viewport(), Padding: chart.Padding, Max: 10, Width: 0.6}
		items = []CategoryValue{{Label: "Open", Value: 10}, {Label: "Done", Value: 4}}
	)
	var buf bytes.Buffer
	RenderBars(&buf, chart, cfg.Build(items), Tableau10)
	assert.NotZero(t, buf.Len())
}

func TestRenderMatrix(t *testing.T) {
	var (
		chart = Chart{Width: 600, Height: 600, Padding: PadAll(40)}
		m     = Matrix{Min: 0, Max: 10, Viewport: chart.Viewport(), Padding: chart.Padding}
		items = []Dimension{{Key: "health", Importance: 7, TimeSpent: 8}}
	)
	var buf bytes.Buffer
	RenderMatrix(&buf, chart, m, m.Build(items), Quadrant4)
	assert.NotZero(t, buf.Len())
}
