package dash

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/midbel/taskviz"
	"github.com/midbel/taskviz/decode"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Render draws every chart of the config to its output file. Charts
// are independent so they render concurrently; the first failure wins.
func (c *Config) Render(ctx context.Context, logger *zap.Logger) error {
	grp, ctx := errgroup.WithContext(ctx)
	for i := range c.Charts {
		ch := c.chartAt(i)
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			now := time.Now()
			if err := RenderChart(ch); err != nil {
				return fmt.Errorf("%s: %w", ch.Data, err)
			}
			logger.Info("chart rendered",
				zap.String("title", ch.Title),
				zap.String("type", ch.Type),
				zap.String("file", ch.Output),
				zap.Duration("elapsed", time.Since(now)))
			return nil
		})
	}
	return grp.Wait()
}

// RenderChart draws a single chart block to its output file.
func RenderChart(ch Chart) error {
	r, err := os.Open(ch.Data)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(ch.Output)
	if err != nil {
		return err
	}
	defer w.Close()

	chart := taskviz.Chart{
		Title:   ch.Title,
		Width:   ch.Width,
		Height:  ch.Height,
		Padding: ch.Padding.padding(),
	}
	switch ch.Type {
	case TypeLine, TypeArea:
		return renderSeries(w, chart, ch, r)
	case TypeBar:
		return renderBars(w, chart, ch, r)
	case TypeDonut:
		return renderDonut(w, chart, ch, r)
	case TypeMatrix:
		return renderMatrix(w, chart, ch, r)
	default:
		return fmt.Errorf("%s: unknown chart type", ch.Type)
	}
}

func renderSeries(w io.Writer, chart taskviz.Chart, ch Chart, r io.Reader) error {
	ds, keys, err := decode.ReadDataset(r)
	if err != nil {
		return err
	}
	period, err := taskviz.ParsePeriodicity(ch.Periodicity)
	if err != nil {
		return err
	}
	series := seriesFor(ch.Series, keys)
	max := ch.Max
	if max <= 0 {
		max = taskviz.MaxOf(ds, series)
	}
	geoms := taskviz.BuildSeries(ds, series, max, chart.Viewport(), chart.Padding)
	geoms = taskviz.Schedule(geoms, taskviz.StaggerFor(len(ds)))
	labels := taskviz.SelectLabels(ds.Dates(), period)
	taskviz.RenderTimeSeries(w, chart, geoms, labels, ch.Type == TypeArea)
	return nil
}

func renderBars(w io.Writer, chart taskviz.Chart, ch Chart, r io.Reader) error {
	items, err := decode.ReadCategories(r)
	if err != nil {
		return err
	}
	max := ch.Max
	if max <= 0 {
		max = maxValue(items)
	}
	width := ch.BarWidth
	if width <= 0 {
		width = 0.6
	}
	cfg := taskviz.BarConfig{
		Viewport: chart.Viewport(),
		Padding:  chart.Padding,
		Max:      max,
		Width:    width,
	}
	taskviz.RenderBars(w, chart, cfg.Build(items), taskviz.Tableau10)
	return nil
}

func renderDonut(w io.Writer, chart taskviz.Chart, ch Chart, r io.Reader) error {
	items, err := decode.ReadCategories(r)
	if err != nil {
		return err
	}
	cfg := taskviz.DonutConfig(chart.Viewport(), chart.Padding, ch.Thickness)
	taskviz.RenderDonut(w, chart, cfg, cfg.Build(items), taskviz.Category10)
	return nil
}

func renderMatrix(w io.Writer, chart taskviz.Chart, ch Chart, r io.Reader) error {
	items, err := decode.ReadDimensions(r)
	if err != nil {
		return err
	}
	rg := Range{Min: 0, Max: 10}
	if ch.Range != nil {
		rg = *ch.Range
	}
	m := taskviz.Matrix{
		Min:      rg.Min,
		Max:      rg.Max,
		Viewport: chart.Viewport(),
		Padding:  chart.Padding,
	}
	taskviz.RenderMatrix(w, chart, m, m.Build(items), taskviz.Quadrant4)
	return nil
}

// seriesFor keeps declared series; when none are declared every column
// of the dataset becomes one, colored from the default palette.
func seriesFor(declared []Serie, keys []string) []taskviz.Series {
	if len(declared) > 0 {
		all := make([]taskviz.Series, 0, len(declared))
		for i, s := range declared {
			if s.Label == "" {
				s.Label = s.Key
			}
			if s.Color == "" {
				s.Color = taskviz.Category10.Color(i)
			}
			all = append(all, taskviz.Series{Key: s.Key, Label: s.Label, Color: s.Color})
		}
		return all
	}
	all := make([]taskviz.Series, 0, len(keys))
	for i, k := range keys {
		all = append(all, taskviz.Series{
			Key:   k,
			Label: k,
			Color: taskviz.Category10.Color(i),
		})
	}
	return all
}

func maxValue(items []taskviz.CategoryValue) float64 {
	max := 1.0
	for _, it := range items {
		if it.Value > max {
			max = it.Value
		}
	}
	return max
}
