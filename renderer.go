package taskviz

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const FontSize = 12.0

const currentColour = "currentColour"

// RenderTimeSeries writes a line or area chart document: one path per
// series geometry plus the thinned bottom axis labels.
func RenderTimeSeries(w io.Writer, c Chart, geoms []SeriesGeometry, labels []Label, fill bool) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	var domain int
	if len(geoms) > 0 {
		domain = len(slices.Fst(geoms).Points)
	}
	scale := NewScale(domain, 1, c.Viewport(), c.Padding)
	el.Append(bottomAxis(c, scale, labels))
	for _, g := range geoms {
		el.Append(serieElement(g, scale.Baseline(), fill))
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func serieElement(g SeriesGeometry, baseline float64, fill bool) svg.Element {
	var (
		grp = getBaseGroup(g.Color, "line")
		pat = getBasePath(fill)
	)
	grp.Id = g.Key
	for i, pt := range g.Points {
		pos := svg.NewPos(pt.X, pt.Y)
		if i == 0 {
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
	}
	if fill && len(g.Points) > 0 {
		pat.AbsLineTo(svg.NewPos(slices.Lst(g.Points).X, baseline))
		pat.AbsLineTo(svg.NewPos(slices.Fst(g.Points).X, baseline))
		pat.ClosePath()
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func bottomAxis(c Chart, scale Scale, labels []Label) svg.Element {
	var (
		grp  svg.Group
		base = scale.Baseline()
		font = svg.NewFont(FontSize)
	)
	grp.Id = "axis"
	line := svg.NewLine(svg.NewPos(c.Padding.Left, base), svg.NewPos(c.Width-c.Padding.Right, base))
	line.Stroke = svg.NewStroke("black", 1)
	grp.Append(line.AsElement())
	for _, lb := range labels {
		txt := svg.NewText(lb.Text)
		txt.Pos = svg.NewPos(scale.X(lb.Index), base+FontSize*0.4)
		txt.Font = font
		txt.Anchor = "middle"
		txt.Baseline = "hanging"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

// RenderDonut writes a donut or pie document from laid out sectors.
func RenderDonut(w io.Writer, c Chart, cfg SectorConfig, arcs []ArcSlice, pal Palette) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	grp := getBaseGroup("", "pie")
	for i, sl := range arcs {
		if sl.Span() <= 0 {
			continue
		}
		grp.Append(sectorElement(cfg, sl, pal.Color(i)))
	}
	el.Append(grp.AsElement())

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func sectorElement(cfg SectorConfig, sl ArcSlice, color string) svg.Element {
	var (
		span  = sl.Span()
		full  = span >= fullTurn-1e-9
		large = span > math.Pi
		pat   svg.Path
	)
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(color)

	ox, oy := cfg.PointAt(sl.StartAngle, cfg.OuterRadius)
	pat.AbsMoveTo(svg.NewPos(ox, oy))
	if full {
		mx, my := cfg.PointAt(sl.StartAngle+math.Pi, cfg.OuterRadius)
		pat.AbsArcTo(svg.NewPos(mx, my), cfg.OuterRadius, cfg.OuterRadius, 0, false, true)
		pat.AbsArcTo(svg.NewPos(ox, oy), cfg.OuterRadius, cfg.OuterRadius, 0, false, true)
	} else {
		ex, ey := cfg.PointAt(sl.EndAngle, cfg.OuterRadius)
		pat.AbsArcTo(svg.NewPos(ex, ey), cfg.OuterRadius, cfg.OuterRadius, 0, large, true)
	}
	switch {
	case cfg.InnerRadius > 0 && full:
		ix, iy := cfg.PointAt(sl.StartAngle, cfg.InnerRadius)
		mx, my := cfg.PointAt(sl.StartAngle+math.Pi, cfg.InnerRadius)
		pat.AbsLineTo(svg.NewPos(ix, iy))
		pat.AbsArcTo(svg.NewPos(mx, my), cfg.InnerRadius, cfg.InnerRadius, 0, false, false)
		pat.AbsArcTo(svg.NewPos(ix, iy), cfg.InnerRadius, cfg.InnerRadius, 0, false, false)
	case cfg.InnerRadius > 0:
		ex, ey := cfg.PointAt(sl.EndAngle, cfg.InnerRadius)
		sx, sy := cfg.PointAt(sl.StartAngle, cfg.InnerRadius)
		pat.AbsLineTo(svg.NewPos(ex, ey))
		pat.AbsArcTo(svg.NewPos(sx, sy), cfg.InnerRadius, cfg.InnerRadius, 0, large, false)
	case !full:
		pat.AbsLineTo(svg.NewPos(cfg.CX, cfg.CY))
	}
	pat.ClosePath()
	return pat.AsElement()
}

// RenderBars writes a vertical bar chart document with one label under
// each bar.
func RenderBars(w io.Writer, c Chart, bars []BarRect, pal Palette) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	var (
		grp  = getBaseGroup("", "bar")
		base = c.Padding.Top + c.DrawingHeight()
		font = svg.NewFont(FontSize)
	)
	for i, b := range bars {
		var rec svg.Rect
		rec.Title = b.Label
		rec.Pos = svg.NewPos(b.X, b.Y)
		rec.Dim = svg.NewDim(b.W, b.H)
		rec.Fill = svg.NewFill(pal.Color(i))
		grp.Append(rec.AsElement())

		txt := svg.NewText(b.Label)
		txt.Pos = svg.NewPos(b.X+b.W/2, base+FontSize*0.4)
		txt.Font = font
		txt.Anchor = "middle"
		txt.Baseline = "hanging"
		grp.Append(txt.AsElement())
	}
	el.Append(grp.AsElement())

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

// RenderMatrix writes a bubble matrix document: midpoint gridlines and
// one circle per dimension, colored by quadrant.
func RenderMatrix(w io.Writer, c Chart, m Matrix, points []BubblePoint, pal Palette) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	radius := m.Radius
	if radius <= 0 {
		radius = DefaultBubbleRadius
	}
	var (
		grp  = getBaseGroup("", "matrix")
		mx   = m.scaleX(m.Midpoint())
		my   = m.scaleY(m.Midpoint())
		font = svg.NewFont(FontSize)
	)
	vert := svg.NewLine(svg.NewPos(mx, c.Padding.Top), svg.NewPos(mx, c.Height-c.Padding.Bottom))
	vert.Stroke = svg.NewStroke("black", 1)
	vert.Stroke.Opacity = 0.1
	grp.Append(vert.AsElement())

	hori := svg.NewLine(svg.NewPos(c.Padding.Left, my), svg.NewPos(c.Width-c.Padding.Right, my))
	hori.Stroke = svg.NewStroke("black", 1)
	hori.Stroke.Opacity = 0.1
	grp.Append(hori.AsElement())

	for _, pt := range points {
		var dot svg.Circle
		dot.Pos = svg.NewPos(pt.X, pt.Y)
		dot.Radius = radius
		dot.Fill = svg.NewFill(pal.Color(int(pt.Quadrant)))
		grp.Append(dot.AsElement())

		txt := svg.NewText(pt.DimensionKey)
		txt.Pos = svg.NewPos(pt.X+radius+FontSize*0.4, pt.Y)
		txt.Font = font
		txt.Anchor = "start"
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	el.Append(grp.AsElement())

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func getBasePath(fill bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
