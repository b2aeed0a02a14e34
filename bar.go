package taskviz

import (
	"time"
)

// BarRect is one renderable bar: a labeled rectangle anchored on the
// baseline of the effective drawing area.
type BarRect struct {
	Label string
	Value float64
	X     float64
	Y     float64
	W     float64
	H     float64
	Delay time.Duration
}

// BarConfig lays categorical values out as vertical bars. Width is the
// fraction of each slot a bar occupies, defaulting to the full slot.
type BarConfig struct {
	Viewport Viewport
	Padding  Padding
	Max      float64
	Width    float64
}

func (c BarConfig) Build(items []CategoryValue) []BarRect {
	if len(items) == 0 {
		return nil
	}
	width := c.Width
	if width <= 0 || width > 1 {
		width = 1
	}
	var (
		ew   = c.Viewport.Width - c.Padding.Horizontal()
		eh   = c.Viewport.Height - c.Padding.Vertical()
		slot = ew / float64(len(items))
		base = c.Padding.Top + eh
		all  = make([]BarRect, 0, len(items))
	)
	for i, it := range items {
		var (
			w = slot * width
			o = (slot - w) / 2
			y = base
		)
		if c.Max > 0 && it.Value > 0 {
			y = base - (it.Value/c.Max)*eh
		}
		all = append(all, BarRect{
			Label: it.Label,
			Value: it.Value,
			X:     c.Padding.Left + float64(i)*slot + o,
			Y:     y,
			W:     w,
			H:     base - y,
		})
	}
	return all
}
