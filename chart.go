package taskviz

// Viewport is the outer pixel box geometry is mapped into.
type Viewport struct {
	Width  float64
	Height float64
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// PadAll returns a padding with the same value on all four sides.
func PadAll(v float64) Padding {
	return Padding{
		Top:    v,
		Right:  v,
		Bottom: v,
		Left:   v,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding
}

func (c Chart) Viewport() Viewport {
	return Viewport{
		Width:  c.Width,
		Height: c.Height,
	}
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}
