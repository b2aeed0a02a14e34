package taskviz

// Scale maps a shared ordinal domain and an explicit maximum value into
// the effective drawing area of a viewport. The zero value is unusable;
// build one with NewScale.
type Scale struct {
	Domain   int
	Max      float64
	Viewport Viewport
	Padding  Padding
}

func NewScale(domain int, max float64, vp Viewport, pad Padding) Scale {
	return Scale{
		Domain:   domain,
		Max:      max,
		Viewport: vp,
		Padding:  pad,
	}
}

func (s Scale) EffectiveWidth() float64 {
	return s.Viewport.Width - s.Padding.Horizontal()
}

func (s Scale) EffectiveHeight() float64 {
	return s.Viewport.Height - s.Padding.Vertical()
}

// X positions an ordinal index across the effective width. A single
// point domain is centered instead of dividing by zero.
func (s Scale) X(index int) float64 {
	width := s.EffectiveWidth()
	if s.Domain <= 1 {
		return s.Padding.Left + width/2
	}
	return s.Padding.Left + (float64(index)/float64(s.Domain-1))*width
}

// Y projects a raw value against Max. Values are not clamped: a value
// above Max lands above the effective area. A non positive Max pins
// every value to the baseline so the output stays a valid flat line.
func (s Scale) Y(value float64) float64 {
	height := s.EffectiveHeight()
	if s.Max <= 0 {
		return s.Padding.Top + height
	}
	return s.Padding.Top + height - (value/s.Max)*height
}

// Baseline is the bottom edge of the effective drawing area.
func (s Scale) Baseline() float64 {
	return s.Padding.Top + s.EffectiveHeight()
}
