package taskviz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaggerDelay(t *testing.T) {
	st := Stagger{Serie: 400 * time.Millisecond, Point: 40 * time.Millisecond}
	assert.Equal(t, time.Duration(0), st.Delay(0, 0))
	assert.Equal(t, 120*time.Millisecond, st.Delay(0, 3))
	assert.Equal(t, 880*time.Millisecond, st.Delay(2, 2))
	assert.Equal(t, 80*time.Millisecond, st.SliceDelay(2))
}

func TestStaggerForKeepsSeriesOrdered(t *testing.T) {
	for _, domain := range []int{3, 10, 50} {
		st := StaggerFor(domain)
		assert.Less(t, st.Delay(0, domain-1), st.Delay(1, 0), "domain of %d", domain)
	}
}

func TestSchedule(t *testing.T) {
	geoms := []SeriesGeometry{
		{Key: "open", Points: []PixelPoint{{X: 1}, {X: 2}}},
		{Key: "completed", Points: []PixelPoint{{X: 1}, {X: 2}}},
	}
	st := Stagger{Serie: 100 * time.Millisecond, Point: 10 * time.Millisecond}
	out := Schedule(geoms, st)
	require.Len(t, out, 2)

	assert.Equal(t, time.Duration(0), out[0].Delay)
	assert.Equal(t, 100*time.Millisecond, out[1].Delay)
	assert.Equal(t, 10*time.Millisecond, out[0].Points[1].Delay)
	assert.Equal(t, 110*time.Millisecond, out[1].Points[1].Delay)

	assert.Zero(t, geoms[1].Delay, "input left untouched")
	assert.Zero(t, geoms[0].Points[1].Delay)
}
