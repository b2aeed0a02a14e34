package taskviz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		importance float64
		timeSpent  float64
		want       Quadrant
	}{
		{7, 8, QuadrantAligned},
		{3, 8, QuadrantOverinvested},
		{7, 2, QuadrantNeglected},
		{2, 2, QuadrantOptimal},
		{5, 5, QuadrantAligned},
		{5, 2, QuadrantNeglected},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.importance, tt.timeSpent, 5), "classify(%v, %v)", tt.importance, tt.timeSpent)
	}
}

func TestQuadrantString(t *testing.T) {
	assert.Equal(t, "aligned", QuadrantAligned.String())
	assert.Equal(t, "neglected", QuadrantNeglected.String())
	assert.Equal(t, "overinvested", QuadrantOverinvested.String())
	assert.Equal(t, "optimal", QuadrantOptimal.String())
}

func TestMatrixBuild(t *testing.T) {
	m := Matrix{
		Min:      0,
		Max:      10,
		Viewport: Viewport{Width: 600, Height: 600},
		Padding:  PadAll(40),
	}
	points := m.Build([]Dimension{
		{Key: "health", Importance: 7, TimeSpent: 8},
		{Key: "admin", Importance: 3, TimeSpent: 8},
	})
	require.Len(t, points, 2)

	assert.Equal(t, QuadrantAligned, points[0].Quadrant)
	assert.Equal(t, 40+(8.0/10)*520, points[0].X)
	assert.Equal(t, 40+520-(7.0/10)*520, points[0].Y)

	assert.Equal(t, QuadrantOverinvested, points[1].Quadrant)
	assert.Equal(t, "admin", points[1].DimensionKey)
}

func TestMatrixDegenerateRange(t *testing.T) {
	m := Matrix{
		Min:      5,
		Max:      5,
		Viewport: Viewport{Width: 600, Height: 600},
		Padding:  PadAll(40),
	}
	points := m.Build([]Dimension{{Key: "only", Importance: 5, TimeSpent: 5}})
	require.Len(t, points, 1)
	assert.Equal(t, 300.0, points[0].X)
	assert.Equal(t, 300.0, points[0].Y)
}

func TestMatrixCollisionNudge(t *testing.T) {
	m := Matrix{
		Min:      0,
		Max:      10,
		Viewport: Viewport{Width: 600, Height: 600},
		Padding:  PadAll(40),
	}
	items := []Dimension{
		{Key: "a", Importance: 5, TimeSpent: 5},
		{Key: "b", Importance: 5, TimeSpent: 5},
		{Key: "c", Importance: 5, TimeSpent: 5},
	}
	points := m.Build(items)
	require.Len(t, points, 3)

	assert.Equal(t, points[0].Y, points[1].Y)
	assert.Equal(t, points[0].X+2*DefaultBubbleRadius, points[1].X)
	assert.Equal(t, points[0].X+4*DefaultBubbleRadius, points[2].X)

	assert.Equal(t, points, m.Build(items), "re-renders stay byte stable")
}
