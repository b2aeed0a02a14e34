package taskviz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayDomain(n int) []time.Time {
	var (
		all  = make([]time.Time, n)
		when = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	)
	for i := range all {
		all[i] = when.AddDate(0, 0, i)
	}
	return all
}

func TestSelectLabelsSmallDomain(t *testing.T) {
	labels := SelectLabels(dayDomain(3), Daily)
	require.Len(t, labels, 3)
	assert.Equal(t, Label{Index: 0, Text: "Jan 1"}, labels[0])
	assert.Equal(t, Label{Index: 2, Text: "Jan 3"}, labels[2])
}

func TestSelectLabelsThinning(t *testing.T) {
	labels := SelectLabels(dayDomain(30), Daily)
	require.Len(t, labels, 7)

	var indices []int
	for _, lb := range labels {
		indices = append(indices, lb.Index)
	}
	assert.Equal(t, []int{0, 5, 10, 15, 20, 25, 29}, indices)
}

func TestSelectLabelsNeverMoreThanSeven(t *testing.T) {
	for _, n := range []int{1, 7, 8, 13, 42, 365} {
		labels := SelectLabels(dayDomain(n), Daily)
		assert.LessOrEqual(t, len(labels), 7, "domain of %d", n)
		assert.Equal(t, n-1, labels[len(labels)-1].Index, "last entry always labeled")
	}
}

func TestSelectLabelsEmptyDomain(t *testing.T) {
	assert.Empty(t, SelectLabels(nil, Daily))
}

func TestPeriodicityFormat(t *testing.T) {
	when := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5", Daily.Format(when))
	assert.Equal(t, "Mar 5", Weekly.Format(when))
	assert.Equal(t, "Mar 25", Monthly.Format(when))
}

func TestParsePeriodicity(t *testing.T) {
	for str, want := range map[string]Periodicity{
		"":        Daily,
		"daily":   Daily,
		"weekly":  Weekly,
		"monthly": Monthly,
	} {
		got, err := ParsePeriodicity(str)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParsePeriodicity("hourly")
	assert.Error(t, err)
}
