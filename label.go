package taskviz

import (
	"fmt"
	"time"
)

type Periodicity int

const (
	Daily Periodicity = iota
	Weekly
	Monthly
)

func ParsePeriodicity(str string) (Periodicity, error) {
	switch str {
	case "", "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("%s: unknown periodicity", str)
	}
}

func (p Periodicity) String() string {
	switch p {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return "daily"
	}
}

// Format renders a tick label for one domain date: short month and day
// for daily/weekly buckets, short month and two digit year for monthly.
func (p Periodicity) Format(t time.Time) string {
	if p == Monthly {
		return t.Format("Jan 06")
	}
	return t.Format("Jan 2")
}

type Label struct {
	Index int
	Text  string
}

const maxLabels = 7

// SelectLabels thins a domain down to at most seven axis labels. Small
// domains keep every entry; larger ones keep every step-th entry plus
// the last one, so the final point is always labeled.
func SelectLabels(domain []time.Time, period Periodicity) []Label {
	if len(domain) == 0 {
		return nil
	}
	if len(domain) <= maxLabels {
		all := make([]Label, len(domain))
		for i, t := range domain {
			all[i] = Label{Index: i, Text: period.Format(t)}
		}
		return all
	}
	var (
		step = (len(domain) + maxLabels - 2) / (maxLabels - 1)
		last = len(domain) - 1
		all  []Label
	)
	for i, t := range domain {
		if i%step != 0 && i != last {
			continue
		}
		all = append(all, Label{Index: i, Text: period.Format(t)})
	}
	return all
}
