// Package decode reads the tabular CSV files charts are built from:
// time bucketed datasets, category totals and scored dimensions.
package decode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/taskviz"
)

const DateFormat = "2006-01-02"

var ErrEmpty = errors.New("no rows")

// ReadDataset reads a dataset with a "date,<key>..." header, one row
// per time bucket. Blank cells read as zero; anything else non numeric
// is a caller error and fails fast.
func ReadDataset(r io.Reader) (taskviz.Dataset, []string, error) {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true

	header, err := rs.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("header needs a date column and at least one series")
	}
	keys := make([]string, len(header)-1)
	for i, k := range header[1:] {
		keys[i] = strings.TrimSpace(k)
	}
	var ds taskviz.Dataset
	for line := 2; ; line++ {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		when, err := time.Parse(DateFormat, strings.TrimSpace(row[0]))
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		e := taskviz.Entry{
			Date:   when,
			Values: make(map[string]float64, len(keys)),
		}
		for i, key := range keys {
			cell := strings.TrimSpace(row[i+1])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d, column %s: %w", line, key, err)
			}
			e.Values[key] = v
		}
		ds = append(ds, e)
	}
	if len(ds) == 0 {
		return nil, nil, ErrEmpty
	}
	return ds, keys, nil
}

// ReadCategories reads label,value rows. A leading header row is
// skipped when its second cell is not numeric.
func ReadCategories(r io.Reader) ([]taskviz.CategoryValue, error) {
	rows, err := readRows(r, 2)
	if err != nil {
		return nil, err
	}
	all := make([]taskviz.CategoryValue, 0, len(rows))
	for i, row := range rows {
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		all = append(all, taskviz.CategoryValue{
			Label: row[0],
			Value: v,
		})
	}
	if len(all) == 0 {
		return nil, ErrEmpty
	}
	return all, nil
}

// ReadDimensions reads key,importance,timeSpent rows. A leading header
// row is skipped when its score cells are not numeric.
func ReadDimensions(r io.Reader) ([]taskviz.Dimension, error) {
	rows, err := readRows(r, 3)
	if err != nil {
		return nil, err
	}
	all := make([]taskviz.Dimension, 0, len(rows))
	for i, row := range rows {
		imp, err1 := strconv.ParseFloat(row[1], 64)
		spn, err2 := strconv.ParseFloat(row[2], 64)
		if err1 != nil || err2 != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: scores must be numeric", i+1)
		}
		all = append(all, taskviz.Dimension{
			Key:        row[0],
			Importance: imp,
			TimeSpent:  spn,
		})
	}
	if len(all) == 0 {
		return nil, ErrEmpty
	}
	return all, nil
}

func readRows(r io.Reader, fields int) ([][]string, error) {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true
	rs.FieldsPerRecord = fields

	var rows [][]string
	for {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}
