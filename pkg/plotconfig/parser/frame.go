// Package parser reads panel frame data from Excel workbooks.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// ReadFrame reads a frame from a sheet. The first row holds column names,
// the first column holds time (or category) values and every other column
// becomes a field. Rows with a non-numeric time value are skipped; other
// non-numeric or empty cells become NaN.
func ReadFrame(f *excelize.File, sheetName string) (*models.Frame, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	frame := &models.Frame{Name: sheetName}
	if len(rows) == 0 {
		return frame, nil
	}

	// GetRows trims trailing empty cells, so the header may be shorter
	// than the data rows.
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	header := rows[0]
	for colIdx := 1; colIdx < width; colIdx++ {
		var name string
		if colIdx < len(header) {
			name = strings.TrimSpace(header[colIdx])
		}
		if name == "" {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
			name = cellName
		}
		frame.Fields = append(frame.Fields, models.Field{Name: name})
	}

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		t, ok := parseNumber(row[0])
		if !ok {
			continue
		}
		frame.Time = append(frame.Time, t)

		for i := range frame.Fields {
			v := math.NaN()
			if colIdx := i + 1; colIdx < len(row) {
				if n, ok := parseNumber(row[colIdx]); ok {
					v = n
				}
			}
			frame.Fields[i].Values = append(frame.Fields[i].Values, v)
		}
	}

	return frame, nil
}

// ReadFrameFile opens path and reads a frame from sheetName, or from the
// first sheet when sheetName is empty.
func ReadFrameFile(path, sheetName string) (*models.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	return ReadFrame(f, sheetName)
}

// parseNumber attempts to parse a cell value as a number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}
