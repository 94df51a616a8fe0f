package output

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig"
	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// WorkbookOptions configures workbook export.
type WorkbookOptions struct {
	// SheetName is the sheet receiving the frame data.
	SheetName string
	// Title is the chart title.
	Title string
	// Width and Height are the chart size in pixels.
	Width  uint
	Height uint
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultWorkbookOptions returns default workbook options.
func DefaultWorkbookOptions() WorkbookOptions {
	return WorkbookOptions{
		SheetName: "Data",
		Width:     640,
		Height:    320,
	}
}

// Excel marker sizes must lie in [2, 72].
const (
	minMarkerSize = 2
	maxMarkerSize = 72
)

// WriteWorkbook renders cfg and frame into an Excel line chart saved at path.
func WriteWorkbook(cfg *models.Config, frame *models.Frame, path string, opts WorkbookOptions) error {
	f, err := NewWorkbook(cfg, frame, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return plotconfig.NewPanelError(path, "workbook", err)
	}
	return nil
}

// NewWorkbook renders cfg and frame into a new workbook. Frame field i feeds
// series i+1. Series on right-placed axes are drawn as a combo chart.
func NewWorkbook(cfg *models.Config, frame *models.Frame, opts WorkbookOptions) (*excelize.File, error) {
	defaults := DefaultWorkbookOptions()
	if opts.SheetName == "" {
		opts.SheetName = defaults.SheetName
	}
	if opts.Width == 0 {
		opts.Width = defaults.Width
	}
	if opts.Height == 0 {
		opts.Height = defaults.Height
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := checkFrame(cfg, frame); err != nil {
		return nil, plotconfig.NewPanelError(opts.SheetName, "frame", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), opts.SheetName); err != nil {
		f.Close()
		return nil, plotconfig.NewPanelError(opts.SheetName, "workbook", err)
	}
	if err := writeFrame(f, opts.SheetName, cfg, frame); err != nil {
		f.Close()
		return nil, plotconfig.NewPanelError(opts.SheetName, "workbook", err)
	}

	primary, secondary, err := buildCharts(cfg, frame, opts)
	if err != nil {
		f.Close()
		return nil, plotconfig.NewPanelError(opts.SheetName, "workbook", err)
	}

	anchor, _ := excelize.CoordinatesToCellName(len(cfg.Series)+2, 2)
	var combo []*excelize.Chart
	secondaryCount := 0
	if secondary != nil {
		combo = append(combo, secondary)
		secondaryCount = len(secondary.Series)
	}
	if err := f.AddChart(opts.SheetName, anchor, primary, combo...); err != nil {
		f.Close()
		return nil, plotconfig.NewPanelError(opts.SheetName, "workbook", err)
	}

	logger.Debug("workbook rendered",
		"sheet", opts.SheetName,
		"rows", frame.Len(),
		"primary_series", len(primary.Series),
		"secondary_series", secondaryCount,
	)
	return f, nil
}

// checkFrame verifies that every configured series has a field of the same
// length as the time column.
func checkFrame(cfg *models.Config, frame *models.Frame) error {
	if frame == nil {
		return fmt.Errorf("%w: no frame", plotconfig.ErrFrameMismatch)
	}
	if n := len(cfg.Series) - 1; len(frame.Fields) < n {
		return fmt.Errorf("%w: %d series, %d fields", plotconfig.ErrFrameMismatch, n, len(frame.Fields))
	}
	for _, field := range frame.Fields[:len(cfg.Series)-1] {
		if len(field.Values) != len(frame.Time) {
			return fmt.Errorf("%w: field %q has %d values, expected %d",
				plotconfig.ErrFrameMismatch, field.Name, len(field.Values), len(frame.Time))
		}
	}
	return nil
}

func writeFrame(f *excelize.File, sheet string, cfg *models.Config, frame *models.Frame) error {
	header := []interface{}{"time"}
	for i := 1; i < len(cfg.Series); i++ {
		header = append(header, seriesName(cfg, frame, i))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, t := range frame.Time {
		row := []interface{}{t}
		for i := 1; i < len(cfg.Series); i++ {
			v := frame.Fields[i-1].Values[r]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				row = append(row, nil)
				continue
			}
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func seriesName(cfg *models.Config, frame *models.Frame, i int) string {
	if label := cfg.Series[i].Label; label != "" {
		return label
	}
	return frame.Fields[i-1].Name
}

// buildCharts splits series by the side of their axis and renders the
// primary chart and, when any series sits on a right axis, the combo chart.
func buildCharts(cfg *models.Config, frame *models.Frame, opts WorkbookOptions) (*excelize.Chart, *excelize.Chart, error) {
	primary := &excelize.Chart{
		Type:         excelize.Line,
		Legend:       excelize.ChartLegend{Position: "bottom"},
		Dimension:    excelize.ChartDimension{Width: opts.Width, Height: opts.Height},
		ShowBlanksAs: "gap",
	}
	if opts.Title != "" {
		primary.Title = []excelize.RichTextRun{{Text: opts.Title}}
	}
	secondary := &excelize.Chart{Type: excelize.Line}

	var leftScale, rightScale string
	for i := 1; i < len(cfg.Series); i++ {
		s := cfg.Series[i]
		cs, err := chartSeries(cfg, frame, opts.SheetName, i)
		if err != nil {
			return nil, nil, err
		}
		if s.SpanGaps != nil && *s.SpanGaps {
			primary.ShowBlanksAs = "span"
		}

		if axis, ok := cfg.Axis(s.Scale); ok && axis.Side == models.AxisPlacementRight.Side() {
			secondary.Series = append(secondary.Series, cs)
			if rightScale == "" {
				rightScale = s.Scale
			}
			continue
		}
		primary.Series = append(primary.Series, cs)
		if leftScale == "" {
			leftScale = s.Scale
		}
	}

	if allBars(cfg, primary.Series) {
		primary.Type = excelize.Col
	}
	primary.YAxis = chartAxis(cfg, leftScale)
	primary.XAxis = chartAxis(cfg, xScale(cfg))
	secondary.YAxis = chartAxis(cfg, rightScale)

	if len(primary.Series) == 0 && len(secondary.Series) > 0 {
		secondary.Legend = primary.Legend
		secondary.Dimension = primary.Dimension
		secondary.Title = primary.Title
		secondary.ShowBlanksAs = primary.ShowBlanksAs
		return secondary, nil, nil
	}
	if len(secondary.Series) == 0 {
		return primary, nil, nil
	}
	// the combo chart only gets its own value axis when marked secondary
	secondary.YAxis.Secondary = true
	return primary, secondary, nil
}

func chartSeries(cfg *models.Config, frame *models.Frame, sheet string, i int) (excelize.ChartSeries, error) {
	n := frame.Len() + 1
	col, err := excelize.ColumnNumberToName(i + 1)
	if err != nil {
		return excelize.ChartSeries{}, err
	}
	ref := sheetRef(sheet)

	s := cfg.Series[i]
	cs := excelize.ChartSeries{
		Name:       fmt.Sprintf("%s!$%s$1", ref, col),
		Categories: fmt.Sprintf("%s!$A$2:$A$%d", ref, n),
		Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", ref, col, col, n),
		Line:       excelize.ChartLine{Smooth: s.Paths == "smooth"},
		Marker:     excelize.ChartMarker{Symbol: "none"},
	}
	if s.Width != nil {
		cs.Line.Width = *s.Width
	}
	if color := excelColor(s.Stroke); color != "" {
		cs.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}

	if s.Points != nil && s.Points.Show != nil && *s.Points.Show {
		cs.Marker = excelize.ChartMarker{Symbol: "circle", Size: markerSize(cfg, i)}
		if color := excelColor(s.Points.Stroke); color != "" {
			cs.Marker.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
		}
	}
	return cs, nil
}

// markerSize uses the cursor highlight size so exported markers match what
// the plot shows under the pointer.
func markerSize(cfg *models.Config, i int) int {
	size := cfg.SeriesPoints(i).Size
	if p := cfg.Cursor.Points; p != nil && p.Size != nil {
		size = p.Size(cfg, i)
	}
	return int(math.Max(minMarkerSize, math.Min(maxMarkerSize, math.Round(size))))
}

func chartAxis(cfg *models.Config, scaleKey string) excelize.ChartAxis {
	var ca excelize.ChartAxis
	if scaleKey == "" {
		return ca
	}

	if axis, ok := cfg.Axis(scaleKey); ok {
		ca.None = !axis.Show
		ca.MajorGridLines = axis.Grid.Show
		if axis.Label != "" {
			ca.Title = []excelize.RichTextRun{{Text: axis.Label}}
		}
		if axis.Decimals != nil && *axis.Decimals > 0 {
			ca.NumFmt = excelize.ChartNumFmt{CustomNumFmt: "0." + strings.Repeat("0", *axis.Decimals)}
		}
	}

	if scale, ok := cfg.Scales[scaleKey]; ok {
		if scale.Range != nil {
			ca.Minimum = scale.Range.Min
			ca.Maximum = scale.Range.Max
		}
		if scale.Distr == 3 {
			ca.LogBase = scale.Log
		}
		ca.ReverseOrder = scale.Dir < 0
	}
	return ca
}

// xScale returns the key of the first horizontal scale, preferring one with
// a bottom axis.
func xScale(cfg *models.Config) string {
	for _, a := range cfg.Axes {
		if a.Side == models.AxisPlacementBottom.Side() {
			return a.Scale
		}
	}
	for _, key := range slices.Sorted(maps.Keys(cfg.Scales)) {
		if cfg.Scales[key].Ori == 0 {
			return key
		}
	}
	return ""
}

func allBars(cfg *models.Config, series []excelize.ChartSeries) bool {
	if len(series) == 0 {
		return false
	}
	for i := 1; i < len(cfg.Series); i++ {
		s := cfg.Series[i]
		if axis, ok := cfg.Axis(s.Scale); ok && axis.Side == models.AxisPlacementRight.Side() {
			continue
		}
		if s.Paths != "bars" {
			return false
		}
	}
	return true
}

// excelColor converts a CSS hex color to the RRGGBB form excelize expects.
func excelColor(color string) string {
	if color == "" {
		return ""
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#"))
}

func sheetRef(sheet string) string {
	if strings.ContainsAny(sheet, " -'") {
		return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet
}
