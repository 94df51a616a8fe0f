package models

// PlotView is the read-only view of an assembled plot handed to cursor
// callbacks. Index 0 is the x series.
type PlotView interface {
	// SeriesPoints returns the point style of series i. Out-of-range
	// indexes return the zero value.
	SeriesPoints(i int) SeriesPoints
}

// PointSizeFunc computes the highlight marker size for a series.
type PointSizeFunc func(u PlotView, seriesIdx int) float64

// PointWidthFunc computes the highlight marker stroke width for a series.
type PointWidthFunc func(u PlotView, seriesIdx int, size float64) float64

// PointColorFunc computes a highlight marker color for a series.
type PointColorFunc func(u PlotView, seriesIdx int) string

// CursorDrag configures selection dragging.
type CursorDrag struct {
	// SetScale rescales the view at the end of a selection.
	SetScale *bool `json:"setScale,omitempty" toml:"set_scale,omitempty"`
	X        *bool `json:"x,omitempty" toml:"x,omitempty"`
	Y        *bool `json:"y,omitempty" toml:"y,omitempty"`
}

// CursorPoints configures the hover highlight markers.
type CursorPoints struct {
	Show   *bool          `json:"show,omitempty" toml:"show,omitempty"`
	Size   PointSizeFunc  `json:"-" toml:"-"`
	Width  PointWidthFunc `json:"-" toml:"-"`
	Stroke PointColorFunc `json:"-" toml:"-"`
	Fill   PointColorFunc `json:"-" toml:"-"`
}

// Cursor is the pointer interaction policy of a plot.
type Cursor struct {
	Show   *bool         `json:"show,omitempty" toml:"show,omitempty"`
	X      *bool         `json:"x,omitempty" toml:"x,omitempty"`
	Y      *bool         `json:"y,omitempty" toml:"y,omitempty"`
	Drag   *CursorDrag   `json:"drag,omitempty" toml:"drag,omitempty"`
	Points *CursorPoints `json:"points,omitempty" toml:"points,omitempty"`
}
