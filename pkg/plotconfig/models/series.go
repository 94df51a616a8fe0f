package models

// DrawStyle selects how a series is drawn.
type DrawStyle string

const (
	DrawStyleLine   DrawStyle = "line"
	DrawStyleBars   DrawStyle = "bars"
	DrawStylePoints DrawStyle = "points"
)

// LineInterpolation selects how points of a line series are joined.
type LineInterpolation string

const (
	LineInterpolationLinear     LineInterpolation = "linear"
	LineInterpolationSmooth     LineInterpolation = "smooth"
	LineInterpolationStepBefore LineInterpolation = "stepBefore"
	LineInterpolationStepAfter  LineInterpolation = "stepAfter"
)

// PointVisibility controls whether data points are drawn.
type PointVisibility string

const (
	PointVisibilityAuto   PointVisibility = "auto"
	PointVisibilityAlways PointVisibility = "always"
	PointVisibilityNever  PointVisibility = "never"
)

// SeriesProps holds the caller-supplied properties of one data series.
// Colors are CSS-style strings, typically "#rrggbb".
type SeriesProps struct {
	// ScaleKey is the value scale the series is plotted against.
	ScaleKey string `json:"scaleKey" toml:"scale_key"`
	// Label is the legend label.
	Label string `json:"label,omitempty" toml:"label,omitempty"`
	// Show toggles the series.
	Show *bool `json:"show,omitempty" toml:"show,omitempty"`
	// DrawStyle is the draw style. Defaults to line.
	DrawStyle DrawStyle `json:"drawStyle,omitempty" toml:"draw_style,omitempty"`
	// LineInterpolation applies to line series.
	LineInterpolation LineInterpolation `json:"lineInterpolation,omitempty" toml:"line_interpolation,omitempty"`
	// LineColor is the stroke color.
	LineColor string `json:"lineColor,omitempty" toml:"line_color,omitempty"`
	// LineWidth is the stroke width in pixels.
	LineWidth *float64 `json:"lineWidth,omitempty" toml:"line_width,omitempty"`
	// FillColor is the area fill color. Empty disables the fill.
	FillColor string `json:"fillColor,omitempty" toml:"fill_color,omitempty"`
	// FillOpacity in [0, 100] applied to FillColor.
	FillOpacity *float64 `json:"fillOpacity,omitempty" toml:"fill_opacity,omitempty"`
	// ShowPoints controls point markers.
	ShowPoints PointVisibility `json:"showPoints,omitempty" toml:"show_points,omitempty"`
	// PointSize is the point marker size in pixels.
	PointSize *float64 `json:"pointSize,omitempty" toml:"point_size,omitempty"`
	// PointColor is the point stroke color. Defaults to LineColor.
	PointColor string `json:"pointColor,omitempty" toml:"point_color,omitempty"`
	// SpanNulls joins the line across missing values.
	SpanNulls *bool `json:"spanNulls,omitempty" toml:"span_nulls,omitempty"`
}

// SeriesPoints is the rendered point marker style of a series.
type SeriesPoints struct {
	Show   *bool   `json:"show,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Stroke string  `json:"stroke,omitempty"`
	Fill   string  `json:"fill,omitempty"`
}

// SeriesConfig is the rendered form of a series consumed by the engine.
// The zero value renders as an empty object.
type SeriesConfig struct {
	Scale    string        `json:"scale,omitempty"`
	Label    string        `json:"label,omitempty"`
	Show     *bool         `json:"show,omitempty"`
	Stroke   string        `json:"stroke,omitempty"`
	Width    *float64      `json:"width,omitempty"`
	Fill     string        `json:"fill,omitempty"`
	SpanGaps *bool         `json:"spanGaps,omitempty"`
	Paths    string        `json:"paths,omitempty"`
	Points   *SeriesPoints `json:"points,omitempty"`
}
