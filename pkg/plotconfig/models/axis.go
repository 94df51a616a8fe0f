package models

// AxisPlacement is the side of the plot an axis is drawn on.
type AxisPlacement string

const (
	// AxisPlacementAuto lets the builder pick a side. It is never stored.
	AxisPlacementAuto   AxisPlacement = "auto"
	AxisPlacementLeft   AxisPlacement = "left"
	AxisPlacementRight  AxisPlacement = "right"
	AxisPlacementTop    AxisPlacement = "top"
	AxisPlacementBottom AxisPlacement = "bottom"
	// AxisPlacementHidden keeps the axis but never draws it.
	AxisPlacementHidden AxisPlacement = "hidden"
)

// Side returns the engine side index for the placement
// (0 top, 1 right, 2 bottom, 3 left). Hidden and unresolved
// placements report the left side.
func (p AxisPlacement) Side() int {
	switch p {
	case AxisPlacementTop:
		return 0
	case AxisPlacementRight:
		return 1
	case AxisPlacementBottom:
		return 2
	default:
		return 3
	}
}

// ValueFormatter renders a tick value as text.
type ValueFormatter func(v float64, decimals int) string

// AxisProps holds the caller-supplied properties of the axis anchored to a scale.
type AxisProps struct {
	// ScaleKey identifies the scale the axis belongs to.
	ScaleKey string `json:"scaleKey" toml:"scale_key"`
	// Placement is the requested side. Empty means auto.
	Placement AxisPlacement `json:"placement,omitempty" toml:"placement,omitempty"`
	// Label is the axis title.
	Label *string `json:"label,omitempty" toml:"label,omitempty"`
	// Show toggles drawing of the axis.
	Show *bool `json:"show,omitempty" toml:"show,omitempty"`
	// Size is the axis size in pixels.
	Size *float64 `json:"size,omitempty" toml:"size,omitempty"`
	// Gap is the distance between ticks and labels in pixels.
	Gap *float64 `json:"gap,omitempty" toml:"gap,omitempty"`
	// Grid toggles the grid lines of the axis.
	Grid *bool `json:"grid,omitempty" toml:"grid,omitempty"`
	// Ticks toggles tick marks.
	Ticks *bool `json:"ticks,omitempty" toml:"ticks,omitempty"`
	// IsTime marks the axis as rendering time values.
	IsTime *bool `json:"isTime,omitempty" toml:"is_time,omitempty"`
	// TimeZone is used when formatting time ticks.
	TimeZone *string `json:"timeZone,omitempty" toml:"time_zone,omitempty"`
	// Decimals fixes the number of decimals of tick values.
	Decimals *int `json:"decimals,omitempty" toml:"decimals,omitempty"`
	// Formatter renders tick values. Nil leaves formatting to the engine.
	Formatter ValueFormatter `json:"-" toml:"-"`
}

// AxisToggle wraps a boolean sub-option of an axis.
type AxisToggle struct {
	Show bool `json:"show"`
}

// AxisConfig is the rendered form of an axis consumed by the engine.
type AxisConfig struct {
	Scale    string         `json:"scale"`
	Label    string         `json:"label,omitempty"`
	Show     bool           `json:"show"`
	Size     *float64       `json:"size,omitempty"`
	Gap      *float64       `json:"gap,omitempty"`
	Side     int            `json:"side"`
	Grid     AxisToggle     `json:"grid"`
	Ticks    AxisToggle     `json:"ticks"`
	Time     bool           `json:"time,omitempty"`
	TimeZone string         `json:"timeZone,omitempty"`
	Decimals *int           `json:"decimals,omitempty"`
	Values   ValueFormatter `json:"-"`
}
