package models

// ScaleDistribution selects how values are distributed along a scale.
type ScaleDistribution string

const (
	// ScaleDistributionLinear maps values linearly (default).
	ScaleDistributionLinear ScaleDistribution = "linear"
	// ScaleDistributionOrdinal maps values to evenly spaced slots.
	ScaleDistributionOrdinal ScaleDistribution = "ordinal"
	// ScaleDistributionLog maps values logarithmically.
	ScaleDistributionLog ScaleDistribution = "log"
)

// ScaleOrientation is the screen axis a scale runs along.
type ScaleOrientation string

const (
	// ScaleOrientationHorizontal runs along the x screen axis.
	ScaleOrientationHorizontal ScaleOrientation = "horizontal"
	// ScaleOrientationVertical runs along the y screen axis.
	ScaleOrientationVertical ScaleOrientation = "vertical"
)

// ScaleDirection is the direction in which scale values grow.
type ScaleDirection string

const (
	ScaleDirectionRight ScaleDirection = "right"
	ScaleDirectionLeft  ScaleDirection = "left"
	ScaleDirectionUp    ScaleDirection = "up"
	ScaleDirectionDown  ScaleDirection = "down"
)

// ScaleProps holds the caller-supplied properties of one named scale.
// Nil fields mean "not specified" and never override a prior value.
type ScaleProps struct {
	// ScaleKey identifies the scale.
	ScaleKey string `json:"scaleKey" toml:"scale_key"`
	// IsTime marks the scale as a time scale.
	IsTime *bool `json:"isTime,omitempty" toml:"is_time,omitempty"`
	// Min is the hard lower bound.
	Min *float64 `json:"min,omitempty" toml:"min,omitempty"`
	// Max is the hard upper bound.
	Max *float64 `json:"max,omitempty" toml:"max,omitempty"`
	// SoftMin is a lower bound the range may grow past.
	SoftMin *float64 `json:"softMin,omitempty" toml:"soft_min,omitempty"`
	// SoftMax is an upper bound the range may grow past.
	SoftMax *float64 `json:"softMax,omitempty" toml:"soft_max,omitempty"`
	// Distribution is the value distribution.
	Distribution *ScaleDistribution `json:"distribution,omitempty" toml:"distribution,omitempty"`
	// LogBase is the logarithm base for log distributions.
	LogBase *float64 `json:"log,omitempty" toml:"log_base,omitempty"`
	// Orientation is the screen axis the scale runs along.
	Orientation *ScaleOrientation `json:"orientation,omitempty" toml:"orientation,omitempty"`
	// Direction is the growth direction.
	Direction *ScaleDirection `json:"direction,omitempty" toml:"direction,omitempty"`
}

// ScaleRange holds the rendered bounds of a scale.
type ScaleRange struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	SoftMin *float64 `json:"softMin,omitempty"`
	SoftMax *float64 `json:"softMax,omitempty"`
}

// ScaleConfig is the rendered form of a scale consumed by the engine.
type ScaleConfig struct {
	// Time is true for time scales.
	Time bool `json:"time,omitempty"`
	// Auto is false when both hard bounds are fixed.
	Auto bool `json:"auto"`
	// Range holds the configured bounds, if any.
	Range *ScaleRange `json:"range,omitempty"`
	// Distr is 1 (linear), 2 (ordinal) or 3 (log).
	Distr int `json:"distr"`
	// Log is the log base, set only for log scales.
	Log float64 `json:"log,omitempty"`
	// Ori is 0 (horizontal) or 1 (vertical).
	Ori int `json:"ori"`
	// Dir is 1 or -1.
	Dir int `json:"dir"`
}
