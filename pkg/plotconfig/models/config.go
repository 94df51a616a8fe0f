package models

// Config is the assembled plot configuration handed to the rendering engine.
type Config struct {
	// Series starts with an empty placeholder for the x series.
	Series []SeriesConfig `json:"series"`
	// Axes are ordered by first registration of their scale key.
	Axes []AxisConfig `json:"axes"`
	// Scales maps scale keys to rendered scales.
	Scales map[string]ScaleConfig `json:"scales"`
	// Cursor is the interaction policy with defaults applied.
	Cursor Cursor `json:"cursor"`
}

// SeriesPoints implements PlotView.
func (c *Config) SeriesPoints(i int) SeriesPoints {
	if c == nil || i < 0 || i >= len(c.Series) {
		return SeriesPoints{}
	}
	s := c.Series[i]
	if s.Points == nil {
		return SeriesPoints{Stroke: s.Stroke}
	}
	return *s.Points
}

// Axis returns the rendered axis for scaleKey.
func (c *Config) Axis(scaleKey string) (AxisConfig, bool) {
	for _, a := range c.Axes {
		if a.Scale == scaleKey {
			return a, true
		}
	}
	return AxisConfig{}, false
}
