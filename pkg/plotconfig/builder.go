package plotconfig

import (
	"log/slog"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// ConfigBuilder accumulates scales, axes, series and a cursor policy and
// assembles them into a models.Config.
type ConfigBuilder struct {
	series []*SeriesBuilder
	axes   *orderedAxes
	scales []*ScaleBuilder
	cursor *models.Cursor

	// hasLeftAxis records that some axis was placed on the left. It is
	// never reset.
	hasLeftAxis bool

	logger *slog.Logger
}

// NewConfigBuilder returns an empty builder.
func NewConfigBuilder(opts ...Option) *ConfigBuilder {
	b := &ConfigBuilder{
		axes:   newOrderedAxes(),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddAxis registers the axis for props.ScaleKey, or merges props into the
// existing one. Auto placement is resolved only on first registration: the
// first auto axis goes left, every later one goes right. A merge never moves
// an axis.
func (b *ConfigBuilder) AddAxis(props models.AxisProps) {
	if props.Placement == "" {
		props.Placement = models.AxisPlacementAuto
	}

	if existing, ok := b.axes.get(props.ScaleKey); ok {
		existing.merge(props)
		b.logger.Debug("axis merged", "scale", props.ScaleKey, "placement", existing.Placement())
		return
	}

	if props.Placement == models.AxisPlacementAuto {
		if b.hasLeftAxis {
			props.Placement = models.AxisPlacementRight
		} else {
			props.Placement = models.AxisPlacementLeft
		}
	}

	if props.Placement == models.AxisPlacementLeft {
		b.hasLeftAxis = true
	}

	if props.Placement == models.AxisPlacementHidden {
		props.Show = ptr(false)
		props.Size = ptr(0.0)
	}

	b.axes.set(props.ScaleKey, newAxisBuilder(props))
	b.logger.Debug("axis added", "scale", props.ScaleKey, "placement", props.Placement)
}

// GetAxisPlacement returns the resolved placement of the axis for scaleKey,
// or left when no such axis exists.
func (b *ConfigBuilder) GetAxisPlacement(scaleKey string) models.AxisPlacement {
	if a, ok := b.axes.get(scaleKey); ok {
		return a.Placement()
	}
	return models.AxisPlacementLeft
}

// HasLeftAxis reports whether an axis has been placed on the left.
func (b *ConfigBuilder) HasLeftAxis() bool {
	return b.hasLeftAxis
}

// SetCursor sets the cursor policy. Nil restores the defaults.
func (b *ConfigBuilder) SetCursor(cursor *models.Cursor) {
	if cursor == nil {
		b.cursor = nil
		return
	}
	c := mergeCursor(*cursor, models.Cursor{})
	b.cursor = &c
}

// AddSeries appends a series.
func (b *ConfigBuilder) AddSeries(props models.SeriesProps) {
	b.series = append(b.series, newSeriesBuilder(props))
	b.logger.Debug("series added", "scale", props.ScaleKey, "index", len(b.series))
}

// AddScale adds the scale for props.ScaleKey, or merges props into it.
func (b *ConfigBuilder) AddScale(props models.ScaleProps) {
	for _, s := range b.scales {
		if s.Key() == props.ScaleKey {
			s.merge(props)
			b.logger.Debug("scale merged", "scale", props.ScaleKey)
			return
		}
	}
	b.scales = append(b.scales, newScaleBuilder(props))
	b.logger.Debug("scale added", "scale", props.ScaleKey)
}

// GetConfig renders a snapshot of the current state. It does not modify the
// builder and may be called any number of times.
func (b *ConfigBuilder) GetConfig() *models.Config {
	cfg := &models.Config{
		Series: make([]models.SeriesConfig, 0, len(b.series)+1),
		Axes:   make([]models.AxisConfig, 0, b.axes.len()),
		Scales: make(map[string]models.ScaleConfig, len(b.scales)),
	}

	b.axes.each(func(_ string, a *AxisBuilder) {
		cfg.Axes = append(cfg.Axes, a.getConfig())
	})

	cfg.Series = append(cfg.Series, models.SeriesConfig{})
	for _, s := range b.series {
		cfg.Series = append(cfg.Series, s.getConfig())
	}

	for _, s := range b.scales {
		for k, v := range s.getConfig() {
			if _, ok := cfg.Scales[k]; !ok {
				cfg.Scales[k] = v
			}
		}
	}

	var cursor models.Cursor
	if b.cursor != nil {
		cursor = *b.cursor
	}
	cfg.Cursor = mergeCursor(cursor, DefaultCursor())

	return cfg
}
