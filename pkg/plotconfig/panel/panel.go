package panel

import (
	"log/slog"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig"
	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// Definition is a decoded panel.
type Definition struct {
	// Source is the file the definition was loaded from, if any.
	Source string `json:"-" toml:"-"`
	// Title is the panel title.
	Title string `json:"title,omitempty" toml:"title,omitempty"`
	// Scales are added in order.
	Scales []models.ScaleProps `json:"scales,omitempty" toml:"scale,omitempty"`
	// Axes are added in order after the scales.
	Axes []models.AxisProps `json:"axes,omitempty" toml:"axis,omitempty"`
	// Series are added in order after the axes.
	Series []models.SeriesProps `json:"series,omitempty" toml:"series,omitempty"`
	// Cursor overrides the default cursor policy.
	Cursor *models.Cursor `json:"cursor,omitempty" toml:"cursor,omitempty"`
	// Frame holds optional data for the series.
	Frame *models.Frame `json:"frame,omitempty" toml:"frame,omitempty"`
}

// Options configures loading and building.
type Options struct {
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Apply adds the definition's scales, axes, series and cursor to b.
func (d *Definition) Apply(b *plotconfig.ConfigBuilder) {
	for _, s := range d.Scales {
		b.AddScale(s)
	}
	for _, a := range d.Axes {
		b.AddAxis(a)
	}
	for _, s := range d.Series {
		b.AddSeries(s)
	}
	if d.Cursor != nil {
		b.SetCursor(d.Cursor)
	}
}

// Build applies the definition to a fresh builder and returns its configuration.
func (d *Definition) Build(opts Options) *models.Config {
	logger := opts.logger()
	b := plotconfig.NewConfigBuilder(plotconfig.WithLogger(logger))
	d.Apply(b)
	cfg := b.GetConfig()
	logger.Debug("panel built",
		"source", d.Source,
		"scales", len(cfg.Scales),
		"axes", len(cfg.Axes),
		"series", len(cfg.Series)-1,
	)
	return cfg
}
