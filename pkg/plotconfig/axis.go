package plotconfig

import (
	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// AxisBuilder holds the merged properties of the axis anchored to one scale.
// Its placement is resolved before construction and never changes.
type AxisBuilder struct {
	props models.AxisProps
}

func newAxisBuilder(props models.AxisProps) *AxisBuilder {
	a := &AxisBuilder{props: models.AxisProps{
		ScaleKey:  props.ScaleKey,
		Placement: props.Placement,
	}}
	a.merge(props)
	return a
}

// Placement returns the resolved placement.
func (a *AxisBuilder) Placement() models.AxisPlacement {
	return a.props.Placement
}

// Props returns a copy of the merged properties.
func (a *AxisBuilder) Props() models.AxisProps {
	return a.props
}

// merge overwrites every field set in props except the placement.
// Hidden axes stay invisible and zero-sized.
func (a *AxisBuilder) merge(props models.AxisProps) {
	p := &a.props
	if props.Label != nil {
		p.Label = clonePtr(props.Label)
	}
	if props.Show != nil {
		p.Show = clonePtr(props.Show)
	}
	if props.Size != nil {
		p.Size = clonePtr(props.Size)
	}
	if props.Gap != nil {
		p.Gap = clonePtr(props.Gap)
	}
	if props.Grid != nil {
		p.Grid = clonePtr(props.Grid)
	}
	if props.Ticks != nil {
		p.Ticks = clonePtr(props.Ticks)
	}
	if props.IsTime != nil {
		p.IsTime = clonePtr(props.IsTime)
	}
	if props.TimeZone != nil {
		p.TimeZone = clonePtr(props.TimeZone)
	}
	if props.Decimals != nil {
		p.Decimals = clonePtr(props.Decimals)
	}
	if props.Formatter != nil {
		p.Formatter = props.Formatter
	}

	if p.Placement == models.AxisPlacementHidden {
		p.Show = ptr(false)
		p.Size = ptr(0.0)
	}
}

func (a *AxisBuilder) getConfig() models.AxisConfig {
	p := a.props
	cfg := models.AxisConfig{
		Scale:    p.ScaleKey,
		Show:     p.Show == nil || *p.Show,
		Size:     clonePtr(p.Size),
		Gap:      clonePtr(p.Gap),
		Side:     p.Placement.Side(),
		Grid:     models.AxisToggle{Show: p.Grid == nil || *p.Grid},
		Ticks:    models.AxisToggle{Show: p.Ticks == nil || *p.Ticks},
		Time:     p.IsTime != nil && *p.IsTime,
		Decimals: clonePtr(p.Decimals),
		Values:   p.Formatter,
	}
	if p.Label != nil {
		cfg.Label = *p.Label
	}
	if p.TimeZone != nil {
		cfg.TimeZone = *p.TimeZone
	}
	return cfg
}
