package plotconfig

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// ScaleBuilder holds the merged properties of one named scale.
type ScaleBuilder struct {
	props models.ScaleProps
}

func newScaleBuilder(props models.ScaleProps) *ScaleBuilder {
	var owned models.ScaleProps
	if err := deepcopy.Copy(&owned, &props); err != nil {
		owned = cloneScaleProps(props)
	}
	return &ScaleBuilder{props: owned}
}

// cloneScaleProps copies props field by field, the same way merge does.
func cloneScaleProps(props models.ScaleProps) models.ScaleProps {
	s := ScaleBuilder{props: models.ScaleProps{ScaleKey: props.ScaleKey}}
	s.merge(props)
	return s.props
}

// Key returns the scale key.
func (s *ScaleBuilder) Key() string {
	return s.props.ScaleKey
}

// Props returns a copy of the merged properties.
func (s *ScaleBuilder) Props() models.ScaleProps {
	return s.props
}

// merge overwrites every field set in props.
func (s *ScaleBuilder) merge(props models.ScaleProps) {
	p := &s.props
	if props.IsTime != nil {
		p.IsTime = clonePtr(props.IsTime)
	}
	if props.Min != nil {
		p.Min = clonePtr(props.Min)
	}
	if props.Max != nil {
		p.Max = clonePtr(props.Max)
	}
	if props.SoftMin != nil {
		p.SoftMin = clonePtr(props.SoftMin)
	}
	if props.SoftMax != nil {
		p.SoftMax = clonePtr(props.SoftMax)
	}
	if props.Distribution != nil {
		p.Distribution = clonePtr(props.Distribution)
	}
	if props.LogBase != nil {
		p.LogBase = clonePtr(props.LogBase)
	}
	if props.Orientation != nil {
		p.Orientation = clonePtr(props.Orientation)
	}
	if props.Direction != nil {
		p.Direction = clonePtr(props.Direction)
	}
}

// getConfig renders the scale as a single-entry mapping keyed by scale key.
func (s *ScaleBuilder) getConfig() map[string]models.ScaleConfig {
	p := s.props
	isTime := p.IsTime != nil && *p.IsTime

	cfg := models.ScaleConfig{
		Time:  isTime,
		Auto:  p.Min == nil || p.Max == nil,
		Distr: 1,
		Ori:   1,
		Dir:   1,
	}

	if p.Min != nil || p.Max != nil || p.SoftMin != nil || p.SoftMax != nil {
		cfg.Range = &models.ScaleRange{
			Min:     clonePtr(p.Min),
			Max:     clonePtr(p.Max),
			SoftMin: clonePtr(p.SoftMin),
			SoftMax: clonePtr(p.SoftMax),
		}
	}

	if p.Distribution != nil {
		switch *p.Distribution {
		case models.ScaleDistributionOrdinal:
			cfg.Distr = 2
		case models.ScaleDistributionLog:
			cfg.Distr = 3
			cfg.Log = 10
			if p.LogBase != nil && *p.LogBase > 0 {
				cfg.Log = *p.LogBase
			}
		}
	}

	switch {
	case p.Orientation != nil:
		if *p.Orientation == models.ScaleOrientationHorizontal {
			cfg.Ori = 0
		}
	case isTime:
		cfg.Ori = 0
	}

	if p.Direction != nil && (*p.Direction == models.ScaleDirectionLeft || *p.Direction == models.ScaleDirectionDown) {
		cfg.Dir = -1
	}

	return map[string]models.ScaleConfig{p.ScaleKey: cfg}
}
