package plotconfig

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// SeriesBuilder holds the properties of one data series. They are fixed at
// construction.
type SeriesBuilder struct {
	props models.SeriesProps
}

func newSeriesBuilder(props models.SeriesProps) *SeriesBuilder {
	var owned models.SeriesProps
	if err := deepcopy.Copy(&owned, &props); err != nil {
		owned = cloneSeriesProps(props)
	}
	return &SeriesBuilder{props: owned}
}

func cloneSeriesProps(props models.SeriesProps) models.SeriesProps {
	owned := props
	owned.Show = clonePtr(props.Show)
	owned.LineWidth = clonePtr(props.LineWidth)
	owned.FillOpacity = clonePtr(props.FillOpacity)
	owned.PointSize = clonePtr(props.PointSize)
	owned.SpanNulls = clonePtr(props.SpanNulls)
	return owned
}

// Props returns a copy of the series properties.
func (s *SeriesBuilder) Props() models.SeriesProps {
	return s.props
}

func (s *SeriesBuilder) getConfig() models.SeriesConfig {
	p := s.props
	cfg := models.SeriesConfig{
		Scale:    p.ScaleKey,
		Label:    p.Label,
		Show:     clonePtr(p.Show),
		Stroke:   p.LineColor,
		Width:    clonePtr(p.LineWidth),
		SpanGaps: clonePtr(p.SpanNulls),
		Paths:    seriesPaths(p),
	}

	if p.FillColor != "" {
		opacity := 100.0
		if p.FillOpacity != nil {
			opacity = *p.FillOpacity
		}
		cfg.Fill = withAlpha(p.FillColor, opacity/100)
	}

	points := &models.SeriesPoints{
		Stroke: p.PointColor,
	}
	if points.Stroke == "" {
		points.Stroke = p.LineColor
	}
	points.Fill = points.Stroke
	if p.PointSize != nil {
		points.Size = *p.PointSize
	}
	switch {
	case p.DrawStyle == models.DrawStylePoints:
		points.Show = ptr(true)
	case p.ShowPoints == models.PointVisibilityAlways:
		points.Show = ptr(true)
	case p.ShowPoints == models.PointVisibilityNever:
		points.Show = ptr(false)
	}
	cfg.Points = points

	return cfg
}

// seriesPaths names the path builder the engine uses for the series.
func seriesPaths(p models.SeriesProps) string {
	switch p.DrawStyle {
	case models.DrawStyleBars:
		return "bars"
	case models.DrawStylePoints:
		return "points"
	}
	switch p.LineInterpolation {
	case models.LineInterpolationSmooth:
		return "smooth"
	case models.LineInterpolationStepBefore:
		return "stepBefore"
	case models.LineInterpolationStepAfter:
		return "stepAfter"
	}
	return "linear"
}
