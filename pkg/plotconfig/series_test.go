package plotconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

func TestSeriesGetConfig(t *testing.T) {
	s := newSeriesBuilder(models.SeriesProps{
		ScaleKey:    "y",
		Label:       "cpu",
		LineColor:   "#FF0000",
		LineWidth:   ptr(2.0),
		FillColor:   "#0000ff",
		FillOpacity: ptr(50.0),
		PointSize:   ptr(6.0),
		SpanNulls:   ptr(true),
	})

	cfg := s.getConfig()
	assert.Equal(t, "y", cfg.Scale)
	assert.Equal(t, "cpu", cfg.Label)
	assert.Equal(t, "#FF0000", cfg.Stroke)
	assert.Equal(t, 2.0, *cfg.Width)
	assert.Equal(t, "#0000ff80", cfg.Fill)
	assert.True(t, *cfg.SpanGaps)
	assert.Equal(t, "linear", cfg.Paths)

	require.NotNil(t, cfg.Points)
	assert.Equal(t, 6.0, cfg.Points.Size)
	assert.Equal(t, "#FF0000", cfg.Points.Stroke)
	assert.Nil(t, cfg.Points.Show)
}

func TestSeriesPaths(t *testing.T) {
	tests := []struct {
		props    models.SeriesProps
		expected string
	}{
		{models.SeriesProps{}, "linear"},
		{models.SeriesProps{LineInterpolation: models.LineInterpolationSmooth}, "smooth"},
		{models.SeriesProps{LineInterpolation: models.LineInterpolationStepBefore}, "stepBefore"},
		{models.SeriesProps{LineInterpolation: models.LineInterpolationStepAfter}, "stepAfter"},
		{models.SeriesProps{DrawStyle: models.DrawStyleBars, LineInterpolation: models.LineInterpolationSmooth}, "bars"},
		{models.SeriesProps{DrawStyle: models.DrawStylePoints}, "points"},
	}

	for _, tt := range tests {
		if got := seriesPaths(tt.props); got != tt.expected {
			t.Errorf("seriesPaths(%+v) = %q, expected %q", tt.props, got, tt.expected)
		}
	}
}

func TestSeriesPointVisibility(t *testing.T) {
	always := newSeriesBuilder(models.SeriesProps{ShowPoints: models.PointVisibilityAlways}).getConfig()
	never := newSeriesBuilder(models.SeriesProps{ShowPoints: models.PointVisibilityNever}).getConfig()
	points := newSeriesBuilder(models.SeriesProps{DrawStyle: models.DrawStylePoints, ShowPoints: models.PointVisibilityNever}).getConfig()

	assert.True(t, *always.Points.Show)
	assert.False(t, *never.Points.Show)
	assert.True(t, *points.Points.Show)
}

func TestSeriesBuilder_PointColorOverridesLine(t *testing.T) {
	cfg := newSeriesBuilder(models.SeriesProps{LineColor: "#111111", PointColor: "#222222"}).getConfig()
	assert.Equal(t, "#222222", cfg.Points.Stroke)
	assert.Equal(t, "#222222", cfg.Points.Fill)
}

func TestSeriesBuilder_CopiesProps(t *testing.T) {
	width, size := 2.0, 4.0
	span := true
	props := models.SeriesProps{ScaleKey: "y", LineWidth: &width, PointSize: &size, SpanNulls: &span}

	for name, owned := range map[string]models.SeriesProps{
		"deepcopy":   newSeriesBuilder(props).Props(),
		"field-wise": cloneSeriesProps(props),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotSame(t, props.LineWidth, owned.LineWidth)
			assert.NotSame(t, props.PointSize, owned.PointSize)
			assert.NotSame(t, props.SpanNulls, owned.SpanNulls)
			assert.Nil(t, owned.Show)
			assert.Equal(t, "y", owned.ScaleKey)
		})
	}

	s := newSeriesBuilder(props)
	width, span = 9, false
	cfg := s.getConfig()
	require.NotNil(t, cfg.Width)
	assert.Equal(t, 2.0, *cfg.Width)
	assert.True(t, *cfg.SpanGaps)
}
