package plotconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

func TestCursor_CallerWidthSurvivesDefaults(t *testing.T) {
	b := NewConfigBuilder()
	b.AddSeries(models.SeriesProps{ScaleKey: "y", LineColor: "#00ff00", PointSize: ptr(5.0)})
	b.SetCursor(&models.Cursor{
		Points: &models.CursorPoints{
			Width: func(models.PlotView, int, float64) float64 { return 99 },
		},
	})

	cfg := b.GetConfig()
	points := cfg.Cursor.Points
	require.NotNil(t, points)
	require.NotNil(t, points.Width)
	require.NotNil(t, points.Size)
	require.NotNil(t, points.Stroke)
	require.NotNil(t, points.Fill)

	assert.Equal(t, 99.0, points.Width(cfg, 1, 10))
	assert.Equal(t, 10.0, points.Size(cfg, 1))
	assert.Equal(t, "#00ff0080", points.Stroke(cfg, 1))
	assert.Equal(t, "#00ff00", points.Fill(cfg, 1))

	require.NotNil(t, cfg.Cursor.Drag)
	assert.False(t, *cfg.Cursor.Drag.SetScale)
}

func TestCursor_StrokeKeepsColorCase(t *testing.T) {
	b := NewConfigBuilder()
	b.AddSeries(models.SeriesProps{ScaleKey: "y", LineColor: "#FF0000"})
	b.AddSeries(models.SeriesProps{ScaleKey: "y", LineColor: "#E0F"})

	cfg := b.GetConfig()
	assert.Equal(t, "#FF000080", cfg.Cursor.Points.Stroke(cfg, 1))
	assert.Equal(t, "#FF0000", cfg.Cursor.Points.Fill(cfg, 1))
	assert.Equal(t, "#EE00FF80", cfg.Cursor.Points.Stroke(cfg, 2))
}

func TestCursor_DefaultWidthIsQuarterSize(t *testing.T) {
	cfg := NewConfigBuilder().GetConfig()
	assert.Equal(t, 2.5, cfg.Cursor.Points.Width(cfg, 0, 10))
}

func TestCursor_CallerLeavesWin(t *testing.T) {
	b := NewConfigBuilder()
	b.SetCursor(&models.Cursor{
		Drag: &models.CursorDrag{SetScale: ptr(true), X: ptr(true)},
		Y:    ptr(false),
	})

	c := b.GetConfig().Cursor
	require.NotNil(t, c.Drag)
	assert.True(t, *c.Drag.SetScale)
	assert.True(t, *c.Drag.X)
	assert.Nil(t, c.Drag.Y)
	assert.False(t, *c.Y)
	assert.Nil(t, c.Show)
	require.NotNil(t, c.Points)
	assert.NotNil(t, c.Points.Size)
}

func TestCursor_DoesNotMutateCaller(t *testing.T) {
	caller := &models.Cursor{Drag: &models.CursorDrag{X: ptr(true)}}
	b := NewConfigBuilder()
	b.SetCursor(caller)

	_ = b.GetConfig()
	assert.Nil(t, caller.Drag.SetScale)
	assert.Nil(t, caller.Points)

	*caller.Drag.X = false
	c := b.GetConfig().Cursor
	assert.True(t, *c.Drag.X)
}

func TestCursor_NilRestoresDefaults(t *testing.T) {
	b := NewConfigBuilder()
	b.SetCursor(&models.Cursor{Drag: &models.CursorDrag{SetScale: ptr(true)}})
	b.SetCursor(nil)

	assert.False(t, *b.GetConfig().Cursor.Drag.SetScale)
}

func TestCursor_StrokeWithoutSeriesColor(t *testing.T) {
	cfg := NewConfigBuilder().GetConfig()
	assert.Equal(t, "", cfg.Cursor.Points.Stroke(cfg, 5))
	assert.Equal(t, 0.0, cfg.Cursor.Points.Size(cfg, 5))
}
