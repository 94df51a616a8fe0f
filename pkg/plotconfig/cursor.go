package plotconfig

import (
	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// DefaultCursor returns the built-in cursor policy: finishing a selection
// does not rescale the view, and hover markers are twice the series point
// size, stroked at a quarter of that size with the series color.
func DefaultCursor() models.Cursor {
	return models.Cursor{
		Drag: &models.CursorDrag{
			SetScale: ptr(false),
		},
		Points: &models.CursorPoints{
			Size: func(u models.PlotView, seriesIdx int) float64 {
				return u.SeriesPoints(seriesIdx).Size * 2
			},
			Width: func(_ models.PlotView, _ int, size float64) float64 {
				return size / 4
			},
			Stroke: func(u models.PlotView, seriesIdx int) string {
				return appendAlpha(u.SeriesPoints(seriesIdx).Stroke, highlightAlpha)
			},
			Fill: func(u models.PlotView, seriesIdx int) string {
				return u.SeriesPoints(seriesIdx).Stroke
			},
		},
	}
}

// mergeCursor returns a copy of c with every leaf that c leaves unset taken
// from defaults. Neither argument is modified.
func mergeCursor(c, defaults models.Cursor) models.Cursor {
	out := models.Cursor{
		Show: firstSet(c.Show, defaults.Show),
		X:    firstSet(c.X, defaults.X),
		Y:    firstSet(c.Y, defaults.Y),
	}

	if c.Drag != nil || defaults.Drag != nil {
		var own, def models.CursorDrag
		if c.Drag != nil {
			own = *c.Drag
		}
		if defaults.Drag != nil {
			def = *defaults.Drag
		}
		out.Drag = &models.CursorDrag{
			SetScale: firstSet(own.SetScale, def.SetScale),
			X:        firstSet(own.X, def.X),
			Y:        firstSet(own.Y, def.Y),
		}
	}

	if c.Points != nil || defaults.Points != nil {
		var own, def models.CursorPoints
		if c.Points != nil {
			own = *c.Points
		}
		if defaults.Points != nil {
			def = *defaults.Points
		}
		merged := &models.CursorPoints{
			Show:   firstSet(own.Show, def.Show),
			Size:   own.Size,
			Width:  own.Width,
			Stroke: own.Stroke,
			Fill:   own.Fill,
		}
		if merged.Size == nil {
			merged.Size = def.Size
		}
		if merged.Width == nil {
			merged.Width = def.Width
		}
		if merged.Stroke == nil {
			merged.Stroke = def.Stroke
		}
		if merged.Fill == nil {
			merged.Fill = def.Fill
		}
		out.Points = merged
	}

	return out
}

// firstSet returns a copy of the first non-nil pointer.
func firstSet[T any](vals ...*T) *T {
	for _, v := range vals {
		if v != nil {
			return clonePtr(v)
		}
	}
	return nil
}
