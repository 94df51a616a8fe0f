package panel

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// hclFile is the top-level body of an HCL panel file.
type hclFile struct {
	Title  *string      `hcl:"title,optional"`
	Scales []*hclScale  `hcl:"scale,block"`
	Axes   []*hclAxis   `hcl:"axis,block"`
	Series []*hclSeries `hcl:"series,block"`
	Cursor *hclCursor   `hcl:"cursor,block"`
	Frame  *hclFrame    `hcl:"frame,block"`
}

type hclScale struct {
	Key          string   `hcl:"key,label"`
	IsTime       *bool    `hcl:"is_time,optional"`
	Min          *float64 `hcl:"min,optional"`
	Max          *float64 `hcl:"max,optional"`
	SoftMin      *float64 `hcl:"soft_min,optional"`
	SoftMax      *float64 `hcl:"soft_max,optional"`
	Distribution *string  `hcl:"distribution,optional"`
	LogBase      *float64 `hcl:"log_base,optional"`
	Orientation  *string  `hcl:"orientation,optional"`
	Direction    *string  `hcl:"direction,optional"`
}

type hclAxis struct {
	Key       string   `hcl:"key,label"`
	Placement *string  `hcl:"placement,optional"`
	Label     *string  `hcl:"label,optional"`
	Show      *bool    `hcl:"show,optional"`
	Size      *float64 `hcl:"size,optional"`
	Gap       *float64 `hcl:"gap,optional"`
	Grid      *bool    `hcl:"grid,optional"`
	Ticks     *bool    `hcl:"ticks,optional"`
	IsTime    *bool    `hcl:"is_time,optional"`
	TimeZone  *string  `hcl:"time_zone,optional"`
	Decimals  *int     `hcl:"decimals,optional"`
}

type hclSeries struct {
	Label             string   `hcl:"label,label"`
	Scale             string   `hcl:"scale"`
	Show              *bool    `hcl:"show,optional"`
	DrawStyle         *string  `hcl:"draw_style,optional"`
	LineInterpolation *string  `hcl:"line_interpolation,optional"`
	LineColor         *string  `hcl:"line_color,optional"`
	LineWidth         *float64 `hcl:"line_width,optional"`
	FillColor         *string  `hcl:"fill_color,optional"`
	FillOpacity       *float64 `hcl:"fill_opacity,optional"`
	ShowPoints        *string  `hcl:"show_points,optional"`
	PointSize         *float64 `hcl:"point_size,optional"`
	PointColor        *string  `hcl:"point_color,optional"`
	SpanNulls         *bool    `hcl:"span_nulls,optional"`
}

type hclCursor struct {
	Show   *bool            `hcl:"show,optional"`
	X      *bool            `hcl:"x,optional"`
	Y      *bool            `hcl:"y,optional"`
	Drag   *hclCursorDrag   `hcl:"drag,block"`
	Points *hclCursorPoints `hcl:"points,block"`
}

type hclCursorDrag struct {
	SetScale *bool `hcl:"set_scale,optional"`
	X        *bool `hcl:"x,optional"`
	Y        *bool `hcl:"y,optional"`
}

type hclCursorPoints struct {
	Show *bool `hcl:"show,optional"`
}

type hclFrame struct {
	Name   *string     `hcl:"name,optional"`
	Time   []float64   `hcl:"time"`
	Fields []*hclField `hcl:"field,block"`
}

type hclField struct {
	Name string `hcl:"name,label"`
	// Values may contain null for gaps.
	Values []*float64 `hcl:"values"`
}

// decodeHCL parses an HCL panel file. Unknown attributes and blocks are
// rejected by the decoder.
func decodeHCL(data []byte, source string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	return root.translate(), nil
}

func (f *hclFile) translate() *Definition {
	def := &Definition{}
	if f.Title != nil {
		def.Title = *f.Title
	}

	for _, s := range f.Scales {
		props := models.ScaleProps{
			ScaleKey: s.Key,
			IsTime:   s.IsTime,
			Min:      s.Min,
			Max:      s.Max,
			SoftMin:  s.SoftMin,
			SoftMax:  s.SoftMax,
			LogBase:  s.LogBase,
		}
		if s.Distribution != nil {
			d := models.ScaleDistribution(*s.Distribution)
			props.Distribution = &d
		}
		if s.Orientation != nil {
			o := models.ScaleOrientation(*s.Orientation)
			props.Orientation = &o
		}
		if s.Direction != nil {
			d := models.ScaleDirection(*s.Direction)
			props.Direction = &d
		}
		def.Scales = append(def.Scales, props)
	}

	for _, a := range f.Axes {
		props := models.AxisProps{
			ScaleKey: a.Key,
			Label:    a.Label,
			Show:     a.Show,
			Size:     a.Size,
			Gap:      a.Gap,
			Grid:     a.Grid,
			Ticks:    a.Ticks,
			IsTime:   a.IsTime,
			TimeZone: a.TimeZone,
			Decimals: a.Decimals,
		}
		if a.Placement != nil {
			props.Placement = models.AxisPlacement(*a.Placement)
		}
		def.Axes = append(def.Axes, props)
	}

	for _, s := range f.Series {
		def.Series = append(def.Series, models.SeriesProps{
			ScaleKey:          s.Scale,
			Label:             s.Label,
			Show:              s.Show,
			DrawStyle:         models.DrawStyle(deref(s.DrawStyle)),
			LineInterpolation: models.LineInterpolation(deref(s.LineInterpolation)),
			LineColor:         deref(s.LineColor),
			LineWidth:         s.LineWidth,
			FillColor:         deref(s.FillColor),
			FillOpacity:       s.FillOpacity,
			ShowPoints:        models.PointVisibility(deref(s.ShowPoints)),
			PointSize:         s.PointSize,
			PointColor:        deref(s.PointColor),
			SpanNulls:         s.SpanNulls,
		})
	}

	if c := f.Cursor; c != nil {
		def.Cursor = &models.Cursor{Show: c.Show, X: c.X, Y: c.Y}
		if c.Drag != nil {
			def.Cursor.Drag = &models.CursorDrag{SetScale: c.Drag.SetScale, X: c.Drag.X, Y: c.Drag.Y}
		}
		if c.Points != nil {
			def.Cursor.Points = &models.CursorPoints{Show: c.Points.Show}
		}
	}

	if fr := f.Frame; fr != nil {
		frame := &models.Frame{Name: deref(fr.Name), Time: fr.Time}
		for _, field := range fr.Fields {
			values := make([]float64, len(field.Values))
			for i, v := range field.Values {
				if v == nil {
					values[i] = math.NaN()
					continue
				}
				values[i] = *v
			}
			frame.Fields = append(frame.Fields, models.Field{Name: field.Name, Values: values})
		}
		def.Frame = frame
	}

	return def
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
