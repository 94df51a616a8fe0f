package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// Frame holds column-oriented data for a panel. Fields line up with the
// configured series (Fields[i] feeds series i+1). Missing values are NaN.
type Frame struct {
	// Name is the frame name, usually the source sheet.
	Name string `json:"name,omitempty" toml:"name,omitempty"`
	// Time holds the x values.
	Time []float64 `json:"time" toml:"time"`
	// Fields holds the value columns.
	Fields []Field `json:"fields" toml:"fields"`
}

// Field is one named value column of a Frame.
type Field struct {
	Name   string    `json:"name" toml:"name"`
	Values []float64 `json:"values" toml:"values"`
}

// UnmarshalJSON decodes a field, reading null values as NaN gaps.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string     `json:"name"`
		Values []*float64 `json:"values"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	f.Name = raw.Name
	f.Values = nil
	if raw.Values != nil {
		f.Values = make([]float64, len(raw.Values))
	}
	for i, v := range raw.Values {
		if v == nil {
			f.Values[i] = math.NaN()
			continue
		}
		f.Values[i] = *v
	}
	return nil
}

// Len returns the number of rows of the frame.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Time)
}
