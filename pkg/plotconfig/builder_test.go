package plotconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// ignoreFuncs skips callback fields, which cmp cannot compare.
var ignoreFuncs = cmpopts.IgnoreTypes(
	models.PointSizeFunc(nil),
	models.PointWidthFunc(nil),
	models.PointColorFunc(nil),
	models.ValueFormatter(nil),
)

func TestAddAxis_AutoPlacement(t *testing.T) {
	b := NewConfigBuilder()

	keys := []string{"a", "b", "c", "d"}
	for _, k := range keys {
		b.AddAxis(models.AxisProps{ScaleKey: k})
	}

	expected := []models.AxisPlacement{
		models.AxisPlacementLeft,
		models.AxisPlacementRight,
		models.AxisPlacementRight,
		models.AxisPlacementRight,
	}
	for i, k := range keys {
		assert.Equal(t, expected[i], b.GetAxisPlacement(k), "axis %q", k)
	}
	assert.True(t, b.HasLeftAxis())
}

func TestAddAxis_ExplicitLeftBlocksAutoLeft(t *testing.T) {
	b := NewConfigBuilder()
	b.AddAxis(models.AxisProps{ScaleKey: "x", Placement: models.AxisPlacementBottom})
	b.AddAxis(models.AxisProps{ScaleKey: "y2", Placement: models.AxisPlacementLeft})
	b.AddAxis(models.AxisProps{ScaleKey: "y"})

	assert.Equal(t, models.AxisPlacementBottom, b.GetAxisPlacement("x"))
	assert.Equal(t, models.AxisPlacementLeft, b.GetAxisPlacement("y2"))
	assert.Equal(t, models.AxisPlacementRight, b.GetAxisPlacement("y"))
}

func TestAddAxis_ExplicitRightDoesNotClaimLeft(t *testing.T) {
	b := NewConfigBuilder()
	b.AddAxis(models.AxisProps{ScaleKey: "a", Placement: models.AxisPlacementRight})
	b.AddAxis(models.AxisProps{ScaleKey: "b", Placement: models.AxisPlacementAuto})

	assert.Equal(t, models.AxisPlacementLeft, b.GetAxisPlacement("b"))
}

func TestAddAxis_MergeKeepsFirstPlacement(t *testing.T) {
	tests := []struct {
		name     string
		first    models.AxisPlacement
		second   models.AxisPlacement
		expected models.AxisPlacement
	}{
		{"explicit then explicit", models.AxisPlacementLeft, models.AxisPlacementRight, models.AxisPlacementLeft},
		{"auto then explicit", "", models.AxisPlacementBottom, models.AxisPlacementLeft},
		{"explicit then auto", models.AxisPlacementRight, models.AxisPlacementAuto, models.AxisPlacementRight},
		{"hidden then left", models.AxisPlacementHidden, models.AxisPlacementLeft, models.AxisPlacementHidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewConfigBuilder()
			b.AddAxis(models.AxisProps{ScaleKey: "y", Placement: tt.first})
			b.AddAxis(models.AxisProps{ScaleKey: "y", Placement: tt.second, Label: ptr("Temp")})

			assert.Equal(t, tt.expected, b.GetAxisPlacement("y"))

			cfg := b.GetConfig()
			require.Len(t, cfg.Axes, 1)
			assert.Equal(t, "Temp", cfg.Axes[0].Label)
		})
	}
}

func TestAddAxis_MergeDoesNotClaimLeft(t *testing.T) {
	b := NewConfigBuilder()
	b.AddAxis(models.AxisProps{ScaleKey: "a", Placement: models.AxisPlacementRight})
	b.AddAxis(models.AxisProps{ScaleKey: "a", Placement: models.AxisPlacementLeft})

	assert.False(t, b.HasLeftAxis())
}

func TestAddAxis_HiddenForcesInvisible(t *testing.T) {
	b := NewConfigBuilder()
	b.AddAxis(models.AxisProps{
		ScaleKey:  "x",
		Placement: models.AxisPlacementHidden,
		Show:      ptr(true),
		Size:      ptr(40.0),
	})

	props := b.axes.items["x"].Props()
	require.NotNil(t, props.Show)
	require.NotNil(t, props.Size)
	assert.False(t, *props.Show)
	assert.Equal(t, 0.0, *props.Size)

	b.AddAxis(models.AxisProps{ScaleKey: "x", Show: ptr(true), Size: ptr(12.0)})
	cfg := b.GetConfig()
	require.Len(t, cfg.Axes, 1)
	assert.False(t, cfg.Axes[0].Show)
	require.NotNil(t, cfg.Axes[0].Size)
	assert.Equal(t, 0.0, *cfg.Axes[0].Size)
	assert.False(t, b.HasLeftAxis())
}

func TestGetAxisPlacement_UnknownKey(t *testing.T) {
	b := NewConfigBuilder()
	assert.Equal(t, models.AxisPlacementLeft, b.GetAxisPlacement("missing"))
}

func TestGetConfig_AxesInInsertionOrder(t *testing.T) {
	b := NewConfigBuilder()
	for _, k := range []string{"z", "a", "m"} {
		b.AddAxis(models.AxisProps{ScaleKey: k})
	}
	b.AddAxis(models.AxisProps{ScaleKey: "a", Label: ptr("again")})

	cfg := b.GetConfig()
	require.Len(t, cfg.Axes, 3)
	assert.Equal(t, "z", cfg.Axes[0].Scale)
	assert.Equal(t, "a", cfg.Axes[1].Scale)
	assert.Equal(t, "m", cfg.Axes[2].Scale)
	assert.Equal(t, 3, cfg.Axes[0].Side)
	assert.Equal(t, 1, cfg.Axes[1].Side)
}

func TestAddSeries_PreservesOrderWithPlaceholder(t *testing.T) {
	b := NewConfigBuilder()
	labels := []string{"cpu", "mem", "cpu", "disk"}
	for _, l := range labels {
		b.AddSeries(models.SeriesProps{ScaleKey: "y", Label: l})
	}

	cfg := b.GetConfig()
	require.Len(t, cfg.Series, len(labels)+1)
	assert.Equal(t, models.SeriesConfig{}, cfg.Series[0])
	for i, l := range labels {
		assert.Equal(t, l, cfg.Series[i+1].Label)
	}
}

func TestGetConfig_Empty(t *testing.T) {
	cfg := NewConfigBuilder().GetConfig()

	require.Len(t, cfg.Series, 1)
	assert.Empty(t, cfg.Axes)
	assert.Empty(t, cfg.Scales)
	require.NotNil(t, cfg.Cursor.Drag)
	require.NotNil(t, cfg.Cursor.Drag.SetScale)
	assert.False(t, *cfg.Cursor.Drag.SetScale)
}

func TestAddScale_MergesSameKey(t *testing.T) {
	b := NewConfigBuilder()
	b.AddScale(models.ScaleProps{ScaleKey: "y", Min: ptr(0.0)})
	b.AddScale(models.ScaleProps{ScaleKey: "x", IsTime: ptr(true)})
	b.AddScale(models.ScaleProps{ScaleKey: "y", Max: ptr(100.0)})

	require.Len(t, b.scales, 2)
	props := b.scales[0].Props()
	require.NotNil(t, props.Min)
	require.NotNil(t, props.Max)
	assert.Equal(t, 0.0, *props.Min)
	assert.Equal(t, 100.0, *props.Max)

	cfg := b.GetConfig()
	require.Len(t, cfg.Scales, 2)
	y := cfg.Scales["y"]
	assert.False(t, y.Auto)
	require.NotNil(t, y.Range)
	assert.Equal(t, 0.0, *y.Range.Min)
	assert.Equal(t, 100.0, *y.Range.Max)
	assert.True(t, cfg.Scales["x"].Time)
}

func TestGetConfig_Idempotent(t *testing.T) {
	b := NewConfigBuilder()
	b.AddScale(models.ScaleProps{ScaleKey: "y", SoftMin: ptr(0.0)})
	b.AddAxis(models.AxisProps{ScaleKey: "y", Label: ptr("Load")})
	b.AddAxis(models.AxisProps{ScaleKey: "x", Placement: models.AxisPlacementBottom})
	b.AddSeries(models.SeriesProps{ScaleKey: "y", LineColor: "#ff0000", PointSize: ptr(4.0)})
	b.SetCursor(&models.Cursor{Show: ptr(true)})

	first := b.GetConfig()
	second := b.GetConfig()

	if diff := cmp.Diff(first, second, ignoreFuncs); diff != "" {
		t.Errorf("GetConfig() mismatch (-first +second):\n%s", diff)
	}
	assert.True(t, b.HasLeftAxis())
	assert.NotNil(t, second.Cursor.Points.Size)
}

func TestGetConfig_DoesNotAliasState(t *testing.T) {
	b := NewConfigBuilder()
	b.AddScale(models.ScaleProps{ScaleKey: "y", Min: ptr(1.0)})
	b.AddSeries(models.SeriesProps{ScaleKey: "y", LineWidth: ptr(2.0)})

	cfg := b.GetConfig()
	*cfg.Scales["y"].Range.Min = 42
	*cfg.Series[1].Width = 9

	again := b.GetConfig()
	assert.Equal(t, 1.0, *again.Scales["y"].Range.Min)
	assert.Equal(t, 2.0, *again.Series[1].Width)
}

func TestBuildersAreIndependent(t *testing.T) {
	a := NewConfigBuilder()
	b := NewConfigBuilder()

	a.AddAxis(models.AxisProps{ScaleKey: "y"})
	b.AddAxis(models.AxisProps{ScaleKey: "y"})

	assert.Equal(t, models.AxisPlacementLeft, a.GetAxisPlacement("y"))
	assert.Equal(t, models.AxisPlacementLeft, b.GetAxisPlacement("y"))
}
