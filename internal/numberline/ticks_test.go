package numberline

import (
	"math"
	"reflect"
	"testing"
)

func paramsFor(levelIndex int, r VisibleRange, offset, width float64) TickParams {
	return TickParams{
		Range:         r,
		Level:         DefaultLevels[levelIndex],
		Transform:     Transform{OffsetPx: offset, ZoomIndex: levelIndex},
		PixelsPerUnit: pixelsPerUnit(DefaultLevels, levelIndex),
		Decimal:       levelIndex == len(DefaultLevels)-1,
		ViewportWidth: width,
	}
}

func TestGenerateTicksNoDrift(t *testing.T) {
	ticks := GenerateTicks(paramsFor(4, VisibleRange{Start: -1000, End: 1000}, 500, 1000))
	if len(ticks) != 2001 {
		t.Fatalf("len(ticks) = %d, want 2001", len(ticks))
	}
	for i, tk := range ticks {
		want := float64(i - 1000)
		if tk.Value != want {
			t.Fatalf("tick %d value = %v, want exactly %v", i, tk.Value, want)
		}
		if tk.Value != math.Trunc(tk.Value) {
			t.Fatalf("tick %d value %v is not an integer", i, tk.Value)
		}
	}
}

func TestGenerateTicksDecimalValuesExact(t *testing.T) {
	ticks := GenerateTicks(paramsFor(6, VisibleRange{Start: -3, End: 3}, 500, 1000))
	if len(ticks) != 61 {
		t.Fatalf("len(ticks) = %d, want 61", len(ticks))
	}
	for i, tk := range ticks {
		want := float64(i-30) / 10
		if tk.Value != want {
			t.Errorf("tick %d value = %v, want %v", i, tk.Value, want)
		}
	}
	if got := ticks[33].Text; got != "0.3" {
		t.Errorf("ticks[33].Text = %q, want %q", got, "0.3")
	}
}

func TestGenerateTicksDeterministic(t *testing.T) {
	p := paramsFor(5, VisibleRange{Start: -17, End: 23}, 612.5, 1280)
	a := GenerateTicks(p)
	b := GenerateTicks(p)
	if !reflect.DeepEqual(a, b) {
		t.Error("two calls with identical inputs differ")
	}
}

func TestGenerateTicksAscending(t *testing.T) {
	for idx := range DefaultLevels {
		ticks := GenerateTicks(paramsFor(idx, VisibleRange{Start: -333, End: 271}, 500, 1000))
		for i := 1; i < len(ticks); i++ {
			if ticks[i].Value <= ticks[i-1].Value {
				t.Fatalf("level %d: tick %d (%v) not above tick %d (%v)", idx, i, ticks[i].Value, i-1, ticks[i-1].Value)
			}
		}
		interval := DefaultLevels[idx].TickInterval
		if first := ticks[0].Value; first > -333 || first <= -333-interval {
			t.Errorf("level %d: first tick %v does not snap outward from -333", idx, first)
		}
	}
}

func TestGenerateTicksClassification(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		value      float64
		major      bool
		label      bool
		smallLabel bool
		text       string
	}{
		{"normal integer", 4, 3, true, true, false, "3"},
		{"half level half", 5, 1.5, true, true, false, "1.5"},
		{"widest multiple", 0, 100, true, true, false, "100"},
		{"decimal whole", 6, 2, true, true, false, "2.0"},
		{"decimal tenth", 6, 0.7, false, false, false, "0.7"},
		{"decimal negative tenth", 6, -1.3, false, false, false, "-1.3"},
		{"decimal negative whole", 6, -4, true, true, false, "-4.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := DefaultLevels[tt.level].TickInterval
			r := VisibleRange{Start: tt.value - 2*interval, End: tt.value + 2*interval}
			var found *Tick
			for _, tk := range GenerateTicks(paramsFor(tt.level, r, 500, 1000)) {
				if tk.Value == tt.value {
					tk := tk
					found = &tk
				}
			}
			if found == nil {
				t.Fatalf("no tick with value %v", tt.value)
			}
			if found.Major != tt.major || found.Label != tt.label || found.SmallLabel != tt.smallLabel {
				t.Errorf("major/label/small = %v/%v/%v, want %v/%v/%v",
					found.Major, found.Label, found.SmallLabel, tt.major, tt.label, tt.smallLabel)
			}
			wantHeight := MinorTickHeight
			if tt.major {
				wantHeight = MajorTickHeight
			}
			if found.Height != wantHeight {
				t.Errorf("Height = %v, want %v", found.Height, wantHeight)
			}
			if found.Text != tt.text {
				t.Errorf("Text = %q, want %q", found.Text, tt.text)
			}
		})
	}
}

func TestGenerateTicksSmallLabel(t *testing.T) {
	level := ZoomLevel{Name: "fine", Scale: 5, TickInterval: 0.1, LabelInterval: 0.5}
	ticks := GenerateTicks(TickParams{
		Range:         VisibleRange{Start: 0, End: 1},
		Level:         level,
		PixelsPerUnit: 300,
		Decimal:       true,
		ViewportWidth: 1000,
	})
	for _, tk := range ticks {
		switch tk.Value {
		case 0.5:
			if !tk.Label || tk.Major || !tk.SmallLabel {
				t.Errorf("0.5: label/major/small = %v/%v/%v, want true/false/true", tk.Label, tk.Major, tk.SmallLabel)
			}
		case 1:
			if !tk.Label || !tk.Major || tk.SmallLabel {
				t.Errorf("1: label/major/small = %v/%v/%v, want true/true/false", tk.Label, tk.Major, tk.SmallLabel)
			}
		}
	}
}

func TestGenerateTicksCenter(t *testing.T) {
	for idx := range DefaultLevels {
		centers := 0
		for _, tk := range GenerateTicks(paramsFor(idx, VisibleRange{Start: -60, End: 60}, 500, 1000)) {
			if tk.Center {
				centers++
				if tk.Value != 0 || tk.Text != "0" && tk.Text != "0.0" {
					t.Errorf("level %d: center tick value %v text %q", idx, tk.Value, tk.Text)
				}
				if tk.X != 500 {
					t.Errorf("level %d: center tick at x=%v, want 500", idx, tk.X)
				}
			}
		}
		if centers != 1 {
			t.Errorf("level %d: %d center ticks, want 1", idx, centers)
		}
	}
}

func TestEdgeOpacity(t *testing.T) {
	tests := []struct {
		x, width, want float64
	}{
		{500, 1000, 1},
		{300, 1000, 1},
		{700, 1000, 1},
		{100, 1000, 0.5},
		{900, 1000, 0.5},
		{0, 1000, 0},
		{-250, 1000, 0},
		{1400, 1000, 0},
		{42, 0, 1},
	}
	for _, tt := range tests {
		if got := edgeOpacity(tt.x, tt.width); !approx(got, tt.want, 1e-12) {
			t.Errorf("edgeOpacity(%v, %v) = %v, want %v", tt.x, tt.width, got, tt.want)
		}
	}
}

func TestCalcVisibleRange(t *testing.T) {
	tests := []struct {
		name  string
		t     Transform
		ppu   float64
		width float64
		want  VisibleRange
	}{
		{"centered normal", Transform{OffsetPx: 500}, 60, 1000, VisibleRange{Start: -14, End: 14}},
		{"panned one unit", Transform{OffsetPx: 440}, 60, 1000, VisibleRange{Start: -13, End: 15}},
		{"widest", Transform{OffsetPx: 500}, 1.2, 1000, VisibleRange{Start: -422, End: 422}},
		{"unmeasured", Transform{OffsetPx: 500}, 60, 0, DefaultRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcVisibleRange(tt.t, tt.ppu, tt.width); got != tt.want {
				t.Errorf("CalcVisibleRange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v, interval float64
		want        string
	}{
		{0, 1, "0"},
		{-0.0001, 0.1, "0.0"},
		{2.25, 0.5, "2.3"},
		{-7, 10, "-7"},
		{0.30000000000000004, 0.1, "0.3"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.interval); got != tt.want {
			t.Errorf("FormatValue(%v, %v) = %q, want %q", tt.v, tt.interval, got, tt.want)
		}
	}
}
