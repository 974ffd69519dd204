package numberline

import (
	"strings"
	"testing"
)

func TestDefaultLevelsValid(t *testing.T) {
	if err := ValidateLevels(DefaultLevels); err != nil {
		t.Fatalf("ValidateLevels(DefaultLevels) = %v", err)
	}
	if got := NormalIndex(DefaultLevels); got != DefaultZoomIndex {
		t.Errorf("NormalIndex(DefaultLevels) = %d, want %d", got, DefaultZoomIndex)
	}
}

func TestValidateLevels(t *testing.T) {
	tests := []struct {
		name    string
		levels  []ZoomLevel
		wantErr string
	}{
		{"empty", nil, "empty"},
		{"zero scale", []ZoomLevel{{Name: "a", Scale: 0, TickInterval: 1, LabelInterval: 1}}, "scale must be positive"},
		{"negative tick", []ZoomLevel{{Name: "a", Scale: 1, TickInterval: -1, LabelInterval: 1}}, "intervals must be positive"},
		{"label not multiple", []ZoomLevel{{Name: "a", Scale: 1, TickInterval: 2, LabelInterval: 3}}, "not a multiple"},
		{"label below tick", []ZoomLevel{{Name: "a", Scale: 1, TickInterval: 1, LabelInterval: 0.5}}, "not a multiple"},
		{"scales not increasing", []ZoomLevel{
			{Name: "a", Scale: 2, TickInterval: 1, LabelInterval: 1},
			{Name: "b", Scale: 1, TickInterval: 1, LabelInterval: 1},
		}, "does not increase"},
		{"decimal multiple", []ZoomLevel{{Name: "a", Scale: 5, TickInterval: 0.1, LabelInterval: 0.3}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLevels(tt.levels)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateLevels() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateLevels() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLevels(t *testing.T) {
	const doc = `
levels:
  - name: wide
    scale: 0.5
    tickInterval: 2
    labelInterval: 10
  - scale: 1
    tickInterval: 1
    labelInterval: 5
  - name: fine
    scale: 10
    tickInterval: 0.1
    labelInterval: 1
`
	levels, err := LoadLevels(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadLevels() error = %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("len(levels) = %d, want 3", len(levels))
	}
	if levels[1].Name != "level 1" {
		t.Errorf("unnamed level got name %q, want %q", levels[1].Name, "level 1")
	}
	if levels[2].TickInterval != 0.1 || levels[2].LabelInterval != 1 {
		t.Errorf("levels[2] = %+v", levels[2])
	}
	if got := NormalIndex(levels); got != 1 {
		t.Errorf("NormalIndex() = %d, want 1", got)
	}
}

func TestLoadLevelsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"no levels", "levels: []\n"},
		{"unknown field", "levels:\n  - scale: 1\n    tickInterval: 1\n    labelInterval: 1\n    zoom: 3\n"},
		{"invalid level", "levels:\n  - scale: 1\n    tickInterval: 0\n    labelInterval: 1\n"},
		{"not yaml", "levels: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadLevels(strings.NewReader(tt.doc)); err == nil {
				t.Error("LoadLevels() error = nil, want error")
			}
		})
	}
}

func TestProposeZoom(t *testing.T) {
	n := len(DefaultLevels)
	tests := []struct {
		index  int
		dir    ZoomDirection
		want   int
		wantOK bool
	}{
		{4, ZoomIn, 5, true},
		{4, ZoomOut, 3, true},
		{n - 1, ZoomIn, n - 1, false},
		{0, ZoomOut, 0, false},
	}
	for _, tt := range tests {
		got, ok := proposeZoom(DefaultLevels, tt.index, tt.dir)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("proposeZoom(%d, %d) = %d, %v; want %d, %v", tt.index, tt.dir, got, ok, tt.want, tt.wantOK)
		}
	}
}
