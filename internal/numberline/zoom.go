// Package numberline implements the viewport engine behind the number line:
// discrete zoom levels, the offset/zoom transform, gesture reconciliation,
// momentum, snap animation and tick generation. It has no rendering or
// windowing dependencies; the host drives it with events and per-frame ticks.
package numberline

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// ZoomLevel is one entry of the discrete zoom table.
type ZoomLevel struct {
	Name          string  `yaml:"name"`
	Scale         float64 `yaml:"scale"`
	TickInterval  float64 `yaml:"tickInterval"`
	LabelInterval float64 `yaml:"labelInterval"`
}

// DefaultLevels is ordered from most zoomed out to most zoomed in.
var DefaultLevels = []ZoomLevel{
	{Name: "4 levels out", Scale: 0.02, TickInterval: 50, LabelInterval: 50},
	{Name: "3 levels out", Scale: 0.1, TickInterval: 10, LabelInterval: 10},
	{Name: "2 levels out", Scale: 0.2, TickInterval: 5, LabelInterval: 5},
	{Name: "1 level out", Scale: 0.5, TickInterval: 2, LabelInterval: 2},
	{Name: "normal", Scale: 1, TickInterval: 1, LabelInterval: 1},
	{Name: "1 level in", Scale: 2, TickInterval: 0.5, LabelInterval: 0.5},
	{Name: "2 levels in", Scale: 5, TickInterval: 0.1, LabelInterval: 1},
}

// DefaultZoomIndex is the "normal" level of DefaultLevels.
const DefaultZoomIndex = 4

var errNoLevels = errors.New("zoom table is empty")

// ValidateLevels checks the invariants the engine relies on: positive scales
// and intervals, label interval a whole multiple of the tick interval, and
// scales strictly increasing with the index.
func ValidateLevels(levels []ZoomLevel) error {
	if len(levels) == 0 {
		return errNoLevels
	}
	for i, l := range levels {
		if !(l.Scale > 0) || math.IsInf(l.Scale, 0) {
			return fmt.Errorf("level %d (%q): scale must be positive, got %v", i, l.Name, l.Scale)
		}
		if !(l.TickInterval > 0) || !(l.LabelInterval > 0) {
			return fmt.Errorf("level %d (%q): intervals must be positive", i, l.Name)
		}
		ratio := l.LabelInterval / l.TickInterval
		if ratio < 1 || math.Abs(ratio-math.Round(ratio)) > 1e-9*ratio {
			return fmt.Errorf("level %d (%q): label interval %v is not a multiple of tick interval %v",
				i, l.Name, l.LabelInterval, l.TickInterval)
		}
		if i > 0 && l.Scale <= levels[i-1].Scale {
			return fmt.Errorf("level %d (%q): scale %v does not increase on level %d", i, l.Name, l.Scale, i-1)
		}
	}
	return nil
}

// LoadLevels reads a YAML zoom table of the form
//
//	levels:
//	  - name: normal
//	    scale: 1
//	    tickInterval: 1
//	    labelInterval: 1
//
// and validates it.
func LoadLevels(r io.Reader) ([]ZoomLevel, error) {
	var doc struct {
		Levels []ZoomLevel `yaml:"levels"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoLevels
		}
		return nil, fmt.Errorf("decode zoom table: %w", err)
	}
	for i := range doc.Levels {
		if doc.Levels[i].Name == "" {
			doc.Levels[i].Name = fmt.Sprintf("level %d", i)
		}
	}
	if err := ValidateLevels(doc.Levels); err != nil {
		return nil, err
	}
	return doc.Levels, nil
}

// NormalIndex returns the index of the level with scale 1, or the middle
// level when there is none.
func NormalIndex(levels []ZoomLevel) int {
	for i, l := range levels {
		if l.Scale == 1 {
			return i
		}
	}
	return len(levels) / 2
}
