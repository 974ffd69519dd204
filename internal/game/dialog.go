package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/ncruces/zenity"
)

var errNotFinite = errors.New("value must be a finite number")

// parseValue parses the go-to entry text.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// gotoValue asks for a value and snaps the line to it.
func (g *Game) gotoValue() {
	if err := g.gotoValueDialog(); err != nil {
		g.lastErr = err
	}
}

func (g *Game) gotoValueDialog() error {
	entry, err := zenity.Entry(
		"Value to center:",
		zenity.Title("Go to value"),
		zenity.EntryText(g.engine.CenterText()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	v, err := parseValue(entry)
	if err != nil {
		return err
	}
	log.Printf("go to %v", v)
	g.lastErr = nil
	g.engine.SnapTo(v)
	return nil
}

// chooseClickSample lets the user pick an audio file for the detent click.
func (g *Game) chooseClickSample() {
	if err := g.chooseClickSampleDialog(); err != nil {
		g.lastErr = err
	}
}

func (g *Game) chooseClickSampleDialog() error {
	if g.clicker == nil {
		return nil
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Click Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.lastErr = nil
	return g.clicker.useSample(filename)
}
