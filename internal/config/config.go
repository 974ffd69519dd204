package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 600
	WindowTitle  = "Number Line - Drag to pan, Scroll to zoom, 0: Snap, G: Go to, Esc/Q: Quit"

	// App bar above the number line container
	AppBarHeight = 72

	// Axis position as a fraction of the container height
	AxisRatio = 0.35

	// Button dimensions
	ButtonHeight  = 40
	ButtonGap     = 8
	ButtonMargin  = 24
	IconButtonW   = 40
	SnapButtonW   = 136
	GotoButtonW   = 72
	LabelFontSize = 14
	SmallFontSize = 11

	// Edge overlays that darken both ends of the line
	EdgeOverlayWidth = 192

	// Overlay timing
	HintDelay     = 4 * time.Second
	HintFade      = time.Second
	ZoomInfoDelay = 500 * time.Millisecond

	// Crosshair spring
	CrosshairFrequency = 30.0
	CrosshairDamping   = 1.0

	// Detent click
	ClickSampleRate = 44100
	ClickFrequency  = 1800.0
	ClickDuration   = 18 * time.Millisecond
	ClickVolume     = 0.35

	LogDir      = "logs"
	LogFileName = "numberline.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Settings are the runtime options chosen on the command line.
type Settings struct {
	Width, Height int

	// LevelsPath names a YAML zoom table; empty uses the built-in table.
	LevelsPath string
	// ZoomIndex is the starting level; negative picks the scale-1 level.
	ZoomIndex int

	Sound bool
	// ClickPath is an optional wav/mp3/flac file played instead of the
	// synthesized click.
	ClickPath string

	Debug bool
}

// Default returns the settings used when no flags are given.
func Default() Settings {
	return Settings{
		Width:     WindowWidth,
		Height:    WindowHeight,
		ZoomIndex: -1,
		Sound:     true,
	}
}
