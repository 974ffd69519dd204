package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/number-line/internal/config"
	"github.com/iburimskiy/number-line/internal/numberline"
)

// Game is the ebiten host for the number line engine.
type Game struct {
	engine *numberline.Engine

	// window size from Layout
	width, height int

	// input
	mouse         mouseTracker
	touches       touchTracker
	touchIDs      []ebiten.TouchID
	justTouched   []ebiten.TouchID
	buttonTouches map[ebiten.TouchID]bool
	prevKey       map[ebiten.Key]bool
	buttons       []*button

	// drawing
	fonts      *fonts
	background *ebiten.Image
	crosshair  *crosshair

	// sound
	clicker *clicker
	detent  detent

	// overlays
	elapsed     time.Duration
	lastZoom    int
	zoomShownAt time.Duration

	unsubscribe func()
	lastErr     error
}

// New builds the game from the command line settings.
func New(s config.Settings) (*Game, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, errors.New("window size must be positive")
	}
	g := &Game{
		width:         s.Width,
		height:        s.Height,
		buttonTouches: map[ebiten.TouchID]bool{},
		prevKey:       map[ebiten.Key]bool{},
	}

	levels := numberline.DefaultLevels
	if s.LevelsPath != "" {
		loaded, err := loadLevelsFile(s.LevelsPath)
		if err != nil {
			return nil, err
		}
		levels = loaded
	}
	index := s.ZoomIndex
	if index < 0 {
		index = numberline.NormalIndex(levels)
	}
	g.engine = numberline.New(g, numberline.WithLevels(levels), numberline.WithZoomIndex(index))
	g.lastZoom = g.engine.Transform().ZoomIndex
	log.Printf("engine ready: %d zoom levels, starting at %q", len(levels), g.engine.Level().Name)

	f, err := newFonts()
	if err != nil {
		return nil, err
	}
	g.fonts = f
	g.buttons = g.newButtons()
	g.crosshair = newCrosshair(ebiten.TPS())

	if s.Sound {
		c := newClicker()
		if err := c.init(); err != nil {
			log.Printf("sound disabled: %v", err)
			g.lastErr = err
		} else {
			g.clicker = c
			if s.ClickPath != "" {
				if err := c.useSample(s.ClickPath); err != nil {
					return nil, err
				}
			}
		}
	}

	g.detent.observe(g.engine.CenterValue(), g.engine.CenterIsMajor())
	g.unsubscribe = g.engine.Subscribe(g.onTransform)
	return g, nil
}

func loadLevelsFile(path string) ([]numberline.ZoomLevel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	levels, err := numberline.LoadLevels(f)
	if err != nil {
		return nil, fmt.Errorf("load zoom levels from %s: %w", path, err)
	}
	return levels, nil
}

// onTransform runs after every engine transform change.
func (g *Game) onTransform(t numberline.Transform) {
	if t.ZoomIndex != g.lastZoom {
		g.lastZoom = t.ZoomIndex
		g.zoomShownAt = g.elapsed
		log.Printf("zoom level %d (%s)", t.ZoomIndex, g.engine.Level().Name)
	}
	if g.detent.observe(g.engine.CenterValue(), g.engine.CenterIsMajor()) && g.clicker != nil {
		g.clicker.play()
	}
}

// ContainerSize reports the number line area below the app bar.
func (g *Game) ContainerSize() (float64, float64) {
	h := g.height - config.AppBarHeight
	if h < 0 {
		h = 0
	}
	return float64(g.width), float64(h)
}

func (g *Game) containerTop() int { return config.AppBarHeight }

func (g *Game) Update() error {
	justPressed := func(keys ...ebiten.Key) bool {
		hit := false
		for _, k := range keys {
			pressed := ebiten.IsKeyPressed(k)
			if pressed && !g.prevKey[k] {
				hit = true
			}
			g.prevKey[k] = pressed
		}
		return hit
	}

	if justPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		g.engine.ZoomIn()
	}
	if justPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		g.engine.ZoomOut()
	}
	if justPressed(ebiten.Key0, ebiten.KeyNumpad0, ebiten.KeyHome) {
		g.engine.SnapToZero()
	}
	if justPressed(ebiten.KeyG) {
		g.gotoValue()
	}
	if justPressed(ebiten.KeyO) {
		g.chooseClickSample()
	}

	g.updateButtons()
	g.pollInput()

	dt := time.Second / time.Duration(ebiten.TPS())
	g.elapsed += dt
	g.engine.Advance(dt)
	g.crosshair.follow(g.engine.WorldToScreen(g.engine.CenterValue()))
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.background != nil {
			g.background.Deallocate()
			g.background = nil
		}
		g.crosshair.reset()
	}
	return outsideWidth, outsideHeight
}

// Close releases the engine subscription and stops any playing sound.
func (g *Game) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	if g.clicker != nil {
		g.clicker.close()
	}
}
