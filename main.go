package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/number-line/internal/config"
	"github.com/iburimskiy/number-line/internal/game"
)

func main() {
	s := config.Default()
	flag.IntVar(&s.Width, "width", s.Width, "window width")
	flag.IntVar(&s.Height, "height", s.Height, "window height")
	flag.StringVar(&s.LevelsPath, "levels", "", "YAML file with a custom zoom table")
	flag.IntVar(&s.ZoomIndex, "zoom", s.ZoomIndex, "starting zoom level index (-1: the scale 1 level)")
	flag.BoolVar(&s.Sound, "sound", s.Sound, "click when the center crosses a major tick")
	flag.StringVar(&s.ClickPath, "click", "", "wav/mp3/flac file to use as the click sound")
	flag.BoolVar(&s.Debug, "debug", false, "write logs to "+filepath.Join(config.LogDir, config.LogFileName))
	flag.Parse()

	if logFile := setupLogging(s.Debug); logFile != nil {
		defer logFile.Close()
	}

	g, err := game.New(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "numberline: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
		fmt.Fprintf(os.Stderr, "numberline: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to the log file when debug is set
// and discards it otherwise. An oversized previous log is rotated aside.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(config.LogDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(config.LogDir, config.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > config.MaxLogSize {
		ext := filepath.Ext(config.LogFileName)
		rotated := fmt.Sprintf("%s-%s%s", config.LogFileName[:len(config.LogFileName)-len(ext)], time.Now().Format("20060102-150405"), ext)
		_ = os.Rename(path, filepath.Join(config.LogDir, rotated))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("numberline starting")
	return f
}
