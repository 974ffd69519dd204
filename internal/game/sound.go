package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/number-line/internal/config"
)

var errUnsupportedSample = errors.New("unsupported file type")

// detent reports when the snapped center value lands on a new major tick.
type detent struct {
	last  float64
	valid bool
}

// observe records the current center value and returns true when it is a
// major tick different from the last one observed.
func (d *detent) observe(value float64, major bool) bool {
	changed := !d.valid || value != d.last
	d.last, d.valid = value, true
	return changed && major
}

// clickStreamer synthesizes a short decaying sine burst at rate.
func clickStreamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(config.ClickDuration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(rate)
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*config.ClickFrequency*t) * env * env
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// loadClickSample decodes a wav/mp3/flac file into memory, resampled to rate.
func loadClickSample(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedSample, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	if format.SampleRate == rate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, rate, streamer))
	}
	return buf, nil
}

// clicker plays the detent click through the speaker.
type clicker struct {
	rate   beep.SampleRate
	sample *beep.Buffer
	ready  bool
}

func newClicker() *clicker {
	return &clicker{rate: beep.SampleRate(config.ClickSampleRate)}
}

func (c *clicker) init() error {
	if c.ready {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	log.Printf("speaker ready at %d Hz", c.rate)
	return nil
}

// useSample replaces the synthesized click with the file at path.
func (c *clicker) useSample(path string) error {
	buf, err := loadClickSample(path, c.rate)
	if err != nil {
		return err
	}
	c.sample = buf
	log.Printf("click sample loaded from %s", path)
	return nil
}

func (c *clicker) play() {
	if !c.ready {
		return
	}
	var src beep.Streamer
	if c.sample != nil {
		src = c.sample.Streamer(0, c.sample.Len())
	} else {
		src = clickStreamer(c.rate)
	}
	speaker.Play(&effects.Volume{
		Streamer: src,
		Base:     2,
		Volume:   math.Log2(config.ClickVolume),
	})
}

// close stops anything still playing. speaker.Clear locks internally.
func (c *clicker) close() {
	if c.ready {
		speaker.Clear()
	}
}
