package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// LaserGenerator generates a short descending "pew".
type LaserGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewLaserGenerator creates a laser sound generator
func NewLaserGenerator(sr beep.SampleRate) *LaserGenerator {
	return &LaserGenerator{sr: sr}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Exponential sweep 1800Hz -> ~300Hz
		freq := 300 + 1500*math.Exp(-t*30)
		envelope := math.Exp(-t * 18)
		sample := 0.5 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// ImpactGenerator generates a thump with noise for the ship being rammed.
type ImpactGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *rand.Rand
}

// NewImpactGenerator creates an impact sound generator
func NewImpactGenerator(sr beep.SampleRate, seed uint64) *ImpactGenerator {
	return &ImpactGenerator{
		sr:  sr,
		rng: rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func (g *ImpactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 14)
		noise := g.rng.Float64()*2 - 1
		thump := math.Sin(2 * math.Pi * 70 * t)
		sample := envelope * (0.35*noise + 0.5*thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ImpactGenerator) Err() error {
	return nil
}

// arpeggio is the repeating melody of the synthesized track (Hz).
var arpeggio = [...]float64{220.00, 261.63, 329.63, 392.00, 329.63, 261.63, 196.00, 246.94}

// MelodyGenerator plays an endless square-wave arpeggio.
type MelodyGenerator struct {
	sr      beep.SampleRate
	pos     int
	perNote int
}

// NewMelodyGenerator creates a melody generator
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	return &MelodyGenerator{
		sr:      sr,
		perNote: sr.N(time.Millisecond * 200),
	}
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.perNote) % len(arpeggio)
		inNote := float64(g.pos%g.perNote) / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)

		sample := -1.0
		if math.Sin(2*math.Pi*arpeggio[note]*t) >= 0 {
			sample = 1
		}
		sample *= 0.12 * math.Exp(-inNote*6)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}

// NewMusic returns the endless synthesized background track: the melody
// over a quiet sine drone.
func NewMusic(sr beep.SampleRate) beep.Streamer {
	melody := NewMelodyGenerator(sr)
	drone, err := generators.SineTone(sr, 55)
	if err != nil {
		return melody
	}
	return beep.Mix(melody, withVolume(drone, 0.15))
}
