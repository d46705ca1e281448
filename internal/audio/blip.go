package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	blipDuration = 40 * time.Millisecond
	blipVolume   = -2.0 // log2 gain, a quarter of full scale
	baseFreq     = 440.0
	minGap       = 60 * time.Millisecond // blips closer than this are dropped
)

// NewBlip returns a short sine tone at freq that ends after d.
func NewBlip(rate beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create sine tone: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// blipFrequency raises the pitch with the number of pairs resolved in a tick.
func blipFrequency(resolved int) float64 {
	return baseFreq * (1 + 0.1*float64(min(resolved, 10)))
}

// Player plays a blip for ticks with collisions.
type Player struct {
	rate beep.SampleRate
	play func(beep.Streamer)
	now  func() time.Time
	last time.Time
}

// NewPlayer opens the default audio device.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return newPlayer(sampleRate, func(s beep.Streamer) { speaker.Play(s) }, time.Now), nil
}

func newPlayer(rate beep.SampleRate, play func(beep.Streamer), now func() time.Time) *Player {
	return &Player{rate: rate, play: play, now: now}
}

// Collided is meant to be registered with Simulation.OnCollision.
func (p *Player) Collided(resolved int) {
	if resolved <= 0 {
		return
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < minGap {
		return
	}
	blip, err := NewBlip(p.rate, blipFrequency(resolved), blipDuration, blipVolume)
	if err != nil {
		log.Printf("Warning: collision blip skipped: %v", err)
		return
	}
	p.last = now
	p.play(blip)
}

// Close releases the audio device.
func (p *Player) Close() {
	speaker.Close()
}
