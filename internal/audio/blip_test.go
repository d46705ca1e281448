package audio

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestBlipLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	blip, err := NewBlip(rate, 440, 50*time.Millisecond, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := rate.N(50 * time.Millisecond)
	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := blip.Stream(samples)
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, samples[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestBlipVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	blip, err := NewBlip(rate, 440, 20*time.Millisecond, -2)
	if err != nil {
		t.Fatal(err)
	}
	samples := make([][2]float64, rate.N(20*time.Millisecond))
	n, _ := blip.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] > 0.25+1e-9 || samples[i][0] < -0.25-1e-9 {
			t.Fatalf("sample %d = %f exceeds quarter gain", i, samples[i][0])
		}
	}
}

func TestBlipRejectsBadFrequency(t *testing.T) {
	// A tone above Nyquist cannot be generated.
	if _, err := NewBlip(beep.SampleRate(8000), 5000, time.Millisecond, 0); err == nil {
		t.Error("expected error for frequency above Nyquist")
	}
}

func TestBlipFrequency(t *testing.T) {
	if got := blipFrequency(1); math.Abs(got-484) > 1e-9 {
		t.Errorf("blipFrequency(1) = %v, want 484", got)
	}
	if blipFrequency(50) != blipFrequency(10) {
		t.Error("pitch should saturate at 10 pairs")
	}
}

func TestPlayerRateLimit(t *testing.T) {
	clock := time.Unix(0, 0)
	played := 0
	p := newPlayer(sampleRate, func(beep.Streamer) { played++ }, func() time.Time { return clock })

	p.Collided(0)
	if played != 0 {
		t.Fatal("played without collisions")
	}

	p.Collided(1)
	p.Collided(2)
	if played != 1 {
		t.Errorf("played = %d, want 1 within the gap", played)
	}

	clock = clock.Add(minGap)
	p.Collided(1)
	if played != 2 {
		t.Errorf("played = %d, want 2 after the gap", played)
	}
}

func TestPlayerLogsUnplayableBlip(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	played := 0
	// 800 Hz sampling cannot carry a 484 Hz tone.
	p := newPlayer(beep.SampleRate(800), func(beep.Streamer) { played++ }, time.Now)
	p.Collided(1)

	if played != 0 {
		t.Errorf("played = %d, want 0", played)
	}
	if !strings.Contains(buf.String(), "collision blip skipped") {
		t.Errorf("log = %q, want a skipped blip warning", buf.String())
	}
}
