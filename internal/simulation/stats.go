package simulation

import (
	"fmt"

	"circle-collision-sim/internal/collision"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// Stats is a summary of the simulation used by the HUD and the logs.
type Stats struct {
	Tick           uint64
	Count          int
	Flashing       int
	Overlapping    int    // pairs still overlapping right now
	Collisions     uint64 // pair resolutions since start
	LastCollisions int    // pair resolutions during the latest tick
	MeanSpeed      float64
	SpeedStdDev    float64
	KineticEnergy  float64 // sum of v²/2, every circle has unit mass
}

// Stats computes the current summary.
func (s *Simulation) Stats() Stats {
	st := Stats{
		Tick:           s.tick,
		Count:          len(s.circles),
		Collisions:     s.collisions,
		LastCollisions: s.lastCollisions,
	}
	if len(s.circles) == 0 {
		return st
	}

	speeds := make([]float64, len(s.circles))
	for i, c := range s.circles {
		speeds[i] = r2.Norm(c.velocity)
		if c.flashing {
			st.Flashing++
		}
	}

	if len(speeds) == 1 {
		st.MeanSpeed = speeds[0]
	} else {
		st.MeanSpeed, st.SpeedStdDev = stat.MeanStdDev(speeds, nil)
	}
	st.KineticEnergy = floats.Dot(speeds, speeds) / 2
	st.Overlapping = len(collision.Detect(s.circles))
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("Tick: %d | Circles: %d | Flashing: %d | Overlapping: %d | Collisions: %d (last %d) | Speed: %.2f±%.2f | Energy: %.1f",
		st.Tick, st.Count, st.Flashing, st.Overlapping, st.Collisions, st.LastCollisions, st.MeanSpeed, st.SpeedStdDev, st.KineticEnergy)
}
