package simulation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"circle-collision-sim/internal/collision"
	"circle-collision-sim/internal/common"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidConfig is wrapped by every error caused by unusable settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Options configures a Simulation.
type Options struct {
	Bounds   Bounds
	Count    int          // number of circles created by Populate
	Radius   common.Range // radius range of generated circles
	Speed    common.Range // speed range of generated circles
	Boundary BoundaryPolicy
	Mode     CollisionMode
	Flash    FlashEffect
}

// Simulation holds the live collection of circles and advances it tick by tick.
type Simulation struct {
	bounds    Bounds
	count     int
	radius    common.Range
	speed     common.Range
	policy    BoundaryPolicy
	mode      CollisionMode
	flash     FlashEffect
	rng       common.Rand
	circles   []*Circle
	onCollide func(resolved int)

	tick           uint64
	collisions     uint64 // resolutions since start
	lastCollisions int    // resolutions during the latest tick
}

// NewSimulation creates an empty simulation. Call Populate to create circles.
func NewSimulation(opts Options, rng common.Rand) (*Simulation, error) {
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		return nil, fmt.Errorf("bounds must be positive, got %s: %w", opts.Bounds, ErrInvalidConfig)
	}
	if opts.Count < 0 {
		return nil, fmt.Errorf("circle count must not be negative, got %d: %w", opts.Count, ErrInvalidConfig)
	}
	if opts.Radius.Min <= 0 {
		return nil, fmt.Errorf("radius range %s must be positive: %w", opts.Radius, ErrInvalidConfig)
	}
	if err := opts.Radius.Validate(); err != nil {
		return nil, fmt.Errorf("radius: %v: %w", err, ErrInvalidConfig)
	}
	if err := opts.Speed.Validate(); err != nil {
		return nil, fmt.Errorf("speed: %v: %w", err, ErrInvalidConfig)
	}
	if opts.Boundary == nil {
		return nil, fmt.Errorf("boundary policy is required: %w", ErrInvalidConfig)
	}
	if opts.Mode == "" {
		opts.Mode = CollisionPairwise
	}
	if _, err := ParseCollisionMode(string(opts.Mode)); err != nil {
		return nil, err
	}
	if opts.Flash.Ticks <= 0 {
		return nil, fmt.Errorf("flash ticks must be positive, got %d: %w", opts.Flash.Ticks, ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required: %w", ErrInvalidConfig)
	}

	return &Simulation{
		bounds: opts.Bounds,
		count:  opts.Count,
		radius: opts.Radius,
		speed:  opts.Speed,
		policy: opts.Boundary,
		mode:   opts.Mode,
		flash:  opts.Flash,
		rng:    rng,
	}, nil
}

// GenerateCircles creates n random circles labeled C1..Cn.
func (s *Simulation) GenerateCircles(n int) ([]*Circle, error) {
	circles := make([]*Circle, 0, n)
	for i := 0; i < n; i++ {
		radius := s.radius.Sample(s.rng)
		outline := common.RandomColor(s.rng)
		labelColor := common.RandomColor(s.rng)
		speed := s.speed.Sample(s.rng)
		pos, vel := s.policy.Spawn(radius, speed, s.bounds, s.rng)

		c, err := NewCircle(CircleParams{
			Label:      fmt.Sprintf("C%d", i+1),
			Position:   pos,
			Velocity:   vel,
			Radius:     radius,
			Color:      outline,
			LabelColor: labelColor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate circle %d: %w", i+1, err)
		}
		circles = append(circles, c)
	}
	return circles, nil
}

// Populate replaces the collection with freshly generated circles.
func (s *Simulation) Populate() error {
	circles, err := s.GenerateCircles(s.count)
	if err != nil {
		return err
	}
	s.circles = circles
	return nil
}

// AddCircle appends c to the collection.
func (s *Simulation) AddCircle(c *Circle) error {
	if c == nil {
		return fmt.Errorf("cannot add nil circle")
	}
	for _, existing := range s.circles {
		if existing.GetID() == c.GetID() {
			return fmt.Errorf("circle with ID %s already exists", c.GetID())
		}
	}
	s.circles = append(s.circles, c)
	return nil
}

// Circles returns a snapshot of the live collection in collection order.
func (s *Simulation) Circles() []*Circle {
	out := make([]*Circle, len(s.circles))
	copy(out, s.circles)
	return out
}

// Len returns the number of live circles.
func (s *Simulation) Len() int {
	return len(s.circles)
}

// Bounds returns the viewport size.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Policy returns the active boundary policy.
func (s *Simulation) Policy() BoundaryPolicy {
	return s.policy
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// OnCollision registers a callback invoked after every tick that resolved at
// least one pair.
func (s *Simulation) OnCollision(fn func(resolved int)) {
	s.onCollide = fn
}

// Step runs one tick and returns the number of pair resolutions performed.
func (s *Simulation) Step() int {
	// The removal path only runs between ticks, but iterate a snapshot anyway
	// so nothing in the tick can reorder the collection under us.
	circles := s.Circles()

	resolved := 0
	switch s.mode {
	case CollisionLegacy:
		for _, c := range circles {
			Advance(c, s.policy, s.bounds, s.rng)
			resolved += resolveAgainst(c, circles, s.flash)
			s.flash.Decay(c)
		}
	default:
		for _, c := range circles {
			Advance(c, s.policy, s.bounds, s.rng)
		}
		resolved = resolvePairs(circles, s.flash)
		for _, c := range circles {
			s.flash.Decay(c)
		}
	}

	s.tick++
	s.lastCollisions = resolved
	s.collisions += uint64(resolved)
	if resolved > 0 && s.onCollide != nil {
		s.onCollide(resolved)
	}
	return resolved
}

// RemoveAt removes the first circle, in collection order, that contains p.
// It must not be called while a tick is running.
func (s *Simulation) RemoveAt(p r2.Vec) (*Circle, bool) {
	i := collision.HitTest(s.circles, p)
	if i < 0 {
		return nil, false
	}
	removed := s.circles[i]
	s.circles = append(s.circles[:i], s.circles[i+1:]...)
	return removed, true
}

// Reset discards every circle and generates a new collection.
func (s *Simulation) Reset() error {
	if err := s.Populate(); err != nil {
		return err
	}
	s.tick = 0
	s.collisions = 0
	s.lastCollisions = 0
	return nil
}

// Run steps the simulation headlessly. numSteps == 0 runs until ctx is done.
// A non-positive tickDuration steps as fast as possible.
func (s *Simulation) Run(ctx context.Context, numSteps int, tickDuration time.Duration) error {
	log.Printf("Starting simulation: Circles=%d, Bounds=%s, Boundary=%s, Collisions=%s, TickDuration=%s",
		len(s.circles), s.bounds, s.policy.Name(), s.mode, tickDuration)
	log.Println("Initial State:")
	s.PrintState()

	var pulse <-chan time.Time
	if tickDuration > 0 {
		ticker := time.NewTicker(tickDuration)
		defer ticker.Stop()
		pulse = ticker.C
	}

	for i := 0; numSteps == 0 || i < numSteps; i++ {
		if pulse != nil {
			select {
			case <-ctx.Done():
				log.Printf("Simulation stopped after %d ticks: %v", s.tick, ctx.Err())
				return ctx.Err()
			case <-pulse:
			}
		} else if err := ctx.Err(); err != nil {
			log.Printf("Simulation stopped after %d ticks: %v", s.tick, err)
			return err
		}

		if n := s.Step(); n > 0 {
			log.Printf("Tick %d: %d collision(s) resolved", s.tick, n)
		}
	}

	log.Println("--- Simulation Finished ---")
	s.PrintState()
	return nil
}

// PrintState logs every circle and the aggregate statistics.
func (s *Simulation) PrintState() {
	log.Println("--- Current Simulation State ---")
	log.Println(s.Stats())
	if len(s.circles) == 0 {
		log.Println("  None")
	}
	for _, c := range s.circles {
		log.Printf("  %s", c)
	}
	log.Println("-----------------------------")
}
