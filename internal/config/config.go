package config

import (
	"flag"
	"fmt"
	"time"

	"circle-collision-sim/internal/common"
	"circle-collision-sim/internal/simulation"
)

// MaxTPS is the highest accepted tick rate.
const MaxTPS = 1000

// Front-ends that can drive the simulation.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Config is the startup configuration of the program.
type Config struct {
	Width  int
	Height int

	Count     int
	RadiusMin float64
	RadiusMax float64
	SpeedMin  float64
	SpeedMax  float64
	RiseMin   float64 // upward drift range, floor variant only
	RiseMax   float64
	Margin    float64 // respawn gap above the bottom edge

	FlashTicks     int
	CollisionColor string

	Boundary  string // simulation.BoundaryFloor or simulation.BoundaryBounce
	Collision string // "pairwise" or "legacy"

	Frontend    string
	Steps       int // headless only, 0 runs until interrupted
	TPS         int
	Seed        uint64 // 0 picks a seed from the clock
	Sound       bool
	ClickRemove bool
	HUD         bool
	LogFile     string // empty logs to stderr, or nowhere for the terminal front-end
}

// Default returns the stock configuration: ten circles drifting up from the
// bottom of a 1280x720 window, removable by clicking.
func Default() Config {
	return Config{
		Width:          1280,
		Height:         720,
		Count:          10,
		RadiusMin:      20,
		RadiusMax:      50,
		SpeedMin:       1,
		SpeedMax:       5,
		RiseMin:        1,
		RiseMax:        3,
		Margin:         5,
		FlashTicks:     simulation.DefaultFlashTicks,
		CollisionColor: common.HexString(simulation.DefaultFlashColor),
		Boundary:       simulation.BoundaryFloor,
		Collision:      string(simulation.CollisionPairwise),
		Frontend:       FrontendWindow,
		TPS:            60,
		ClickRemove:    true,
		HUD:            true,
	}
}

// Bind registers a flag for every field, using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.Count, "count", c.Count, "number of circles")
	fs.Float64Var(&c.RadiusMin, "radius-min", c.RadiusMin, "smallest circle radius")
	fs.Float64Var(&c.RadiusMax, "radius-max", c.RadiusMax, "largest circle radius")
	fs.Float64Var(&c.SpeedMin, "speed-min", c.SpeedMin, "slowest circle speed (pixels per tick)")
	fs.Float64Var(&c.SpeedMax, "speed-max", c.SpeedMax, "fastest circle speed (pixels per tick)")
	fs.Float64Var(&c.RiseMin, "rise-min", c.RiseMin, "slowest upward drift, floor boundary only")
	fs.Float64Var(&c.RiseMax, "rise-max", c.RiseMax, "fastest upward drift, floor boundary only")
	fs.Float64Var(&c.Margin, "margin", c.Margin, "gap between the bottom edge and respawned circles")
	fs.IntVar(&c.FlashTicks, "flash-ticks", c.FlashTicks, "ticks a collision flash lasts")
	fs.StringVar(&c.CollisionColor, "collision-color", c.CollisionColor, "hex color of the collision flash")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary policy: floor or bounce")
	fs.StringVar(&c.Collision, "collision", c.Collision, "collision pass: pairwise or legacy")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "window, terminal or headless")
	fs.IntVar(&c.Steps, "steps", c.Steps, "ticks to run in headless mode (0 = until interrupted)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a blip on collisions")
	fs.BoolVar(&c.ClickRemove, "click-remove", c.ClickRemove, "remove circles by clicking them (default: on for the floor boundary)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the statistics overlay")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file")
}

// Parse builds a Config from command line arguments and validates it.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["click-remove"] {
		cfg.ClickRemove = cfg.Boundary == simulation.BoundaryFloor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return invalid("viewport must be positive, got %dx%d", c.Width, c.Height)
	case c.Count < 0:
		return invalid("count must not be negative, got %d", c.Count)
	case c.RadiusMin <= 0:
		return invalid("radius-min must be positive, got %v", c.RadiusMin)
	case c.RadiusMax < c.RadiusMin:
		return invalid("radius-max %v is below radius-min %v", c.RadiusMax, c.RadiusMin)
	case c.SpeedMin < 0 || c.SpeedMax < c.SpeedMin:
		return invalid("speed range [%v, %v] is not valid", c.SpeedMin, c.SpeedMax)
	case c.RiseMin < 0 || c.RiseMax < c.RiseMin:
		return invalid("rise range [%v, %v] is not valid", c.RiseMin, c.RiseMax)
	case c.Margin < 0:
		return invalid("margin must not be negative, got %v", c.Margin)
	case c.FlashTicks <= 0:
		return invalid("flash-ticks must be positive, got %d", c.FlashTicks)
	case c.TPS <= 0 || c.TPS > MaxTPS:
		return invalid("tps must be in [1, %d], got %d", MaxTPS, c.TPS)
	case c.Steps < 0:
		return invalid("steps must not be negative, got %d", c.Steps)
	}

	if _, err := common.ParseHexColor(c.CollisionColor); err != nil {
		return fmt.Errorf("collision-color: %v: %w", err, simulation.ErrInvalidConfig)
	}
	if _, err := simulation.ParseCollisionMode(c.Collision); err != nil {
		return err
	}
	switch c.Boundary {
	case simulation.BoundaryFloor, simulation.BoundaryBounce:
	default:
		return invalid("unknown boundary %q", c.Boundary)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendHeadless:
	default:
		return invalid("unknown frontend %q", c.Frontend)
	}
	return nil
}

// SimulationOptions converts the configuration into simulation options.
func (c Config) SimulationOptions() (simulation.Options, error) {
	flashColor, err := common.ParseHexColor(c.CollisionColor)
	if err != nil {
		return simulation.Options{}, fmt.Errorf("collision-color: %v: %w", err, simulation.ErrInvalidConfig)
	}
	mode, err := simulation.ParseCollisionMode(c.Collision)
	if err != nil {
		return simulation.Options{}, err
	}
	policy, err := simulation.NewBoundaryPolicy(c.Boundary, c.Margin, common.Range{Min: c.RiseMin, Max: c.RiseMax})
	if err != nil {
		return simulation.Options{}, err
	}

	return simulation.Options{
		Bounds:   simulation.Bounds{Width: float64(c.Width), Height: float64(c.Height)},
		Count:    c.Count,
		Radius:   common.Range{Min: c.RadiusMin, Max: c.RadiusMax},
		Speed:    common.Range{Min: c.SpeedMin, Max: c.SpeedMax},
		Boundary: policy,
		Mode:     mode,
		Flash:    simulation.FlashEffect{Color: flashColor, Ticks: c.FlashTicks},
	}, nil
}

// TickDuration is the wall-clock time between two ticks.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), simulation.ErrInvalidConfig)
}
