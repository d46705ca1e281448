package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"circle-collision-sim/internal/simulation"

	"github.com/gdamore/tcell/v2"
)

// Options controls the terminal front-end.
type Options struct {
	TickDuration time.Duration
	ClickRemove  bool
}

// App renders a Simulation in a terminal and handles mouse and key input.
type App struct {
	screen tcell.Screen
	sim    *simulation.Simulation
	opts   Options
	proj   Projector

	pressed     tcell.ButtonMask // buttons held at the previous mouse event
	lastRemoved string
}

// NewApp wraps an initialized screen. The last row is used as a status bar.
func NewApp(screen tcell.Screen, sim *simulation.Simulation, opts Options) *App {
	a := &App{screen: screen, sim: sim, opts: opts}
	a.resize()
	return a
}

// OpenScreen creates and initializes the terminal screen with mouse support.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	a.proj = NewProjector(a.sim.Bounds(), cols, rows-1)
}

// Run drives the simulation until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.opts.TickDuration)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			quit, err := a.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			a.sim.Step()
			a.draw()
		}
	}
}

// handleEvent applies one input event. Removal happens here, never during Step.
func (a *App) handleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return true, nil
			case 'r', 'R':
				if err := a.sim.Reset(); err != nil {
					return false, fmt.Errorf("reset failed: %w", err)
				}
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		justPressed := buttons&tcell.Button1 != 0 && a.pressed&tcell.Button1 == 0
		a.pressed = buttons
		if justPressed && a.opts.ClickRemove {
			x, y := ev.Position()
			a.removeAtCell(x, y)
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return false, nil
}

func (a *App) removeAtCell(x, y int) {
	cols, rows := a.proj.Size()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	c, ok := a.sim.RemoveAt(a.proj.Unproject(x, y))
	if !ok {
		return
	}
	a.lastRemoved = c.Label()
	log.Printf("Removed %s, %d circles left", c, a.sim.Len())
}

func (a *App) draw() {
	a.sim.Draw(newCellCanvas(a.screen, a.proj))

	cols, rows := a.proj.Size()
	drawText(a.screen, rows, fmt.Sprintf("%-*s", cols, a.status()), tcell.StyleDefault.Reverse(true))
	a.screen.Show()
}

func (a *App) status() string {
	st := a.sim.Stats()
	status := fmt.Sprintf(" tick %d | circles %d | flashing %d | collisions %d | q quit, r reset",
		st.Tick, st.Count, st.Flashing, st.Collisions)
	if a.lastRemoved != "" {
		status += " | removed " + a.lastRemoved
	}
	return status
}
