package simulation

import "image/color"

// Defaults for the collision flash.
const DefaultFlashTicks = 5

var DefaultFlashColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// FlashEffect highlights circles after a collision and reverts them once the
// countdown runs out.
type FlashEffect struct {
	Color color.RGBA
	Ticks int
}

// Trigger starts (or restarts) a flash on c.
func (f FlashEffect) Trigger(c *Circle) {
	c.currentColor = f.Color
	c.flashing = true
	c.flashTicks = f.Ticks
}

// Decay counts down an active flash by one tick and restores the original
// color when it reaches zero.
func (f FlashEffect) Decay(c *Circle) {
	if !c.flashing {
		return
	}
	c.flashTicks--
	if c.flashTicks <= 0 {
		c.flashTicks = 0
		c.flashing = false
		c.currentColor = c.originalColor
	}
}
