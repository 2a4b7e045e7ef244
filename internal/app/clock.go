package app

import "time"

// VirtualClock accumulates time that can be paused independently of real time.
type VirtualClock struct {
	paused  bool
	delta   time.Duration
	elapsed time.Duration
}

// NewVirtualClock returns a running clock at zero.
func NewVirtualClock() VirtualClock {
	return VirtualClock{}
}

// Advance feeds real time into the clock. A paused clock reports a zero delta.
func (c *VirtualClock) Advance(real time.Duration) {
	if c.paused || real < 0 {
		c.delta = 0
		return
	}
	c.delta = real
	c.elapsed += real
}

func (c *VirtualClock) Pause()         { c.paused = true }
func (c *VirtualClock) Resume()        { c.paused = false }
func (c *VirtualClock) IsPaused() bool { return c.paused }

// Delta returns the time accepted by the last Advance.
func (c *VirtualClock) Delta() time.Duration { return c.delta }

// Elapsed returns the total unpaused time.
func (c *VirtualClock) Elapsed() time.Duration { return c.elapsed }

// PhysicsTime drives movement, collisions and gameplay cooldowns.
type PhysicsTime struct {
	VirtualClock
}

// EffectsTime drives visual effects such as flashes and particles.
type EffectsTime struct {
	VirtualClock
}
