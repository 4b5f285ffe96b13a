// Package evade moves a button away from the mouse cursor and keeps it
// inside the window. The button jumps a fixed distance along the line from
// the cursor to its center whenever the cursor gets too close, then gets
// nudged back in if the jump pushed it past a window edge.
package evade

import (
	"math"

	"github.com/avdeev/runaway-button/internal/geom"
)

// Config holds the evasion tunables. Fixed at construction.
type Config struct {
	// RunAwayRadius is the cursor distance below which the button reacts.
	RunAwayRadius float64
	// MoveStep is the length of every evasive jump, regardless of how
	// close the cursor is.
	MoveStep float64
	// BounceNudge is the extra inward displacement applied on top of the
	// minimum needed to clear a window edge, so the button does not sit
	// exactly on the boundary and re-trigger immediately.
	BounceNudge float64
}

// Geometry reports the button's current on-screen box and the window size.
// Both are queried live on every call, never cached, so the box must always
// reflect the latest committed offset.
type Geometry interface {
	ControlBounds() geom.Rect
	ViewportSize() (w, h float64)
}

// Controller owns the cumulative offset of one evasive button. All methods
// run synchronously on the event thread; there are no concurrent writers.
type Controller struct {
	cfg Config
	geo Geometry
	pos geom.Vec2
}

func NewController(cfg Config, geo Geometry) *Controller {
	return &Controller{cfg: cfg, geo: geo}
}

// Position returns the accumulated offset from the button's layout anchor.
func (c *Controller) Position() geom.Vec2 {
	return c.pos
}

// PointerMoved handles one cursor position in window pixel space. If the
// cursor is within RunAwayRadius of the button's center, the button steps
// MoveStep away along the cursor-to-center line and edge correction runs
// against the freshly moved box. Returns whether the button moved.
//
// A cursor exactly on the center has no direction to flee along; the step
// direction is then fixed at angle 0, so the button jumps left.
func (c *Controller) PointerMoved(x, y float64) bool {
	center := c.geo.ControlBounds().Center()
	d := geom.Vec2{X: x, Y: y}.Sub(center)
	dist := d.Len()
	if dist >= c.cfg.RunAwayRadius {
		return false
	}

	angle := 0.0
	if dist > 0 {
		angle = d.Angle()
	}
	// The step vector points toward the cursor; subtracting it moves the
	// button away.
	c.pos.X -= math.Cos(angle) * c.cfg.MoveStep
	c.pos.Y -= math.Sin(angle) * c.cfg.MoveStep

	c.ApplyEdgeCorrection()
	return true
}

// ApplyEdgeCorrection pulls the button back inside the window if any edge of
// its box crossed a window edge, overshooting inward by BounceNudge. The four
// checks are independent and run against one box snapshot; when the window is
// smaller than the button plus margins the combined result is best effort and
// is not re-validated.
func (c *Controller) ApplyEdgeCorrection() {
	box := c.geo.ControlBounds()
	vw, vh := c.geo.ViewportSize()

	if box.Left() < 0 {
		c.pos.X += -box.Left() + c.cfg.BounceNudge
	}
	if box.Right() > vw {
		c.pos.X -= box.Right() - vw + c.cfg.BounceNudge
	}
	if box.Top() < 0 {
		c.pos.Y += -box.Top() + c.cfg.BounceNudge
	}
	if box.Bottom() > vh {
		c.pos.Y -= box.Bottom() - vh + c.cfg.BounceNudge
	}
}
