package evade

import (
	"math"
	"testing"

	"github.com/avdeev/runaway-button/internal/geom"
)

// stubGeometry anchors the button at a fixed layout rect and reflects the
// controller's committed offset, the way the game shell does.
type stubGeometry struct {
	anchor geom.Rect
	vw, vh float64
	c      *Controller
}

func (s *stubGeometry) ControlBounds() geom.Rect {
	return s.anchor.Translate(s.c.Position())
}

func (s *stubGeometry) ViewportSize() (float64, float64) {
	return s.vw, s.vh
}

func testConfig() Config {
	return Config{RunAwayRadius: 100, MoveStep: 32, BounceNudge: 24}
}

func newTestController(anchor geom.Rect, vw, vh float64) (*Controller, *stubGeometry) {
	geo := &stubGeometry{anchor: anchor, vw: vw, vh: vh}
	c := NewController(testConfig(), geo)
	geo.c = c
	return c, geo
}

func TestPointerFarAwayIsNoOp(t *testing.T) {
	// Anchor centered on (500, 500).
	anchor := geom.Rect{X: 460, Y: 480, W: 80, H: 40}

	tests := []struct {
		name string
		x, y float64
	}{
		{"Far right", 700, 500},
		{"Far corner", 0, 0},
		{"Exactly on radius horizontally", 600, 500},
		{"Exactly on radius vertically", 500, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController(anchor, 800, 600)
			if c.PointerMoved(tt.x, tt.y) {
				t.Errorf("PointerMoved(%v, %v) reported a move", tt.x, tt.y)
			}
			if got := c.Position(); got != (geom.Vec2{}) {
				t.Errorf("Expected position unchanged, got %+v", got)
			}
		})
	}
}

func TestStepIncreasesSeparationByMoveStep(t *testing.T) {
	anchor := geom.Rect{X: 460, Y: 480, W: 80, H: 40}

	tests := []struct {
		name string
		x, y float64
	}{
		{"Close diagonal", 520, 510},
		{"Close left", 440, 500},
		{"Close above", 500, 420},
		{"Very close", 501, 499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Viewport large enough that edge correction never fires.
			c, geo := newTestController(anchor, 5000, 5000)
			pointer := geom.Vec2{X: tt.x, Y: tt.y}
			before := pointer.Dist(geo.ControlBounds().Center())

			if !c.PointerMoved(tt.x, tt.y) {
				t.Fatalf("PointerMoved(%v, %v) did not move", tt.x, tt.y)
			}

			after := pointer.Dist(geo.ControlBounds().Center())
			if math.Abs(after-(before+32)) > 1e-9 {
				t.Errorf("Expected separation %v, got %v", before+32, after)
			}
		})
	}
}

func TestDiagonalStepOffsets(t *testing.T) {
	// Button centered on (500, 500), pointer at (520, 510): distance
	// sqrt(500) ~ 22.4, so the button steps 32px along ~26.57 degrees.
	anchor := geom.Rect{X: 460, Y: 480, W: 80, H: 40}
	c, _ := newTestController(anchor, 5000, 5000)

	c.PointerMoved(520, 510)

	got := c.Position()
	if math.Abs(got.X-(-28.6)) > 0.05 || math.Abs(got.Y-(-14.3)) > 0.05 {
		t.Errorf("Expected offset close to (-28.6, -14.3), got (%v, %v)", got.X, got.Y)
	}
}

func TestPointerOnCenterUsesFallbackDirection(t *testing.T) {
	anchor := geom.Rect{X: 460, Y: 480, W: 80, H: 40}
	c, _ := newTestController(anchor, 5000, 5000)

	if !c.PointerMoved(500, 500) {
		t.Fatal("Expected a move for a pointer on the center")
	}

	// Zero distance has no flee direction; the step is pinned to angle 0.
	want := geom.Vec2{X: -32, Y: 0}
	if got := c.Position(); got != want {
		t.Errorf("Expected fallback step %+v, got %+v", want, got)
	}
}

func TestEdgeCorrectionPullsBoxInside(t *testing.T) {
	tests := []struct {
		name   string
		anchor geom.Rect
		want   geom.Vec2
	}{
		{"Past left edge", geom.Rect{X: -50, Y: 100, W: 80, H: 40}, geom.Vec2{X: 74}},
		{"Past right edge", geom.Rect{X: 770, Y: 100, W: 80, H: 40}, geom.Vec2{X: -74}},
		{"Past top edge", geom.Rect{X: 100, Y: -10, W: 80, H: 40}, geom.Vec2{Y: 34}},
		{"Past bottom edge", geom.Rect{X: 100, Y: 590, W: 80, H: 40}, geom.Vec2{Y: -54}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, geo := newTestController(tt.anchor, 800, 600)
			c.ApplyEdgeCorrection()

			if got := c.Position(); got != tt.want {
				t.Errorf("Expected offset %+v, got %+v", tt.want, got)
			}
			box := geo.ControlBounds()
			if box.Left() < 0 || box.Top() < 0 || box.Right() > 800 || box.Bottom() > 600 {
				t.Errorf("Box still outside viewport: %+v", box)
			}
		})
	}
}

func TestEdgeCorrectionNudgesInByMargin(t *testing.T) {
	// Box pushed to left = -50 in an 800x600 window ends up with its left
	// edge 24px inside the boundary, not flush against it.
	c, geo := newTestController(geom.Rect{X: -50, Y: 100, W: 80, H: 40}, 800, 600)
	c.ApplyEdgeCorrection()

	if got := geo.ControlBounds().Left(); got != 24 {
		t.Errorf("Expected left edge at 24, got %v", got)
	}
}

func TestEdgeCorrectionIdempotentWhenInside(t *testing.T) {
	c, _ := newTestController(geom.Rect{X: -50, Y: 590, W: 80, H: 40}, 800, 600)

	c.ApplyEdgeCorrection()
	once := c.Position()
	c.ApplyEdgeCorrection()

	if got := c.Position(); got != once {
		t.Errorf("Second correction changed offset: %+v vs %+v", got, once)
	}
}

func TestEdgeCorrectionTinyViewportIsBestEffort(t *testing.T) {
	// Button wider than the window: opposite corrections combine additively
	// in one pass and the result is not re-validated.
	c, _ := newTestController(geom.Rect{X: -10, Y: 100, W: 80, H: 40}, 60, 600)
	c.ApplyEdgeCorrection()

	// Left overflow adds 10+24, right overflow subtracts 10+24; they cancel.
	if got := c.Position(); got != (geom.Vec2{}) {
		t.Errorf("Expected cancelled corrections, got %+v", got)
	}
}
