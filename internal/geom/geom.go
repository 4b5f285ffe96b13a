package geom

import "math"

// Vec2 is a 2D point or offset in pixel space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{X: v.X + u.X, Y: v.Y + u.Y}
}

func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{X: v.X - u.X, Y: v.Y - u.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Dist(u Vec2) float64 {
	return math.Hypot(v.X-u.X, v.Y-u.Y)
}

// Angle returns the direction of v in radians, as given by atan2.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

func (r Rect) Contains(v Vec2) bool {
	return v.X >= r.X && v.X <= r.Right() && v.Y >= r.Y && v.Y <= r.Bottom()
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
