package geom

import "math"

// Vec is a 2D point or vector in world units.
type Vec struct {
	X float64
	Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Div divides both components by s. Dividing by zero yields the zero vector.
func (v Vec) Div(s float64) Vec {
	if s == 0 {
		return Vec{}
	}
	return Vec{X: v.X / s, Y: v.Y / s}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared magnitude. Prefer it for comparisons.
func (v Vec) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns a unit vector pointing along v, or the zero vector when v
// has no length.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Distance returns the euclidean distance between v and o.
func (v Vec) Distance(o Vec) float64 { return v.Sub(o).Len() }

// DistanceSq returns the squared distance between v and o.
func (v Vec) DistanceSq(o Vec) float64 { return v.Sub(o).LenSq() }

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Lerp interpolates linearly between a and b: a + (b-a)*t.
func Lerp(a, b Vec, t float64) Vec {
	return a.Add(b.Sub(a).Scale(t))
}

// FromAngle builds a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec {
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}
