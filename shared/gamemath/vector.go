package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the donburi vector type; the helpers below keep callers off its method set.
type Vec2 = dmath.Vec2

func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func Length(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// ClampLength shortens v to max if it is longer.
func ClampLength(v Vec2, max float64) Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}

// MoveToward moves current toward target by at most maxDelta along the line between them.
func MoveToward(current, target Vec2, maxDelta float64) Vec2 {
	d := Sub(target, current)
	l := Length(d)
	if l <= maxDelta || l == 0 {
		return target
	}
	return Add(current, Scale(d, maxDelta/l))
}
