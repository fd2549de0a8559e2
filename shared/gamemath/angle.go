package gamemath

import "math"

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DeltaDegrees returns the signed shortest rotation from a to b, in (-180, 180].
func DeltaDegrees(a, b float64) float64 {
	d := WrapDegrees(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

// RotateToward turns current toward target by at most maxDelta degrees, taking the short way round.
func RotateToward(current, target, maxDelta float64) float64 {
	d := DeltaDegrees(current, target)
	if math.Abs(d) <= maxDelta {
		return WrapDegrees(target)
	}
	if d > 0 {
		return WrapDegrees(current + maxDelta)
	}
	return WrapDegrees(current - maxDelta)
}

// Direction returns the unit vector for a yaw in degrees, 0 pointing along +X.
func Direction(yaw float64) Vec2 {
	r := DegToRad(yaw)
	return Vec2{X: math.Cos(r), Y: math.Sin(r)}
}

// RightOf returns the unit vector 90 degrees clockwise of yaw in screen space (Y down).
func RightOf(yaw float64) Vec2 {
	return Direction(yaw + 90)
}

// Heading returns the yaw in degrees of v.
func Heading(v Vec2) float64 {
	return WrapDegrees(RadToDeg(math.Atan2(v.Y, v.X)))
}
