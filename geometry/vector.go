package geometry

import (
	"math"
)

// Up is the screen-space heading of a freshly spawned entity (y grows downward).
var Up = Vector{X: 0, Y: -1}

type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the Euclidean distance between two points
func (v Vector) DistanceTo(other Vector) float64 {
	return v.Sub(other).Magnitude()
}

// Rotate returns v rotated by the given angle in degrees.
// With y pointing down, a positive angle turns clockwise on screen.
func (v Vector) Rotate(degrees float64) Vector {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateInPlace rotates v by the given angle in degrees. The length is preserved.
func (v *Vector) RotateInPlace(degrees float64) {
	*v = v.Rotate(degrees)
}

// AngleTo returns the signed angle in degrees that rotates v onto other,
// normalized to (-180, 180]. Zero-length vectors yield 0.
func (v Vector) AngleTo(other Vector) float64 {
	if (v.X == 0 && v.Y == 0) || (other.X == 0 && other.Y == 0) {
		return 0
	}

	deg := (math.Atan2(other.Y, other.X) - math.Atan2(v.Y, v.X)) * 180 / math.Pi
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}

	return deg
}
