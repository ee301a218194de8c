package game

import (
	"github.com/meghashyamc/spacerocks/geometry"
)

// Bounds is the size of the playfield.
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) Rect() geometry.Rect {
	return geometry.Rect{Width: b.Width, Height: b.Height}
}

// Entity is what every moving object in the world can do.
type Entity interface {
	Move(bounds Bounds)
	Sprite() Sprite
	Center() geometry.Vector
	CollisionRadius() float64
}

// Collides is a circle-circle test and is symmetric in its arguments.
func Collides(a, b Entity) bool {
	return geometry.CirclesOverlap(a.Center(), a.CollisionRadius(), b.Center(), b.CollisionRadius())
}

// Body is the state shared by ships, asteroids and bullets.
type Body struct {
	Position  geometry.Vector
	Velocity  geometry.Vector
	Direction geometry.Vector // unit heading, never renormalized
	Radius    float64
	// HalfExtent is half the sprite's side; wrapped objects travel this far past
	// an edge before reappearing.
	HalfExtent float64
}

func (b *Body) Center() geometry.Vector {
	return b.Position
}

func (b *Body) CollisionRadius() float64 {
	return b.Radius
}

// Rotate turns the heading by a signed angle in degrees.
func (b *Body) Rotate(degrees float64) {
	b.Direction.RotateInPlace(degrees)
}

// Heading is the sprite rotation in degrees clockwise from Up.
func (b *Body) Heading() float64 {
	return geometry.Up.AngleTo(b.Direction)
}

func (b *Body) moveWrapped(bounds Bounds) {
	b.Position = Wrap(b.Position.Add(b.Velocity), b.HalfExtent, bounds)
}

func (b *Body) moveStraight() {
	b.Position = b.Position.Add(b.Velocity)
}

// Wrap moves a position that has drifted more than halfExtent past one edge to just
// beyond the opposite edge. Each axis is handled on its own.
func Wrap(p geometry.Vector, halfExtent float64, bounds Bounds) geometry.Vector {
	p.X = wrapAxis(p.X, halfExtent, bounds.Width)
	p.Y = wrapAxis(p.Y, halfExtent, bounds.Height)
	return p
}

func wrapAxis(v, halfExtent, extent float64) float64 {
	if v < -halfExtent {
		v = extent + halfExtent
	}
	if v > extent+halfExtent {
		v = -halfExtent
	}
	return v
}
