package game

import (
	"github.com/meghashyamc/spacerocks/geometry"
)

const (
	shipManeuverability = 6.0  // degrees per tick
	shipAcceleration    = 0.25 // per tick, no speed cap
	shipBulletSpeed     = 6.0

	shipSpriteSide  = 200.0
	shipSpriteScale = 0.25
)

// ShipSpawn is where every ship starts, regardless of playfield size.
var ShipSpawn = geometry.Vector{X: 400, Y: 300}

type Ship struct {
	Body
}

func NewShip(position geometry.Vector) *Ship {
	half := shipSpriteSide * shipSpriteScale / 2

	return &Ship{
		Body: Body{
			Position:   position,
			Direction:  geometry.Up,
			Radius:     half,
			HalfExtent: half,
		},
	}
}

// Turn rotates by a fixed step. Clockwise is as seen on screen.
func (s *Ship) Turn(clockwise bool) {
	sign := 1.0
	if !clockwise {
		sign = -1.0
	}
	s.Rotate(shipManeuverability * sign)
}

func (s *Ship) Accelerate() {
	s.Velocity = s.Velocity.Add(s.Direction.Scale(shipAcceleration))
}

func (s *Ship) Decelerate() {
	s.Velocity = s.Velocity.Sub(s.Direction.Scale(shipAcceleration))
}

// Shoot returns a new bullet leaving the ship's center. The bullet carries the
// ship's momentum. The caller owns it from here on.
func (s *Ship) Shoot() *Bullet {
	velocity := s.Direction.Scale(shipBulletSpeed).Add(s.Velocity)
	return NewBullet(s.Position, velocity, s.Direction)
}

func (s *Ship) Move(bounds Bounds) {
	s.moveWrapped(bounds)
}

func (s *Ship) Sprite() Sprite {
	return Sprite{
		Kind:     SpriteShip,
		Position: s.Position,
		Heading:  s.Heading(),
		Extent:   s.HalfExtent,
	}
}
