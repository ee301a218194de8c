package game

import (
	"github.com/meghashyamc/spacerocks/geometry"
)

const (
	bulletSpriteSide  = 64.0
	bulletSpriteScale = 0.15
)

// Bullet flies in a straight line and is dropped once it leaves the screen.
type Bullet struct {
	Body
}

func NewBullet(position, velocity, direction geometry.Vector) *Bullet {
	half := bulletSpriteSide * bulletSpriteScale / 2

	return &Bullet{
		Body: Body{
			Position:   position,
			Velocity:   velocity,
			Direction:  direction,
			Radius:     half,
			HalfExtent: half,
		},
	}
}

func (b *Bullet) Move(_ Bounds) {
	b.moveStraight()
}

// OnScreen reports whether the bullet's center is inside the playfield.
func (b *Bullet) OnScreen(bounds Bounds) bool {
	return bounds.Rect().Contains(b.Position)
}

func (b *Bullet) Sprite() Sprite {
	return Sprite{
		Kind:     SpriteBullet,
		Position: b.Position,
		Heading:  b.Heading(),
		Extent:   b.HalfExtent,
	}
}
