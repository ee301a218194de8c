package game

import (
	"math/rand"

	"github.com/meghashyamc/spacerocks/geometry"
)

// AsteroidSize is the tier of an asteroid; only large ones are spawned directly.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// AsteroidVariants is the number of distinct asteroid looks the renderer offers.
const AsteroidVariants = 8

const (
	asteroidSpriteSide  = 256.0
	asteroidGlobalScale = 0.25
	asteroidMinSpeed    = 1
	asteroidMaxSpeed    = 3
)

var asteroidScales = map[AsteroidSize]float64{
	AsteroidLarge:  1.0,
	AsteroidMedium: 0.5,
	AsteroidSmall:  0.25,
}

type Asteroid struct {
	Body
	Size    AsteroidSize
	Variant int
}

// NewAsteroid places an asteroid with a random speed of 1 to 3 and a random
// whole-degree heading.
func NewAsteroid(position geometry.Vector, size AsteroidSize, rng *rand.Rand) *Asteroid {
	half := asteroidSpriteSide * asteroidScales[size] * asteroidGlobalScale / 2

	return &Asteroid{
		Body: Body{
			Position:   position,
			Velocity:   randomVelocity(rng, asteroidMinSpeed, asteroidMaxSpeed),
			Direction:  geometry.Up,
			Radius:     half,
			HalfExtent: half,
		},
		Size:    size,
		Variant: rng.Intn(AsteroidVariants),
	}
}

// Split returns the two fragments of a destroyed asteroid, or nil for the smallest
// tier. The parent is not touched; removing it is up to the caller.
func (a *Asteroid) Split(rng *rand.Rand) []*Asteroid {
	if a.Size <= AsteroidSmall {
		return nil
	}

	children := make([]*Asteroid, 0, 2)
	for i := 0; i < 2; i++ {
		children = append(children, NewAsteroid(a.Position, a.Size-1, rng))
	}
	return children
}

func (a *Asteroid) Move(bounds Bounds) {
	a.moveWrapped(bounds)
}

func (a *Asteroid) Sprite() Sprite {
	return Sprite{
		Kind:     SpriteAsteroid,
		Size:     a.Size,
		Variant:  a.Variant,
		Position: a.Position,
		Heading:  a.Heading(),
		Extent:   a.HalfExtent,
	}
}

func randomVelocity(rng *rand.Rand, minSpeed, maxSpeed int) geometry.Vector {
	speed := minSpeed + rng.Intn(maxSpeed-minSpeed+1)
	angle := rng.Intn(360)
	return geometry.Vector{X: float64(speed)}.Rotate(float64(angle))
}
