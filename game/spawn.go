package game

import (
	"math/rand"

	"github.com/meghashyamc/spacerocks/geometry"
)

const (
	initialAsteroids    = 3
	minAsteroidDistance = 250.0
)

// SpawnAsteroids places count large asteroids at random whole-pixel positions, each
// strictly farther than minAsteroidDistance from avoid. Positions are resampled until
// they qualify; asteroids may overlap each other.
func SpawnAsteroids(rng *rand.Rand, bounds Bounds, avoid geometry.Vector, count int) []*Asteroid {
	asteroids := make([]*Asteroid, 0, count)

	for i := 0; i < count; i++ {
		var position geometry.Vector
		for {
			position = randomPosition(rng, bounds)
			if position.DistanceTo(avoid) > minAsteroidDistance {
				break
			}
		}
		asteroids = append(asteroids, NewAsteroid(position, AsteroidLarge, rng))
	}

	return asteroids
}

func randomPosition(rng *rand.Rand, bounds Bounds) geometry.Vector {
	return geometry.Vector{
		X: float64(rng.Intn(int(bounds.Width))),
		Y: float64(rng.Intn(int(bounds.Height))),
	}
}
