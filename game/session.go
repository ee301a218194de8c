package game

import (
	"math/rand"
)

const pointsPerAsteroid = 100

// Outcome is how a round ended, if it has.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLoss
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoss:
		return "loss"
	case OutcomeWin:
		return "win"
	default:
		return "none"
	}
}

// Message is the text shown after a round ends with this outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeLoss:
		return "You lost!"
	case OutcomeWin:
		return "You win!"
	default:
		return ""
	}
}

// Session is all mutable state of one round plus what the menu shows between rounds.
type Session struct {
	Score     int
	Ship      *Ship // nil once the ship has been destroyed
	Asteroids []*Asteroid
	Bullets   []*Bullet
	HasWon    bool

	Message          string
	PendingName      string
	PendingTimestamp string
	// Scores is the high score list as last reloaded from the store.
	Scores []HighScoreRecord

	bounds Bounds
	rng    *rand.Rand
}

func NewSession(bounds Bounds, rng *rand.Rand) *Session {
	s := &Session{
		bounds: bounds,
		rng:    rng,
	}
	s.Reset()
	return s
}

// Reset starts a fresh round: new ship at the spawn point, no bullets, a new set of
// asteroids and a zero score. Message and Scores are kept for the menu.
func (s *Session) Reset() {
	s.Score = 0
	s.Ship = NewShip(ShipSpawn)
	s.Bullets = nil
	s.Asteroids = SpawnAsteroids(s.rng, s.bounds, s.Ship.Position, initialAsteroids)
	s.HasWon = false
	s.PendingName = ""
	s.PendingTimestamp = ""
}

// ClearDisplay drops the previous round's message and score list.
func (s *Session) ClearDisplay() {
	s.Message = ""
	s.Scores = nil
}

func (s *Session) Bounds() Bounds {
	return s.bounds
}

// Fire asks the ship for a bullet and adds it to the live list. It reports false when
// there is no ship.
func (s *Session) Fire() bool {
	if s.Ship == nil {
		return false
	}
	s.Bullets = append(s.Bullets, s.Ship.Shoot())
	return true
}

// Entities lists everything in the world in draw order: asteroids, bullets, ship.
func (s *Session) Entities() []Entity {
	entities := make([]Entity, 0, len(s.Asteroids)+len(s.Bullets)+1)
	for _, a := range s.Asteroids {
		entities = append(entities, a)
	}
	for _, b := range s.Bullets {
		entities = append(entities, b)
	}
	if s.Ship != nil {
		entities = append(entities, s.Ship)
	}
	return entities
}

// Advance moves every entity by one tick.
func (s *Session) Advance() {
	for _, e := range s.Entities() {
		e.Move(s.bounds)
	}
}

// Resolve runs the collision pass for one tick and reports whether the round ended.
func (s *Session) Resolve() Outcome {
	if s.resolveShipCollision() {
		return OutcomeLoss
	}

	s.resolveBulletHits()
	s.removeOffscreenBullets()

	if len(s.Asteroids) == 0 && s.Ship != nil && !s.HasWon {
		s.HasWon = true
		return OutcomeWin
	}

	return OutcomeNone
}

// resolveShipCollision destroys the ship if it touches any asteroid. Only the first
// asteroid in list order matters.
func (s *Session) resolveShipCollision() bool {
	if s.Ship == nil {
		return false
	}

	for _, a := range s.Asteroids {
		if Collides(a, s.Ship) {
			s.Ship = nil
			return true
		}
	}
	return false
}

// resolveBulletHits lets each bullet destroy at most one asteroid. Fragments join the
// asteroid list after the pass, so they cannot be hit in the tick that made them.
func (s *Session) resolveBulletHits() {
	destroyedAsteroids := make(map[*Asteroid]struct{})
	spentBullets := make(map[*Bullet]struct{})
	var fragments []*Asteroid

	for _, b := range s.Bullets {
		for _, a := range s.Asteroids {
			if _, gone := destroyedAsteroids[a]; gone {
				continue
			}
			if !Collides(a, b) {
				continue
			}

			s.Score += pointsPerAsteroid
			destroyedAsteroids[a] = struct{}{}
			spentBullets[b] = struct{}{}
			fragments = append(fragments, a.Split(s.rng)...)
			break
		}
	}

	if len(destroyedAsteroids) == 0 {
		return
	}

	keptAsteroids := make([]*Asteroid, 0, len(s.Asteroids)-len(destroyedAsteroids)+len(fragments))
	for _, a := range s.Asteroids {
		if _, gone := destroyedAsteroids[a]; !gone {
			keptAsteroids = append(keptAsteroids, a)
		}
	}
	s.Asteroids = append(keptAsteroids, fragments...)

	keptBullets := make([]*Bullet, 0, len(s.Bullets)-len(spentBullets))
	for _, b := range s.Bullets {
		if _, spent := spentBullets[b]; !spent {
			keptBullets = append(keptBullets, b)
		}
	}
	s.Bullets = keptBullets
}

func (s *Session) removeOffscreenBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.OnScreen(s.bounds) {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}
