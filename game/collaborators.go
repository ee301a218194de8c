package game

import "github.com/meghashyamc/spacerocks/geometry"

// Event is a discrete, edge-triggered input.
type Event int

const (
	EventQuit Event = iota
	EventConfirm
	EventFire
)

// Control is a continuously held input.
type Control int

const (
	ControlTurnLeft Control = iota
	ControlTurnRight
	ControlThrustForward
	ControlThrustReverse
)

// Input is polled once per tick. Events drains everything that happened since the
// previous tick.
type Input interface {
	Events() []Event
	Held(c Control) bool
}

// TextPrompt collects the player's name without blocking the tick loop.
// Poll is called once per tick after Begin and reports done when the player confirms.
type TextPrompt interface {
	Begin(area geometry.Rect)
	Poll() (text string, done bool)
}

// Cue names a sound effect.
type Cue string

const CueLaser Cue = "laser"

// Audio plays cues fire-and-forget.
type Audio interface {
	PlayCue(cue Cue)
}

type Background int

const BackgroundSpace Background = iota

type SpriteKind int

const (
	SpriteShip SpriteKind = iota
	SpriteAsteroid
	SpriteBullet
)

// Sprite describes one entity to draw. Heading is in degrees clockwise from Up and
// Extent is half of the sprite's side length.
type Sprite struct {
	Kind     SpriteKind
	Size     AsteroidSize
	Variant  int
	Position geometry.Vector
	Heading  float64
	Extent   float64
}

// TextSlot says where on screen a line of text belongs.
type TextSlot int

const (
	SlotTitle TextSlot = iota
	SlotMessage
	SlotHUD
	SlotPrompt
)

// Renderer owns all pixels and fonts; the game only supplies content.
type Renderer interface {
	DrawFrame(bg Background, sprites []Sprite)
	DrawText(text string, slot TextSlot)
	DrawScoreList(entries []HighScoreRecord)
}

// ScoreStore persists the full high score list.
type ScoreStore interface {
	Load() ([]HighScoreRecord, error)
	Save(records []HighScoreRecord) error
}

type nopAudio struct{}

func (nopAudio) PlayCue(Cue) {}
