package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/meghashyamc/spacerocks/geometry"
	"github.com/meghashyamc/spacerocks/logger"
)

// ErrQuit is returned by Tick once the player has asked to quit.
var ErrQuit = errors.New("quit requested")

type GameState int

const (
	GameStateMenu GameState = iota
	GameStatePlaying
	GameStateNameInput
	GameStateQuit
)

func (s GameState) String() string {
	switch s {
	case GameStateMenu:
		return "menu"
	case GameStatePlaying:
		return "playing"
	case GameStateNameInput:
		return "name_input"
	case GameStateQuit:
		return "quit"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

const (
	menuTitle       = "Click or press Enter to begin..."
	nameInputPrompt = "Enter your name:"

	defaultScoreDisplayCount = 5
)

// Name entry boxes, matching the window layout of the desktop frontend.
var (
	lossNameArea = geometry.Rect{X: 200, Y: 200, Width: 170, Height: 32}
	winNameArea  = geometry.Rect{X: 200, Y: 200, Width: 140, Height: 32}
)

type Options struct {
	Bounds Bounds
	Store  ScoreStore
	Prompt TextPrompt
	Audio  Audio // optional
	Logger logger.Logger
	Rand   *rand.Rand       // optional, seeded from the clock if nil
	Now    func() time.Time // optional, defaults to time.Now
	// ScoreDisplayCount is how many high scores the menu shows.
	ScoreDisplayCount int
}

type Game struct {
	session      *Session
	state        GameState
	outcome      Outcome
	highScores   *HighScores
	prompt       TextPrompt
	audio        Audio
	logger       logger.Logger
	now          func() time.Time
	displayCount int
}

func NewGame(opts Options) (*Game, error) {
	if opts.Store == nil {
		return nil, errors.New("game needs a score store")
	}
	if opts.Prompt == nil {
		return nil, errors.New("game needs a text prompt")
	}
	if opts.Logger == nil {
		return nil, errors.New("game needs a logger")
	}
	if err := validateBounds(opts.Bounds); err != nil {
		return nil, err
	}

	highScores, err := NewHighScores(opts.Store, opts.Logger)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	audio := opts.Audio
	if audio == nil {
		audio = nopAudio{}
	}
	displayCount := opts.ScoreDisplayCount
	if displayCount <= 0 {
		displayCount = defaultScoreDisplayCount
	}

	g := &Game{
		session:      NewSession(opts.Bounds, rng),
		state:        GameStateMenu,
		highScores:   highScores,
		prompt:       opts.Prompt,
		audio:        audio,
		logger:       opts.Logger,
		now:          now,
		displayCount: displayCount,
	}

	g.logger.Info("game initialized", "width", opts.Bounds.Width, "height", opts.Bounds.Height)
	return g, nil
}

// validateBounds rejects playfields too small to sample spawn positions from.
// Any playfield that contains the origin has a spawn position clear of the ship.
func validateBounds(b Bounds) error {
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("invalid playfield %vx%v", b.Width, b.Height)
	}
	return nil
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) HighScores() []HighScoreRecord {
	return g.highScores.Records()
}

// Tick advances the game by one fixed step. It returns ErrQuit once the player quits
// and any other error only for failures that must stop the game.
func (g *Game) Tick(in Input) error {
	if g.state == GameStateQuit {
		return ErrQuit
	}

	events := in.Events()
	for _, e := range events {
		if e == EventQuit {
			g.setState(GameStateQuit)
			return ErrQuit
		}
	}

	switch g.state {
	case GameStateMenu:
		g.updateMenu(events)
	case GameStatePlaying:
		g.updatePlaying(events, in)
	case GameStateNameInput:
		return g.updateNameInput()
	}
	return nil
}

func (g *Game) updateMenu(events []Event) {
	for _, e := range events {
		if e == EventConfirm {
			g.session.ClearDisplay()
			g.setState(GameStatePlaying)
			return
		}
	}
}

func (g *Game) updatePlaying(events []Event, in Input) {
	s := g.session

	for _, e := range events {
		if e == EventFire && s.Fire() {
			g.audio.PlayCue(CueLaser)
		}
	}

	if s.Ship != nil {
		if in.Held(ControlTurnLeft) {
			s.Ship.Turn(false)
		}
		if in.Held(ControlTurnRight) {
			s.Ship.Turn(true)
		}
		if in.Held(ControlThrustForward) {
			s.Ship.Accelerate()
		}
		if in.Held(ControlThrustReverse) {
			s.Ship.Decelerate()
		}
	}

	s.Advance()

	scoreBefore := s.Score
	outcome := s.Resolve()
	if s.Score != scoreBefore {
		g.logger.Debug("asteroids destroyed", "score", s.Score, "asteroids", len(s.Asteroids))
	}

	if outcome != OutcomeNone {
		g.endRound(outcome)
	}
}

// endRound freezes the world and waits for the player's name.
func (g *Game) endRound(outcome Outcome) {
	g.logger.Info("round ended", "outcome", outcome.String(), "score", g.session.Score)
	g.outcome = outcome

	area := lossNameArea
	if outcome == OutcomeWin {
		area = winNameArea
	}
	g.prompt.Begin(area)
	g.setState(GameStateNameInput)
}

func (g *Game) updateNameInput() error {
	name, done := g.prompt.Poll()
	if !done {
		return nil
	}
	return g.finishRound(name)
}

// finishRound records the score for either outcome, shows the refreshed table and
// resets to the menu.
func (g *Game) finishRound(name string) error {
	s := g.session
	s.PendingName = CleanName(name)
	s.PendingTimestamp = g.now().Format(TimestampLayout)

	record := HighScoreRecord{Name: s.PendingName, Score: s.Score, Timestamp: s.PendingTimestamp}
	if err := g.highScores.Record(record); err != nil {
		return err
	}

	scores, err := g.highScores.Reload()
	if err != nil {
		return err
	}

	s.Scores = scores
	s.Message = g.outcome.Message()
	g.logger.Debug("resetting game", "outcome", g.outcome.String())
	s.Reset()
	g.outcome = OutcomeNone
	g.setState(GameStateMenu)
	return nil
}

func (g *Game) setState(state GameState) {
	if g.state == state {
		return
	}
	g.logger.Debug("game state changed", "from", g.state.String(), "to", state.String())
	g.state = state
}

// Render describes the current frame to r.
func (g *Game) Render(r Renderer) {
	s := g.session

	switch g.state {
	case GameStateMenu:
		r.DrawFrame(BackgroundSpace, nil)
		r.DrawText(menuTitle, SlotTitle)
		if s.Message != "" {
			r.DrawText(s.Message, SlotMessage)
		}
		if len(s.Scores) > 0 {
			r.DrawScoreList(Top(s.Scores, g.displayCount))
		}

	case GameStatePlaying, GameStateNameInput:
		entities := s.Entities()
		sprites := make([]Sprite, 0, len(entities))
		for _, e := range entities {
			sprites = append(sprites, e.Sprite())
		}
		r.DrawFrame(BackgroundSpace, sprites)
		r.DrawText(fmt.Sprintf("Score: %d", s.Score), SlotHUD)
		if g.state == GameStateNameInput {
			r.DrawText(nameInputPrompt, SlotPrompt)
		}
	}
}
