package game

import (
	"errors"
	"testing"
	"time"

	"github.com/meghashyamc/spacerocks/geometry"
)

type testHarness struct {
	game   *Game
	store  *memoryStore
	prompt *scriptedPrompt
	audio  *countingAudio
}

func newTestGame(t *testing.T, store *memoryStore) *testHarness {
	t.Helper()
	if store == nil {
		store = &memoryStore{}
	}
	h := &testHarness{
		store:  store,
		prompt: &scriptedPrompt{name: "ada"},
		audio:  &countingAudio{},
	}

	g, err := NewGame(Options{
		Bounds: testBounds,
		Store:  h.store,
		Prompt: h.prompt,
		Audio:  h.audio,
		Logger: testLogger(),
		Rand:   testRand(),
		Now:    func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	h.game = g
	return h
}

func (h *testHarness) tick(t *testing.T, in Input) {
	t.Helper()
	if err := h.game.Tick(in); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

func (h *testHarness) start(t *testing.T) {
	t.Helper()
	h.tick(t, press(EventConfirm))
	if h.game.State() != GameStatePlaying {
		t.Fatalf("state after confirm = %v, want playing", h.game.State())
	}
}

func TestNewGameRequiresCollaborators(t *testing.T) {
	base := Options{Bounds: testBounds, Store: &memoryStore{}, Prompt: &scriptedPrompt{}, Logger: testLogger()}

	tests := map[string]func(o *Options){
		"store":  func(o *Options) { o.Store = nil },
		"prompt": func(o *Options) { o.Prompt = nil },
		"logger": func(o *Options) { o.Logger = nil },
		"bounds": func(o *Options) { o.Bounds = Bounds{} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			opts := base
			mutate(&opts)
			if _, err := NewGame(opts); err == nil {
				t.Fatalf("expected an error without %s", name)
			}
		})
	}
}

func TestNewGameFailsOnUnreadableScores(t *testing.T) {
	corrupt := errors.New("unexpected end of JSON input")
	_, err := NewGame(Options{
		Bounds: testBounds,
		Store:  &memoryStore{loadErr: corrupt},
		Prompt: &scriptedPrompt{},
		Logger: testLogger(),
	})
	if !errors.Is(err, corrupt) {
		t.Fatalf("NewGame error = %v, want wrapped %v", err, corrupt)
	}
}

func TestMenuWaitsForConfirm(t *testing.T) {
	h := newTestGame(t, nil)

	h.tick(t, press(EventFire))
	h.tick(t, &fakeInput{held: map[Control]bool{ControlThrustForward: true}})

	if h.game.State() != GameStateMenu {
		t.Fatalf("state = %v, want menu", h.game.State())
	}
	if h.game.Session().Ship.Velocity != (geometry.Vector{}) {
		t.Errorf("ship moved while in the menu")
	}

	h.start(t)
}

func TestQuitFromAnyState(t *testing.T) {
	h := newTestGame(t, nil)

	if err := h.game.Tick(press(EventQuit)); !errors.Is(err, ErrQuit) {
		t.Fatalf("Tick(quit) in menu = %v, want ErrQuit", err)
	}
	if err := h.game.Tick(press()); !errors.Is(err, ErrQuit) {
		t.Fatalf("Tick after quit = %v, want ErrQuit", err)
	}

	h = newTestGame(t, nil)
	h.start(t)
	if err := h.game.Tick(press(EventFire, EventQuit)); !errors.Is(err, ErrQuit) {
		t.Fatalf("Tick(quit) while playing = %v, want ErrQuit", err)
	}
	if h.game.State() != GameStateQuit {
		t.Errorf("state = %v, want quit", h.game.State())
	}
}

func TestFirePlaysCueAndAddsBullet(t *testing.T) {
	h := newTestGame(t, nil)
	h.start(t)

	h.tick(t, press(EventFire, EventFire))

	if got := len(h.game.Session().Bullets); got != 2 {
		t.Fatalf("got %d bullets, want 2", got)
	}
	if len(h.audio.cues) != 2 || h.audio.cues[0] != CueLaser {
		t.Errorf("cues = %v, want two laser cues", h.audio.cues)
	}
}

func TestHeldControlsSteerShip(t *testing.T) {
	h := newTestGame(t, nil)
	h.start(t)
	ship := h.game.Session().Ship

	h.tick(t, &fakeInput{held: map[Control]bool{ControlTurnRight: true, ControlThrustForward: true}})

	if heading := ship.Heading(); heading < 5.99 || heading > 6.01 {
		t.Errorf("heading = %v, want 6", heading)
	}
	if ship.Velocity.Magnitude() < 0.249 || ship.Velocity.Magnitude() > 0.251 {
		t.Errorf("speed = %v, want 0.25", ship.Velocity.Magnitude())
	}
	if ship.Position == ShipSpawn {
		t.Errorf("ship did not move")
	}
}

func TestLossRecordsScoreAndResets(t *testing.T) {
	h := newTestGame(t, &memoryStore{records: []HighScoreRecord{{Name: "old", Score: 50, Timestamp: "t0"}}})
	h.start(t)

	s := h.game.Session()
	s.Score = 300
	attacker := stillAsteroid(ShipSpawn.Add(geometry.Vector{X: 200}), AsteroidLarge)
	attacker.Radius = 180
	s.Asteroids = []*Asteroid{attacker}

	h.tick(t, press())
	if h.game.State() != GameStateNameInput {
		t.Fatalf("state after collision = %v, want name input", h.game.State())
	}
	if len(h.prompt.begun) != 1 || h.prompt.begun[0] != lossNameArea {
		t.Errorf("prompt areas = %v, want one loss prompt", h.prompt.begun)
	}

	h.tick(t, press())
	if h.game.State() != GameStateMenu {
		t.Fatalf("state after name entry = %v, want menu", h.game.State())
	}

	if s.Message != "You lost!" {
		t.Errorf("message = %q, want You lost!", s.Message)
	}
	if s.Ship == nil || s.Ship.Position != ShipSpawn || s.Ship.Velocity != (geometry.Vector{}) {
		t.Errorf("expected a fresh ship at %v, got %+v", ShipSpawn, s.Ship)
	}
	if len(s.Asteroids) != initialAsteroids || len(s.Bullets) != 0 || s.Score != 0 {
		t.Errorf("session not reset: asteroids=%d bullets=%d score=%d", len(s.Asteroids), len(s.Bullets), s.Score)
	}

	want := []HighScoreRecord{
		{Name: "ada", Score: 300, Timestamp: "2026-10-14 09:30:15.123456"},
		{Name: "old", Score: 50, Timestamp: "t0"},
	}
	if h.store.saves != 1 {
		t.Fatalf("store saved %d times, want 1", h.store.saves)
	}
	assertRecords(t, "stored", h.store.records, want)
	assertRecords(t, "displayed", s.Scores, want)
}

func TestWinRecordsScoreOnce(t *testing.T) {
	h := newTestGame(t, nil)
	h.prompt.waitTicks = 3
	h.prompt.name = "  "
	h.start(t)

	s := h.game.Session()
	s.Score = 1400
	target := geometry.Vector{X: 100, Y: 600}
	s.Asteroids = []*Asteroid{stillAsteroid(target, AsteroidSmall)}
	s.Bullets = []*Bullet{NewBullet(target, geometry.Vector{}, geometry.Up)}

	h.tick(t, press())
	if h.game.State() != GameStateNameInput {
		t.Fatalf("state = %v, want name input", h.game.State())
	}
	if len(h.prompt.begun) != 1 || h.prompt.begun[0] != winNameArea {
		t.Errorf("prompt areas = %v, want one win prompt", h.prompt.begun)
	}

	for i := 0; i < 3; i++ {
		h.tick(t, press(EventFire))
		if h.game.State() != GameStateNameInput {
			t.Fatalf("left name input before the prompt finished")
		}
	}
	if len(h.audio.cues) != 0 {
		t.Errorf("fired while entering a name")
	}

	h.tick(t, press())
	if s.Message != "You win!" {
		t.Errorf("message = %q, want You win!", s.Message)
	}
	assertRecords(t, "stored", h.store.records, []HighScoreRecord{
		{Name: "Anonymous", Score: 1500, Timestamp: "2026-10-14 09:30:15.123456"},
	})
	if len(h.prompt.begun) != 1 {
		t.Errorf("prompted %d times, want once", len(h.prompt.begun))
	}
}

func TestStartingNextRoundClearsMessage(t *testing.T) {
	h := newTestGame(t, nil)
	h.start(t)

	s := h.game.Session()
	s.Asteroids = []*Asteroid{stillAsteroid(ShipSpawn, AsteroidLarge)}
	h.tick(t, press())
	h.tick(t, press())

	r := newRecordingRenderer()
	h.game.Render(r)
	if r.texts[SlotMessage] != "You lost!" || len(r.scores) != 1 {
		t.Fatalf("menu did not show the result: texts=%v scores=%v", r.texts, r.scores)
	}
	if r.texts[SlotTitle] == "" {
		t.Errorf("menu title missing")
	}

	h.start(t)
	if s.Message != "" || s.Scores != nil {
		t.Errorf("message %q and scores survived into the next round", s.Message)
	}
}

func TestSaveFailureStopsGame(t *testing.T) {
	h := newTestGame(t, &memoryStore{saveErr: errDiskFull})
	h.start(t)
	h.game.Session().Asteroids = []*Asteroid{stillAsteroid(ShipSpawn, AsteroidLarge)}

	h.tick(t, press())
	err := h.game.Tick(press())
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("Tick error = %v, want wrapped %v", err, errDiskFull)
	}
}

func TestRenderPlayingDescribesEntities(t *testing.T) {
	h := newTestGame(t, nil)
	h.start(t)
	h.tick(t, press(EventFire))

	r := newRecordingRenderer()
	h.game.Render(r)

	s := h.game.Session()
	if want := len(s.Asteroids) + len(s.Bullets) + 1; len(r.sprites) != want {
		t.Fatalf("got %d sprites, want %d", len(r.sprites), want)
	}
	if last := r.sprites[len(r.sprites)-1]; last.Kind != SpriteShip || last.Position != s.Ship.Position {
		t.Errorf("ship should be drawn last, got %+v", last)
	}
	if r.texts[SlotHUD] != "Score: 0" {
		t.Errorf("HUD = %q", r.texts[SlotHUD])
	}
}

func TestMenuShowsTopScoresOnly(t *testing.T) {
	var records []HighScoreRecord
	for i := 0; i < 8; i++ {
		records = append(records, HighScoreRecord{Name: "p", Score: i * 100, Timestamp: "t"})
	}
	h := newTestGame(t, &memoryStore{records: records})
	h.start(t)
	h.game.Session().Asteroids = []*Asteroid{stillAsteroid(ShipSpawn, AsteroidLarge)}
	h.tick(t, press())
	h.tick(t, press())

	r := newRecordingRenderer()
	h.game.Render(r)

	if len(r.scores) != defaultScoreDisplayCount {
		t.Fatalf("menu shows %d scores, want %d", len(r.scores), defaultScoreDisplayCount)
	}
	if r.scores[0].Score != 700 {
		t.Errorf("top score = %d, want 700", r.scores[0].Score)
	}
}

func assertRecords(t *testing.T, label string, got, want []HighScoreRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d records %v, want %v", label, len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %+v, want %+v", label, i, got[i], want[i])
		}
	}
}
