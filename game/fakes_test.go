package game

import (
	"errors"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/meghashyamc/spacerocks/geometry"
	"github.com/meghashyamc/spacerocks/logger"
)

var testBounds = Bounds{Width: 600, Height: 800}

func testLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "debug")
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

type memoryStore struct {
	records []HighScoreRecord
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryStore) Load() ([]HighScoreRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return slices.Clone(m.records), nil
}

func (m *memoryStore) Save(records []HighScoreRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records = slices.Clone(records)
	return nil
}

type scriptedPrompt struct {
	begun []geometry.Rect
	name  string
	// waitTicks is how many polls return not-done before the name is submitted.
	waitTicks int
	polls     int
}

func (p *scriptedPrompt) Begin(area geometry.Rect) {
	p.begun = append(p.begun, area)
	p.polls = 0
}

func (p *scriptedPrompt) Poll() (string, bool) {
	p.polls++
	if p.polls <= p.waitTicks {
		return "", false
	}
	return p.name, true
}

type fakeInput struct {
	events []Event
	held   map[Control]bool
}

func (f *fakeInput) Events() []Event {
	events := f.events
	f.events = nil
	return events
}

func (f *fakeInput) Held(c Control) bool {
	return f.held[c]
}

func press(events ...Event) *fakeInput {
	return &fakeInput{events: events}
}

type countingAudio struct {
	cues []Cue
}

func (c *countingAudio) PlayCue(cue Cue) {
	c.cues = append(c.cues, cue)
}

type recordingRenderer struct {
	frames  int
	sprites []Sprite
	texts   map[TextSlot]string
	scores  []HighScoreRecord
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{texts: make(map[TextSlot]string)}
}

func (r *recordingRenderer) DrawFrame(_ Background, sprites []Sprite) {
	r.frames++
	r.sprites = sprites
}

func (r *recordingRenderer) DrawText(text string, slot TextSlot) {
	r.texts[slot] = text
}

func (r *recordingRenderer) DrawScoreList(entries []HighScoreRecord) {
	r.scores = entries
}

var fixedNow = time.Date(2026, 10, 14, 9, 30, 15, 123456000, time.UTC)

var errDiskFull = errors.New("disk full")
