package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/spacerocks/game"
)

var controlKeys = map[game.Control][]ebiten.Key{
	game.ControlTurnLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	game.ControlTurnRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
	game.ControlThrustForward: {ebiten.KeyW, ebiten.KeyArrowUp},
	game.ControlThrustReverse: {ebiten.KeyS, ebiten.KeyArrowDown},
}

// keyboard turns ebiten's per-frame key state into game events and held controls.
type keyboard struct {
	events []game.Event
}

// poll must run once at the start of every Update.
func (k *keyboard) poll() {
	k.events = k.events[:0]

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.events = append(k.events, game.EventQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		k.events = append(k.events, game.EventConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		k.events = append(k.events, game.EventFire)
	}
}

func (k *keyboard) Events() []game.Event {
	return k.events
}

func (k *keyboard) Held(c game.Control) bool {
	for _, key := range controlKeys[c] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
