// Package frontend runs the game in an ebiten window.
package frontend

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meghashyamc/spacerocks/config"
	"github.com/meghashyamc/spacerocks/game"
	"github.com/meghashyamc/spacerocks/logger"
)

// App adapts a game.Game to ebiten.Game.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	game     *game.Game
	input    *keyboard
	prompt   *namePrompt
	renderer *renderer
	audio    cuePlayer
}

func NewApp(cfg *config.Config, log logger.Logger, store game.ScoreStore) (*App, error) {
	width, height := cfg.GetWindowWidth(), cfg.GetWindowHeight()

	var player cuePlayer = silent{}
	if cfg.GetAudioEnabled() {
		player = newSpeaker(log)
	}

	prompt := &namePrompt{}
	g, err := game.NewGame(game.Options{
		Bounds:            game.Bounds{Width: float64(width), Height: float64(height)},
		Store:             store,
		Prompt:            prompt,
		Audio:             player,
		Logger:            log,
		ScoreDisplayCount: cfg.GetScoreDisplayCount(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		game:     g,
		input:    &keyboard{},
		prompt:   prompt,
		renderer: newRenderer(width, height),
		audio:    player,
	}, nil
}

func (a *App) Run() error {
	a.setupWindow()
	a.logger.Info("starting game", "tps", a.cfg.GetTicksPerSecond())
	return ebiten.RunGame(a)
}

func (a *App) setupWindow() {
	ebiten.SetWindowSize(a.cfg.GetWindowWidth(), a.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(a.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(a.cfg.GetTicksPerSecond())
}

func (a *App) Update() error {
	a.input.poll()

	err := a.game.Tick(a.input)
	if errors.Is(err, game.ErrQuit) {
		a.logger.Info("player quit", "score", a.game.Session().Score)
		a.audio.Close()
		return ebiten.Termination
	}
	if err != nil {
		a.audio.Close()
		return err
	}

	a.audio.prune()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.begin(screen)
	a.game.Render(a.renderer)
	if a.game.State() == game.GameStateNameInput {
		a.prompt.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.cfg.GetWindowWidth(), a.cfg.GetWindowHeight()
}
