package frontend

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/meghashyamc/spacerocks/assets"
	"github.com/meghashyamc/spacerocks/game"
)

const scoreLineHeight = 30

// renderer draws one frame at a time onto the screen handed to begin.
type renderer struct {
	screen     *ebiten.Image
	background *ebiten.Image
	width      float64
	height     float64
}

func newRenderer(width, height int) *renderer {
	return &renderer{
		background: assets.NewBackground(width, height),
		width:      float64(width),
		height:     float64(height),
	}
}

func (r *renderer) begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *renderer) DrawFrame(bg game.Background, sprites []game.Sprite) {
	switch bg {
	case game.BackgroundSpace:
		r.screen.DrawImage(r.background, nil)
	default:
		r.screen.Fill(color.Black)
	}

	for _, s := range sprites {
		r.drawSprite(s)
	}
}

func (r *renderer) drawSprite(s game.Sprite) {
	img := spriteImage(s)
	if img == nil {
		return
	}

	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(2*s.Extent/w, 2*s.Extent/h)
	op.GeoM.Rotate(s.Heading * math.Pi / 180)
	op.GeoM.Translate(s.Position.X, s.Position.Y)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}

func spriteImage(s game.Sprite) *ebiten.Image {
	switch s.Kind {
	case game.SpriteShip:
		return assets.ShipSprite
	case game.SpriteBullet:
		return assets.BulletSprite
	case game.SpriteAsteroid:
		if len(assets.AsteroidSprites) == 0 {
			return nil
		}
		v := s.Variant % len(assets.AsteroidSprites)
		if v < 0 {
			v += len(assets.AsteroidSprites)
		}
		return assets.AsteroidSprites[v]
	}
	return nil
}

func (r *renderer) DrawText(str string, slot game.TextSlot) {
	op := &text.DrawOptions{}
	face := assets.ScoreFont

	switch slot {
	case game.SlotTitle:
		face = assets.TitleFont
		op.GeoM.Translate(r.width/2, r.height/6)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(colornames.White)
	case game.SlotMessage:
		face = assets.MessageFont
		op.GeoM.Translate(r.width/2, r.height/3)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(colornames.Tomato)
	case game.SlotHUD:
		op.GeoM.Translate(20, 20)
		op.ColorScale.ScaleWithColor(colornames.White)
	case game.SlotPrompt:
		op.GeoM.Translate(200, 160)
		op.ColorScale.ScaleWithColor(colornames.White)
	}

	text.Draw(r.screen, str, face, op)
}

func (r *renderer) DrawScoreList(entries []game.HighScoreRecord) {
	top := r.height/2 + 20

	header := &text.DrawOptions{}
	header.GeoM.Translate(r.width/2, top)
	header.PrimaryAlign = text.AlignCenter
	header.ColorScale.ScaleWithColor(colornames.Gold)
	text.Draw(r.screen, "High Scores", assets.ScoreFont, header)

	for i, e := range entries {
		op := &text.DrawOptions{}
		op.GeoM.Translate(r.width/2, top+float64(i+1)*scoreLineHeight+10)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(r.screen, fmt.Sprintf("%d. %s  %d", i+1, e.Name, e.Score), assets.ScoreFont, op)
	}
}
