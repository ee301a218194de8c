package frontend

import (
	"image/color"
	"math"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/spacerocks/assets"
	"github.com/meghashyamc/spacerocks/geometry"
)

const (
	promptMinWidth = 100
	promptPadding  = 5
	maxNameLength  = 24
)

var (
	promptBoxColor  = color.RGBA{141, 182, 205, 255} // lightskyblue3
	promptTextColor = color.RGBA{69, 139, 0, 255}    // chartreuse4
)

// namePrompt is a single-line text box fed by ebiten's typed characters.
type namePrompt struct {
	area   geometry.Rect
	buffer []rune
	active bool
}

func (p *namePrompt) Begin(area geometry.Rect) {
	p.area = area
	p.buffer = p.buffer[:0]
	p.active = true
}

func (p *namePrompt) Poll() (string, bool) {
	if !p.active {
		return "", false
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if unicode.IsPrint(r) && len(p.buffer) < maxNameLength {
			p.buffer = append(p.buffer, r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.buffer) > 0 {
		p.buffer = p.buffer[:len(p.buffer)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		p.active = false
		return string(p.buffer), true
	}
	return "", false
}

// Draw shows the box while a name is being typed. It grows with the text.
func (p *namePrompt) Draw(screen *ebiten.Image) {
	if !p.active {
		return
	}

	current := string(p.buffer) + "_"
	textW, _ := text.Measure(current, assets.InputFont, 0)
	width := math.Max(math.Max(promptMinWidth, p.area.Width), textW+2*promptPadding)

	vector.StrokeRect(screen,
		float32(p.area.X), float32(p.area.Y), float32(width), float32(p.area.Height),
		2, promptBoxColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(p.area.X+promptPadding, p.area.Y+promptPadding)
	op.ColorScale.ScaleWithColor(promptTextColor)
	text.Draw(screen, current, assets.InputFont, op)
}
