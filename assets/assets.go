package assets

import (
	"bytes"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	shipSide     = 200
	asteroidSide = 256
	bulletSide   = 64
)

// AsteroidVariantCount must match the number of looks the game asks for.
const AsteroidVariantCount = 8

var (
	ShipSprite      *ebiten.Image
	BulletSprite    *ebiten.Image
	AsteroidSprites []*ebiten.Image

	ScoreFont   *text.GoTextFace
	MessageFont *text.GoTextFace
	TitleFont   *text.GoTextFace
	InputFont   *text.GoTextFace
)

var (
	hullColor     = color.RGBA{220, 230, 255, 255}
	flameColor    = color.RGBA{255, 140, 40, 255}
	rockColor     = color.RGBA{170, 255, 120, 255}
	bulletColor   = color.RGBA{255, 80, 80, 255}
	starColor     = color.RGBA{200, 200, 255, 255}
	spaceColor    = color.RGBA{5, 5, 20, 255}
	spriteRandSrc = rand.NewSource(197)
)

func init() {
	rng := rand.New(spriteRandSrc)

	ShipSprite = newShipSprite()
	BulletSprite = newBulletSprite()
	AsteroidSprites = make([]*ebiten.Image, AsteroidVariantCount)
	for i := range AsteroidSprites {
		AsteroidSprites[i] = newAsteroidSprite(rng)
	}

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	ScoreFont = &text.GoTextFace{Source: fontSource, Size: 24}
	MessageFont = &text.GoTextFace{Source: fontSource, Size: 64}
	TitleFont = &text.GoTextFace{Source: fontSource, Size: 36}
	InputFont = &text.GoTextFace{Source: fontSource, Size: 22}
}

// NewBackground draws a star field of the given size. The same dimensions always
// produce the same stars.
func NewBackground(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(spaceColor)

	rng := rand.New(rand.NewSource(int64(width)*7919 + int64(height)))
	stars := width * height / 2500
	for i := 0; i < stars; i++ {
		x := float32(rng.Intn(width))
		y := float32(rng.Intn(height))
		r := float32(0.5 + rng.Float64()*1.2)
		vector.DrawFilledCircle(img, x, y, r, starColor, true)
	}
	return img
}

// newShipSprite draws a ship pointing up.
func newShipSprite() *ebiten.Image {
	img := ebiten.NewImage(shipSide, shipSide)
	const s = float32(shipSide)

	nose := [2]float32{s / 2, s * 0.05}
	left := [2]float32{s * 0.15, s * 0.95}
	right := [2]float32{s * 0.85, s * 0.95}
	notch := [2]float32{s / 2, s * 0.75}

	strokePolygon(img, [][2]float32{nose, right, notch, left}, 10, hullColor)
	vector.DrawFilledCircle(img, s/2, s*0.85, s*0.06, flameColor, true)
	return img
}

func newBulletSprite() *ebiten.Image {
	img := ebiten.NewImage(bulletSide, bulletSide)
	vector.DrawFilledCircle(img, bulletSide/2, bulletSide/2, bulletSide/2-2, bulletColor, true)
	return img
}

// newAsteroidSprite draws an irregular rock by jittering the radius of a regular polygon.
func newAsteroidSprite(rng *rand.Rand) *ebiten.Image {
	img := ebiten.NewImage(asteroidSide, asteroidSide)
	const center = float32(asteroidSide) / 2
	radius := float64(asteroidSide)/2 - 12

	numVerts := 8 + rng.Intn(5)
	points := make([][2]float32, numVerts)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / float64(numVerts)
		dist := radius * (0.7 + rng.Float64()*0.3)
		points[i] = [2]float32{
			center + float32(math.Cos(angle)*dist),
			center + float32(math.Sin(angle)*dist),
		}
	}

	strokePolygon(img, points, 8, rockColor)
	return img
}

func strokePolygon(dst *ebiten.Image, points [][2]float32, width float32, clr color.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(dst, p[0], p[1], q[0], q[1], width, clr, true)
	}
}
