package assets

import (
	"image"
	"image/color"

	"github.com/automoto/sparring/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprite strips are drawn procedurally the first time they are needed: one
// horizontal strip per player and state, each frame sized by the character
// table. Characters face right.

type sheetKey struct {
	player int
	state  config.StateID
}

type frameKey struct {
	sheetKey
	frame int
}

type SheetLoader struct {
	sheets      map[sheetKey]*ebiten.Image
	frameCache  map[frameKey]*ebiten.Image
	projectiles [2]*ebiten.Image
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{
		sheets:     make(map[sheetKey]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

var sheetLoader = NewSheetLoader()

// GetFrame returns a cached sub-image for a specific animation frame.
func GetFrame(player int, state config.StateID, frame int) *ebiten.Image {
	return sheetLoader.GetFrame(player, state, frame)
}

// GetProjectileImage returns the projectile sprite for a player, drawn white
// so it can be tinted with the player's color.
func GetProjectileImage(player int) *ebiten.Image {
	return sheetLoader.GetProjectileImage(player)
}

func (l *SheetLoader) GetFrame(player int, state config.StateID, frame int) *ebiten.Image {
	key := frameKey{sheetKey{player, state}, frame}
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	def := config.Characters[player].State(state)
	if frame < 0 || frame >= def.Frames {
		frame = 0
	}
	w, h := int(def.Width), int(def.Height)
	sheet := l.sheet(player, state)
	img := sheet.SubImage(image.Rect(frame*w, 0, frame*w+w, h)).(*ebiten.Image)
	l.frameCache[key] = img
	return img
}

func (l *SheetLoader) sheet(player int, state config.StateID) *ebiten.Image {
	key := sheetKey{player, state}
	if img, ok := l.sheets[key]; ok {
		return img
	}

	def := config.Characters[player].State(state)
	w, h := float32(def.Width), float32(def.Height)
	sheet := ebiten.NewImage(int(def.Width)*def.Frames, int(def.Height))
	body := config.PlayerColors[player]

	for f := 0; f < def.Frames; f++ {
		ox := float32(f) * w
		phase := float32(f) / float32(def.Frames)
		drawFighterFrame(sheet, ox, w, h, phase, state, body)
	}

	l.sheets[key] = sheet
	return sheet
}

// drawFighterFrame paints one pose into a w x h cell at x offset ox.
func drawFighterFrame(dst *ebiten.Image, ox, w, h, phase float32, state config.StateID, body color.RGBA) {
	bob := float32(0)
	if phase >= 0.5 {
		bob = h * 0.04
	}

	headSize := w * 0.3
	torsoW := w * 0.36
	torsoH := h * 0.38
	legH := h * 0.28
	cx := ox + w/2

	legY := h - legH
	torsoY := legY - torsoH + bob
	headY := torsoY - headSize

	stride := w * 0.12
	if state == config.Jump {
		stride = w * 0.2
		legH *= 0.8
	}
	vector.DrawFilledRect(dst, cx-torsoW/2, legY, torsoW*0.4, legH, body, false)
	vector.DrawFilledRect(dst, cx+torsoW/2-torsoW*0.4+stride*phase, legY, torsoW*0.4, legH, body, false)

	vector.DrawFilledRect(dst, cx-torsoW/2, torsoY, torsoW, torsoH, body, false)
	vector.DrawFilledRect(dst, cx-headSize/2, headY, headSize, headSize, config.White, false)

	armLen := w * 0.2
	if state == config.Attack {
		armLen = w * (0.2 + 0.3*phase)
	}
	vector.DrawFilledRect(dst, cx+torsoW/2, torsoY+torsoH*0.2, armLen, h*0.06, config.White, false)
}

func (l *SheetLoader) GetProjectileImage(player int) *ebiten.Image {
	if img := l.projectiles[player]; img != nil {
		return img
	}

	w, h := float32(config.Projectile.Width), float32(config.Projectile.Height)
	img := ebiten.NewImage(int(config.Projectile.Width), int(config.Projectile.Height))
	vector.DrawFilledCircle(img, w/2, h/2, h/2, config.White, true)
	vector.DrawFilledRect(img, 0, h*0.35, w, h*0.3, config.White, false)

	l.projectiles[player] = img
	return img
}
