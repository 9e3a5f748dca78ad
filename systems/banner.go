package systems

import (
	"fmt"

	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// WinnerText returns the banner headline for a winning player index.
func WinnerText(winner int) string {
	return fmt.Sprintf("%s Wins!", cfg.Match.PlayerNames[winner])
}

// DrawBanner renders the winner banner over a dimmed screen once the match
// has ended, faded in by the HUD tween.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	winner, ok := Winner(ecs)
	if !ok {
		return
	}
	alpha := GetOrCreateHUD(ecs).BannerAlpha

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	overlay := cfg.UI.BannerOverlay
	overlay.A = uint8(float32(overlay.A) * alpha)
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	textColor := cfg.UI.BannerColor
	textColor.A = uint8(float32(textColor.A) * alpha)

	titleFont := fonts.BannerTitle.Get()
	title := WinnerText(winner)
	text.Draw(screen, title, titleFont, (width-textWidth(titleFont, title))/2, height/2, textColor)

	hintFont := fonts.BannerHint.Get()
	hint := "Press R to restart"
	text.Draw(screen, hint, hintFont, (width-textWidth(hintFont, hint))/2, height/2+50, textColor)
}
