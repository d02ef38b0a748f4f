package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/parcelrun/courier/colors"
)

const (
	hudTextScale = 2.5
	hudPadding   = 10
	hudMargin    = 20
	lineSpacing  = 16
)

// HUDState is what the HUD shows on a given frame.
type HUDState struct {
	Score     int
	Remaining int // Seconds left on the countdown
	GameOver  bool
}

// HUD draws the delivery count, the countdown and the game-over modal over the 3D view.
type HUD struct {
	ShowDebug bool

	face text.Face

	lastScore int
	popScale  float32
	pop       *gween.Tween

	modalAlpha float32
	fade       *gween.Tween
}

// NewHUD creates a new HUD.
func NewHUD() *HUD {
	return &HUD{
		face:      text.NewGoXFace(basicfont.Face7x13),
		popScale:  1,
		lastScore: 0,
	}
}

// Update advances the HUD's animations by dt seconds. A new score makes the score box pop; the game-over modal fades in once.
func (hud *HUD) Update(state HUDState, dt float32) {

	if state.Score != hud.lastScore {
		hud.lastScore = state.Score
		hud.pop = gween.New(1.6, 1, 0.4, ease.OutBack)
	}

	if hud.pop != nil {
		var done bool
		hud.popScale, done = hud.pop.Update(dt)
		if done {
			hud.pop = nil
			hud.popScale = 1
		}
	}

	if state.GameOver && hud.fade == nil && hud.modalAlpha == 0 {
		hud.fade = gween.New(0, 1, 0.6, ease.OutQuad)
	}

	if hud.fade != nil {
		var done bool
		hud.modalAlpha, done = hud.fade.Update(dt)
		if done {
			hud.fade = nil
			hud.modalAlpha = 1
		}
	}

}

// PopScale returns the current scale of the score box; 1 when it's at rest.
func (hud *HUD) PopScale() float32 {
	return hud.popScale
}

// ModalAlpha returns the current opacity of the game-over modal; 0 while the game is running.
func (hud *HUD) ModalAlpha() float32 {
	return hud.modalAlpha
}

// ScoreLabel returns the text of the score box.
func ScoreLabel(score int) string {
	return fmt.Sprintf("Deliveries: %d", score)
}

// TimerLabel returns the text of the countdown box.
func TimerLabel(remaining int) string {
	return fmt.Sprintf("Time: %ds", remaining)
}

// GameOverLabel returns the text of the game-over modal.
func GameOverLabel(score int) string {
	return fmt.Sprintf("Time's up!\nTotal deliveries: %d\n\nPress R to play again", score)
}

// Draw draws the HUD onto the screen.
func (hud *HUD) Draw(screen *ebiten.Image, state HUDState) {

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	hud.drawBox(screen, ScoreLabel(state.Score), hudMargin, hudMargin, hudTextScale*float64(hud.popScale), text.AlignStart, colors.Overlay(), colors.White())
	hud.drawBox(screen, TimerLabel(state.Remaining), width-hudMargin, hudMargin, hudTextScale, text.AlignEnd, colors.Overlay(), colors.White())

	if alpha := hud.modalAlpha; alpha > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), colors.Black().WithAlpha(0.5*alpha).ToNRGBA(), false)
		hud.drawBox(screen, GameOverLabel(state.Score), width/2, height/2-60, hudTextScale, text.AlignCenter, colors.White().WithAlpha(alpha), colors.Black().WithAlpha(alpha))
	}

}

// DrawDebug draws the Renderer's statistics under the score box when ShowDebug is on.
func (hud *HUD) DrawDebug(screen *ebiten.Image, info DebugInfo, extra string) {

	if !hud.ShowDebug {
		return
	}

	txt := fmt.Sprintf(
		"TPS: %.1f\nFPS: %.1f\nRender frame-time: %.2fms\nDraw calls: %d\nRendered triangles: %d/%d\n%s",
		ebiten.ActualTPS(),
		ebiten.ActualFPS(),
		float64(info.FrameTime.Microseconds())/1000,
		info.DrawCalls,
		info.DrawnTris,
		info.TotalTris,
		extra,
	)

	hud.drawBox(screen, txt, hudMargin, 100, 1, text.AlignStart, colors.Overlay(), colors.LightGray())

}

// drawBox draws txt in a padded box. x is the box's left edge, right edge or center depending on align; y is its top.
func (hud *HUD) drawBox(screen *ebiten.Image, txt string, x, y, scale float64, align text.Align, background, foreground colors.Color) {

	w, h := text.Measure(txt, hud.face, lineSpacing)
	boxW := w*scale + hudPadding*2
	boxH := h*scale + hudPadding*2

	left := x
	switch align {
	case text.AlignCenter:
		left = x - boxW/2
	case text.AlignEnd:
		left = x - boxW
	}

	vector.DrawFilledRect(screen, float32(left), float32(y), float32(boxW), float32(boxH), toColor(background), false)

	opt := &text.DrawOptions{}
	opt.LineSpacing = lineSpacing
	opt.PrimaryAlign = align
	opt.GeoM.Scale(scale, scale)

	textX := left + hudPadding
	switch align {
	case text.AlignCenter:
		textX = left + boxW/2
	case text.AlignEnd:
		textX = left + boxW - hudPadding
	}

	opt.GeoM.Translate(textX, y+hudPadding)
	opt.ColorScale.ScaleWithColor(toColor(foreground))

	text.Draw(screen, txt, hud.face, opt)

}

func toColor(c colors.Color) color.Color {
	return c.ToNRGBA()
}
