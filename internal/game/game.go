package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/avdeev/runaway-button/internal/config"
	"github.com/avdeev/runaway-button/internal/evade"
	"github.com/avdeev/runaway-button/internal/geom"
)

const (
	prompt      = "Will you go out with me?"
	successText = "Yay! It's a date."

	// Minimum gap between evasion blips so a fast cursor does not stack
	// dozens of overlapping tones.
	blipCooldown = 150 * time.Millisecond
)

// Game asks one question. The Yes button behaves; the No button does not.
type Game struct {
	controller *evade.Controller
	yesRect    geom.Rect
	noAnchor   geom.Rect

	sounds   *sounds
	announce func()

	// input edge detection
	prevKey    map[ebiten.Key]bool
	lastMouseX int
	lastMouseY int
	mouseSeen  bool

	// button state
	yesHovered bool
	yesPressed bool

	// state
	accepted bool
	lastBlip time.Time
	lastErr  error
}

func New() *Game {
	yes := geom.Rect{
		X: config.WindowWidth/2 - config.ButtonWidth - 30,
		Y: 360,
		W: config.ButtonWidth,
		H: config.ButtonHeight,
	}
	no := geom.Rect{
		X: config.WindowWidth/2 + 30,
		Y: 360,
		W: config.ButtonWidth,
		H: config.ButtonHeight,
	}

	g := newWithLayout(yes, no)
	g.sounds, g.lastErr = newSounds()
	g.announce = func() {
		go func() {
			_ = zenity.Info(successText, zenity.Title("Great news"))
		}()
	}
	return g
}

// newWithLayout builds the game around fixed button rects. An empty No rect
// means there is nothing to run away, so the evasion wiring is skipped and
// pointer movement is ignored.
func newWithLayout(yes, no geom.Rect) *Game {
	g := &Game{
		yesRect:  yes,
		noAnchor: no,
		prevKey:  map[ebiten.Key]bool{},
	}
	if !no.Empty() {
		g.controller = evade.NewController(evade.Config{
			RunAwayRadius: config.RunAwayRadius,
			MoveStep:      config.MoveStep,
			BounceNudge:   config.BounceNudge,
		}, buttonGeometry{g})
	}
	return g
}

// buttonGeometry hands the No button's live box and the window size to the
// evasion controller. Bounds are recomputed on every call so they always
// reflect the last committed offset, including mid-tick between the evasive
// step and its edge correction.
type buttonGeometry struct {
	g *Game
}

func (b buttonGeometry) ControlBounds() geom.Rect {
	return b.g.noAnchor.Translate(b.g.controller.Position())
}

func (b buttonGeometry) ViewportSize() (float64, float64) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) noBounds() geom.Rect {
	return g.noAnchor.Translate(g.controller.Position())
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	if !g.mouseSeen || mouseX != g.lastMouseX || mouseY != g.lastMouseY {
		g.mouseSeen = true
		g.lastMouseX, g.lastMouseY = mouseX, mouseY
		g.handlePointer(mouseX, mouseY)
	}

	// Yes button interactions
	cursor := geom.Vec2{X: float64(mouseX), Y: float64(mouseY)}
	g.yesHovered = !g.accepted && g.yesRect.Contains(cursor)

	if g.yesHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.yesPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.yesPressed && g.yesHovered {
			g.activateYes()
		}
		g.yesPressed = false
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	return nil
}

// handlePointer feeds one cursor position to the evasion controller. Every
// movement anywhere in the window counts; there is no throttling beyond the
// blip cooldown, which only gates audio.
func (g *Game) handlePointer(x, y int) {
	if g.controller == nil || g.accepted {
		return
	}
	if g.controller.PointerMoved(float64(x), float64(y)) {
		if time.Since(g.lastBlip) >= blipCooldown {
			g.sounds.blip()
			g.lastBlip = time.Now()
		}
	}
}

// activateYes swaps the prompt region for the success region. Repeat
// activations are no-ops.
func (g *Game) activateYes() {
	if g.accepted {
		return
	}
	g.accepted = true
	g.sounds.chime()
	if g.announce != nil {
		g.announce()
	}
}

// visibleRegions reports which of the two content regions is shown. Exactly
// one is visible at any time.
func (g *Game) visibleRegions() (promptShown, successShown bool) {
	return !g.accepted, g.accepted
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 32, A: 255})

	if g.accepted {
		g.drawSuccess(screen)
	} else {
		g.drawPrompt(screen)
	}

	status := "Pick an answer - Esc/Q: Quit"
	if g.accepted {
		status = "Esc/Q: Quit"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawPrompt(screen *ebiten.Image) {
	textWidth := len(prompt) * 8
	ebitenutil.DebugPrintAt(screen, prompt, (config.WindowWidth-textWidth)/2, 240)

	// Yes button background
	var yesColor color.RGBA
	if g.yesPressed {
		yesColor = color.RGBA{R: 50, G: 110, B: 70, A: 255} // Pressed
	} else if g.yesHovered {
		yesColor = color.RGBA{R: 70, G: 140, B: 90, A: 255} // Hovered
	} else {
		yesColor = color.RGBA{R: 60, G: 125, B: 80, A: 255} // Normal
	}
	drawButton(screen, g.yesRect, "Yes", yesColor)

	if g.controller != nil {
		drawButton(screen, g.noBounds(), "No", color.RGBA{R: 140, G: 70, B: 70, A: 255})
	}
}

func (g *Game) drawSuccess(screen *ebiten.Image) {
	textWidth := len(successText) * 8
	ebitenutil.DebugPrintAt(screen, successText, (config.WindowWidth-textWidth)/2, 280)

	// A little celebratory dot trio above the message
	centerX := float32(config.WindowWidth) / 2
	vector.DrawFilledCircle(screen, centerX-30, 240, 6, color.RGBA{R: 220, G: 120, B: 140, A: 255}, false)
	vector.DrawFilledCircle(screen, centerX, 230, 8, color.RGBA{R: 240, G: 180, B: 100, A: 255}, false)
	vector.DrawFilledCircle(screen, centerX+30, 240, 6, color.RGBA{R: 130, G: 170, B: 230, A: 255}, false)
}

func drawButton(screen *ebiten.Image, box geom.Rect, label string, bg color.RGBA) {
	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), bg, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 2, borderColor, false)

	textWidth := len(label) * 8
	textX := int(box.X) + (int(box.W)-textWidth)/2
	textY := int(box.Y) + (int(box.H)-8)/2
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
