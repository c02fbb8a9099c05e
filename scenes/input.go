package scenes

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// inputPoller turns keyboard, gamepad and mouse state into the normalized intent record
// the simulation consumes.
type inputPoller struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID

	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool

	stickX, stickY float64

	dragging         bool
	cursorX, cursorY int
	pointerDX        float64
	pointerDY        float64
}

// update polls raw input once per frame.
func (p *inputPoller) update() {
	p.previous = p.current
	p.current = [cfg.ActionCount]bool{}
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.current[actionID] = true
			}
		}
		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.current[actionID] = true
				}
			}
		}
	}

	p.stickX, p.stickY = p.analogStick()
	p.updatePointer()
}

func (p *inputPoller) pressed(id cfg.ActionID) bool {
	return p.current[id]
}

func (p *inputPoller) justPressed(id cfg.ActionID) bool {
	return p.current[id] && !p.previous[id]
}

// snapshot builds the intent record for this frame.
func (p *inputPoller) snapshot() components.InputSnapshot {
	mx, my := p.stickX, p.stickY
	if p.pressed(cfg.ActionMoveLeft) {
		mx--
	}
	if p.pressed(cfg.ActionMoveRight) {
		mx++
	}
	if p.pressed(cfg.ActionMoveUp) {
		my--
	}
	if p.pressed(cfg.ActionMoveDown) {
		my++
	}
	if l := math.Hypot(mx, my); l > 1 {
		mx, my = mx/l, my/l
	}

	return components.InputSnapshot{
		Move:         dmath.NewVec2(mx, my),
		PointerDelta: dmath.NewVec2(p.pointerDX, p.pointerDY),
		Firing:       cfg.Input.AutoFire || p.pressed(cfg.ActionFire) || p.dragging,
		Bombing:      p.pressed(cfg.ActionBomb),
	}
}

// analogStick reads the left stick of the first gamepad past the deadzone.
func (p *inputPoller) analogStick() (float64, float64) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(h) < deadzone {
			h = 0
		}
		if math.Abs(v) < deadzone {
			v = 0
		}
		if h != 0 || v != 0 {
			return h, v
		}
	}
	return 0, 0
}

// updatePointer tracks a left-button drag as a displacement in playfield pixels.
func (p *inputPoller) updatePointer() {
	x, y := ebiten.CursorPosition()
	p.pointerDX, p.pointerDY = 0, 0
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.dragging = false
		return
	}
	if p.dragging {
		p.pointerDX = float64(x - p.cursorX)
		p.pointerDY = float64(y - p.cursorY)
	}
	p.dragging = true
	p.cursorX, p.cursorY = x, y
}
