package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/fonts"
	"github.com/automoto/skyraid/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10
)

var kindStyle = map[sim.EntityKind]struct {
	size float32
	clr  color.RGBA
}{
	sim.KindPlayer:      {24, cfg.LightBlue},
	sim.KindEnemy:       {22, cfg.LightRed},
	sim.KindBoss:        {72, cfg.Magenta},
	sim.KindBullet:      {5, cfg.Yellow},
	sim.KindEnemyBullet: {6, cfg.Orange},
	sim.KindPickup:      {14, cfg.BrightGreen},
}

func drawEntities(screen *ebiten.Image, snap sim.Snapshot) {
	ox, oy := float32(snap.Shake.OffsetX), float32(snap.Shake.OffsetY)

	for _, e := range snap.Entities {
		x, y := float32(e.X)+ox, float32(e.Y)+oy
		switch e.Kind {
		case sim.KindSlowField:
			vector.StrokeCircle(screen, x, y, float32(e.Radius), 1, cfg.Purple, false)
			continue
		case sim.KindBeam:
			vector.StrokeLine(screen, float32(e.FromX)+ox, float32(e.FromY)+oy,
				float32(e.ToX)+ox, float32(e.ToY)+oy, 2, cfg.LightBlue, false)
			continue
		}

		style, ok := kindStyle[e.Kind]
		if !ok {
			continue
		}
		half := style.size / 2
		vector.FillRect(screen, x-half, y-half, style.size, style.size, style.clr, false)
		if e.TintA > 0 {
			tint := e.Tint
			tint.A = uint8(float32(255) * clamp01(e.TintA) * 0.6)
			vector.FillRect(screen, x-half, y-half, style.size, style.size, tint, false)
		}
	}
}

func drawHUD(screen *ebiten.Image, snap sim.Snapshot, paused bool) {
	face := fonts.HUD.Get()
	p := snap.Player

	ratio := float32(0)
	if p.MaxHP > 0 {
		ratio = float32(p.HP / p.MaxHP)
	}
	vector.FillRect(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, hudMargin, hudMargin, hudBarWidth*ratio, hudBarHeight, color.RGBA{40, 220, 40, 255}, false)
	vector.FillRect(screen, hudMargin, hudMargin+hudBarHeight+2, hudBarWidth*float32(p.ShieldPct), 4, cfg.DarkBlue, false)

	lines := []string{
		fmt.Sprintf("SCORE %d  LV %d (best %d)", snap.Score, snap.Level, snap.MaxLevel),
		fmt.Sprintf("LIVES %d  BOMBS %d  %s", p.Lives, p.Bombs, snap.Difficulty),
		fmt.Sprintf("%s L%d / %s  %s", p.Weapon, p.WeaponLevel, p.Secondary, p.Synergy),
	}
	if snap.Combo.Count > 0 {
		lines = append(lines, fmt.Sprintf("COMBO x%d  lvl %d", snap.Combo.Count, snap.Combo.Level))
	}
	for i, l := range lines {
		text.Draw(screen, l, face, hudMargin, hudMargin+hudBarHeight+22+i*14, cfg.White)
	}

	if b := snap.Boss; b != nil && b.MaxHP > 0 {
		w := float32(screen.Bounds().Dx()) - 2*hudMargin
		y := float32(screen.Bounds().Dy()) - 2*hudMargin
		vector.FillRect(screen, hudMargin, y, w, 6, color.RGBA{60, 20, 20, 255}, false)
		vector.FillRect(screen, hudMargin, y, w*float32(b.HP/b.MaxHP), 6, cfg.Red, false)
		text.Draw(screen, fmt.Sprintf("%s  phase %d", b.Kind, b.Phase+1), face, hudMargin, int(y)-4, cfg.White)
	}

	switch {
	case snap.State == cfg.StateGameOver:
		drawBanner(screen, "GAME OVER - press Enter")
	case paused:
		drawBanner(screen, "PAUSED")
	}
}

func drawBanner(screen *ebiten.Image, msg string) {
	face := fonts.Title.Get()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(h)/2-24, float32(w), 40, color.RGBA{0, 0, 0, 180}, false)
	text.Draw(screen, msg, face, w/2-len(msg)*4, h/2, cfg.Gold)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
