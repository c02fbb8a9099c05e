package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/sim"
	"github.com/automoto/skyraid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebug outlines every collider in the broad phase space and prints tick stats.
func drawDebug(screen *ebiten.Image, s *sim.Simulation, snap sim.Snapshot) {
	sc, err := s.World().Scalars()
	if err != nil {
		return
	}

	for _, obj := range sc.Space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvEnemyBullet):
			c = color.RGBA{255, 160, 0, 255}
		case obj.HasTags(tags.ResolvPickup):
			c = color.RGBA{0, 255, 0, 255}
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  frame %d  entities %d  colliders %d  seq %d",
		ebiten.ActualTPS(), snap.Frame, len(snap.Entities), len(sc.Space.Objects()), s.World().Events.LastSeq()),
		hudMargin, int(cfg.C.Height)-20)
}
