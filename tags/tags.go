package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Boss        = donburi.NewTag().SetName("Boss")
	Bullet      = donburi.NewTag().SetName("Bullet")
	EnemyBullet = donburi.NewTag().SetName("EnemyBullet")
	Pickup      = donburi.NewTag().SetName("Pickup")
	SlowField   = donburi.NewTag().SetName("SlowField")
	Beam        = donburi.NewTag().SetName("Beam")
	Globals     = donburi.NewTag().SetName("Globals")
)

// Resolv tags for broad phase collision
const (
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvPlayerBullet = "PlayerBullet"
	ResolvEnemyBullet  = "EnemyBullet"
	ResolvPickup       = "Pickup"
)
