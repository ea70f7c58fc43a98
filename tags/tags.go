package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Roof   = donburi.NewTag().SetName("Roof")
	Ledge  = donburi.NewTag().SetName("Ledge")
)
