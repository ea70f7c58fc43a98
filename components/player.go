package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Feet position in map pixels, used by the reset action
	SpawnX float64
	SpawnY float64
	Resets int
}

var Player = donburi.NewComponentType[PlayerData]()
