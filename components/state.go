package components

import (
	"github.com/automoto/sparring/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState config.StateID
	StateTimer   int // Ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
