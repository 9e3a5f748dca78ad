package config

// StateDef describes one animation state of a character: how its sprite
// cycles and how large its collision box is before scaling.
type StateDef struct {
	Frames     int     `yaml:"frames"`
	FrameDelay int     `yaml:"frameDelay"` // ticks before advancing to the next frame
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	OffsetY    float64 `yaml:"offsetY"` // sprite-only vertical nudge
}

// CharacterDef is the per-state table for one character, indexed by StateID.
type CharacterDef struct {
	States [StateCount]StateDef `yaml:"states"`
}

// State returns the definition for s.
func (c *CharacterDef) State(s StateID) StateDef {
	return c.States[s]
}

// Characters holds the definition of each player's character, indexed by player.
var Characters [2]CharacterDef

func init() {
	Characters = [2]CharacterDef{
		{States: [StateCount]StateDef{
			Idle:   {Frames: 8, FrameDelay: 8, Width: 45, Height: 45},
			Jump:   {Frames: 5, FrameDelay: 6, Width: 50, Height: 50},
			Attack: {Frames: 9, FrameDelay: 7, Width: 50, Height: 50},
		}},
		{States: [StateCount]StateDef{
			Idle:   {Frames: 8, FrameDelay: 8, Width: 50, Height: 50},
			Jump:   {Frames: 8, FrameDelay: 6, Width: 50, Height: 50},
			Attack: {Frames: 6, FrameDelay: 4, Width: 50, Height: 50},
		}},
	}
}
