package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var DefaultTuning []byte

// ErrInvalidTuning is returned when tuning values would break the simulation.
var ErrInvalidTuning = errors.New("invalid tuning")

// HPCap is the highest fighter.maxHP a tuning file may set.
const HPCap = 100

// Tuning is the subset of configuration that may be overridden from YAML.
// Keys missing from the document keep their current values.
type Tuning struct {
	Fighter    FighterConfig    `yaml:"fighter"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Combat     CombatConfig     `yaml:"combat"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Arena      ArenaConfig      `yaml:"arena"`
	Characters [2]CharacterDef  `yaml:"characters"`
}

// CurrentTuning returns a snapshot of the active configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Fighter:    Fighter,
		Physics:    Physics,
		Combat:     Combat,
		Projectile: Projectile,
		Arena:      Arena,
		Characters: Characters,
	}
}

// ApplyTuning parses a YAML document over the active configuration and
// installs the result if it validates. On error nothing is changed.
func ApplyTuning(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return err
	}

	Fighter = t.Fighter
	Physics = t.Physics
	Combat = t.Combat
	Projectile = t.Projectile
	Arena = t.Arena
	Characters = t.Characters
	return nil
}

// Validate checks every value the simulation divides by, steps with or clamps against.
func (t *Tuning) Validate() error {
	switch {
	case t.Fighter.MaxHP <= 0 || t.Fighter.MaxHP > HPCap:
		return fmt.Errorf("%w: fighter.maxHP must be in [1, %d], got %d", ErrInvalidTuning, HPCap, t.Fighter.MaxHP)
	case t.Fighter.MoveSpeed <= 0:
		return fmt.Errorf("%w: fighter.moveSpeed must be positive, got %v", ErrInvalidTuning, t.Fighter.MoveSpeed)
	case t.Fighter.JumpForce >= 0:
		return fmt.Errorf("%w: fighter.jumpForce must be negative (upward), got %v", ErrInvalidTuning, t.Fighter.JumpForce)
	case t.Fighter.AttackFrames <= 0, t.Fighter.HitFlashFrames <= 0:
		return fmt.Errorf("%w: fighter timers must be positive", ErrInvalidTuning)
	case t.Fighter.Scale <= 0:
		return fmt.Errorf("%w: fighter.scale must be positive, got %v", ErrInvalidTuning, t.Fighter.Scale)
	case t.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive, got %v", ErrInvalidTuning, t.Physics.Gravity)
	case t.Combat.MeleeDamage < 0, t.Projectile.Damage < 0:
		return fmt.Errorf("%w: damage must not be negative", ErrInvalidTuning)
	case t.Combat.MeleeGate != MeleeGateHitFlash && t.Combat.MeleeGate != MeleeGatePerAttack:
		return fmt.Errorf("%w: unknown combat.meleeGate %d", ErrInvalidTuning, t.Combat.MeleeGate)
	case t.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile.speed must be positive, got %v", ErrInvalidTuning, t.Projectile.Speed)
	case t.Projectile.Width <= 0, t.Projectile.Height <= 0:
		return fmt.Errorf("%w: projectile size must be positive", ErrInvalidTuning)
	case t.Arena.Padding < 0:
		return fmt.Errorf("%w: arena.padding must not be negative", ErrInvalidTuning)
	case t.Arena.GroundRatio <= 0 || t.Arena.GroundRatio > 1:
		return fmt.Errorf("%w: arena.groundRatio must be in (0, 1], got %v", ErrInvalidTuning, t.Arena.GroundRatio)
	}

	for player, c := range t.Characters {
		for state := StateID(0); state < StateCount; state++ {
			def := c.States[state]
			if def.Frames <= 0 || def.FrameDelay <= 0 || def.Width <= 0 || def.Height <= 0 {
				return fmt.Errorf("%w: characters[%d] %s needs positive frames, frameDelay, width and height",
					ErrInvalidTuning, player, state)
			}
		}
	}
	return nil
}

// UnmarshalYAML accepts the gate either by name or by number.
func (m *MeleeGateMode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "hitFlash":
		*m = MeleeGateHitFlash
		return nil
	case "perAttack":
		*m = MeleeGatePerAttack
		return nil
	}
	var n int
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("meleeGate %q: %w", value.Value, err)
	}
	*m = MeleeGateMode(n)
	return nil
}
