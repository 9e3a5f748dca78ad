package config

import "image/color"

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"moveSpeed"` // Pixels per tick while a move intent is held
	JumpForce float64 `yaml:"jumpForce"` // Vertical impulse applied on jump (negative = up)

	// Health
	MaxHP int `yaml:"maxHP"`

	// Timers (ticks)
	AttackFrames   int `yaml:"attackFrames"`   // Length of the attack window
	HitFlashFrames int `yaml:"hitFlashFrames"` // Length of the hit flash after taking damage

	// Sprite scale applied to every animation-state box
	Scale float64 `yaml:"scale"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// MeleeGateMode decides what stops a sustained melee overlap from dealing damage every tick.
type MeleeGateMode int

const (
	// MeleeGateHitFlash blocks melee damage while the opponent is still flashing from a hit.
	MeleeGateHitFlash MeleeGateMode = iota
	// MeleeGatePerAttack lets each attack action connect at most once.
	MeleeGatePerAttack
)

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	MeleeDamage    int           `yaml:"meleeDamage"`
	MeleeKnockback float64       `yaml:"meleeKnockback"`
	MeleeGate      MeleeGateMode `yaml:"meleeGate"`
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"`     // Horizontal pixels per tick
	Damage    int     `yaml:"damage"`    // Damage dealt on hit
	Knockback float64 `yaml:"knockback"` // Knockback on hit, scaled by projectile direction
	Width     float64 `yaml:"width"`     // Collision width
	Height    float64 `yaml:"height"`    // Collision height
	OffsetX   float64 `yaml:"offsetX"`   // Spawn offset in front of the fighter (scaled by facing)
	OffsetY   float64 `yaml:"offsetY"`   // Spawn offset from the fighter's feet
	SpinSpeed float64 `yaml:"spinSpeed"` // Degrees of rotation per tick
}

// ArenaConfig contains the play-field layout used when no arena map is available
type ArenaConfig struct {
	Padding       float64    `yaml:"padding"`     // Horizontal distance fighters keep from screen edges
	GroundRatio   float64    `yaml:"groundRatio"` // Ground line as a fraction of viewport height
	SpawnFraction [2]float64 `yaml:"spawnFraction"`
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	// HUD dimensions
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	HealthBarTop    float64

	// HP thresholds for bar color
	HealthHighThreshold int
	HealthLowThreshold  int

	// Seconds for the displayed HP to catch up with the real value
	HealthDrainSeconds float32
	BannerFadeSeconds  float32

	// Colors
	HealthBarBgColor color.RGBA
	HealthHighColor  color.RGBA
	HealthMidColor   color.RGBA
	HealthLowColor   color.RGBA
	SkyColor         color.RGBA
	FloorColor       color.RGBA
	GroundLineColor  color.RGBA
	HitFlashTint     [4]float32 // color scale while flashing
	BannerColor      color.RGBA
	BannerOverlay    color.RGBA
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast to return to normal scale
}

// CameraConfig contains screen shake configuration
type CameraConfig struct {
	HitShakeIntensity float64 // pixels
	HitShakeFrames    int
	KOShakeIntensity  float64
	KOShakeFrames     int
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// MatchConfig contains match flow configuration
type MatchConfig struct {
	PlayerNames [2]string
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Projectile ProjectileConfig
var Arena ArenaConfig
var UI UIConfig
var SquashStretch SquashStretchConfig
var Camera CameraConfig
var Pause PauseConfig
var Match MatchConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	Green        = color.RGBA{R: 50, G: 255, B: 50, A: 255}
	Blue         = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 204}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// PlayerColors tint each player's labels and projectiles
var PlayerColors = [2]color.RGBA{LightRed, Blue}

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Sparring",
	}

	Physics = PhysicsConfig{
		Gravity: 0.8,
	}

	Fighter = FighterConfig{
		MoveSpeed:      8,
		JumpForce:      -20,
		MaxHP:          100,
		AttackFrames:   30, // 500ms at 60 TPS
		HitFlashFrames: 12, // 200ms at 60 TPS
		Scale:          1.8,
	}

	Combat = CombatConfig{
		MeleeDamage:    10,
		MeleeKnockback: 20,
		MeleeGate:      MeleeGateHitFlash,
	}

	Projectile = ProjectileConfig{
		Speed:     15,
		Damage:    10,
		Knockback: 10,
		Width:     45,
		Height:    30,
		OffsetX:   40,
		OffsetY:   -30,
		SpinSpeed: 12,
	}

	Arena = ArenaConfig{
		Padding:       50,
		GroundRatio:   1 / 1.25,
		SpawnFraction: [2]float64{0.3, 0.7},
	}

	UI = UIConfig{
		HealthBarWidth:      250,
		HealthBarHeight:     30,
		HealthBarMargin:     50,
		HealthBarTop:        40,
		HealthHighThreshold: 70,
		HealthLowThreshold:  30,
		HealthDrainSeconds:  0.35,
		BannerFadeSeconds:   0.5,
		HealthBarBgColor:    DarkGray,
		HealthHighColor:     Green,
		HealthMidColor:      Orange,
		HealthLowColor:      Red,
		SkyColor:            color.RGBA{R: 24, G: 28, B: 48, A: 255},
		FloorColor:          color.RGBA{R: 52, G: 44, B: 40, A: 255},
		GroundLineColor:     color.RGBA{R: 120, G: 110, B: 100, A: 255},
		HitFlashTint:        [4]float32{150.0 / 255, 50.0 / 255, 145.0 / 255, 200.0 / 255},
		BannerColor:         White,
		BannerOverlay:       BlackOverlay,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.4,
		LandScaleX: 1.4,
		LandScaleY: 0.7,
		LerpSpeed:  0.15,
	}

	Camera = CameraConfig{
		HitShakeIntensity: 4,
		HitShakeFrames:    8,
		KOShakeIntensity:  12,
		KOShakeFrames:     30,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}

	Match = MatchConfig{
		PlayerNames: [2]string{"Player 1", "Player 2"},
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
