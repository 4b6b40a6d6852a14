package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/escape-artist/parameter"
)

// Phase kinds understood by the boss executor
const (
	PhaseMove = "move"
	PhaseDrop = "drop"
)

// Config is the complete tunable set for one session
// Zero sections in a TOML file keep their defaults (sparse override)
type Config struct {
	Timing    Timing            `toml:"timing"`
	Physics   Physics           `toml:"physics"`
	Character Character         `toml:"character"`
	Enemy     Enemy             `toml:"enemy"`
	Boss      Boss              `toml:"boss"`
	World     World             `toml:"world"`
	Particles Particles         `toml:"particles"`
	Audio     Audio             `toml:"audio"`
	Keys      map[string]string `toml:"keys"`
}

// Timing controls the fixed-timestep scheduler
type Timing struct {
	TickMS   int `toml:"tick_ms"`
	MaxSteps int `toml:"max_steps"`
}

// Tick returns the simulation step as a duration
func (t Timing) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// Physics holds the character movement constants
type Physics struct {
	Speed   int `toml:"speed"`
	Jump    int `toml:"jump"`
	Gravity int `toml:"gravity"`
}

// Character holds the starting state of the single player entity
type Character struct {
	MaxHealth int      `toml:"max_health"`
	StartRoom [2]int   `toml:"start_room"`
	StartX    int      `toml:"start_x"`
	StartY    int      `toml:"start_y"`
	Items     []string `toml:"items"`
}

// Order is one data-described movement unit; direction components are -1, 0 or 1
type Order struct {
	DX    int `toml:"dx"`
	DY    int `toml:"dy"`
	Ticks int `toml:"ticks"`
}

// Enemy holds patrol behaviour shared by every enemy
type Enemy struct {
	Health       int     `toml:"health"`
	LOSTiles     int     `toml:"los_tiles"`
	FlickerTicks int     `toml:"flicker_ticks"`
	Orders       []Order `toml:"orders"`
}

// Phase is one step of the boss choreography
type Phase struct {
	Kind     string `toml:"kind"`
	DX       int    `toml:"dx"`
	DY       int    `toml:"dy"`
	Ticks    int    `toml:"ticks"`
	Interval int    `toml:"interval"`
}

// Boss holds the boss stats and its phase list
type Boss struct {
	Health int     `toml:"health"`
	Speed  int     `toml:"speed"`
	Phases []Phase `toml:"phases"`
}

// World names the content assets
type World struct {
	MapSheet   string `toml:"map_sheet"`
	TileSheet  string `toml:"tile_sheet"`
	AssetDir   string `toml:"asset_dir"`
	DialogFile string `toml:"dialog_file"`
}

// Particles configures the ambient mote generator; rate 0 disables it
type Particles struct {
	Rate     float64 `toml:"rate"`
	Lifespan int     `toml:"lifespan"`
}

// Audio configures the sound manager
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Timing: Timing{
			TickMS:   int(parameter.GameUpdateInterval / time.Millisecond),
			MaxSteps: parameter.MaxStepsPerFrame,
		},
		Physics: Physics{
			Speed:   parameter.CharacterSpeed,
			Jump:    parameter.CharacterJumpImpulse,
			Gravity: parameter.Gravity,
		},
		Character: Character{
			MaxHealth: parameter.CharacterMaxHealth,
			StartX:    2 * parameter.TileSize,
			StartY:    2 * parameter.TileSize,
		},
		Enemy: Enemy{
			Health:       parameter.EnemyHealth,
			LOSTiles:     parameter.EnemySightTiles,
			FlickerTicks: parameter.EnemyDeathFlickerTicks,
			Orders: []Order{
				{DX: -1, DY: 0, Ticks: parameter.EnemyOrderTicks},
				{DX: 1, DY: 0, Ticks: parameter.EnemyOrderTicks},
			},
		},
		Boss: Boss{
			Health: parameter.BossHealth,
			Speed:  parameter.BossSpeed,
			Phases: []Phase{
				{Kind: PhaseMove, DX: 1, Ticks: 60},
				{Kind: PhaseDrop, Ticks: 90, Interval: parameter.BossDropInterval},
				{Kind: PhaseMove, DX: -1, Ticks: 60},
				{Kind: PhaseDrop, Ticks: 90, Interval: parameter.BossDropInterval},
			},
		},
		World: World{
			MapSheet:  parameter.SheetMap,
			TileSheet: parameter.SheetTiles,
			AssetDir:  "assets",
		},
		Particles: Particles{
			Rate:     0,
			Lifespan: parameter.ParticleLifespan,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Parse decodes TOML data over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// Lists replace the defaults wholesale rather than appending to them
	orders, phases := cfg.Enemy.Orders, cfg.Boss.Phases
	cfg.Enemy.Orders, cfg.Boss.Phases = nil, nil

	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config parse at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if cfg.Enemy.Orders == nil {
		cfg.Enemy.Orders = orders
	}
	if cfg.Boss.Phases == nil {
		cfg.Boss.Phases = phases
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a TOML file; an empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	return Parse(data)
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Timing.MaxSteps <= 0 {
		return fmt.Errorf("timing.max_steps must be positive, got %d", c.Timing.MaxSteps)
	}
	if c.Physics.Speed <= 0 || c.Physics.Speed >= parameter.TileSize {
		return fmt.Errorf("physics.speed must be in (0, %d), got %d", parameter.TileSize, c.Physics.Speed)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("physics.gravity must not be negative, got %d", c.Physics.Gravity)
	}
	if c.Physics.Jump < 0 {
		return fmt.Errorf("physics.jump must not be negative, got %d", c.Physics.Jump)
	}
	if c.Character.MaxHealth <= 0 {
		return fmt.Errorf("character.max_health must be positive, got %d", c.Character.MaxHealth)
	}
	if err := validateOrders(c.Enemy.Orders); err != nil {
		return err
	}
	if c.Enemy.Health <= 0 {
		return fmt.Errorf("enemy.health must be positive, got %d", c.Enemy.Health)
	}
	if c.Enemy.LOSTiles < 0 {
		return fmt.Errorf("enemy.los_tiles must not be negative, got %d", c.Enemy.LOSTiles)
	}
	if c.Enemy.FlickerTicks < 0 {
		return fmt.Errorf("enemy.flicker_ticks must not be negative, got %d", c.Enemy.FlickerTicks)
	}
	if err := validatePhases(c.Boss.Phases); err != nil {
		return err
	}
	if c.Boss.Health <= 0 {
		return fmt.Errorf("boss.health must be positive, got %d", c.Boss.Health)
	}
	if c.Boss.Speed < 0 {
		return fmt.Errorf("boss.speed must not be negative, got %d", c.Boss.Speed)
	}
	if c.World.MapSheet == "" || c.World.TileSheet == "" {
		return errors.New("world.map_sheet and world.tile_sheet are required")
	}
	if c.Particles.Rate < 0 || c.Particles.Rate > 1 {
		return fmt.Errorf("particles.rate must be in [0, 1], got %g", c.Particles.Rate)
	}
	if c.Particles.Rate > 0 && c.Particles.Lifespan <= 0 {
		return fmt.Errorf("particles.lifespan must be positive when particles are enabled, got %d", c.Particles.Lifespan)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}

func validateOrders(orders []Order) error {
	if len(orders) == 0 {
		return errors.New("enemy.orders must not be empty")
	}
	for i, o := range orders {
		if !unitComponent(o.DX) || !unitComponent(o.DY) || (o.DX == 0 && o.DY == 0) {
			return fmt.Errorf("enemy.orders[%d]: direction (%d,%d) must be a non-zero unit step", i, o.DX, o.DY)
		}
		if o.Ticks <= 0 {
			return fmt.Errorf("enemy.orders[%d]: ticks must be positive, got %d", i, o.Ticks)
		}
	}
	return nil
}

func validatePhases(phases []Phase) error {
	if len(phases) == 0 {
		return errors.New("boss.phases must not be empty")
	}
	for i, p := range phases {
		if p.Ticks <= 0 {
			return fmt.Errorf("boss.phases[%d]: ticks must be positive, got %d", i, p.Ticks)
		}
		switch p.Kind {
		case PhaseMove:
			if !unitComponent(p.DX) || !unitComponent(p.DY) {
				return fmt.Errorf("boss.phases[%d]: direction (%d,%d) out of range", i, p.DX, p.DY)
			}
		case PhaseDrop:
			if p.Interval <= 0 {
				return fmt.Errorf("boss.phases[%d]: drop interval must be positive, got %d", i, p.Interval)
			}
		default:
			return fmt.Errorf("boss.phases[%d]: unknown kind %q", i, p.Kind)
		}
	}
	return nil
}

func unitComponent(v int) bool {
	return v >= -1 && v <= 1
}
