package parameter

// Enemy Entity
const (
	EnemyHealth = 1

	// HeadingScale is the fixed-point scale of enemy headings (tenths of a pixel per tick)
	HeadingScale = 10

	// HeadingStep is how far the heading eases toward the order direction each tick
	HeadingStep = 1

	// EnemyOrderTicks is the default duration of each patrol order
	EnemyOrderTicks = 60

	// EnemySightTiles is the line-of-sight reach along the heading
	EnemySightTiles = 3

	// EnemyDeathFlickerTicks is the blink countdown before a dead enemy is removed
	EnemyDeathFlickerTicks = 50
)

// Replicated Body
const (
	// BodyMaxAge removes a dropped body
	BodyMaxAge = 150

	// BodyFadeAge starts the blink before removal
	BodyFadeAge = 100
)

// Boss Entity
const (
	BossHealth = 5

	// BossSpeed is the boss movement in px/tick during move phases
	BossSpeed = 2

	// BossSize is the boss footprint side in pixels
	BossSize = TileSize * 2

	// BossDropInterval is the default tick gap between drops in a drop phase
	BossDropInterval = 15

	// BossLaneMin and BossLaneMax bound the drop columns (inside the outer walls)
	BossLaneMin = 1
	BossLaneMax = RoomSize - 2
)
