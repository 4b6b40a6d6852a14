package parameter

// Character Movement
const (
	// CharacterSpeed is horizontal walking speed and ladder climb speed in px/tick
	CharacterSpeed = 5

	// CharacterJumpImpulse is the upward velocity applied on jump
	CharacterJumpImpulse = 15

	// Gravity is added to vertical velocity each tick
	Gravity = 1

	// MaxFallSpeed keeps per-tick vertical travel below one tile
	MaxFallSpeed = TileSize - 1
)

// Character Health
const (
	CharacterMaxHealth = 3

	// CharacterMinHealth is the floor health can reach; anything below zero respawns
	CharacterMinHealth = -1

	// FlickerTicks is the post-hurt blink duration
	FlickerTicks = 50
)

// Inventory item tags
const (
	ItemReplicator = "replicator"
	ItemEscaper    = "escaper"
	ItemTreasure   = "treasure"
	ItemSignpost1  = "signpost1"
	ItemSignpost2  = "signpost2"
)
