package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation step (world tick)
	GameUpdateInterval = 20 * time.Millisecond

	// MaxStepsPerFrame bounds catch-up steps after a stall so the loop cannot spiral
	MaxStepsPerFrame = 5
)

// World Geometry
const (
	// TileSize is the side of one tile in pixels; every entity footprint is one tile
	TileSize = 20

	// RoomSize is the number of tiles per room side
	RoomSize = 20

	// RoomPixels is the side of a room in pixels
	RoomPixels = TileSize * RoomSize

	// RoomSpan is the largest top-left coordinate a tile-sized entity may occupy plus one;
	// crossing it (or going below zero) moves to the neighbouring room
	RoomSpan = TileSize * (RoomSize - 1)

	// CollisionInset is the pixel inset applied to footprints for tile sampling
	CollisionInset = 2
)

// Event Queue
const (
	// EventQueueSize is the initial capacity of the per-tick event queue
	EventQueueSize = 16
)

// Input
const (
	// KeyHoldTimeout is how long a key counts as held after its last terminal event;
	// terminals report presses and auto-repeats only, so release is inferred from silence
	KeyHoldTimeout = 180 * time.Millisecond

	// KeyQueueSize bounds the pending terminal event channel
	KeyQueueSize = 64
)
