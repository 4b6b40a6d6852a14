package parameter

// Render Depths
const (
	// DepthWorld is the default depth for world entities
	DepthWorld = 0

	// DepthOverlay draws over the world (bodies, indicator, HUD)
	DepthOverlay = 20
)

// Hover Text
const (
	// HoverTextTicksPerRune sets hover text lifetime relative to its length
	HoverTextTicksPerRune = 2

	// HoverTextWidth is the text box width in pixels
	HoverTextWidth = 100

	// HoverTextHeight is the text box height in pixels
	HoverTextHeight = 30
)

// Session Transitions
const (
	// BlurTicks is the length of the post-teleport blur effect
	BlurTicks = 10

	// DeathFadeTicks is the length of the respawn fade
	DeathFadeTicks = 48
)

// Default sheet names, resolved by the tile-sheet provider
const (
	SheetTiles = "wall.png"
	SheetMap   = "map.png"
)
