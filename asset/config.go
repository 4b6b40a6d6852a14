package asset

// DefaultConfig is a commented TOML file with every tunable at its default value
const DefaultConfig = `# escape-artist configuration
# Every section is optional; missing keys keep their defaults.

[timing]
tick_ms = 20      # simulation step
max_steps = 5     # catch-up steps per frame before the backlog is dropped

[physics]
speed = 5         # horizontal pixels per tick, must stay below the tile size
jump = 15         # initial upward speed
gravity = 1       # downward acceleration per tick

[character]
max_health = 3
start_room = [0, 0]
start_x = 40
start_y = 40
# items = ["replicator", "escaper"]

[enemy]
health = 1
los_tiles = 3     # sight line length
flicker_ticks = 50

[[enemy.orders]]
dx = -1
dy = 0
ticks = 60

[[enemy.orders]]
dx = 1
dy = 0
ticks = 60

[boss]
health = 5
speed = 2

[[boss.phases]]
kind = "move"
dx = 1
ticks = 60

[[boss.phases]]
kind = "drop"
ticks = 90
interval = 15

[[boss.phases]]
kind = "move"
dx = -1
ticks = 60

[[boss.phases]]
kind = "drop"
ticks = 90
interval = 15

[world]
map_sheet = "map.png"
tile_sheet = "wall.png"
asset_dir = "assets"   # files here override the built-in art
dialog_file = ""       # YAML narration merged over the built-in script

[particles]
rate = 0.0        # spawn chance per tick, 0 disables
lifespan = 150

[audio]
enabled = true
volume = 0.5

[keys]
# key = "action"; actions: left right up down jump teleport confirm quit toggle_mute toggle_pause none
# "none" unbinds a default key
`
