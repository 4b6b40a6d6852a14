package entity

import (
	"github.com/lixenwraith/escape-artist/config"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

const T = parameter.TileSize

// floorRow is the solid row every fixture room stands on; standY rests on it
const (
	floorRow = 3
	standY   = floorRow*T - T + 1
)

// fakeRooms is an in-memory room model with a sparse wall set
type fakeRooms struct {
	coord   engine.RoomCoord
	walls   map[vmath.Point]bool
	missing map[engine.RoomCoord]bool
	crossed []vmath.Point
	entered []engine.RoomCoord
}

func newFakeRooms() *fakeRooms {
	r := &fakeRooms{
		walls:   make(map[vmath.Point]bool),
		missing: make(map[engine.RoomCoord]bool),
	}
	for c := 0; c < parameter.RoomSize; c++ {
		r.walls[vmath.Point{X: c, Y: floorRow}] = true
	}
	return r
}

func (r *fakeRooms) IsWall(col, row int) bool {
	if col < 0 || row < 0 || col >= parameter.RoomSize || row >= parameter.RoomSize {
		return false
	}
	return r.walls[vmath.Point{X: col, Y: row}]
}

func (r *fakeRooms) Coord() engine.RoomCoord { return r.coord }

func (r *fakeRooms) HasRoom(c engine.RoomCoord) bool { return !r.missing[c] }

func (r *fakeRooms) CrossBoundary(dx, dy int) error {
	r.crossed = append(r.crossed, vmath.Point{X: dx, Y: dy})
	r.coord = r.coord.Add(dx, dy)
	return nil
}

func (r *fakeRooms) Enter(c engine.RoomCoord) error {
	r.entered = append(r.entered, c)
	r.coord = c
	return nil
}

type fixture struct {
	env    *Env
	rooms  *fakeRooms
	char   *Character
	in     *engine.ScriptedInput
	audio  *engine.RecordingAudio
	dialog *engine.StubDialog
}

// newFixture builds a session-less environment with the character standing at (2T, standY)
func newFixture() *fixture {
	rooms := newFakeRooms()
	audio := &engine.RecordingAudio{}
	dialog := &engine.StubDialog{}
	env := &Env{
		Reg:     engine.NewRegistry(),
		Terrain: rooms,
		Audio:   audio,
		Dialog:  dialog,
		RNG:     vmath.NewFastRand(7),
		Config:  config.Default(),
		Sheet:   parameter.SheetTiles,
	}
	env.Config.Character.StartY = standY
	c := NewCharacter(env, rooms)
	return &fixture{env: env, rooms: rooms, char: c, in: &engine.ScriptedInput{}, audio: audio, dialog: dialog}
}

// tick runs one registry pass and one character step, like the session does
func (f *fixture) tick() Outcome {
	f.env.Reg.UpdateAll()
	out, err := f.char.Update(f.in)
	if err != nil {
		panic(err)
	}
	f.in.Flush()
	return out
}

// step runs only the character
func (f *fixture) step() Outcome {
	out, err := f.char.Update(f.in)
	if err != nil {
		panic(err)
	}
	f.in.Flush()
	return out
}

// messages returns all live hover text in insertion order
func (f *fixture) messages() []string {
	var out []string
	for _, e := range f.env.Reg.Query(func(e engine.Entity) bool { _, ok := e.(*HoverText); return ok }) {
		out = append(out, e.(*HoverText).Text())
	}
	return out
}

func ofType[E engine.Entity](reg *engine.Registry) []E {
	var out []E
	for _, e := range reg.Query(func(engine.Entity) bool { return true }) {
		if typed, ok := e.(E); ok {
			out = append(out, typed)
		}
	}
	return out
}
