package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/escape-artist/asset"
	"github.com/lixenwraith/escape-artist/config"
	"github.com/lixenwraith/escape-artist/dialog"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/game"
	"github.com/lixenwraith/escape-artist/input"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/render"
	"github.com/lixenwraith/escape-artist/status"
)

func newApp(t *testing.T) (*app, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(render.ViewCols, render.ViewRows+render.PanelRows)

	script, err := dialog.Default()
	require.NoError(t, err)
	player := dialog.NewPlayer(script)
	sheets := render.NewSheetCache(asset.FS(""), parameter.TileSize)

	sess, err := game.NewSession(game.Options{
		Config:  config.Default(),
		Sheets:  sheets,
		Dialog:  player,
		Metrics: status.NewRegistry(),
		Seed:    1,
	})
	require.NoError(t, err)

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	gameClock := engine.NewPausableClock(clock)
	return &app{
		screen:  screen,
		session: sess,
		player:  player,
		tracker: input.NewTracker(input.DefaultKeyTable(), clock, parameter.KeyHoldTimeout),
		sched:   game.NewScheduler(gameClock, parameter.GameUpdateInterval, parameter.MaxStepsPerFrame),
		term:    render.NewTerminal(screen, sheets),
		clock:   gameClock,
	}, clock
}

func panelText(a *app) string {
	var out []rune
	for x := 0; x < render.ViewCols; x++ {
		out = append(out, a.term.Buffer().At(x, render.ViewRows).Rune)
	}
	return string(out)
}

func TestAppShowsOpeningNarration(t *testing.T) {
	a, _ := newApp(t)
	require.Equal(t, game.StateDialog, a.session.State())
	require.NoError(t, a.frame())
	assert.Contains(t, panelText(a), "Narrator: You are the")
}

func TestAppStatusAfterNarration(t *testing.T) {
	a, _ := newApp(t)
	for a.player.Advance() {
	}
	done, err := a.advance(1)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, game.StateNormal, a.session.State())

	require.NoError(t, a.frame())
	assert.Contains(t, panelText(a), "room 0,0 | gold 0")
}

func TestAppQuitOnRelease(t *testing.T) {
	a, clock := newApp(t)
	a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	done, err := a.advance(1)
	require.NoError(t, err)
	assert.False(t, done, "quit fires on release, not press")

	clock.Advance(parameter.KeyHoldTimeout)
	done, err = a.advance(3)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, a.session.Done())
}

func TestAppHandlesNonKeyEvents(t *testing.T) {
	a, _ := newApp(t)
	a.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.True(t, a.tracker.Held(engine.ActionRight))

	a.handle(tcell.NewEventFocus(false))
	assert.False(t, a.tracker.Held(engine.ActionRight))

	// Mute without a mixer is a no-op
	a.handle(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	a.handle(tcell.NewEventResize(80, 24))
}

func TestAppPause(t *testing.T) {
	a, clock := newApp(t)
	for a.player.Advance() {
	}
	a.sched.Steps()

	a.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	require.True(t, a.clock.IsPaused())
	clock.Advance(time.Second)
	assert.Zero(t, a.sched.Steps(), "no steps accrue while paused")

	require.NoError(t, a.frame())
	assert.Contains(t, panelText(a), "Paused.")

	a.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	assert.False(t, a.clock.IsPaused())
	clock.Advance(parameter.GameUpdateInterval)
	assert.Equal(t, 1, a.sched.Steps())
}

func TestAppFocusPause(t *testing.T) {
	a, _ := newApp(t)
	a.handle(tcell.NewEventFocus(false))
	assert.True(t, a.clock.IsPaused())
	a.handle(tcell.NewEventFocus(true))
	assert.False(t, a.clock.IsPaused())

	// A manual pause survives a focus round trip
	a.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	a.handle(tcell.NewEventFocus(false))
	a.handle(tcell.NewEventFocus(true))
	assert.True(t, a.clock.IsPaused())
}
