package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/escape-artist/engine"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyEntry
	}{
		{"arrow", specialKey(tcell.KeyLeft), KeyEntry{Action: engine.ActionLeft}},
		{"letter", runeKey('d'), KeyEntry{Action: engine.ActionRight}},
		{"shifted letter", runeKey('D'), KeyEntry{Action: engine.ActionRight}},
		{"space", runeKey(' '), KeyEntry{Action: engine.ActionJump}},
		{"enter", specialKey(tcell.KeyEnter), KeyEntry{Action: engine.ActionConfirm}},
		{"mute", runeKey('m'), KeyEntry{Command: CommandToggleMute}},
		{"pause", runeKey('p'), KeyEntry{Command: CommandTogglePause}},
		{"unbound", runeKey('z'), KeyEntry{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Lookup(tt.ev))
		})
	}
}

func TestKeyConfigOverride(t *testing.T) {
	kt, err := NewKeyTable(map[string]string{
		"j":     "jump",
		"space": "teleport",
		"Home":  "quit",
		"q":     "none",
	})
	require.NoError(t, err)

	assert.Equal(t, engine.ActionJump, kt.Lookup(runeKey('j')).Action)
	assert.Equal(t, engine.ActionTeleport, kt.Lookup(runeKey(' ')).Action)
	assert.Equal(t, engine.ActionQuit, kt.Lookup(specialKey(tcell.KeyHome)).Action)
	assert.Equal(t, KeyEntry{}, kt.Lookup(runeKey('q')))
	// Untouched defaults survive
	assert.Equal(t, engine.ActionLeft, kt.Lookup(runeKey('a')).Action)

	assert.Equal(t, []string{"Tab", "e", "space", "x"}, kt.Keys(engine.ActionTeleport))
	// The default table is not modified by a merge
	assert.Equal(t, engine.ActionQuit, DefaultKeyTable().Lookup(runeKey('q')).Action)
}

func TestKeyConfigErrors(t *testing.T) {
	_, err := LoadKeyConfig(map[string]string{"x": "fly"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = LoadKeyConfig(map[string]string{"xyz": "jump"})
	assert.ErrorContains(t, err, "invalid key")
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	assert.Contains(t, names, "teleport")
	assert.Contains(t, names, "none")
	assert.IsIncreasing(t, names)
}

func newTracker() (*Tracker, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	return NewTracker(DefaultKeyTable(), clock, 100*time.Millisecond), clock
}

func TestTrackerPressHoldRelease(t *testing.T) {
	tr, clock := newTracker()

	tr.HandleKey(runeKey('d'))
	tr.Expire()
	assert.True(t, tr.Held(engine.ActionRight))
	assert.True(t, tr.JustPressed(engine.ActionRight))
	tr.Flush()

	// Auto-repeat keeps the hold alive without a new press edge
	clock.Advance(60 * time.Millisecond)
	tr.HandleKey(runeKey('d'))
	clock.Advance(60 * time.Millisecond)
	tr.Expire()
	assert.True(t, tr.Held(engine.ActionRight))
	assert.False(t, tr.JustPressed(engine.ActionRight))
	assert.False(t, tr.Released(engine.ActionRight))
	tr.Flush()

	clock.Advance(40 * time.Millisecond)
	tr.Expire()
	assert.False(t, tr.Held(engine.ActionRight))
	assert.True(t, tr.Released(engine.ActionRight))
	assert.False(t, tr.Released(engine.ActionRight), "release is consumed by the first read")
}

func TestTrackerFlushDropsEdges(t *testing.T) {
	tr, clock := newTracker()
	tr.HandleKey(runeKey('e'))
	clock.Advance(time.Second)
	tr.Expire()
	tr.Flush()
	assert.False(t, tr.JustPressed(engine.ActionTeleport))
	assert.False(t, tr.Released(engine.ActionTeleport))
}

func TestTrackerCommandsDoNotHold(t *testing.T) {
	tr, _ := newTracker()
	assert.Equal(t, CommandToggleMute, tr.HandleKey(runeKey('m')))
	assert.Equal(t, CommandNone, tr.HandleKey(runeKey('z')))
	for a := engine.Action(0); int(a) < engine.ActionCount; a++ {
		assert.False(t, tr.Held(a))
	}
}

func TestTrackerReset(t *testing.T) {
	tr, _ := newTracker()
	tr.HandleKey(specialKey(tcell.KeyLeft))
	tr.Reset()
	assert.False(t, tr.Held(engine.ActionLeft))
	assert.False(t, tr.JustPressed(engine.ActionLeft))
}
