package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/escape-artist/audio"
	"github.com/lixenwraith/escape-artist/dialog"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/entity"
	"github.com/lixenwraith/escape-artist/game"
	"github.com/lixenwraith/escape-artist/input"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/render"
)

const (
	victoryText = "You escaped. For real this time. (q to quit)"
	pausedText  = "Paused. (p to resume)"
)

// app owns the terminal loop: key events feed the tracker, frame ticks run
// whole simulation steps and redraw
type app struct {
	screen  tcell.Screen
	session *game.Session
	player  *dialog.Player
	tracker *input.Tracker
	sched   *game.Scheduler
	term    *render.Terminal
	mixer   *audio.SoundManager // nil when silent

	// clock drives the scheduler; paused by the player or while the terminal is unfocused
	clock      *engine.PausableClock
	autoPaused bool
}

func (a *app) loop() error {
	a.term.SetGlyph(entity.ParticleSheet, '·')

	events := make(chan tcell.Event, parameter.KeyQueueSize)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handle(ev)

		case <-ticker.C:
			done, err := a.advance(a.sched.Steps())
			if err != nil {
				return err
			}
			if done {
				log.Printf("session %s: quit after %d ticks", a.session.ID, a.session.Ticks())
				return nil
			}
			if err := a.frame(); err != nil {
				return err
			}
		}
	}
}

func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.tracker.HandleKey(ev) {
		case input.CommandToggleMute:
			if a.mixer != nil {
				log.Printf("audio: muted=%v", a.mixer.ToggleMute())
			}
		case input.CommandTogglePause:
			a.autoPaused = false
			log.Printf("session %s: paused=%v", a.session.ID, a.clock.Toggle())
		}
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventFocus:
		switch {
		case !ev.Focused && !a.clock.IsPaused():
			a.tracker.Reset()
			a.clock.Pause()
			a.autoPaused = true
		case ev.Focused && a.autoPaused:
			a.clock.Resume()
			a.autoPaused = false
		}
	}
}

// advance runs n simulation steps; done reports a quit request
func (a *app) advance(n int) (done bool, err error) {
	for range n {
		a.tracker.Expire()
		if err := a.session.Tick(a.tracker); err != nil {
			return false, err
		}
		if a.session.Done() {
			return true, nil
		}
	}
	return false, nil
}

func (a *app) frame() error {
	a.term.Begin()
	if err := a.session.Render(a.term); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	switch a.session.State() {
	case game.StateBlurry:
		a.term.Blur(a.session.Intensity())
	case game.StateDeath:
		a.term.Fade(a.session.Intensity())
	}

	if line, ok := a.player.Current(); ok {
		text := line.Text
		if line.Speaker != "" {
			text = line.Speaker + ": " + text
		}
		a.term.Panel(text+"  [Enter]", render.ColorDialogFg, render.ColorDialogBg)
	} else {
		a.term.Panel(a.statusText(), render.ColorStatusFg, render.ColorBackground)
	}
	a.term.Show()
	return nil
}

func (a *app) statusText() string {
	if a.session.State() == game.StateVictory {
		return victoryText
	}
	if a.clock.IsPaused() {
		return pausedText
	}
	c := a.session.Character()
	text := fmt.Sprintf("room %s | gold %d", a.session.World().Coord(), c.Gold())
	if c.HasReplicator() {
		text += " | replicator"
	}
	if c.HasEscaper() {
		text += " | escaper"
	}
	return text
}
