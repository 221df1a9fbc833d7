package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"shadowmaster/internal/game"
	"shadowmaster/internal/save"
)

// AutosaveInterval is how often a running session writes its snapshot.
const AutosaveInterval = 30 * time.Second

// Session binds one player's screen to their game state and save file.
type Session struct {
	Screen tcell.Screen
	Game   *game.Game
	Store  *save.Store
	Name   string

	// status is the one-line feedback under the hub menu.
	status string
}

// NewSession wires a session together.
func NewSession(screen tcell.Screen, g *game.Game, store *save.Store, name string) *Session {
	return &Session{Screen: screen, Game: g, Store: store, Name: name}
}

// events starts the input reader goroutine. The channel closes when the
// screen does.
func (s *Session) events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.Screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// save writes the current snapshot, swallowing nothing: failures land in the
// status line.
func (s *Session) save() {
	if s.Store == nil {
		return
	}
	if err := s.Store.Save(s.Game.Snapshot()); err != nil {
		s.status = "Save failed: " + err.Error()
	}
}
