package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"shadowmaster/internal/combat"
)

// playbackDelay paces the battle transcript reveal.
const playbackDelay = 250 * time.Millisecond

// runPlayback replays a skirmish transcript line by line. Any key skips to
// the end; a second key closes the summary.
func (s *Session) runPlayback(res combat.Result, eventCh <-chan tcell.Event) {
	shown := 0
	done := false

	for {
		s.drawPlayback(res, shown, done)

		if !done {
			select {
			case <-time.After(playbackDelay):
				shown++
				if shown >= len(res.Log) {
					done = true
				}
				continue
			case ev, ok := <-eventCh:
				if !ok {
					return
				}
				switch ev.(type) {
				case *tcell.EventResize:
					s.Screen.Sync()
				case *tcell.EventKey:
					shown = len(res.Log)
					done = true
				}
				continue
			}
		}

		ev, ok := <-eventCh
		if !ok {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			return
		}
	}
}

func (s *Session) drawPlayback(res combat.Result, shown int, done bool) {
	screen := s.Screen
	screen.Clear()
	_, sh := screen.Size()

	putText(screen, 0, 0, "⚔️ THE BATTLE", styleTitle)
	hline(screen, 1)

	// Show the tail of the transcript that fits above the summary.
	visible := res.Log
	if shown < len(visible) {
		visible = visible[:shown]
	}
	space := sh - 6
	if space < 1 {
		space = 1
	}
	if len(visible) > space {
		visible = visible[len(visible)-space:]
	}
	for i, line := range visible {
		putText(screen, 1, 2+i, line, styleDefault)
	}

	if done {
		hline(screen, sh-4)
		style := styleGood
		if !res.Success {
			style = styleBad
		}
		putText(screen, 0, sh-3, s.Game.Catalog.NarrativeLine(res.Outcome), style)
		summary := fmt.Sprintf("+%d💰  +%d⭐  +%d xp", res.Gold, res.Reputation, res.Experience)
		if len(res.Casualties) > 0 {
			summary += fmt.Sprintf("   %d wounded", len(res.Casualties))
		}
		if res.ItemDrop != "" {
			if def, ok := s.Game.Catalog.Item(res.ItemDrop); ok {
				summary += fmt.Sprintf("   looted %s %s", def.Emoji, def.Name)
			}
		}
		putText(screen, 0, sh-2, summary, styleAccent)
		putText(screen, 0, sh-1, "[any key to continue]", styleDim)
	} else {
		putText(screen, 0, sh-1, "[any key to skip]", styleDim)
	}
	screen.Show()
}
