package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Run is the session's main loop: the hub screen, the autosave ticker, and
// dispatch into the modal sub-screens. Blocks until the player quits or the
// screen closes.
func (s *Session) Run() {
	eventCh := s.events()
	autosave := time.NewTicker(AutosaveInterval)
	defer autosave.Stop()

	s.drawHub()
	for {
		select {
		case <-autosave.C:
			s.save()

		case ev, ok := <-eventCh:
			if !ok {
				s.save()
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Screen.Sync()
			case *tcell.EventKey:
				if s.handleHubKey(ev, eventCh) {
					s.save()
					return
				}
			}
			s.drawHub()
		}
	}
}

// handleHubKey runs one hub keypress, returning true to quit.
func (s *Session) handleHubKey(ev *tcell.EventKey, eventCh <-chan tcell.Event) bool {
	s.status = ""
	if ev.Key() == tcell.KeyEscape {
		return s.confirmQuit(eventCh)
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return s.confirmQuit(eventCh)
	case 'm', 'M':
		s.runMissions(eventCh)
	case 'r', 'R':
		s.runRoster(eventCh)
	case 'c', 'C':
		s.runRecruit(eventCh)
	case 'b', 'B':
		s.runMarket(eventCh)
	case 'e', 'E':
		s.runExplore(eventCh)
	case 'd', 'D':
		if text, err := s.Game.Meditate(); err != nil {
			s.status = prettyErr(err)
		} else {
			s.status = text
		}
	case 'u', 'U':
		if up, ok := s.Game.Ledger.NextUpgrade(s.Game.Catalog); !ok {
			s.status = "The dungeon can grow no further."
		} else if err := s.Game.UpgradeDungeon(); err != nil {
			s.status = prettyErr(err)
		} else {
			s.status = fmt.Sprintf("The dungeon becomes the %s.", up.Name)
		}
	case 'z', 'Z':
		results := s.Game.Rest()
		for _, res := range results {
			if len(res.Log) > 0 {
				s.runPlayback(res, eventCh)
			}
		}
		s.status = fmt.Sprintf("Day %d dawns. %d missions resolved.", s.Game.Ledger.Day, len(results))
		s.save()
	}
	if s.Game.PendingEvent() != nil {
		s.runEvent(eventCh)
	}
	return false
}

// drawHub renders the main screen: header, menu, journal.
func (s *Session) drawHub() {
	screen := s.Screen
	screen.Clear()
	st := s.Game.Status()

	putText(screen, 0, 0, "🏰 MASTER OF SHADOWS", styleTitle)
	header := fmt.Sprintf("Day %d  💰 %d  ⭐ %d  ⚡ %d/%d  Dungeon Lv%d  Lair %d/%d",
		st.Day, st.Gold, st.Reputation, st.Energy, st.MaxEnergy,
		st.DungeonLevel, st.RosterSize, st.MaxMonsters)
	putText(screen, 0, 1, header, styleAccent)
	if st.InFlight > 0 {
		putText(screen, 0, 2, fmt.Sprintf("%d raiding parties in the field; rest to hear their fate.", st.InFlight), styleDim)
	}
	hline(screen, 3)

	menu := []string{
		"[m] Missions      [r] Roster        [c] Recruit",
		"[b] Market        [e] Explore       [d] Meditate",
		"[u] Upgrade lair  [z] Rest (end day)",
		"",
		"[q] Save and quit",
	}
	for i, line := range menu {
		putText(screen, 2, 5+i, line, styleDefault)
	}

	if s.status != "" {
		putText(screen, 0, 11, s.status, styleGood)
	}

	hline(screen, 13)
	putText(screen, 0, 14, "Journal", styleTitle)
	_, sh := screen.Size()
	for i, entry := range s.Game.Journal {
		y := 15 + i
		if y >= sh {
			break
		}
		putText(screen, 2, y, entry, styleDim)
	}
	screen.Show()
}

// confirmQuit asks before ending the session.
func (s *Session) confirmQuit(eventCh <-chan tcell.Event) bool {
	for {
		screen := s.Screen
		screen.Clear()
		sw, sh := screen.Size()
		prompt := " Save and abandon the throne? (y/n) "
		w := len([]rune(prompt)) + 4
		drawBox(screen, (sw-w)/2, sh/2-1, w, 3, "")
		putText(screen, (sw-w)/2+2, sh/2, prompt, styleTitle)
		screen.Show()

		ev, ok := <-eventCh
		if !ok {
			return true
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			default:
				return false
			}
		}
	}
}

// prettyErr strips wrapping noise for the status line.
func prettyErr(err error) string {
	return "✗ " + err.Error()
}
