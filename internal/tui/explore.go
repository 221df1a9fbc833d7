package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// exploreSites maps menu order to discovery keys.
var exploreSites = []struct {
	Key   string
	Label string
}{
	{"ruins", "🏚️ The Ruins      (old coin, old bones)"},
	{"whispers", "🌫️ The Whispers   (secrets, and sometimes visitors)"},
	{"depths", "🕳️ The Depths     (silver veins and wild things)"},
}

// runExplore picks a discovery site and shows what was found.
func (s *Session) runExplore(eventCh <-chan tcell.Event) {
	cursor := 0
	status := ""

	for {
		s.drawExplore(status, cursor)

		ev, ok := <-eventCh
		if !ok {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return
			case tcell.KeyUp:
				if cursor > 0 {
					cursor--
				}
			case tcell.KeyDown:
				if cursor < len(exploreSites)-1 {
					cursor++
				}
			case tcell.KeyEnter:
				status = s.explore(cursor)
				if s.Game.PendingEvent() != nil {
					return
				}
			default:
				switch r := ev.Rune(); {
				case r == 'q' || r == 'Q':
					return
				case r == 'k' || r == 'K':
					if cursor > 0 {
						cursor--
					}
				case r == 'j' || r == 'J':
					if cursor < len(exploreSites)-1 {
						cursor++
					}
				case r >= '1' && r <= '3':
					status = s.explore(int(r - '1'))
					if s.Game.PendingEvent() != nil {
						return
					}
				}
			}
		}
	}
}

func (s *Session) explore(i int) string {
	if i < 0 || i >= len(exploreSites) {
		return ""
	}
	text, err := s.Game.Explore(exploreSites[i].Key)
	if err != nil {
		return prettyErr(err)
	}
	return text
}

func (s *Session) drawExplore(status string, cursor int) {
	screen := s.Screen
	screen.Clear()
	putText(screen, 0, 0, fmt.Sprintf("🔦 EXPLORE  [⚡ %d/%d, each trip costs 1]", s.Game.Ledger.Energy, s.Game.Ledger.MaxEnergy), styleTitle)
	putText(screen, 0, 1, "[j/k] Move  [1-3/Enter] Go  [Esc] Back", styleDim)
	hline(screen, 2)

	for i, site := range exploreSites {
		style := styleDefault
		pfx := "  "
		if i == cursor {
			style = styleHighlight
			pfx = "► "
		}
		putText(screen, 0, 4+i, fmt.Sprintf("%s[%d] %s", pfx, i+1, site.Label), style)
	}

	hline(screen, 8)
	if status != "" {
		putText(screen, 0, 9, status, styleGood)
	}
	screen.Show()
}
