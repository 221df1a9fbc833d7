package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"shadowmaster/internal/game"
)

// runMarket is the black-market equipment screen.
func (s *Session) runMarket(eventCh <-chan tcell.Event) {
	cursor := 0
	status := ""

	for {
		views := s.Game.MarketViews()
		if cursor >= len(views) {
			cursor = len(views) - 1
		}
		s.drawMarket(views, cursor, status)

		ev, ok := <-eventCh
		if !ok {
			return
		}
		status = ""
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
				if cursor < len(views)-1 {
					cursor++
				}
			case tcell.KeyEnter:
				status = s.buy(views, cursor)
			default:
				switch r := ev.Rune(); {
				case r == 'q' || r == 'Q':
					return
				case r == 'k' || r == 'K':
					if cursor > 0 {
						cursor--
					}
				case r == 'j' || r == 'J':
					if cursor < len(views)-1 {
						cursor++
					}
				}
			}
		}
	}
}

func (s *Session) buy(views []game.MarketView, cursor int) string {
	if cursor < 0 || cursor >= len(views) {
		return "Nothing selected."
	}
	v := views[cursor]
	if err := s.Game.BuyEquipment(v.Key); err != nil {
		return prettyErr(err)
	}
	return fmt.Sprintf("Bought %s %s. (%d💰 left)", v.Emoji, v.Name, s.Game.Ledger.Gold)
}

func (s *Session) drawMarket(views []game.MarketView, cursor int, status string) {
	screen := s.Screen
	screen.Clear()
	putText(screen, 0, 0, fmt.Sprintf("⚒️ BLACK MARKET  [You have %d💰]", s.Game.Ledger.Gold), styleTitle)
	putText(screen, 0, 1, "[j/k] Move  [Enter] Buy  [Esc] Back", styleDim)
	hline(screen, 2)
	putText(screen, 0, 3, "    Item                   Slot       Cost   Bonus", styleDefault)
	hline(screen, 4)

	for i, v := range views {
		style := styleDefault
		pfx := "  "
		if i == cursor {
			style = styleHighlight
			pfx = "► "
		} else if !v.Enabled {
			style = styleDim
		}
		line := fmt.Sprintf("%s%s %-20s %-9s %4d💰  %s",
			pfx, v.Emoji, v.Name, v.Slot, v.Cost, statsTag(v.Stats))
		x := putText(screen, 0, 5+i, line, style)
		if !v.Enabled {
			putText(screen, x+2, 5+i, v.Reason, styleBad)
		}
	}

	hline(screen, 5+len(views))
	putText(screen, 0, 6+len(views), fmt.Sprintf("In storage: %d unequipped items", len(s.Game.Roster.Inventory)), styleDim)
	if status != "" {
		putText(screen, 0, 8+len(views), status, styleGood)
	}
	screen.Show()
}
