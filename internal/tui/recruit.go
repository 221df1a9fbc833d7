package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"shadowmaster/internal/game"
)

// runRecruit is the monster recruitment screen.
func (s *Session) runRecruit(eventCh <-chan tcell.Event) {
	cursor := 0
	status := ""

	for {
		views := s.Game.RecruitViews()
		if cursor >= len(views) {
			cursor = len(views) - 1
		}
		s.drawRecruit(views, cursor, status)

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
				status = s.recruit(views, cursor)
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

func (s *Session) recruit(views []game.RecruitView, cursor int) string {
	if cursor < 0 || cursor >= len(views) {
		return "Nothing selected."
	}
	v := views[cursor]
	c, err := s.Game.Recruit(v.Key)
	if err != nil {
		return prettyErr(err)
	}
	return fmt.Sprintf("%s %s joins you. (%d💰 left)", c.Emoji, c.Name, s.Game.Ledger.Gold)
}

func (s *Session) drawRecruit(views []game.RecruitView, cursor int, status string) {
	screen := s.Screen
	screen.Clear()
	putText(screen, 0, 0, fmt.Sprintf("🩸 RECRUIT MONSTERS  [You have %d💰]", s.Game.Ledger.Gold), styleTitle)
	putText(screen, 0, 1, "[j/k] Move  [Enter] Recruit  [Esc] Back", styleDim)
	hline(screen, 2)
	putText(screen, 0, 3, "    Monster              Cost   STR DEF SPD MAG", styleDefault)
	hline(screen, 4)

	for i, v := range views {
		style := styleDefault
		pfx := "  "
		if i == cursor {
			style = styleHighlight
			pfx = "► "
		}
		if !v.Enabled {
			style = styleDim
			if i == cursor {
				style = styleHighlight
			}
		}
		line := fmt.Sprintf("%s%s %-18s %4d💰  %3d %3d %3d %3d",
			pfx, v.Emoji, v.Name, v.Cost,
			v.Stats.Strength, v.Stats.Defense, v.Stats.Speed, v.Stats.Magic)
		x := putText(screen, 0, 5+i, line, style)
		if !v.Enabled {
			putText(screen, x+2, 5+i, v.Reason, styleBad)
		}
	}

	row := 6 + len(views)
	hline(screen, row-1)
	if cursor >= 0 && cursor < len(views) {
		putText(screen, 0, row, views[cursor].Description, styleDim)
	}
	if status != "" {
		putText(screen, 0, row+2, status, styleGood)
	}
	screen.Show()
}
