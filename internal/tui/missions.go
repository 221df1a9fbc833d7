package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"shadowmaster/internal/catalog"
)

// runMissions is the mission board: pick a mission, then stage a team.
func (s *Session) runMissions(eventCh <-chan tcell.Event) {
	cursor := 0
	status := ""

	for {
		views := s.Game.MissionViews()
		if cursor >= len(views) {
			cursor = len(views) - 1
		}
		s.drawMissions(status, cursor)

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
				if cursor < 0 || cursor >= len(views) {
					break
				}
				if err := s.Game.Missions.Prepare(views[cursor].Key); err != nil {
					status = prettyErr(err)
					break
				}
				status = s.runStaging(eventCh)
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

func (s *Session) drawMissions(status string, cursor int) {
	screen := s.Screen
	screen.Clear()
	views := s.Game.MissionViews()
	putText(screen, 0, 0, fmt.Sprintf("🗺️ MISSIONS  [⚡ %d/%d]", s.Game.Ledger.Energy, s.Game.Ledger.MaxEnergy), styleTitle)
	putText(screen, 0, 1, "[j/k] Move  [Enter] Stage a party  [Esc] Back", styleDim)
	hline(screen, 2)
	putText(screen, 0, 3, "    Mission                      Power  ⚡  Pace", styleDefault)
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
		pace := "deferred"
		if v.Mode == catalog.Immediate {
			pace = "tonight"
		}
		line := fmt.Sprintf("%s%-28s  %5d  %d  %-8s %s", pfx, v.Name, v.RequiredPower, v.EnergyCost, pace, v.Difficulty)
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

// runStaging is the team selection screen for the prepared mission. Returns a
// status line for the mission board.
func (s *Session) runStaging(eventCh <-chan tcell.Event) string {
	cursor := 0
	status := ""

	for {
		views := s.Game.RosterViews()
		if cursor >= len(views) {
			cursor = len(views) - 1
		}
		s.drawStaging(status, cursor)

		ev, ok := <-eventCh
		if !ok {
			s.Game.Missions.Abandon()
			return ""
		}
		status = ""
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				s.Game.Missions.Abandon()
				return "The party stands down."
			case tcell.KeyUp:
				if cursor > 0 {
					cursor--
				}
			case tcell.KeyDown:
				if cursor < len(views)-1 {
					cursor++
				}
			case tcell.KeyEnter:
				if len(views) > 0 {
					if err := s.Game.Missions.Toggle(cursor); err != nil {
						status = prettyErr(err)
					}
				}
			default:
				switch r := ev.Rune(); {
				case r == 'q' || r == 'Q':
					s.Game.Missions.Abandon()
					return "The party stands down."
				case r == 'k' || r == 'K':
					if cursor > 0 {
						cursor--
					}
				case r == 'j' || r == 'J':
					if cursor < len(views)-1 {
						cursor++
					}
				case r == ' ':
					if len(views) > 0 {
						if err := s.Game.Missions.Toggle(cursor); err != nil {
							status = prettyErr(err)
						}
					}
				case r == 'g' || r == 'G':
					res, err := s.Game.DispatchPrepared()
					if err != nil {
						status = prettyErr(err)
						break
					}
					if res != nil {
						s.runPlayback(*res, eventCh)
						return fmt.Sprintf("%s.", s.Game.Catalog.NarrativeLine(res.Outcome))
					}
					return "The party slips out into the night."
				}
			}
		}
	}
}

func (s *Session) drawStaging(status string, cursor int) {
	screen := s.Screen
	screen.Clear()
	key := s.Game.Missions.PrepKey
	def, ok := s.Game.Catalog.Mission(key)
	if !ok {
		return
	}
	power := s.Game.Missions.SelectedPower(s.Game.Catalog)

	putText(screen, 0, 0, fmt.Sprintf("⚔️ STAGE: %s", def.Name), styleTitle)
	putText(screen, 0, 1, "[j/k] Move  [Enter/Space] Toggle  [g] Dispatch  [Esc] Stand down", styleDim)
	powerStyle := styleBad
	if power >= def.RequiredPower {
		powerStyle = styleGood
	}
	putText(screen, 0, 2, fmt.Sprintf("Party power %d / %d required   ⚡ cost %d", power, def.RequiredPower, def.EnergyCost), powerStyle)
	hline(screen, 3)

	views := s.Game.RosterViews()
	for i, v := range views {
		style := styleDefault
		pfx := "  "
		if i == cursor {
			style = styleHighlight
			pfx = "► "
		}
		mark := "[ ]"
		if v.Selected {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s %-18s Lv%-2d power %d", pfx, mark, v.Emoji, v.Name, v.Level, v.Power)
		x := putText(screen, 0, 4+i, line, style)
		if v.OnMission {
			putText(screen, x+2, 4+i, "already deployed", styleAccent)
		}
	}
	if len(views) == 0 {
		putText(screen, 2, 4, "No creatures to send. Recruit first.", styleDim)
	}

	row := 5 + len(views)
	hline(screen, row-1)
	if status != "" {
		putText(screen, 0, row, status, styleBad)
	}
	screen.Show()
}
