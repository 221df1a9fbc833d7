package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"shadowmaster/internal/catalog"
)

// statsTag renders nonzero stat bonuses like "STR+3 MAG+1".
func statsTag(st catalog.Stats) string {
	var parts []string
	if st.Strength != 0 {
		parts = append(parts, fmt.Sprintf("STR%+d", st.Strength))
	}
	if st.Defense != 0 {
		parts = append(parts, fmt.Sprintf("DEF%+d", st.Defense))
	}
	if st.Speed != 0 {
		parts = append(parts, fmt.Sprintf("SPD%+d", st.Speed))
	}
	if st.Magic != 0 {
		parts = append(parts, fmt.Sprintf("MAG%+d", st.Magic))
	}
	return strings.Join(parts, " ")
}

// runRoster is the creature management screen: equip, unequip, dismiss.
func (s *Session) runRoster(eventCh <-chan tcell.Event) {
	cursor := 0
	status := ""

	for {
		views := s.Game.RosterViews()
		if cursor >= len(views) {
			cursor = len(views) - 1
		}
		s.drawRoster(status, cursor)

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
				if len(views) > 0 {
					status = s.runEquipPicker(cursor, eventCh)
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
					if cursor < len(views)-1 {
						cursor++
					}
				case r == 'x' || r == 'X':
					if len(views) > 0 && s.confirmDismiss(cursor, eventCh) {
						if err := s.Game.DismissCreature(cursor); err != nil {
							status = prettyErr(err)
						} else {
							status = "Dismissed. Its gear returns to storage."
						}
					}
				}
			}
		}
	}
}

func (s *Session) drawRoster(status string, cursor int) {
	screen := s.Screen
	screen.Clear()
	views := s.Game.RosterViews()
	putText(screen, 0, 0, fmt.Sprintf("👥 YOUR HORDE  [%d/%d]", len(views), s.Game.Ledger.MaxMonsters), styleTitle)
	putText(screen, 0, 1, "[j/k] Move  [Enter] Equip  [x] Dismiss  [Esc] Back", styleDim)
	hline(screen, 2)
	putText(screen, 0, 3, "    Creature            Lv  Power  STR DEF SPD MAG  Gear", styleDefault)
	hline(screen, 4)

	for i, v := range views {
		style := styleDefault
		pfx := "  "
		if i == cursor {
			style = styleHighlight
			pfx = "► "
		}
		gear := make([]string, 0, len(catalog.Slots))
		for _, slot := range catalog.Slots {
			if key := v.Equipment[slot]; key != "" {
				if def, ok := s.Game.Catalog.Item(key); ok {
					gear = append(gear, def.Emoji)
				}
			}
		}
		line := fmt.Sprintf("%s%s %-18s %2d  %5d  %3d %3d %3d %3d  %s",
			pfx, v.Emoji, v.Name, v.Level, v.Power,
			v.Effective.Strength, v.Effective.Defense, v.Effective.Speed, v.Effective.Magic,
			strings.Join(gear, " "))
		x := putText(screen, 0, 5+i, line, style)
		if v.OnMission {
			putText(screen, x+2, 5+i, "on a mission", styleAccent)
		}
	}
	if len(views) == 0 {
		putText(screen, 2, 5, "The dungeon is empty. Recruit some monsters.", styleDim)
	}

	row := 6 + len(views)
	hline(screen, row-1)
	if status != "" {
		putText(screen, 0, row, status, styleGood)
	}
	screen.Show()
}

// runEquipPicker lets the player fit an inventory item onto creature i, or
// strip a slot with the number keys.
func (s *Session) runEquipPicker(i int, eventCh <-chan tcell.Event) string {
	cursor := 0
	for {
		inv := s.Game.Roster.Inventory
		if cursor >= len(inv) {
			cursor = len(inv) - 1
		}
		s.drawEquipPicker(i, cursor)

		ev, ok := <-eventCh
		if !ok {
			return ""
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return ""
			case tcell.KeyUp:
				if cursor > 0 {
					cursor--
				}
			case tcell.KeyDown:
				if cursor < len(inv)-1 {
					cursor++
				}
			case tcell.KeyEnter:
				if cursor < 0 || cursor >= len(inv) {
					return ""
				}
				if err := s.Game.EquipItem(i, inv[cursor]); err != nil {
					return prettyErr(err)
				}
				return "Equipped."
			default:
				switch r := ev.Rune(); {
				case r == 'q' || r == 'Q':
					return ""
				case r == 'k' || r == 'K':
					if cursor > 0 {
						cursor--
					}
				case r == 'j' || r == 'J':
					if cursor < len(inv)-1 {
						cursor++
					}
				case r >= '1' && r <= '4':
					slot := catalog.Slots[r-'1']
					if err := s.Game.UnequipItem(i, slot); err != nil {
						return prettyErr(err)
					}
					return fmt.Sprintf("Removed the %s.", slot)
				}
			}
		}
	}
}

func (s *Session) drawEquipPicker(i, cursor int) {
	screen := s.Screen
	screen.Clear()
	c, err := s.Game.Roster.Get(i)
	if err != nil {
		return
	}
	putText(screen, 0, 0, fmt.Sprintf("⚔️ OUTFIT %s %s", c.Emoji, c.Name), styleTitle)
	putText(screen, 0, 1, "[j/k] Move  [Enter] Equip  [1-4] Remove slot  [Esc] Back", styleDim)
	hline(screen, 2)

	for n, slot := range catalog.Slots {
		label := fmt.Sprintf("[%d] %-9s ", n+1, slot)
		x := putText(screen, 2, 3+n, label, styleDefault)
		if key := c.Equipment[slot]; key != "" {
			if def, ok := s.Game.Catalog.Item(key); ok {
				putText(screen, x, 3+n, fmt.Sprintf("%s %s  %s", def.Emoji, def.Name, statsTag(def.Stats)), styleAccent)
				continue
			}
		}
		putText(screen, x, 3+n, "(empty)", styleDim)
	}
	hline(screen, 8)
	putText(screen, 0, 9, "Storage", styleTitle)

	inv := s.Game.Roster.Inventory
	for n, key := range inv {
		style := styleDefault
		pfx := "  "
		if n == cursor {
			style = styleHighlight
			pfx = "► "
		}
		if def, ok := s.Game.Catalog.Item(key); ok {
			putText(screen, 0, 10+n, fmt.Sprintf("%s%s %-20s %-9s %s", pfx, def.Emoji, def.Name, def.Slot, statsTag(def.Stats)), style)
		}
	}
	if len(inv) == 0 {
		putText(screen, 2, 10, "Storage is empty. Buy gear at the market.", styleDim)
	}
	screen.Show()
}

func (s *Session) confirmDismiss(i int, eventCh <-chan tcell.Event) bool {
	c, err := s.Game.Roster.Get(i)
	if err != nil {
		return false
	}
	for {
		screen := s.Screen
		screen.Clear()
		sw, sh := screen.Size()
		prompt := fmt.Sprintf(" Dismiss %s %s forever? (y/n) ", c.Emoji, c.Name)
		w := len([]rune(prompt)) + 4
		drawBox(screen, (sw-w)/2, sh/2-1, w, 3, "")
		putText(screen, (sw-w)/2+2, sh/2, prompt, styleTitle)
		screen.Show()

		ev, ok := <-eventCh
		if !ok {
			return false
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
