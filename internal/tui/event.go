package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// runEvent is the modal for a pending random event. It blocks until the
// player picks a choice; there is no walking away from a knock at the gate.
func (s *Session) runEvent(eventCh <-chan tcell.Event) {
	outcome := ""
	for {
		ev := s.Game.PendingEvent()
		if ev == nil {
			if outcome != "" {
				s.showOutcome(outcome, eventCh)
			}
			return
		}
		s.drawEvent()

		input, ok := <-eventCh
		if !ok {
			return
		}
		switch input := input.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			r := input.Rune()
			if r >= '1' && int(r-'1') < len(ev.Choices) {
				text, err := s.Game.ChooseEvent(int(r - '1'))
				if err == nil {
					outcome = text
				}
			}
		}
	}
}

func (s *Session) drawEvent() {
	screen := s.Screen
	screen.Clear()
	ev := s.Game.PendingEvent()
	if ev == nil {
		return
	}
	sw, _ := screen.Size()
	w := sw - 8
	if w > 70 {
		w = 70
	}
	h := 6 + len(ev.Choices)
	x0, y0 := (sw-w)/2, 4

	drawBox(screen, x0, y0, w, h, " ⚠️ Something stirs ")
	putText(screen, x0+2, y0+2, ev.Text, styleDefault)
	for i, c := range ev.Choices {
		putText(screen, x0+2, y0+4+i, fmt.Sprintf("[%d] %s", i+1, c.Text), styleAccent)
	}
	screen.Show()
}

// showOutcome displays the event's result until any key is pressed.
func (s *Session) showOutcome(text string, eventCh <-chan tcell.Event) {
	for {
		screen := s.Screen
		screen.Clear()
		sw, sh := screen.Size()
		w := len([]rune(text)) + 6
		if w > sw {
			w = sw
		}
		drawBox(screen, (sw-w)/2, sh/2-2, w, 5, "")
		putText(screen, (sw-w)/2+2, sh/2, text, styleDefault)
		putText(screen, (sw-w)/2+2, sh/2+1, "[any key]", styleDim)
		screen.Show()

		ev, ok := <-eventCh
		if !ok {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			return
		}
	}
}
