// Package tui renders the dungeon master's console over tcell. One session
// owns one screen; every sub-screen is a blocking modal fed from the same
// input channel.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGood      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	styleAccent    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// putText draws a string and returns the x position after it. Wide runes
// (emoji) advance by their display width.
func putText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		x += w
	}
	return x
}

// hline draws a horizontal rule across the screen.
func hline(screen tcell.Screen, y int) {
	sw, _ := screen.Size()
	for x := 0; x < sw; x++ {
		screen.SetContent(x, y, '─', nil, styleDim)
	}
}

// drawBox draws a bordered box with a centered header.
func drawBox(screen tcell.Screen, x0, y0, w, h int, header string) {
	for col := x0; col < x0+w; col++ {
		screen.SetContent(col, y0, '─', nil, styleDim)
		screen.SetContent(col, y0+h-1, '─', nil, styleDim)
	}
	for row := y0; row < y0+h; row++ {
		screen.SetContent(x0, row, '│', nil, styleDim)
		screen.SetContent(x0+w-1, row, '│', nil, styleDim)
	}
	screen.SetContent(x0, y0, '┌', nil, styleDim)
	screen.SetContent(x0+w-1, y0, '┐', nil, styleDim)
	screen.SetContent(x0, y0+h-1, '└', nil, styleDim)
	screen.SetContent(x0+w-1, y0+h-1, '┘', nil, styleDim)
	if header != "" {
		hx := x0 + (w-runewidth.StringWidth(header))/2
		putText(screen, hx, y0, header, styleTitle)
	}
}
