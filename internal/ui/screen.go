// Package ui renders the grid and status panel, either on a tcell screen or
// as plain text frames.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is the terminal the full-screen game draws on.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync redraws every cell, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Frame clears the buffer, runs draw and shows the result.
func (s *Screen) Frame(draw func()) {
	s.screen.Clear()
	draw()
	s.screen.Show()
}

// SetContent puts r at column x of row y.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// PutString writes str from column x of row y, advancing by each rune's
// display width. Returns the column after the last rune.
func (s *Screen) PutString(x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
