package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// statusDepth is how many messages the panel keeps.
const statusDepth = 2

// HPSource is the tracked character's health.
type HPSource interface {
	GetHP() int
	GetMaxHP() int
}

// StatusBar is a two-line panel showing the tracked character's HP and the
// most recent messages. It satisfies arena.StatusSink.
type StatusBar struct {
	width   int
	tracked HPSource
	msgs    []string
}

// NewStatusBar creates a panel whose inner area is width columns wide.
func NewStatusBar(width int) *StatusBar {
	if width < 4 {
		width = 4
	}
	return &StatusBar{width: width}
}

// Track selects whose HP the panel shows.
func (s *StatusBar) Track(src HPSource) {
	s.tracked = src
}

// SetStatus appends msg, keeping only the last two messages.
func (s *StatusBar) SetStatus(msg string) {
	s.msgs = append(s.msgs, msg)
	if len(s.msgs) > statusDepth {
		s.msgs = s.msgs[len(s.msgs)-statusDepth:]
	}
}

// Messages returns the buffered messages, oldest first.
func (s *StatusBar) Messages() []string {
	return append([]string(nil), s.msgs...)
}

// Flush clears the buffered messages.
func (s *StatusBar) Flush() {
	s.msgs = s.msgs[:0]
}

// Width returns the panel's inner width.
func (s *StatusBar) Width() int {
	return s.width
}

// Lines returns the three panel rows: a border, the HP line with the first
// message, and the second message aligned under it. Every row is exactly
// Width()+2 columns wide.
func (s *StatusBar) Lines() []string {
	hp := "HP: -/-"
	if s.tracked != nil {
		hp = fmt.Sprintf("HP: %d/%d", s.tracked.GetHP(), s.tracked.GetMaxHP())
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(hp))

	first, second := "", ""
	if len(s.msgs) > 0 {
		first = s.msgs[0]
	}
	if len(s.msgs) > 1 {
		second = s.msgs[1]
	}

	return []string{
		strings.Repeat("+", s.width+2),
		s.frame(hp + " + " + first),
		s.frame(indent + " + " + second),
	}
}

// frame pads or truncates txt to fit between "+ " and " +".
func (s *StatusBar) frame(txt string) string {
	inner := s.width - 2
	txt = runewidth.Truncate(txt, inner, "")
	return "+ " + runewidth.FillRight(txt, inner) + " +"
}
