package session

import (
	"fmt"

	"snake-arcade/internal/core"
	"snake-arcade/internal/snake"
)

// Display is the output surface a session draws to. Implementations own the
// underlying window or terminal and present the frame as part of Render.
type Display interface {
	Render(view snake.View, food core.Cell)
	UpdateTitle(score, fps int)
}

// InputSource yields pending discrete events without blocking.
type InputSource interface {
	// PollEvents appends every pending event to dst and returns the result.
	PollEvents(dst []Event) []Event
}

// EventKind distinguishes input events.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventQuit
	EventKeyDown
)

// Event is a single input event. Dir is only meaningful for EventKeyDown.
type Event struct {
	Kind EventKind
	Dir  core.Direction
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyDown returns a directional key event.
func KeyDown(d core.Direction) Event { return Event{Kind: EventKeyDown, Dir: d} }

// Title formats the window title shown while playing.
func Title(score, fps int) string {
	return fmt.Sprintf("Snake Score: %d FPS: %d", score, fps)
}
