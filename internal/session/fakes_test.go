package session

import (
	"time"

	"snake-arcade/internal/core"
	"snake-arcade/internal/snake"
)

type titleCall struct {
	score, fps int
}

type recordingDisplay struct {
	renders  []snake.View
	foods    []core.Cell
	titles   []titleCall
	onRender func()
}

func (d *recordingDisplay) Render(view snake.View, food core.Cell) {
	d.renders = append(d.renders, view)
	d.foods = append(d.foods, food)
	if d.onRender != nil {
		d.onRender()
	}
}

func (d *recordingDisplay) UpdateTitle(score, fps int) {
	d.titles = append(d.titles, titleCall{score: score, fps: fps})
}

// scriptedInput returns script[i] on the i-th poll and nothing afterwards.
type scriptedInput struct {
	script [][]Event
	polls  int
}

func (in *scriptedInput) PollEvents(dst []Event) []Event {
	if in.polls < len(in.script) {
		dst = append(dst, in.script[in.polls]...)
	}
	in.polls++
	return dst
}

// quitAfter yields a quit event on poll n (1-based).
func quitAfter(n int) *scriptedInput {
	script := make([][]Event, n)
	script[n-1] = []Event{Quit()}
	return &scriptedInput{script: script}
}

type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }
