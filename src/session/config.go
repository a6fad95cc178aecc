package session

import (
	"fmt"
	"time"

	"golife/src/life"
)

//Config fields, in display order.
const (
	fieldWrap = iota
	fieldRule
	fieldInterval
	fieldCount
)

//Config edits a pending copy of the runtime options: wrap topology,
//rule string and autorun interval. Nothing touches the live grid
//until enter confirms; escape abandons the pending values. A rule
//that fails to parse keeps the state in Config with the error shown.
type Config struct {
	blocking
	s        *Session
	field    int
	wrap     bool
	rule     []rune
	interval time.Duration
	err      string
}

func NewConfig(s *Session) *Config {
	return &Config{
		s:        s,
		wrap:     s.Grid.Wrap(),
		rule:     []rune(s.Grid.Rules().String()),
		interval: s.Interval,
	}
}

func (c *Config) Render() RenderModel {
	menu := []string{
		fmt.Sprintf("wrap: %v", onOff(c.wrap)),
		fmt.Sprintf("rule: %v", string(c.rule)),
		fmt.Sprintf("interval: %v", c.interval),
	}
	return RenderModel{
		Title:    "Config",
		Status:   "pending changes apply on enter",
		Error:    c.err,
		Menu:     menu,
		Selected: c.field,
		Prompt:   "rule",
		Input:    string(c.rule),
		Legend: []Hint{
			{"up/down", "field"},
			{"space", "toggle wrap"},
			{"left/right", "interval"},
			{"type", "rule"},
			{"enter", "apply"},
			{"esc", "cancel"},
		},
	}
}

func (c *Config) Handle(ev Event) State {
	if ev.Kind == EventClosed {
		return NewEnd()
	}
	c.err = ""
	switch ev.Kind {
	case EventUp:
		c.field = clamp(c.field-1, 0, fieldCount-1)
	case EventDown:
		c.field = clamp(c.field+1, 0, fieldCount-1)
	case EventSpace:
		if c.field == fieldWrap {
			c.wrap = !c.wrap
		}
	case EventLeft:
		if c.field == fieldInterval {
			c.interval = clampInterval(c.interval / 2)
		}
	case EventRight:
		if c.field == fieldInterval {
			c.interval = clampInterval(c.interval * 2)
		}
	case EventRune:
		if c.field == fieldRule {
			c.rule = append(c.rule, ev.Rune)
		}
	case EventBackspace:
		if c.field == fieldRule && len(c.rule) > 0 {
			c.rule = c.rule[:len(c.rule)-1]
		}
	case EventEnter:
		rules, err := life.ParseRule(string(c.rule))
		if err != nil {
			c.err = err.Error()
			return c
		}
		c.s.Grid.SetRules(rules)
		c.s.Grid.SetWrap(c.wrap)
		c.s.Interval = c.interval
		return NewMain(c.s)
	case EventEsc:
		return NewMain(c.s)
	}
	return c
}

func clampInterval(d time.Duration) time.Duration {
	if d < minInterval {
		return minInterval
	}
	if d > maxInterval {
		return maxInterval
	}
	return d
}
