package input

import (
	"fmt"
	"strings"
)

// Script replays a fixed sequence of states, then reports idle ticks.
type Script struct {
	states []State
	pos    int
}

func NewScript(states ...State) *Script {
	return &Script{states: states}
}

func (s *Script) Poll() State {
	if s.pos >= len(s.states) {
		return State{}
	}
	st := s.states[s.pos]
	s.pos++
	return st
}

// Remaining returns how many scripted ticks are left.
func (s *Script) Remaining() int { return len(s.states) - s.pos }

// Len returns the total number of scripted ticks.
func (s *Script) Len() int { return len(s.states) }

// ParseScript parses a comma separated list of ticks. Each tick is a
// "+"-joined set of key names; a leading "~" marks the keys as held from
// the previous tick rather than newly pressed, and an empty tick is idle.
// "HOME" in a tick reports a blocked home request.
//
//	"A,,DOWN,DOWN,~SELECT,~SELECT,B"
func ParseScript(text string) (*Script, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return NewScript(), nil
	}
	var states []State
	for i, raw := range strings.Split(text, ",") {
		tick := strings.ToUpper(strings.TrimSpace(raw))
		var st State
		held := strings.HasPrefix(tick, "~")
		tick = strings.TrimPrefix(tick, "~")
		if tick != "" {
			for _, name := range strings.Split(tick, "+") {
				name = strings.TrimSpace(name)
				if name == "HOME" {
					st.HomeBlocked = true
					continue
				}
				k, ok := KeyByName(name)
				if !ok {
					return nil, fmt.Errorf("tick %d: unknown key %q", i, name)
				}
				st.Held |= k
			}
		}
		if !held {
			st.Down = st.Held
		}
		states = append(states, st)
	}
	return NewScript(states...), nil
}
