package session

import "time"

//Run drives a session to completion: paint the current state's
//rendering, wait for the next event (bounded when the state asks for
//a timeout), hand it to the state, repeat until End. A closed event
//channel is the one fatal condition and forces the End transition.
func Run(start State, events <-chan Event, paint func(RenderModel)) {
	st := start
	for {
		paint(st.Render())
		if _, done := st.(*End); done {
			return
		}
		st = st.Handle(nextEvent(st, events))
	}
}

func nextEvent(st State, events <-chan Event) Event {
	d := st.WaitTimeout()
	if d <= 0 {
		ev, ok := <-events
		if !ok {
			return Event{Kind: EventClosed}
		}
		return ev
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case ev, ok := <-events:
		if !ok {
			return Event{Kind: EventClosed}
		}
		return ev
	case <-t.C:
		return Event{Kind: EventTick}
	}
}
