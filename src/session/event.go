package session

//EventKind discriminates decoded input events. The view collaborator
//produces Rune and the special-key kinds; the host loop synthesizes
//Tick on autorun timer expiry and Closed when the input stream dies.
type EventKind int

const (
	EventRune EventKind = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventEnter
	EventEsc
	EventSpace
	EventBackspace
	EventTick
	EventClosed
)

//Event is one decoded input event. Rune is set only for EventRune.
type Event struct {
	Kind EventKind
	Rune rune
}

//isKey reports whether the event is an actual keypress, as opposed
//to a synthesized timer or stream event.
func (e Event) isKey() bool {
	return e.Kind != EventTick && e.Kind != EventClosed
}
