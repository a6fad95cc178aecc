package session

//End is terminal: once reached, the host loop stops calling
//Render and Handle and the session exits.
type End struct {
	blocking
}

func NewEnd() *End {
	return &End{}
}

func (*End) Render() RenderModel {
	return RenderModel{Title: "Goodbye"}
}

func (e *End) Handle(Event) State {
	return e
}
