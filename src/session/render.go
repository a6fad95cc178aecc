package session

//Hint is one entry of a state's command legend.
type Hint struct {
	Key    string
	Action string
}

//Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

//RenderModel is the passive description a state hands to the external
//renderer: what to show, never how. The renderer owns all painting,
//color and screen geometry.
type RenderModel struct {
	Title  string
	Status string
	Error  string
	Legend []Hint

	//Cells is the field snapshot, nil when the state shows no field
	Cells  [][]bool
	Cursor *Point

	//Menu is a selectable list (Load), nil otherwise
	Menu     []string
	Selected int

	//Prompt/Input describe an active text entry (Save, Config rule)
	Prompt string
	Input  string
}
