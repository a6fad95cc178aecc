//Package session turns decoded terminal input into commands against
//the grid engine and drives rendering. It is a closed set of state
//variants sharing one Session; the host loop owns the cycle
//render -> wait -> handle until the End state is reached.
package session

import (
	"time"

	"golife/src/life"
	"golife/src/pattern"
)

//DefaultInterval is the autorun rate used when none is configured.
const DefaultInterval = 100 * time.Millisecond

//Autorun interval bounds keep the terminal responsive.
const (
	minInterval = 10 * time.Millisecond
	maxInterval = 5 * time.Second
)

//snapshotName is the pattern file the Edit state snapshots to.
const snapshotName = ".snapshot" + pattern.Ext

//Session is the shared state every variant holds by reference:
//the single grid, the pattern store and the autorun rate. Edits
//persist across state transitions because the grid is never copied.
type Session struct {
	Grid     *life.Grid
	Store    pattern.Store
	Interval time.Duration
	Density  float64
}

//New builds a session around an existing grid.
func New(grid *life.Grid, store pattern.Store) *Session {
	return &Session{
		Grid:     grid,
		Store:    store,
		Interval: DefaultInterval,
		Density:  0.5,
	}
}

//State is the uniform two-operation contract of every variant.
//Render is a pure function of the state; Handle consumes one event
//and returns the next state (possibly itself). Returning a state is
//the sole transition mechanism.
type State interface {
	Render() RenderModel
	Handle(ev Event) State

	//WaitTimeout bounds the host loop's wait for the next event:
	//zero means block indefinitely, a positive duration means
	//synthesize an EventTick if no key arrives in time.
	WaitTimeout() time.Duration
}

//blocking is embedded by every state that waits indefinitely.
type blocking struct{}

func (blocking) WaitTimeout() time.Duration { return 0 }
