package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/integrii/flaggy"

	"golife/src/life"
	"golife/src/pattern"
	"golife/src/session"
	"golife/src/view"
)

type Options struct {
	Width    int
	Height   int
	NoWrap   bool
	Rule     string
	Interval time.Duration
	Density  float64
	File     string
	Dir      string
	Random   bool
}

var DefaultOptions = Options{
	Width:    60,
	Height:   24,
	Rule:     "B3/S23",
	Interval: session.DefaultInterval,
	Density:  0.5,
	Dir:      "patterns",
}

func main() {
	o := initOptions()

	rules, err := life.ParseRule(o.Rule)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	grid, err := life.NewGrid(o.Width, o.Height, !o.NoWrap, rules)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if o.File != "" {
		if err := loadFile(o.File, grid); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else if o.Random {
		grid.Randomize(o.Density)
	}

	s := session.New(grid, pattern.NewDirStore(o.Dir))
	s.Interval = o.Interval
	s.Density = o.Density

	t := view.NewTerminal()
	go func() {
		session.Run(session.NewStart(s), t.Events(), t.Paint)
		t.Stop()
	}()
	t.Run()
}

//loadFile seeds the grid from a pattern file before the session
//starts, growing the grid when the pattern does not fit.
func loadFile(path string, grid *life.Grid) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	var p pattern.Pattern
	if codec, ok := pattern.ForName(path); ok {
		p, err = codec.Decode(data)
	} else {
		p, err = pattern.Decode(data)
	}
	if err != nil {
		return err
	}
	if p.Width > grid.Width() || p.Height > grid.Height() {
		w, h := grid.Width(), grid.Height()
		if p.Width > w {
			w = p.Width
		}
		if p.Height > h {
			h = p.Height
		}
		if err := grid.Resize(w, h); err != nil {
			return err
		}
	}
	return pattern.Apply(p, grid)
}

func initOptions() *Options {
	o := DefaultOptions

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.Int(&o.Width, "x", "width", "Width of the cell field")
	flaggy.Int(&o.Height, "y", "height", "Height of the cell field")
	flaggy.String(&o.Rule, "u", "rule", "Life rule in B#/S# form, for example B3/S23")
	flaggy.Bool(&o.NoWrap, "W", "no-wrap", "Treat the field edges as bounded instead of a torus")
	flaggy.Duration(&o.Interval, "i", "interval", "Autorun interval, for example 150ms")
	flaggy.Float64(&o.Density, "d", "density", "Live-cell probability for random seeding, 0..1")
	flaggy.String(&o.File, "f", "file", "Pattern file to load at startup")
	flaggy.String(&o.Dir, "p", "patterns", "Directory with saved pattern files")
	flaggy.Bool(&o.Random, "r", "random", "Seed the field randomly at startup")
	flaggy.Parse()

	return &o
}
