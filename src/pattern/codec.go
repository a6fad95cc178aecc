package pattern

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"golife/src/life"
)

//Codec converts between pattern bytes and Pattern values. Codecs
//are selected by file extension; every registered extension is also
//what DirStore lists.
type Codec interface {
	Decode(data []byte) (Pattern, error)
	Encode(p Pattern) []byte
}

//Registered pattern file extensions.
const (
	Ext    = ".cells"
	RLEExt = ".rle"
)

type cellsCodec struct{}

func (cellsCodec) Decode(data []byte) (Pattern, error) { return Decode(data) }
func (cellsCodec) Encode(p Pattern) []byte             { return Encode(p) }

type rleCodec struct{}

func (rleCodec) Decode(data []byte) (Pattern, error) { return DecodeRLE(data) }
func (rleCodec) Encode(p Pattern) []byte             { return EncodeRLE(p) }

var codecs = map[string]Codec{
	Ext:    cellsCodec{},
	RLEExt: rleCodec{},
}

//ForName returns the codec for a pattern file name, selected by its
//extension.
func ForName(name string) (Codec, bool) {
	c, ok := codecs[strings.ToLower(filepath.Ext(name))]
	return c, ok
}

//The "cells" text format: lines starting with '!' are comments,
//a comment of the form "!R B3/S23" carries the rule annotation,
//every remaining line is one row with 'O' for alive and '.' for dead.
const (
	aliveGlyph = 'O'
	deadGlyph  = '.'

	commentMarker = "!"
	rulePrefix    = "!R "
)

//FormatError reports malformed pattern file content.
//Line is 1-based, 0 when no single line is at fault.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return "malformed pattern: " + e.Reason
	}
	return fmt.Sprintf("malformed pattern at line %v: %s", e.Line, e.Reason)
}

//Decode parses pattern file content. Rows must all have the same
//length; a short row is an error, not padded.
func Decode(data []byte) (Pattern, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return Pattern{}, &FormatError{0, "empty content"}
	}

	var p Pattern
	for i, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, rulePrefix) {
			rule := strings.TrimSpace(line[len(rulePrefix):])
			if _, err := life.ParseRule(rule); err != nil {
				return Pattern{}, &FormatError{i + 1, err.Error()}
			}
			p.Rule = rule
			continue
		}
		if strings.HasPrefix(line, commentMarker) {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, c := range line {
			switch c {
			case aliveGlyph:
				row = append(row, true)
			case deadGlyph:
				row = append(row, false)
			default:
				return Pattern{}, &FormatError{i + 1, fmt.Sprintf("unrecognized glyph %q", c)}
			}
		}
		if p.Height > 0 && len(row) != p.Width {
			return Pattern{}, &FormatError{i + 1,
				fmt.Sprintf("row length %v, expected %v", len(row), p.Width)}
		}
		if p.Height == 0 {
			p.Width = len(row)
		}
		p.Cells = append(p.Cells, row)
		p.Height++
	}
	if p.Height == 0 {
		return Pattern{}, &FormatError{0, "no cell rows"}
	}
	if p.Width == 0 {
		return Pattern{}, &FormatError{0, "empty cell rows"}
	}
	return p, nil
}

//Encode serializes a pattern in canonical form: the rule annotation
//first when present, then the rows, one trailing newline, no other
//whitespace. Decode(Encode(p)) == p for every valid pattern.
func Encode(p Pattern) []byte {
	var b bytes.Buffer
	if p.Rule != "" {
		b.WriteString(rulePrefix)
		b.WriteString(p.Rule)
		b.WriteByte('\n')
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if p.Cells[y][x] {
				b.WriteRune(aliveGlyph)
			} else {
				b.WriteRune(deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}
