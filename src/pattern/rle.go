package pattern

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golife/src/life"
)

//The RLE interchange format: '#' comment lines, then a header line
//"x = <w>, y = <h>[, rule = B#/S#]", then run-length encoded rows.
//In the body 'b' is a dead run, 'o' a live run, '$' ends a row, '!'
//ends the pattern; a run without a count has length one. Rows and
//trailing dead cells may be omitted and read back as dead.

//DecodeRLE parses RLE content.
func DecodeRLE(data []byte) (Pattern, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	header := ""
	var body []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if header == "" {
			header = line
			continue
		}
		body = append(body, line)
	}
	if header == "" {
		return Pattern{}, &FormatError{0, "missing RLE header"}
	}
	p, err := parseRLEHeader(header)
	if err != nil {
		return Pattern{}, err
	}

	p.Cells = make([][]bool, p.Height)
	for y := range p.Cells {
		p.Cells[y] = make([]bool, p.Width)
	}

	runs := strings.Join(body, "")
	if i := strings.IndexByte(runs, '!'); i >= 0 {
		runs = runs[:i]
	}
	x, y, count := 0, 0, 0
	for _, c := range runs {
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
		case c == 'b' || c == 'o':
			n := count
			if n == 0 {
				n = 1
			}
			if y >= p.Height || x+n > p.Width {
				return Pattern{}, &FormatError{0,
					fmt.Sprintf("run of %v exceeds the declared %vx%v bounds", n, p.Width, p.Height)}
			}
			for i := 0; i < n; i++ {
				p.Cells[y][x] = c == 'o'
				x++
			}
			count = 0
		case c == '$':
			n := count
			if n == 0 {
				n = 1
			}
			y += n
			x = 0
			count = 0
			if y > p.Height {
				return Pattern{}, &FormatError{0,
					fmt.Sprintf("more rows than the declared %v", p.Height)}
			}
		default:
			return Pattern{}, &FormatError{0, fmt.Sprintf("unrecognized RLE tag %q", c)}
		}
	}
	return p, nil
}

func parseRLEHeader(line string) (Pattern, error) {
	var p Pattern
	for _, part := range strings.Split(line, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return p, &FormatError{0, fmt.Sprintf("malformed RLE header %q", line)}
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		switch key {
		case "x":
			w, err := strconv.Atoi(value)
			if err != nil {
				return p, &FormatError{0, fmt.Sprintf("malformed RLE width %q", value)}
			}
			p.Width = w
		case "y":
			h, err := strconv.Atoi(value)
			if err != nil {
				return p, &FormatError{0, fmt.Sprintf("malformed RLE height %q", value)}
			}
			p.Height = h
		case "rule":
			if _, err := life.ParseRule(value); err != nil {
				return p, &FormatError{0, err.Error()}
			}
			p.Rule = value
		}
	}
	if p.Width <= 0 || p.Height <= 0 {
		return p, &FormatError{0, fmt.Sprintf("RLE header %q must declare positive x and y", line)}
	}
	return p, nil
}

//EncodeRLE serializes a pattern in canonical RLE: single-cell runs
//carry no count, trailing dead cells are trimmed per row, one final
//newline. DecodeRLE(EncodeRLE(p)) == p for every valid pattern.
func EncodeRLE(p Pattern) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "x = %v, y = %v", p.Width, p.Height)
	if p.Rule != "" {
		fmt.Fprintf(&b, ", rule = %v", p.Rule)
	}
	b.WriteByte('\n')
	for y := 0; y < p.Height; y++ {
		b.WriteString(encodeRLERow(p.Cells[y]))
		if y == p.Height-1 {
			b.WriteByte('!')
		} else {
			b.WriteByte('$')
		}
	}
	b.WriteByte('\n')
	return b.Bytes()
}

func encodeRLERow(row []bool) string {
	last := -1
	for i, alive := range row {
		if alive {
			last = i
		}
	}
	var sb strings.Builder
	for i := 0; i <= last; {
		j := i
		for j <= last && row[j] == row[i] {
			j++
		}
		if j-i > 1 {
			sb.WriteString(strconv.Itoa(j - i))
		}
		if row[i] {
			sb.WriteByte('o')
		} else {
			sb.WriteByte('b')
		}
		i = j
	}
	return sb.String()
}
