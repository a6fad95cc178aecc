package life

import (
	"fmt"
	"strings"
)

//RuleSet holds the birth/survival neighbor counts for a Life variant.
//It is an immutable value: changing the rules means parsing a new one.
type RuleSet struct {
	birth    uint16
	survival uint16
}

//StandardRule is Conway's original B3/S23.
var StandardRule = RuleSet{birth: 1 << 3, survival: 1<<2 | 1<<3}

//RuleError reports a malformed rule specification.
type RuleError struct {
	Spec   string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid rule %q: %s", e.Spec, e.Reason)
}

//ParseRule parses a rule specification of the form "B<digits>/S<digits>".
//Digits are distinct neighbor counts in 0..8, order-independent.
//Empty digit runs are legal (degenerate but valid rule sets).
func ParseRule(spec string) (RuleSet, error) {
	parts := strings.Split(spec, "/")
	if len(parts) != 2 {
		return RuleSet{}, &RuleError{spec, "expected \"B<digits>/S<digits>\""}
	}
	if !strings.HasPrefix(parts[0], "B") {
		return RuleSet{}, &RuleError{spec, "birth side must start with 'B'"}
	}
	if !strings.HasPrefix(parts[1], "S") {
		return RuleSet{}, &RuleError{spec, "survival side must start with 'S'"}
	}
	birth, err := parseCounts(spec, parts[0][1:])
	if err != nil {
		return RuleSet{}, err
	}
	survival, err := parseCounts(spec, parts[1][1:])
	if err != nil {
		return RuleSet{}, err
	}
	return RuleSet{birth: birth, survival: survival}, nil
}

func parseCounts(spec string, digits string) (uint16, error) {
	var set uint16
	for _, c := range digits {
		if c < '0' || c > '8' {
			return 0, &RuleError{spec, fmt.Sprintf("neighbor count %q out of range 0-8", c)}
		}
		bit := uint16(1) << uint(c-'0')
		if set&bit != 0 {
			return 0, &RuleError{spec, fmt.Sprintf("duplicate neighbor count %q", c)}
		}
		set |= bit
	}
	return set, nil
}

//Evaluate returns the next state of a cell given its current state and
//the number of live Moore neighbors. Pure, no side effects.
func (r RuleSet) Evaluate(alive bool, liveNeighbors int) bool {
	if liveNeighbors < 0 || liveNeighbors > 8 {
		return false
	}
	bit := uint16(1) << uint(liveNeighbors)
	if alive {
		return r.survival&bit != 0
	}
	return r.birth&bit != 0
}

//Births returns the birth counts in ascending order.
func (r RuleSet) Births() []int { return countsOf(r.birth) }

//Survivals returns the survival counts in ascending order.
func (r RuleSet) Survivals() []int { return countsOf(r.survival) }

func countsOf(set uint16) []int {
	counts := make([]int, 0, 9)
	for n := 0; n <= 8; n++ {
		if set&(1<<uint(n)) != 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

//String formats the rule set in canonical ascending-digit form,
//the exact inverse of ParseRule.
func (r RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range r.Births() {
		b.WriteByte(byte('0' + n))
	}
	b.WriteString("/S")
	for _, n := range r.Survivals() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}
