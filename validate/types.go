package validate

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrNilInstance is returned when the instance pointer is nil.
var ErrNilInstance = errors.New("validate: instance is nil")

// ErrUnknownViolation is returned by UnmarshalText for an unknown tag.
var ErrUnknownViolation = errors.New("validate: unknown violation tag")

// Violations is a set of violated constraint categories.
type Violations uint8

// Violation categories. Each is a single bit of Violations.
const (
	// NotAnArborescence: the candidate arcs contain an undirected cycle.
	NotAnArborescence Violations = 1 << iota
	// RootNotTheRoot: some arc enters the root.
	RootNotTheRoot
	// DegreeViolated: some node has more out-neighbours than allowed.
	DegreeViolated
	// TerminalNotReached: a required node is unreachable from the root.
	TerminalNotReached
	// DisconnectedForest: reachable nodes ≠ arcs + 1.
	DisconnectedForest
	// NbSecViolated: more distinct capacities than maxNbSec.
	NbSecViolated
	// CapacityViolated: an arc serves more turbines than its capacity.
	CapacityViolated

	numViolations = iota
)

// None is the empty set.
const None Violations = 0

var names = [numViolations]string{
	"NOT_AN_ARBORESCENCE",
	"ROOT_NOT_THE_ROOT",
	"DEGREE_VIOLATED",
	"TERMINAL_NOT_REACHED",
	"DISCONNECTED_FOREST",
	"NBSEC_VIOLATED",
	"CAPACITY_VIOLATED",
}

// All lists every category in bit order.
func All() []Violations {
	out := make([]Violations, numViolations)
	for i := range out {
		out[i] = 1 << i
	}
	return out
}

// Empty reports whether v holds no violation.
func (v Violations) Empty() bool { return v == None }

// Has reports whether every category of w is in v.
func (v Violations) Has(w Violations) bool { return v&w == w }

// Count returns the number of categories in v.
func (v Violations) Count() int { return bits.OnesCount8(uint8(v)) }

// Names returns the stable tag of every category in v, in bit order.
func (v Violations) Names() []string {
	out := make([]string, 0, v.Count())
	for i, name := range names {
		if v&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}

// String joins the tags with "|"; the empty set prints as "NONE".
func (v Violations) String() string {
	if v.Empty() {
		return "NONE"
	}
	return strings.Join(v.Names(), "|")
}

// MarshalText implements encoding.TextMarshaler.
func (v Violations) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the String form.
func (v *Violations) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || s == "NONE" {
		*v = None
		return nil
	}
	var out Violations
	for _, tag := range strings.Split(s, "|") {
		bit, ok := lookup(strings.TrimSpace(tag))
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownViolation, tag)
		}
		out |= bit
	}
	*v = out
	return nil
}

func lookup(tag string) (Violations, bool) {
	for i, name := range names {
		if name == tag {
			return 1 << i, true
		}
	}
	return None, false
}
