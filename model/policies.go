package model

import "github.com/pkg/errors"

// DefaultSize is the width and height used when nothing else is configured
const DefaultSize = 128

// Policy names a way of building the starting generation
type Policy string

const (
	// PolicyEmpty starts with every cell dead.
	PolicyEmpty Policy = "empty"
	// PolicyStriped starts with the deterministic i%2 / i%7 pattern.
	PolicyStriped Policy = "striped"
	// PolicyRandom draws one decision per cell.
	PolicyRandom Policy = "random"
	// PolicyGlider starts with a single glider in the middle.
	PolicyGlider Policy = "glider"
)

// Policies lists every construction policy New accepts
var Policies = []Policy{PolicyEmpty, PolicyStriped, PolicyRandom, PolicyGlider}

// DecisionSource yields one alive/dead decision per call.
type DecisionSource func() bool

// ParsePolicy validates a policy name
func ParsePolicy(name string) (Policy, error) {
	for _, p := range Policies {
		if string(p) == name {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownPolicy, "[ParsePolicy] name: %+v", name)
}

// New builds a grid using the named policy. src is only consulted by
// PolicyRandom.
func New(policy Policy, width, height int, src DecisionSource) (*Grid, error) {
	switch policy {
	case PolicyEmpty:
		return NewEmpty(width, height)
	case PolicyStriped:
		return NewStriped(width, height)
	case PolicyRandom:
		return NewRandom(width, height, src)
	case PolicyGlider:
		return NewWithGlider(width, height)
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "[New] policy: %+v", policy)
	}
}

// newWith builds a grid whose cell idx is alive iff alive(idx). alive is
// called once per cell in index order.
func newWith(width, height int, alive func(idx uint) bool) (*Grid, error) {
	g, err := newGrid(width, height)
	if err != nil {
		return nil, err
	}
	for idx := range uint(width * height) {
		if alive(idx) {
			g.set(idx, true)
		}
	}
	return g, nil
}

// NewEmpty returns a grid with every cell dead
func NewEmpty(width, height int) (*Grid, error) {
	return newGrid(width, height)
}

// NewStriped returns a grid where cell i is alive iff i is a multiple of 2 or 7
func NewStriped(width, height int) (*Grid, error) {
	return newWith(width, height, func(idx uint) bool {
		return idx%2 == 0 || idx%7 == 0
	})
}

// NewRandom returns a grid where each cell takes one decision from src
func NewRandom(width, height int, src DecisionSource) (*Grid, error) {
	if src == nil {
		return nil, errors.Wrap(ErrMissingDecisionSource, "[NewRandom]")
	}
	return newWith(width, height, func(uint) bool { return src() })
}

// NewWithGlider returns an empty grid with a glider anchored at its center
func NewWithGlider(width, height int) (*Grid, error) {
	g, err := NewEmpty(width, height)
	if err != nil {
		return nil, err
	}
	g.AddGlider(height/2, width/2)
	return g, nil
}
