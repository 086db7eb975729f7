// Package stance places the six duel stances on a ring and derives the
// advantage, adjacency and opposition relationships between them.
//
// Only the cyclic order matters. For an ordered pair (a, b) the ring
// distance is delta = (index(b) - index(a)) mod 6:
//
//	delta 1, 2  a advantage,    b disadvantage
//	delta 5     a disadvantage, b advantage
//	delta 0, 3  both neutral
//	delta 4     both neutral, or a neutral / b advantage with WithAsymmetricDistanceFour
package stance

import (
	"fmt"
	"strings"
)

// RingSize is the number of stances on the ring
const RingSize = 6

// Stance is the canonical name of a stance on the ring
type Stance string

// Advantage is the roll favorability a stance has against another
type Advantage string

const (
	Neutral       Advantage = "neutral"
	Advantaged    Advantage = "advantage"
	Disadvantaged Advantage = "disadvantage"
)

// String renders the advantage for display ("Advantage", "Neutral", ...)
func (a Advantage) String() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// DefaultNames returns the stance names in ring order
func DefaultNames() []string {
	return []string{"Bagr", "Radae", "Darda", "Tigr", "Riposje", "Tortad"}
}

// Ring holds the stances in cyclic order
type Ring struct {
	stances        []Stance
	index          map[string]int
	asymmetricFour bool
}

// Option configures a Ring
type Option func(*Ring)

// WithAsymmetricDistanceFour makes distance 4 resolve as a neutral, b advantage
// instead of neutral for both sides
func WithAsymmetricDistanceFour() Option {
	return func(r *Ring) {
		r.asymmetricFour = true
	}
}

// NewRing builds a ring from six unique names given in ring order
func NewRing(names []string, opts ...Option) (*Ring, error) {
	if len(names) != RingSize {
		return nil, fmt.Errorf("ring needs exactly %d stances, got %d", RingSize, len(names))
	}

	r := &Ring{
		stances: make([]Stance, 0, RingSize),
		index:   make(map[string]int, RingSize),
	}
	for i, name := range names {
		key := normalize(name)
		if key == "" {
			return nil, fmt.Errorf("stance %d has an empty name", i)
		}
		if _, dup := r.index[key]; dup {
			return nil, fmt.Errorf("stance %q appears twice", name)
		}
		r.index[key] = i
		r.stances = append(r.stances, Stance(strings.TrimSpace(name)))
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// NewDefaultRing builds the ring from DefaultNames
func NewDefaultRing(opts ...Option) *Ring {
	r, err := NewRing(DefaultNames(), opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Stances returns the stances in ring order
func (r *Ring) Stances() []Stance {
	out := make([]Stance, len(r.stances))
	copy(out, r.stances)
	return out
}

// AsymmetricDistanceFour reports which distance-4 rule the ring uses
func (r *Ring) AsymmetricDistanceFour() bool {
	return r.asymmetricFour
}

// Parse resolves user input to a canonical stance, ignoring case and whitespace
func (r *Ring) Parse(input string) (Stance, bool) {
	i, ok := r.index[normalize(input)]
	if !ok {
		return "", false
	}
	return r.stances[i], true
}

// Contains reports whether s is on the ring
func (r *Ring) Contains(s Stance) bool {
	_, ok := r.index[normalize(string(s))]
	return ok
}

// Matching returns the stances whose name contains the fragment, for autocomplete
func (r *Ring) Matching(fragment string) []Stance {
	needle := normalize(fragment)
	var out []Stance
	for _, s := range r.stances {
		if strings.Contains(normalize(string(s)), needle) {
			out = append(out, s)
		}
	}
	return out
}

// Distance returns (index(b) - index(a)) mod 6
func (r *Ring) Distance(a, b Stance) int {
	return ((r.mustIndex(b)-r.mustIndex(a))%RingSize + RingSize) % RingSize
}

// Relationship returns the advantage state of a against b and of b against a
func (r *Ring) Relationship(a, b Stance) (Advantage, Advantage) {
	switch r.Distance(a, b) {
	case 1, 2:
		return Advantaged, Disadvantaged
	case 5:
		return Disadvantaged, Advantaged
	case 4:
		if r.asymmetricFour {
			return Neutral, Advantaged
		}
		return Neutral, Neutral
	default:
		return Neutral, Neutral
	}
}

// Adjacent reports whether the stances are ring neighbours
func (r *Ring) Adjacent(a, b Stance) bool {
	d := r.Distance(a, b)
	return d == 1 || d == RingSize-1
}

// Opposite reports whether the stances sit three steps apart
func (r *Ring) Opposite(a, b Stance) bool {
	return r.Distance(a, b) == RingSize/2
}

func (r *Ring) mustIndex(s Stance) int {
	i, ok := r.index[normalize(string(s))]
	if !ok {
		panic(fmt.Sprintf("stance %q is not on the ring", s))
	}
	return i
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
