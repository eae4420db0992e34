// Package idgen provides the identifier sources used when building
// scenes: element and group identifiers, and the random seeds
// expected by the drawing editor.
package idgen

import (
	"fmt"
	"math/rand"
	randv2 "math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"go.jetify.com/typeid/v2"
)

// Prefixes of the typeid identifiers.
const (
	PrefixElement = "el"
	PrefixGroup   = "grp"
)

// maxSeed is the exclusive upper bound of seeds.
const maxSeed = 1 << 31

// Source generates identifiers.
// Implementations must be safe for concurrent use.
type Source interface {
	// NewID returns an identifier for an element.
	NewID() string
	// NewGroupID returns an identifier for a group of elements.
	NewGroupID() string
	// NewSeed returns an integer in [1, 2^31-1].
	NewSeed() int
}

// Random returns UUID v4 identifiers and random seeds.
type Random struct{}

func (Random) NewID() string      { return uuid.NewString() }
func (Random) NewGroupID() string { return uuid.NewString() }
func (Random) NewSeed() int       { return 1 + randv2.IntN(maxSeed-1) }

// Seeded is a deterministic Source, for tests and reproducible outputs.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a source whose output only depends on seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) uuid() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil { // a math/rand reader never fails
		panic(err)
	}
	return id.String()
}

func (s *Seeded) NewID() string      { return s.uuid() }
func (s *Seeded) NewGroupID() string { return s.uuid() }

func (s *Seeded) NewSeed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 1 + s.rng.Intn(maxSeed-1)
}

// TypeIDs returns prefixed, sortable identifiers such as grp_01h455vb4pex5vsknk084sn02q.
type TypeIDs struct{}

func (TypeIDs) NewID() string      { return typeid.MustGenerate(PrefixElement).String() }
func (TypeIDs) NewGroupID() string { return typeid.MustGenerate(PrefixGroup).String() }
func (TypeIDs) NewSeed() int       { return Random{}.NewSeed() }

// Validate checks that id is a typeid with the expected prefix.
func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}

// ByName returns the source named "uuid", "typeid" or "seeded".
// The seed is only used by the latter.
func ByName(name string, seed int64) (Source, error) {
	switch name {
	case "", "uuid":
		return Random{}, nil
	case "typeid":
		return TypeIDs{}, nil
	case "seeded":
		return NewSeeded(seed), nil
	}
	return nil, fmt.Errorf("unknown id style %q", name)
}
