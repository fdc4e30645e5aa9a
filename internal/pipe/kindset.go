package pipe

import (
	"errors"
	"strings"

	"github.com/vovakirdan/tui-pipes/internal/rng"
)

// ErrEmptyKindSet is returned when a kind set would have no members.
var ErrEmptyKindSet = errors.New("kind set is empty")

// KindSet is a non-empty ordered collection of kinds without duplicates.
type KindSet struct {
	kinds []Kind
}

// NewKindSet builds a set, keeping the first occurrence of each kind.
func NewKindSet(kinds ...Kind) (KindSet, error) {
	set := KindSet{kinds: make([]Kind, 0, len(kinds))}
	for _, k := range kinds {
		if !set.Contains(k) {
			set.kinds = append(set.kinds, k)
		}
	}
	if len(set.kinds) == 0 {
		return KindSet{}, ErrEmptyKindSet
	}
	return set, nil
}

// ParseKindSet builds a set from preset names. Each name may itself be a
// comma separated list, so both ["heavy", "curved"] and ["heavy,curved"] work.
func ParseKindSet(names []string) (KindSet, error) {
	var kinds []Kind
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			k, err := KindByName(name)
			if err != nil {
				return KindSet{}, err
			}
			kinds = append(kinds, k)
		}
	}
	return NewKindSet(kinds...)
}

// Contains reports whether k is a member.
func (s KindSet) Contains(k Kind) bool {
	for _, m := range s.kinds {
		if m == k {
			return true
		}
	}
	return false
}

// Len returns the number of kinds.
func (s KindSet) Len() int {
	return len(s.kinds)
}

// Kinds returns the members in order.
func (s KindSet) Kinds() []Kind {
	out := make([]Kind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// Names returns the member names in order.
func (s KindSet) Names() []string {
	names := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		names[i] = k.Name
	}
	return names
}

// String joins the member names with commas.
func (s KindSet) String() string {
	return strings.Join(s.Names(), ",")
}

// Choose picks a member uniformly.
func (s KindSet) Choose(r rng.Rand) Kind {
	return s.kinds[r.IntRange(0, len(s.kinds))]
}

// MaxDisplayWidth returns the widest member's display width. Every glyph is
// drawn in a cell this wide so kinds of different widths never overlap.
func (s KindSet) MaxDisplayWidth() int {
	width := 1
	for _, k := range s.kinds {
		if w := k.DisplayWidth(); w > width {
			width = w
		}
	}
	return width
}
