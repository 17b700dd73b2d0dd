package charset

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is an ordered set of code points. Sets handed out by this package are
// not modified afterwards.
type Set struct {
	tree *treeset.Set
}

// NewSet creates a set holding runes. Duplicates collapse.
func NewSet(runes ...rune) *Set {
	s := &Set{tree: treeset.NewWith(utils.RuneComparator)}
	for _, r := range runes {
		s.add(r)
	}
	return s
}

func (s *Set) add(r rune) {
	s.tree.Add(r)
}

// Size returns the number of code points in s. A nil set is empty.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return s.tree.Size()
}

// Contains is true if r is an element of s.
func (s *Set) Contains(r rune) bool {
	if s == nil {
		return false
	}
	return s.tree.Contains(r)
}

// Runes returns the code points of s in ascending order.
func (s *Set) Runes() []rune {
	if s == nil {
		return nil
	}
	runes := make([]rune, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		runes = append(runes, it.Value().(rune))
	}
	return runes
}

// Range returns the smallest and the largest code point of s.
// ok is false for an empty set.
func (s *Set) Range() (lo, hi rune, ok bool) {
	if s.Size() == 0 {
		return 0, 0, false
	}
	it := s.tree.Iterator()
	it.First()
	lo = it.Value().(rune)
	it.Last()
	hi = it.Value().(rune)
	return lo, hi, true
}

// Union returns a new set containing the code points of s and other.
// Either one may be nil.
func (s *Set) Union(other *Set) *Set {
	u := NewSet(s.Runes()...)
	for _, r := range other.Runes() {
		u.add(r)
	}
	return u
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range s.Runes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "U+%04X", r)
	}
	b.WriteByte('}')
	return b.String()
}
