package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Tag is a label attached to preferences and listings.
// Identity is case-insensitive: two tags whose names differ only in case are
// the same tag. Name keeps the casing it was created with.
type Tag struct {
	Name string
}

// NewTag trims name and rejects it if nothing is left.
func NewTag(name string) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, fmt.Errorf("%w: tag name is required", ErrValidation)
	}
	return Tag{Name: name}, nil
}

// Key returns the lower-cased name used for equality and map lookups.
func (t Tag) Key() string {
	return strings.ToLower(t.Name)
}

// Equal reports whether t and other name the same tag, ignoring case.
func (t Tag) Equal(other Tag) bool {
	return t.Key() == other.Key()
}

func (t Tag) String() string {
	return t.Name
}

// TagSet is an unordered set of tags keyed by Tag.Key.
// A nil TagSet is empty and safe to read; use NewTagSet before adding.
type TagSet map[string]Tag

// NewTagSet builds a set from tags. Later duplicates (by key) are ignored so
// the first casing seen wins.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// ParseTagSet builds a set from raw names, validating each one.
func ParseTagSet(names ...string) (TagSet, error) {
	s := make(TagSet, len(names))
	for _, n := range names {
		t, err := NewTag(n)
		if err != nil {
			return nil, err
		}
		s.Add(t)
	}
	return s, nil
}

// Add inserts t unless a tag with the same key is already present.
func (s TagSet) Add(t Tag) {
	if _, ok := s[t.Key()]; !ok {
		s[t.Key()] = t
	}
}

// Remove deletes the tag with t's key, if any.
func (s TagSet) Remove(t Tag) {
	delete(s, t.Key())
}

// Contains reports whether a tag equal to t is in the set.
func (s TagSet) Contains(t Tag) bool {
	_, ok := s[t.Key()]
	return ok
}

// ContainsName is Contains for a raw, possibly mixed-case name.
func (s TagSet) ContainsName(name string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ContainsAll reports whether s is a superset of other.
// Every set contains the empty set.
func (s TagSet) ContainsAll(other TagSet) bool {
	for k := range other {
		if _, ok := s[k]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one tag.
func (s TagSet) Intersects(other TagSet) bool {
	return s.SharedCount(other) > 0
}

// SharedCount returns the number of tags present in both sets.
func (s TagSet) SharedCount(other TagSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for k := range small {
		if _, ok := large[k]; ok {
			n++
		}
	}
	return n
}

// Union returns a new set holding the tags of s and other.
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for _, t := range s {
		out.Add(t)
	}
	for _, t := range other {
		out.Add(t)
	}
	return out
}

// Clone returns an independent copy of s.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for k, t := range s {
		out[k] = t
	}
	return out
}

// Names returns the display names ordered by key.
func (s TagSet) Names() []string {
	keys := s.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = s[k].Name
	}
	return names
}

// Keys returns the lower-cased keys in sorted order.
func (s TagSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MarshalJSON encodes the set as a sorted array of display names.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes an array of names, validating each one.
func (s *TagSet) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	parsed, err := ParseTagSet(names...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
