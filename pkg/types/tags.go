package types

import (
	"encoding/json"
	"slices"
	"strings"
	"unicode"
)

// TagSet is a set of lowercase, whitespace-free tags. Duplicates collapse
// and insertion order is irrelevant. It serializes to a sorted JSON array
// of strings so sidecar files are stable across round-trips.
type TagSet map[string]struct{}

// NewTagSet returns a set containing the given tags, deduplicated.
func NewTagSet(tags ...string) TagSet {
	t := make(TagSet, len(tags))
	for _, tag := range tags {
		t[tag] = struct{}{}
	}
	return t
}

// Add inserts a tag into the set.
func (t TagSet) Add(tag string) {
	t[tag] = struct{}{}
}

// Has reports whether the set contains tag.
func (t TagSet) Has(tag string) bool {
	_, ok := t[tag]
	return ok
}

// Remove deletes a tag from the set. Removing an absent tag is a no-op.
func (t TagSet) Remove(tag string) {
	delete(t, tag)
}

// Merge adds every tag from other into the set.
func (t TagSet) Merge(other TagSet) {
	for tag := range other {
		t[tag] = struct{}{}
	}
}

// Clone returns an independent copy of the set.
func (t TagSet) Clone() TagSet {
	c := make(TagSet, len(t))
	for tag := range t {
		c[tag] = struct{}{}
	}
	return c
}

// Equal reports whether both sets contain exactly the same tags.
func (t TagSet) Equal(other TagSet) bool {
	if len(t) != len(other) {
		return false
	}
	for tag := range t {
		if !other.Has(tag) {
			return false
		}
	}
	return true
}

// Sorted returns the tags in ascending order.
func (t TagSet) Sorted() []string {
	out := make([]string, 0, len(t))
	for tag := range t {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

// String renders the tags comma-separated, for display.
func (t TagSet) String() string {
	return strings.Join(t.Sorted(), ", ")
}

// MarshalJSON encodes the set as a sorted array of strings.
func (t TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Sorted())
}

// UnmarshalJSON decodes an array of strings, collapsing duplicates.
func (t *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*t = NewTagSet(tags...)
	return nil
}

// NormalizeTag lowercases a tag the way the interactive prompt does.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// ValidTag reports whether tag is non-empty and free of whitespace.
func ValidTag(tag string) bool {
	if tag == "" {
		return false
	}
	return !strings.ContainsFunc(tag, unicode.IsSpace)
}
