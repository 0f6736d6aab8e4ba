package letterfall

import (
	"sort"
	"strings"
)

// FocusSet is the set of letters currently matched by the typed buffer.
// The zero value is an empty set.
type FocusSet struct {
	ids map[LetterID]struct{}
}

// NewFocusSet builds a set from ids.
func NewFocusSet(ids ...LetterID) FocusSet {
	f := FocusSet{ids: make(map[LetterID]struct{}, len(ids))}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	return f
}

// Has reports whether id is focused.
func (f FocusSet) Has(id LetterID) bool {
	_, ok := f.ids[id]
	return ok
}

// Len returns the number of focused letters.
func (f FocusSet) Len() int {
	return len(f.ids)
}

// Remove drops id from the set.
func (f FocusSet) Remove(id LetterID) {
	delete(f.ids, id)
}

// IDs returns the focused letters in ascending order, which is spawn order.
func (f FocusSet) IDs() []LetterID {
	out := make([]LetterID, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether both sets hold the same letters.
func (f FocusSet) Equal(other FocusSet) bool {
	if f.Len() != other.Len() {
		return false
	}
	for id := range f.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Match computes which letters the typed word focuses. The word is treated
// as a multiset: each active letter, oldest first, claims the first unclaimed
// matching character. Each character claims at most one letter and each
// letter at most one character. Unmatched characters are ignored.
//
// Match works on its own copy of the word and never modifies letters.
func Match(word string, letters []Letter) FocusSet {
	focus := FocusSet{ids: make(map[LetterID]struct{})}
	pending := []rune(word)

	for _, l := range letters {
		if !l.Active || len(pending) == 0 {
			continue
		}
		for i, r := range pending {
			if r == l.Char {
				pending = append(pending[:i], pending[i+1:]...)
				focus.ids[l.ID] = struct{}{}
				break
			}
		}
	}
	return focus
}

// NormalizeWord trims text, drops everything but ASCII letters and
// uppercases the rest.
func NormalizeWord(text string) string {
	text = strings.TrimSpace(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		}
	}
	return sb.String()
}
