package match

import (
	"strings"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// ActiveTagSource exposes the tags currently flagged for search, keyed by
// lower-cased name. Implementations are only read, never mutated.
type ActiveTagSource interface {
	ActiveTags() map[string]domain.Tag
}

// lowerSet lower-cases and trims keywords into a lookup set.
func lowerSet(keywords []string) map[string]struct{} {
	out := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		out[strings.ToLower(strings.TrimSpace(k))] = struct{}{}
	}
	return out
}

// containsKeys reports whether every key in want is present in have.
func containsKeys(have domain.TagSet, want map[string]struct{}) bool {
	for k := range want {
		if _, ok := have[k]; !ok {
			return false
		}
	}
	return true
}

// ListingHasTags accepts listings whose tags include every keyword, ignoring
// case. With no keywords every listing is accepted.
func ListingHasTags(keywords []string) Predicate[domain.Listing] {
	want := lowerSet(keywords)
	return func(l domain.Listing) bool {
		return containsKeys(l.Tags, want)
	}
}

// PersonHasTags accepts persons whose preferences, taken together, carry
// every keyword, ignoring case.
//
// Unlike ListingHasTags, an empty keyword list accepts nobody.
func PersonHasTags(keywords []string) Predicate[domain.Person] {
	want := lowerSet(keywords)
	return func(p domain.Person) bool {
		if len(want) == 0 {
			return false
		}
		return containsKeys(p.Tags(), want)
	}
}

// PreferenceHasActiveTags accepts preferences carrying every tag that src
// reports as active. The active set is read on each call; an empty active set
// accepts every preference.
func PreferenceHasActiveTags(src ActiveTagSource) Predicate[domain.PropertyPreference] {
	return func(pref domain.PropertyPreference) bool {
		for k := range src.ActiveTags() {
			if _, ok := pref.Tags[k]; !ok {
				return false
			}
		}
		return true
	}
}
