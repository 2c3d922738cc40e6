package match

import (
	"cmp"
	"slices"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// ListingScore counts the criteria of pref that listing satisfies:
// one point for an overlapping price range plus one per shared tag.
func ListingScore(pref domain.PropertyPreference, listing domain.Listing) int {
	score := 0
	if pref.PriceRange.Overlaps(listing.PriceRange) {
		score++
	}
	return score + pref.Tags.SharedCount(listing.Tags)
}

// PersonScore is the best ListingScore over person's preferences.
// A person without preferences scores 0.
func PersonScore(listing domain.Listing, person domain.Person) int {
	best := 0
	for _, pref := range person.Preferences {
		if s := ListingScore(pref, listing); s > best {
			best = s
		}
	}
	return best
}

// ByListingScore returns a comparator ordering listings by descending score
// against pref. Equal scores compare as 0.
func ByListingScore(pref domain.PropertyPreference) func(a, b domain.Listing) int {
	return func(a, b domain.Listing) int {
		return cmp.Compare(ListingScore(pref, b), ListingScore(pref, a))
	}
}

// ByPersonScore returns a comparator ordering persons by descending score
// against listing. Equal scores compare as 0.
func ByPersonScore(listing domain.Listing) func(a, b domain.Person) int {
	return func(a, b domain.Person) int {
		return cmp.Compare(PersonScore(listing, b), PersonScore(listing, a))
	}
}

// Rank returns a sorted copy of items. The sort is stable, so ties keep their
// input order.
func Rank[T any](items []T, compare func(a, b T) int) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, compare)
	return out
}
