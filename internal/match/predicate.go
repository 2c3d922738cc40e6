// Package match holds the matching core: compatibility predicates between
// preferences, persons and listings, the scorers used to rank candidates,
// and the SearchContext describing an active search.
//
// Everything here is a pure function of its arguments except SearchContext,
// which is a plain value owned by the caller's session.
package match

import "github.com/lesterlimjj/tp-sub001/internal/domain"

// Predicate reports whether a candidate passes a filter.
type Predicate[T any] func(T) bool

// All returns a predicate accepting every candidate.
func All[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// And returns a predicate accepting candidates accepted by every p.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Filter returns the items accepted by keep, preserving order.
// The result is never nil.
func Filter[T any](items []T, keep Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// PreferenceMatchesListing decides whether listing is eligible for pref.
//
// The listing must be available and not already owned by pref's person.
// A preference without tags, or whose price range overlaps the listing's,
// matches outright; otherwise the listing must carry every tag of pref.
// The empty-tag case ignores price entirely.
func PreferenceMatchesListing(pref domain.PropertyPreference, listing domain.Listing) bool {
	if !listing.Available {
		return false
	}
	if listing.HasOwner(pref.PersonID) {
		return false
	}
	if len(pref.Tags) == 0 || pref.PriceRange.Overlaps(listing.PriceRange) {
		return true
	}
	return listing.Tags.ContainsAll(pref.Tags)
}

// PersonMatchesListing decides whether person would want listing.
//
// The person needs at least one preference, must not own the listing, and the
// listing must be available. An untagged listing then matches; otherwise some
// preference has to share a tag with it or overlap its price range.
func PersonMatchesListing(person domain.Person, listing domain.Listing) bool {
	if len(person.Preferences) == 0 {
		return false
	}
	if listing.HasOwner(person.ID) || !listing.Available {
		return false
	}
	if len(listing.Tags) == 0 {
		return true
	}
	for _, pref := range person.Preferences {
		if pref.Tags.Intersects(listing.Tags) || pref.PriceRange.Overlaps(listing.PriceRange) {
			return true
		}
	}
	return false
}

// ListingsMatchingPreference pins pref and returns a listing filter.
func ListingsMatchingPreference(pref domain.PropertyPreference) Predicate[domain.Listing] {
	return func(l domain.Listing) bool { return PreferenceMatchesListing(pref, l) }
}

// PersonsMatchingListing pins listing and returns a person filter.
func PersonsMatchingListing(listing domain.Listing) Predicate[domain.Person] {
	return func(p domain.Person) bool { return PersonMatchesListing(p, listing) }
}

// PreferencesMatchingListing pins listing and returns a preference filter,
// the form a SearchContext installs during a person search.
func PreferencesMatchingListing(listing domain.Listing) Predicate[domain.PropertyPreference] {
	return func(pref domain.PropertyPreference) bool { return PreferenceMatchesListing(pref, listing) }
}
