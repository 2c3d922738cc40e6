package match

import "github.com/lesterlimjj/tp-sub001/internal/domain"

// SearchType says which side of the match a search is looking for.
type SearchType int

const (
	SearchNone SearchType = iota
	SearchPerson
	SearchListing
)

func (t SearchType) String() string {
	switch t {
	case SearchPerson:
		return "person"
	case SearchListing:
		return "listing"
	default:
		return "none"
	}
}

// SearchContext is the filter state of one search session: what is being
// searched for, the tags and price range the target contributes, and a
// predicate selecting relevant preferences.
//
// The zero value is a cleared context. A SearchContext is not safe for
// concurrent use; each session owns its own.
type SearchContext struct {
	searchType  SearchType
	activeTags  domain.TagSet
	activePrice *domain.PriceRange
	predicate   Predicate[domain.PropertyPreference]
}

// Configure replaces the whole state. Any search type may follow any other.
// A nil priceRange means no active range; a nil predicate accepts every
// preference. tags and priceRange are copied.
func (c *SearchContext) Configure(t SearchType, tags domain.TagSet, priceRange *domain.PriceRange, predicate Predicate[domain.PropertyPreference]) {
	c.searchType = t
	c.activeTags = tags.Clone()
	c.activePrice = nil
	if priceRange != nil {
		r := *priceRange
		c.activePrice = &r
	}
	c.predicate = predicate
}

// Clear resets the context to SearchNone with no tags, no price range and the
// match-all predicate.
func (c *SearchContext) Clear() {
	*c = SearchContext{}
}

// SearchType returns the configured search type.
func (c *SearchContext) SearchType() SearchType {
	return c.searchType
}

// ActiveTags returns a copy of the active tags; never nil.
func (c *SearchContext) ActiveTags() domain.TagSet {
	return c.activeTags.Clone()
}

// ActivePriceRange returns a copy of the active range, or nil.
func (c *SearchContext) ActivePriceRange() *domain.PriceRange {
	if c.activePrice == nil {
		return nil
	}
	r := *c.activePrice
	return &r
}

// Matches runs the installed preference predicate. The search type is not
// consulted; callers install a predicate consistent with it.
func (c *SearchContext) Matches(pref domain.PropertyPreference) bool {
	if c.predicate == nil {
		return true
	}
	return c.predicate(pref)
}

// IsTagActiveForPerson reports whether tag is active in a person search.
func (c *SearchContext) IsTagActiveForPerson(tag domain.Tag) bool {
	return c.searchType == SearchPerson && c.activeTags.Contains(tag)
}

// IsTagActiveForListing reports whether tag is active in a listing search.
func (c *SearchContext) IsTagActiveForListing(tag domain.Tag) bool {
	return c.searchType == SearchListing && c.activeTags.Contains(tag)
}

// IsPriceInRangeForPerson reports whether r overlaps the active range during a
// person search. It is false when no range is active.
func (c *SearchContext) IsPriceInRangeForPerson(r domain.PriceRange) bool {
	return c.searchType == SearchPerson && c.activePrice != nil && c.activePrice.Overlaps(r)
}

// IsPriceInRangeForListing is IsPriceInRangeForPerson for listing searches.
func (c *SearchContext) IsPriceInRangeForListing(r domain.PriceRange) bool {
	return c.searchType == SearchListing && c.activePrice != nil && c.activePrice.Overlaps(r)
}
