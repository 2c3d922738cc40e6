package domain

// ListingMatch is one row of a listing search result.
// ActiveTags are the listing's tags that were highlighted by the search
// context; PriceMatch is set when the listing's range overlaps the active one.
type ListingMatch struct {
	Listing    Listing  `json:"listing"`
	Score      int      `json:"score"`
	ActiveTags []string `json:"active_tags"`
	PriceMatch bool     `json:"price_match"`
}

// PersonMatch is one row of a person search result.
// MatchingPreferences lists the preferences accepted by the search context's
// preference predicate, in the person's preference order.
type PersonMatch struct {
	Person              Person               `json:"person"`
	Score               int                  `json:"score"`
	ActiveTags          []string             `json:"active_tags"`
	MatchingPreferences []PropertyPreference `json:"matching_preferences"`
}
