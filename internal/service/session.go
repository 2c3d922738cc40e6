package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/match"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
)

// Session runs searches against the repositories.
// Each search configures the session's SearchContext, filters and ranks the
// candidates, reads the highlight data off the context, then clears it.
// A Session is not safe for concurrent use; give each caller its own.
type Session struct {
	persons  repo.PersonRepo
	listings repo.ListingRepo
	tags     repo.TagRepo
	logger   *slog.Logger

	search match.SearchContext
}

// NewSession constructs a Session. A nil logger discards log output.
func NewSession(persons repo.PersonRepo, listings repo.ListingRepo, tags repo.TagRepo, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{persons: persons, listings: listings, tags: tags, logger: logger}
}

// SearchType returns the search type currently configured. Outside of a
// search it is match.SearchNone.
func (s *Session) SearchType() match.SearchType {
	return s.search.SearchType()
}

// MatchListings returns the listings eligible for the preference, best score
// first.
func (s *Session) MatchListings(prefID uuid.UUID) ([]domain.ListingMatch, error) {
	pref, err := s.persons.GetPreference(prefID)
	if err != nil {
		return nil, fmt.Errorf("service.Session.MatchListings: %w", err)
	}

	s.search.Configure(match.SearchListing, pref.Tags, &pref.PriceRange, nil)
	defer s.search.Clear()

	all := s.listings.ListListings()
	candidates := match.Filter(all, match.ListingsMatchingPreference(pref))
	ranked := match.Rank(candidates, match.ByListingScore(pref))
	s.logger.Debug("listing search",
		slog.String("preference", pref.ID.String()),
		slog.Int("candidates", len(all)),
		slog.Int("matches", len(ranked)),
	)

	out := make([]domain.ListingMatch, 0, len(ranked))
	for _, l := range ranked {
		out = append(out, domain.ListingMatch{
			Listing:    l,
			Score:      match.ListingScore(pref, l),
			ActiveTags: highlighted(l.Tags, s.search.IsTagActiveForListing),
			PriceMatch: s.search.IsPriceInRangeForListing(l.PriceRange),
		})
	}
	return out, nil
}

// MatchPersons returns the persons who would want the listing, best score
// first, each with the preferences that accept it.
func (s *Session) MatchPersons(listingID uuid.UUID) ([]domain.PersonMatch, error) {
	listing, err := s.listings.GetListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service.Session.MatchPersons: %w", err)
	}

	s.search.Configure(match.SearchPerson, listing.Tags, &listing.PriceRange, match.PreferencesMatchingListing(listing))
	defer s.search.Clear()

	all := s.persons.ListPersons()
	candidates := match.Filter(all, match.PersonsMatchingListing(listing))
	ranked := match.Rank(candidates, match.ByPersonScore(listing))
	s.logger.Debug("person search",
		slog.String("listing", listing.Key()),
		slog.Int("candidates", len(all)),
		slog.Int("matches", len(ranked)),
	)

	out := make([]domain.PersonMatch, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, domain.PersonMatch{
			Person:              p,
			Score:               match.PersonScore(listing, p),
			ActiveTags:          highlighted(p.Tags(), s.search.IsTagActiveForPerson),
			MatchingPreferences: match.Filter(p.Preferences, s.search.Matches),
		})
	}
	return out, nil
}

// FindListingsByTags returns the listings carrying every keyword.
// With no keywords every listing is returned.
func (s *Session) FindListingsByTags(keywords []string) ([]domain.Listing, error) {
	if err := checkKeywords(keywords); err != nil {
		return nil, err
	}
	return match.Filter(s.listings.ListListings(), match.ListingHasTags(keywords)), nil
}

// FindPersonsByTags returns the persons whose preferences together carry
// every keyword. With no keywords nobody is returned.
func (s *Session) FindPersonsByTags(keywords []string) ([]domain.Person, error) {
	if err := checkKeywords(keywords); err != nil {
		return nil, err
	}
	return match.Filter(s.persons.ListPersons(), match.PersonHasTags(keywords)), nil
}

// FilterPreferencesByActiveTags returns every preference carrying all tags
// currently active in the tag registry, in person order.
func (s *Session) FilterPreferencesByActiveTags() []domain.PropertyPreference {
	keep := match.PreferenceHasActiveTags(s.tags)
	out := []domain.PropertyPreference{}
	for _, p := range s.persons.ListPersons() {
		out = append(out, match.Filter(p.Preferences, keep)...)
	}
	return out
}

func checkKeywords(keywords []string) error {
	for _, k := range keywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: blank tag keyword", domain.ErrValidation)
		}
	}
	return nil
}

// highlighted returns the names of the tags in set accepted by active, in
// key order. Never nil.
func highlighted(set domain.TagSet, active func(domain.Tag) bool) []string {
	out := []string{}
	for _, k := range set.Keys() {
		if t := set[k]; active(t) {
			out = append(out, t.Name)
		}
	}
	return out
}
