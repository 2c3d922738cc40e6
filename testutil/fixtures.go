// Package testutil provides shared fixtures for tests.
// Builders validate through the domain constructors and fail the test on any
// error, so a fixture is always a well-formed entity.
package testutil

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// Tags builds a TagSet from names.
func Tags(t testing.TB, names ...string) domain.TagSet {
	t.Helper()
	s, err := domain.ParseTagSet(names...)
	if err != nil {
		t.Fatalf("testutil.Tags: %v", err)
	}
	return s
}

// Range builds a PriceRange.
func Range(t testing.TB, lower, upper int64) domain.PriceRange {
	t.Helper()
	r, err := domain.NewPriceRange(lower, upper)
	if err != nil {
		t.Fatalf("testutil.Range: %v", err)
	}
	return r
}

// Person builds a person with a fresh ID and no associations.
// Use it for tests that do not go through a repository.
func Person(t testing.TB, name, phone string) domain.Person {
	t.Helper()
	p, err := domain.NewPerson(name, phone, "")
	if err != nil {
		t.Fatalf("testutil.Person: %v", err)
	}
	p.ID = uuid.New()
	return p
}

// Prefer appends a preference to person and returns it.
func Prefer(t testing.TB, person *domain.Person, priceRange domain.PriceRange, tags ...string) domain.PropertyPreference {
	t.Helper()
	pref, err := domain.NewPreference(person.ID, priceRange, Tags(t, tags...))
	if err != nil {
		t.Fatalf("testutil.Prefer: %v", err)
	}
	pref.ID = uuid.New()
	person.Preferences = append(person.Preferences, pref)
	return pref
}

// Listing builds an available, unowned listing at unit number unit with a
// fresh ID.
func Listing(t testing.TB, postalCode, unit string, priceRange domain.PriceRange, tags ...string) domain.Listing {
	t.Helper()
	l, err := domain.NewListing(domain.Address{PostalCode: postalCode, UnitNumber: unit}, "", priceRange, Tags(t, tags...))
	if err != nil {
		t.Fatalf("testutil.Listing: %v", err)
	}
	l.ID = uuid.New()
	return l
}

// Own links person and listing on both sides without a repository.
func Own(person *domain.Person, listing *domain.Listing) {
	person.Listings = append(person.Listings, listing.ID)
	listing.Owners = append(listing.Owners, person.ID)
}
