package domain

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Address locates a listing: a postal code plus exactly one of a house
// number or a unit number.
type Address struct {
	PostalCode  string `json:"postal_code"`
	HouseNumber string `json:"house_number,omitempty"`
	UnitNumber  string `json:"unit_number,omitempty"`
}

// Validate rejects blank or non-numeric postal codes and addresses with
// both or neither number kind.
func (a Address) Validate() error {
	if a.PostalCode == "" {
		return fmt.Errorf("%w: postal code is required", ErrValidation)
	}
	for _, r := range a.PostalCode {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: postal code must contain digits only", ErrValidation)
		}
	}
	hasHouse, hasUnit := a.HouseNumber != "", a.UnitNumber != ""
	switch {
	case hasHouse && hasUnit:
		return fmt.Errorf("%w: listing cannot have both a house number and a unit number", ErrValidation)
	case !hasHouse && !hasUnit:
		return fmt.Errorf("%w: listing needs a house number or a unit number", ErrValidation)
	}
	return nil
}

// Key is the identity of the listing's location, e.g. "123456/h:12" or
// "123456/u:#05-11". Number comparison ignores case.
func (a Address) Key() string {
	if a.UnitNumber != "" {
		return a.PostalCode + "/u:" + strings.ToLower(a.UnitNumber)
	}
	return a.PostalCode + "/h:" + strings.ToLower(a.HouseNumber)
}

func (a Address) String() string {
	if a.UnitNumber != "" {
		return a.UnitNumber + ", " + a.PostalCode
	}
	return a.HouseNumber + ", " + a.PostalCode
}

// Listing is a property for sale or rent.
// Owners holds the IDs of the persons owning it; the owners' Listings fields
// mirror it and both sides are changed together by the repository.
type Listing struct {
	ID           uuid.UUID   `json:"id"`
	Address      Address     `json:"address"`
	PropertyName string      `json:"property_name,omitempty"`
	PriceRange   PriceRange  `json:"price_range"`
	Tags         TagSet      `json:"tags"`
	Owners       []uuid.UUID `json:"owners"`
	Available    bool        `json:"available"`
}

// NewListing validates the address and returns an available listing with no
// owners. A nil tags argument yields an empty set.
func NewListing(addr Address, propertyName string, priceRange PriceRange, tags TagSet) (Listing, error) {
	addr = Address{
		PostalCode:  strings.TrimSpace(addr.PostalCode),
		HouseNumber: strings.TrimSpace(addr.HouseNumber),
		UnitNumber:  strings.TrimSpace(addr.UnitNumber),
	}
	if err := addr.Validate(); err != nil {
		return Listing{}, err
	}
	if priceRange.Lower < 0 || priceRange.Upper < priceRange.Lower {
		return Listing{}, fmt.Errorf("%w: invalid price range %s", ErrValidation, priceRange)
	}
	return Listing{
		Address:      addr,
		PropertyName: strings.TrimSpace(propertyName),
		PriceRange:   priceRange,
		Tags:         tags.Clone(),
		Owners:       []uuid.UUID{},
		Available:    true,
	}, nil
}

// Key returns the address identity of the listing.
func (l Listing) Key() string {
	return l.Address.Key()
}

// HasOwner reports whether personID owns l.
func (l Listing) HasOwner(personID uuid.UUID) bool {
	return slices.Contains(l.Owners, personID)
}

// Clone returns a deep copy so callers cannot reach repository-held state.
func (l Listing) Clone() Listing {
	c := l
	c.Tags = l.Tags.Clone()
	c.Owners = slices.Clone(l.Owners)
	if c.Owners == nil {
		c.Owners = []uuid.UUID{}
	}
	return c
}
