package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// PropertyPreference is a person's desired price range and tag set.
// PersonID is a back-reference to the owning person; the person holds the
// preference by value in Person.Preferences.
type PropertyPreference struct {
	ID         uuid.UUID  `json:"id"`
	PersonID   uuid.UUID  `json:"person_id"`
	PriceRange PriceRange `json:"price_range"`
	Tags       TagSet     `json:"tags"`
}

// NewPreference builds a preference owned by personID.
// A nil tags argument yields an empty set.
func NewPreference(personID uuid.UUID, priceRange PriceRange, tags TagSet) (PropertyPreference, error) {
	if personID == uuid.Nil {
		return PropertyPreference{}, fmt.Errorf("%w: preference must belong to a person", ErrValidation)
	}
	if priceRange.Lower < 0 || priceRange.Upper < priceRange.Lower {
		return PropertyPreference{}, fmt.Errorf("%w: invalid price range %s", ErrValidation, priceRange)
	}
	return PropertyPreference{
		PersonID:   personID,
		PriceRange: priceRange,
		Tags:       tags.Clone(),
	}, nil
}

// Clone returns a copy with its own tag set.
func (p PropertyPreference) Clone() PropertyPreference {
	c := p
	c.Tags = p.Tags.Clone()
	return c
}
