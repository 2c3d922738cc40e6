// Package domain contains the core data types of the property matcher:
// persons, their property preferences, listings, tags and price ranges.
// It depends on nothing but uuid and is imported by every other internal package.
package domain

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Person is a contact tracked by the CRM.
// Two persons are the same person iff their phones match; ID is the arena
// identifier assigned by the repository.
// Preferences and Listings are associations maintained by the repository.
type Person struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email,omitempty"`

	Preferences []PropertyPreference `json:"preferences"`
	Listings    []uuid.UUID          `json:"listings"` // listings this person owns
}

// NewPerson validates the identity fields and returns a person with no
// associations. Email is optional.
func NewPerson(name, phone, email string) (Person, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if name == "" {
		return Person{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := validatePhone(phone); err != nil {
		return Person{}, err
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Person{}, fmt.Errorf("%w: invalid email %q", ErrValidation, email)
		}
	}
	return Person{
		Name:        name,
		Phone:       phone,
		Email:       email,
		Preferences: []PropertyPreference{},
		Listings:    []uuid.UUID{},
	}, nil
}

// validatePhone requires at least three digits and nothing else.
func validatePhone(phone string) error {
	if len(phone) < 3 {
		return fmt.Errorf("%w: phone must have at least 3 digits", ErrValidation)
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: phone must contain digits only", ErrValidation)
		}
	}
	return nil
}

// SamePerson reports whether p and other share a phone number.
func (p Person) SamePerson(other Person) bool {
	return p.Phone == other.Phone
}

// OwnsListing reports whether listingID is in p.Listings.
func (p Person) OwnsListing(listingID uuid.UUID) bool {
	return slices.Contains(p.Listings, listingID)
}

// Preference returns the preference with the given ID.
func (p Person) Preference(id uuid.UUID) (PropertyPreference, bool) {
	for _, pref := range p.Preferences {
		if pref.ID == id {
			return pref, true
		}
	}
	return PropertyPreference{}, false
}

// Tags returns the union of the tags of all of p's preferences.
func (p Person) Tags() TagSet {
	out := TagSet{}
	for _, pref := range p.Preferences {
		for _, t := range pref.Tags {
			out.Add(t)
		}
	}
	return out
}

// Clone returns a deep copy so callers cannot reach repository-held slices.
func (p Person) Clone() Person {
	c := p
	c.Preferences = make([]PropertyPreference, len(p.Preferences))
	for i, pref := range p.Preferences {
		c.Preferences[i] = pref.Clone()
	}
	c.Listings = slices.Clone(p.Listings)
	if c.Listings == nil {
		c.Listings = []uuid.UUID{}
	}
	return c
}
