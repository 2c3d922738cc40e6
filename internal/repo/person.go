package repo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// CreatePerson stores a copy of p with a fresh ID and no associations.
// Preferences and listings are attached through AddPreference and AddOwner.
func (s *Store) CreatePerson(p domain.Person) (domain.Person, error) {
	if _, taken := s.phones[p.Phone]; taken {
		return domain.Person{}, fmt.Errorf("repo.Store.CreatePerson: phone %s: %w", p.Phone, domain.ErrConflict)
	}
	stored := p.Clone()
	stored.ID = s.newID()
	stored.Preferences = []domain.PropertyPreference{}
	stored.Listings = []uuid.UUID{}

	s.persons[stored.ID] = &stored
	s.personOrder = append(s.personOrder, stored.ID)
	s.phones[stored.Phone] = stored.ID
	return stored.Clone(), nil
}

// GetPerson retrieves a person by ID.
func (s *Store) GetPerson(id uuid.UUID) (domain.Person, error) {
	p, ok := s.persons[id]
	if !ok {
		return domain.Person{}, fmt.Errorf("repo.Store.GetPerson: %w", domain.ErrNotFound)
	}
	return p.Clone(), nil
}

// GetPersonByPhone retrieves a person by phone number.
func (s *Store) GetPersonByPhone(phone string) (domain.Person, error) {
	id, ok := s.phones[phone]
	if !ok {
		return domain.Person{}, fmt.Errorf("repo.Store.GetPersonByPhone: %w", domain.ErrNotFound)
	}
	return s.persons[id].Clone(), nil
}

// ListPersons returns every person in insertion order. Never nil.
func (s *Store) ListPersons() []domain.Person {
	out := make([]domain.Person, 0, len(s.personOrder))
	for _, id := range s.personOrder {
		out = append(out, s.persons[id].Clone())
	}
	return out
}

// DeletePerson removes the person, releases the tags of their preferences and
// drops them from the owner set of every listing they own.
func (s *Store) DeletePerson(id uuid.UUID) error {
	p, ok := s.persons[id]
	if !ok {
		return fmt.Errorf("repo.Store.DeletePerson: %w", domain.ErrNotFound)
	}
	for _, listingID := range p.Listings {
		if l, ok := s.listings[listingID]; ok {
			l.Owners, _ = removeID(l.Owners, id)
		}
	}
	for _, pref := range p.Preferences {
		s.tags.releasePreference(pref)
		delete(s.prefOwners, pref.ID)
	}
	delete(s.persons, id)
	delete(s.phones, p.Phone)
	s.personOrder, _ = removeID(s.personOrder, id)
	return nil
}

// AddPreference appends a copy of pref to its person with a fresh ID and
// registers its tags.
func (s *Store) AddPreference(pref domain.PropertyPreference) (domain.PropertyPreference, error) {
	p, ok := s.persons[pref.PersonID]
	if !ok {
		return domain.PropertyPreference{}, fmt.Errorf("repo.Store.AddPreference: person: %w", domain.ErrNotFound)
	}
	stored := pref.Clone()
	stored.ID = s.newID()
	stored.Tags = s.tags.usePreference(stored)

	p.Preferences = append(p.Preferences, stored)
	s.prefOwners[stored.ID] = p.ID
	return stored.Clone(), nil
}

// GetPreference retrieves a preference by ID.
func (s *Store) GetPreference(id uuid.UUID) (domain.PropertyPreference, error) {
	personID, ok := s.prefOwners[id]
	if !ok {
		return domain.PropertyPreference{}, fmt.Errorf("repo.Store.GetPreference: %w", domain.ErrNotFound)
	}
	pref, _ := s.persons[personID].Preference(id)
	return pref.Clone(), nil
}

// RemovePreference detaches a preference from its person and releases its tags.
func (s *Store) RemovePreference(id uuid.UUID) error {
	personID, ok := s.prefOwners[id]
	if !ok {
		return fmt.Errorf("repo.Store.RemovePreference: %w", domain.ErrNotFound)
	}
	p := s.persons[personID]
	for i, pref := range p.Preferences {
		if pref.ID == id {
			s.tags.releasePreference(pref)
			p.Preferences = append(p.Preferences[:i], p.Preferences[i+1:]...)
			break
		}
	}
	delete(s.prefOwners, id)
	return nil
}
