package repo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// CreateListing stores a copy of l with a fresh ID and no owners, and
// registers its tags.
func (s *Store) CreateListing(l domain.Listing) (domain.Listing, error) {
	key := l.Key()
	if _, taken := s.addresses[key]; taken {
		return domain.Listing{}, fmt.Errorf("repo.Store.CreateListing: address %s: %w", l.Address, domain.ErrConflict)
	}
	stored := l.Clone()
	stored.ID = s.newID()
	stored.Owners = []uuid.UUID{}
	stored.Tags = s.tags.useListing(stored.ID, stored.Tags)

	s.listings[stored.ID] = &stored
	s.listingOrder = append(s.listingOrder, stored.ID)
	s.addresses[key] = stored.ID
	return stored.Clone(), nil
}

// GetListing retrieves a listing by ID.
func (s *Store) GetListing(id uuid.UUID) (domain.Listing, error) {
	l, ok := s.listings[id]
	if !ok {
		return domain.Listing{}, fmt.Errorf("repo.Store.GetListing: %w", domain.ErrNotFound)
	}
	return l.Clone(), nil
}

// GetListingByAddress retrieves the listing whose address has the same key as addr.
func (s *Store) GetListingByAddress(addr domain.Address) (domain.Listing, error) {
	id, ok := s.addresses[addr.Key()]
	if !ok {
		return domain.Listing{}, fmt.Errorf("repo.Store.GetListingByAddress: %w", domain.ErrNotFound)
	}
	return s.listings[id].Clone(), nil
}

// ListListings returns every listing in insertion order. Never nil.
func (s *Store) ListListings() []domain.Listing {
	out := make([]domain.Listing, 0, len(s.listingOrder))
	for _, id := range s.listingOrder {
		out = append(out, s.listings[id].Clone())
	}
	return out
}

// DeleteListing removes the listing, releases its tags and drops it from the
// Listings of each owner.
func (s *Store) DeleteListing(id uuid.UUID) error {
	l, ok := s.listings[id]
	if !ok {
		return fmt.Errorf("repo.Store.DeleteListing: %w", domain.ErrNotFound)
	}
	for _, ownerID := range l.Owners {
		if p, ok := s.persons[ownerID]; ok {
			p.Listings, _ = removeID(p.Listings, id)
		}
	}
	s.tags.releaseListing(id, l.Tags)
	delete(s.listings, id)
	delete(s.addresses, l.Key())
	s.listingOrder, _ = removeID(s.listingOrder, id)
	return nil
}

// SetListingTags swaps the listing's tags, moving tag usage accordingly.
// Tags kept across the swap keep their registry entry and active flag.
func (s *Store) SetListingTags(id uuid.UUID, tags domain.TagSet) (domain.Listing, error) {
	l, ok := s.listings[id]
	if !ok {
		return domain.Listing{}, fmt.Errorf("repo.Store.SetListingTags: %w", domain.ErrNotFound)
	}
	old := l.Tags
	l.Tags = s.tags.useListing(id, tags)
	dropped := domain.TagSet{}
	for k, t := range old {
		if _, ok := l.Tags[k]; !ok {
			dropped[k] = t
		}
	}
	s.tags.releaseListing(id, dropped)
	return l.Clone(), nil
}

// SetAvailability sets the listing's availability flag.
func (s *Store) SetAvailability(id uuid.UUID, available bool) (domain.Listing, error) {
	l, ok := s.listings[id]
	if !ok {
		return domain.Listing{}, fmt.Errorf("repo.Store.SetAvailability: %w", domain.ErrNotFound)
	}
	l.Available = available
	return l.Clone(), nil
}

// AddOwner records that personID owns listingID, on both the listing's owner
// set and the person's listing list. Adding an existing owner is a no-op.
func (s *Store) AddOwner(listingID, personID uuid.UUID) error {
	l, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("repo.Store.AddOwner: listing: %w", domain.ErrNotFound)
	}
	p, ok := s.persons[personID]
	if !ok {
		return fmt.Errorf("repo.Store.AddOwner: person: %w", domain.ErrNotFound)
	}
	if l.HasOwner(personID) {
		return nil
	}
	l.Owners = append(l.Owners, personID)
	p.Listings = append(p.Listings, listingID)
	return nil
}

// RemoveOwner undoes AddOwner on both sides.
func (s *Store) RemoveOwner(listingID, personID uuid.UUID) error {
	l, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("repo.Store.RemoveOwner: listing: %w", domain.ErrNotFound)
	}
	p, ok := s.persons[personID]
	if !ok {
		return fmt.Errorf("repo.Store.RemoveOwner: person: %w", domain.ErrNotFound)
	}
	owners, found := removeID(l.Owners, personID)
	if !found {
		return fmt.Errorf("repo.Store.RemoveOwner: %w", domain.ErrNotFound)
	}
	l.Owners = owners
	p.Listings, _ = removeID(p.Listings, listingID)
	return nil
}
