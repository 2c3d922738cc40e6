package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
)

// ListingService implements business logic for listings and their owners.
// Owners are addressed by phone, the identity persons are known by.
type ListingService struct {
	listings repo.ListingRepo
	persons  repo.PersonRepo
}

// NewListingService constructs a ListingService backed by the provided repos.
func NewListingService(listings repo.ListingRepo, persons repo.PersonRepo) *ListingService {
	return &ListingService{listings: listings, persons: persons}
}

// Create validates and stores a new, available, unowned listing.
func (s *ListingService) Create(addr domain.Address, propertyName string, lower, upper int64, tags []string) (domain.Listing, error) {
	priceRange, err := domain.NewPriceRange(lower, upper)
	if err != nil {
		return domain.Listing{}, err
	}
	tagSet, err := domain.ParseTagSet(tags...)
	if err != nil {
		return domain.Listing{}, err
	}
	l, err := domain.NewListing(addr, propertyName, priceRange, tagSet)
	if err != nil {
		return domain.Listing{}, err
	}
	result, err := s.listings.CreateListing(l)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Create: %w", err)
	}
	return result, nil
}

// Get returns a listing by ID.
func (s *ListingService) Get(id uuid.UUID) (domain.Listing, error) {
	result, err := s.listings.GetListing(id)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Get: %w", err)
	}
	return result, nil
}

// GetByAddress returns the listing at addr.
func (s *ListingService) GetByAddress(addr domain.Address) (domain.Listing, error) {
	if err := addr.Validate(); err != nil {
		return domain.Listing{}, err
	}
	result, err := s.listings.GetListingByAddress(addr)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.GetByAddress: %w", err)
	}
	return result, nil
}

// List returns all listings. Never nil.
func (s *ListingService) List() []domain.Listing {
	listings := s.listings.ListListings()
	if listings == nil {
		return []domain.Listing{}
	}
	return listings
}

// Delete removes a listing and drops it from its owners.
func (s *ListingService) Delete(id uuid.UUID) error {
	if err := s.listings.DeleteListing(id); err != nil {
		return fmt.Errorf("service.ListingService.Delete: %w", err)
	}
	return nil
}

// SetTags replaces the listing's tags with the named ones.
func (s *ListingService) SetTags(id uuid.UUID, tags []string) (domain.Listing, error) {
	tagSet, err := domain.ParseTagSet(tags...)
	if err != nil {
		return domain.Listing{}, err
	}
	result, err := s.listings.SetListingTags(id, tagSet)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.SetTags: %w", err)
	}
	return result, nil
}

// SetAvailability marks the listing available or unavailable.
func (s *ListingService) SetAvailability(id uuid.UUID, available bool) (domain.Listing, error) {
	result, err := s.listings.SetAvailability(id, available)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.SetAvailability: %w", err)
	}
	return result, nil
}

// AddOwner makes the person with the given phone an owner of the listing.
func (s *ListingService) AddOwner(listingID uuid.UUID, phone string) error {
	p, err := s.persons.GetPersonByPhone(phone)
	if err != nil {
		return fmt.Errorf("service.ListingService.AddOwner: owner %s: %w", phone, err)
	}
	if err := s.listings.AddOwner(listingID, p.ID); err != nil {
		return fmt.Errorf("service.ListingService.AddOwner: %w", err)
	}
	return nil
}

// RemoveOwner drops the person with the given phone from the listing's owners.
func (s *ListingService) RemoveOwner(listingID uuid.UUID, phone string) error {
	p, err := s.persons.GetPersonByPhone(phone)
	if err != nil {
		return fmt.Errorf("service.ListingService.RemoveOwner: owner %s: %w", phone, err)
	}
	if err := s.listings.RemoveOwner(listingID, p.ID); err != nil {
		return fmt.Errorf("service.ListingService.RemoveOwner: %w", err)
	}
	return nil
}
