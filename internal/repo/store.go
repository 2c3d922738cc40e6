// Package repo holds the in-memory entity graph of the matcher.
// Entities live in arena maps keyed by uuid; cross references are IDs, and
// every mutation that touches two sides of a relation (person ↔ listing
// ownership, entity ↔ tag usage) is done by a single Store method.
// No matching logic lives here.
package repo

import (
	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// PersonRepo defines the operations on persons and their preferences.
type PersonRepo interface {
	// CreatePerson stores p under a new ID. Returns domain.ErrConflict if a
	// person with the same phone exists.
	CreatePerson(p domain.Person) (domain.Person, error)

	// GetPerson returns a person by ID, or domain.ErrNotFound.
	GetPerson(id uuid.UUID) (domain.Person, error)

	// GetPersonByPhone returns the person with the given phone, or domain.ErrNotFound.
	GetPersonByPhone(phone string) (domain.Person, error)

	// ListPersons returns all persons in insertion order.
	ListPersons() []domain.Person

	// DeletePerson removes a person, their preferences, and their ownership
	// of any listing.
	DeletePerson(id uuid.UUID) error

	// AddPreference attaches pref to pref.PersonID under a new ID.
	AddPreference(pref domain.PropertyPreference) (domain.PropertyPreference, error)

	// GetPreference returns a preference by ID, or domain.ErrNotFound.
	GetPreference(id uuid.UUID) (domain.PropertyPreference, error)

	// RemovePreference detaches a preference from its person.
	RemovePreference(id uuid.UUID) error
}

// ListingRepo defines the operations on listings and their owners.
type ListingRepo interface {
	// CreateListing stores l under a new ID without owners. Returns
	// domain.ErrConflict if a listing with the same address exists.
	CreateListing(l domain.Listing) (domain.Listing, error)

	// GetListing returns a listing by ID, or domain.ErrNotFound.
	GetListing(id uuid.UUID) (domain.Listing, error)

	// GetListingByAddress returns the listing at addr, or domain.ErrNotFound.
	GetListingByAddress(addr domain.Address) (domain.Listing, error)

	// ListListings returns all listings in insertion order.
	ListListings() []domain.Listing

	// DeleteListing removes a listing and drops it from its owners.
	DeleteListing(id uuid.UUID) error

	// SetListingTags replaces the tag set of a listing.
	SetListingTags(id uuid.UUID, tags domain.TagSet) (domain.Listing, error)

	// SetAvailability marks a listing available or not.
	SetAvailability(id uuid.UUID, available bool) (domain.Listing, error)

	// AddOwner links a person and a listing on both sides. Idempotent.
	AddOwner(listingID, personID uuid.UUID) error

	// RemoveOwner unlinks a person and a listing on both sides.
	// Returns domain.ErrNotFound if the person does not own the listing.
	RemoveOwner(listingID, personID uuid.UUID) error
}

// TagRepo defines the read and activation operations on the tag registry.
// Tag usage itself is maintained by the person and listing operations.
type TagRepo interface {
	// Get returns a registered tag by name, ignoring case, or domain.ErrNotFound.
	Get(name string) (domain.Tag, error)

	// List returns tags whose lower-cased name starts with prefix, ordered by name.
	List(prefix string) []domain.Tag

	// Usage reports the preferences and listings carrying a tag.
	Usage(name string) (TagUsage, error)

	// SetActive flags the named tags for search.
	SetActive(names ...string) error

	// ClearActive unflags every tag.
	ClearActive()

	// ActiveTags returns the flagged tags keyed by lower-cased name.
	ActiveTags() map[string]domain.Tag
}

// Store is the in-memory implementation of PersonRepo and ListingRepo.
// It is not safe for concurrent use.
type Store struct {
	persons     map[uuid.UUID]*domain.Person
	personOrder []uuid.UUID
	phones      map[string]uuid.UUID
	prefOwners  map[uuid.UUID]uuid.UUID // preference ID → person ID

	listings     map[uuid.UUID]*domain.Listing
	listingOrder []uuid.UUID
	addresses    map[string]uuid.UUID

	tags  *TagRegistry
	newID func() uuid.UUID
}

var (
	_ PersonRepo  = (*Store)(nil)
	_ ListingRepo = (*Store)(nil)
	_ TagRepo     = (*TagRegistry)(nil)
)

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		persons:    make(map[uuid.UUID]*domain.Person),
		phones:     make(map[string]uuid.UUID),
		prefOwners: make(map[uuid.UUID]uuid.UUID),
		listings:   make(map[uuid.UUID]*domain.Listing),
		addresses:  make(map[string]uuid.UUID),
		tags:       newTagRegistry(),
		newID:      uuid.New,
	}
}

// Tags returns the registry of tags used by the stored entities.
func (s *Store) Tags() *TagRegistry {
	return s.tags
}

// removeID deletes the first occurrence of id from ids, keeping order.
func removeID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
