// Package seed loads a dataset of persons, preferences and listings from YAML
// and replays it through the services, so every record passes the same
// validation as an interactive command.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// Dataset is the decoded form of a seed file.
type Dataset struct {
	Persons    []PersonRecord  `yaml:"persons"`
	Listings   []ListingRecord `yaml:"listings"`
	ActiveTags []string        `yaml:"active_tags"`
}

// PersonRecord is one person and their preferences.
type PersonRecord struct {
	Name        string             `yaml:"name"`
	Phone       string             `yaml:"phone"`
	Email       string             `yaml:"email"`
	Preferences []PreferenceRecord `yaml:"preferences"`
}

// PreferenceRecord is one property preference.
type PreferenceRecord struct {
	Price domain.PriceRange `yaml:"price"`
	Tags  []string          `yaml:"tags"`
}

// ListingRecord is one listing. Owners are given by phone and must appear
// in Persons.
type ListingRecord struct {
	PostalCode   string            `yaml:"postal_code"`
	HouseNumber  string            `yaml:"house_number"`
	UnitNumber   string            `yaml:"unit_number"`
	PropertyName string            `yaml:"property_name"`
	Price        domain.PriceRange `yaml:"price"`
	Tags         []string          `yaml:"tags"`
	Owners       []string          `yaml:"owners"`
	Available    *bool             `yaml:"available"` // defaults to true
}

// Address returns the record's listing address.
func (r ListingRecord) Address() domain.Address {
	return domain.Address{PostalCode: r.PostalCode, HouseNumber: r.HouseNumber, UnitNumber: r.UnitNumber}
}

// Decode reads a dataset. Unknown fields are rejected.
func Decode(r io.Reader) (Dataset, error) {
	var d Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, nil
		}
		return Dataset{}, fmt.Errorf("seed.Decode: %w", err)
	}
	return d, nil
}

// Sample returns the bundled sample dataset.
func Sample() (Dataset, error) {
	b, err := FS.ReadFile(SampleFile)
	if err != nil {
		return Dataset{}, fmt.Errorf("seed.Sample: %w", err)
	}
	return Decode(bytes.NewReader(b))
}

// LoadFile decodes the dataset at path.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("seed.LoadFile: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// PersonWriter is the subset of the person service used while seeding.
type PersonWriter interface {
	Create(name, phone, email string) (domain.Person, error)
	AddPreference(personID uuid.UUID, lower, upper int64, tags []string) (domain.PropertyPreference, error)
}

// ListingWriter is the subset of the listing service used while seeding.
type ListingWriter interface {
	Create(addr domain.Address, propertyName string, lower, upper int64, tags []string) (domain.Listing, error)
	AddOwner(listingID uuid.UUID, phone string) error
	SetAvailability(id uuid.UUID, available bool) (domain.Listing, error)
}

// TagActivator marks tags active once every entity exists.
type TagActivator interface {
	Activate(names ...string) error
}

// Apply creates the dataset's persons, then its listings with their owners,
// then activates ActiveTags. It stops at the first failing record.
func (d Dataset) Apply(persons PersonWriter, listings ListingWriter, tags TagActivator) error {
	for i, rec := range d.Persons {
		p, err := persons.Create(rec.Name, rec.Phone, rec.Email)
		if err != nil {
			return fmt.Errorf("seed: person %d (%s): %w", i, rec.Phone, err)
		}
		for j, pref := range rec.Preferences {
			if _, err := persons.AddPreference(p.ID, pref.Price.Lower, pref.Price.Upper, pref.Tags); err != nil {
				return fmt.Errorf("seed: person %d (%s) preference %d: %w", i, rec.Phone, j, err)
			}
		}
	}

	for i, rec := range d.Listings {
		l, err := listings.Create(rec.Address(), rec.PropertyName, rec.Price.Lower, rec.Price.Upper, rec.Tags)
		if err != nil {
			return fmt.Errorf("seed: listing %d (%s): %w", i, rec.Address(), err)
		}
		for _, phone := range rec.Owners {
			if err := listings.AddOwner(l.ID, phone); err != nil {
				return fmt.Errorf("seed: listing %d (%s): %w", i, rec.Address(), err)
			}
		}
		if rec.Available != nil && !*rec.Available {
			if _, err := listings.SetAvailability(l.ID, false); err != nil {
				return fmt.Errorf("seed: listing %d (%s): %w", i, rec.Address(), err)
			}
		}
	}

	if len(d.ActiveTags) > 0 {
		if err := tags.Activate(d.ActiveTags...); err != nil {
			return fmt.Errorf("seed: active tags: %w", err)
		}
	}
	return nil
}
