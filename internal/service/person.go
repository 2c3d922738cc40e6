// Package service contains the business logic of the property matcher.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage details live here; services depend on repo interfaces, not
// implementations.
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
)

// PersonService implements business logic for persons and their preferences.
type PersonService struct {
	repo repo.PersonRepo
}

// NewPersonService constructs a PersonService backed by the provided PersonRepo.
func NewPersonService(r repo.PersonRepo) *PersonService {
	return &PersonService{repo: r}
}

// Create validates and stores a new person.
func (s *PersonService) Create(name, phone, email string) (domain.Person, error) {
	p, err := domain.NewPerson(name, phone, email)
	if err != nil {
		return domain.Person{}, err
	}
	result, err := s.repo.CreatePerson(p)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.Create: %w", err)
	}
	return result, nil
}

// Get returns a person by ID.
func (s *PersonService) Get(id uuid.UUID) (domain.Person, error) {
	result, err := s.repo.GetPerson(id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.Get: %w", err)
	}
	return result, nil
}

// GetByPhone returns the person with the given phone number.
func (s *PersonService) GetByPhone(phone string) (domain.Person, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return domain.Person{}, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	result, err := s.repo.GetPersonByPhone(phone)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.GetByPhone: %w", err)
	}
	return result, nil
}

// List returns all persons. Never nil.
func (s *PersonService) List() []domain.Person {
	persons := s.repo.ListPersons()
	if persons == nil {
		return []domain.Person{}
	}
	return persons
}

// Delete removes a person along with their preferences and ownerships.
func (s *PersonService) Delete(id uuid.UUID) error {
	if err := s.repo.DeletePerson(id); err != nil {
		return fmt.Errorf("service.PersonService.Delete: %w", err)
	}
	return nil
}

// AddPreference validates a price range and tag names and attaches the
// resulting preference to the person.
func (s *PersonService) AddPreference(personID uuid.UUID, lower, upper int64, tags []string) (domain.PropertyPreference, error) {
	priceRange, err := domain.NewPriceRange(lower, upper)
	if err != nil {
		return domain.PropertyPreference{}, err
	}
	tagSet, err := domain.ParseTagSet(tags...)
	if err != nil {
		return domain.PropertyPreference{}, err
	}
	pref, err := domain.NewPreference(personID, priceRange, tagSet)
	if err != nil {
		return domain.PropertyPreference{}, err
	}
	result, err := s.repo.AddPreference(pref)
	if err != nil {
		return domain.PropertyPreference{}, fmt.Errorf("service.PersonService.AddPreference: %w", err)
	}
	return result, nil
}

// RemovePreference detaches a preference from its person.
func (s *PersonService) RemovePreference(id uuid.UUID) error {
	if err := s.repo.RemovePreference(id); err != nil {
		return fmt.Errorf("service.PersonService.RemovePreference: %w", err)
	}
	return nil
}
