package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
	"github.com/lesterlimjj/tp-sub001/internal/service"
)

// ---- mock PersonRepo -------------------------------------------------------

type mockPersonRepo struct {
	createPerson     func(p domain.Person) (domain.Person, error)
	getPerson        func(id uuid.UUID) (domain.Person, error)
	getPersonByPhone func(phone string) (domain.Person, error)
	listPersons      func() []domain.Person
	deletePerson     func(id uuid.UUID) error
	addPreference    func(pref domain.PropertyPreference) (domain.PropertyPreference, error)
	getPreference    func(id uuid.UUID) (domain.PropertyPreference, error)
	removePreference func(id uuid.UUID) error
}

func (m *mockPersonRepo) CreatePerson(p domain.Person) (domain.Person, error) {
	return m.createPerson(p)
}
func (m *mockPersonRepo) GetPerson(id uuid.UUID) (domain.Person, error) {
	return m.getPerson(id)
}
func (m *mockPersonRepo) GetPersonByPhone(phone string) (domain.Person, error) {
	return m.getPersonByPhone(phone)
}
func (m *mockPersonRepo) ListPersons() []domain.Person {
	return m.listPersons()
}
func (m *mockPersonRepo) DeletePerson(id uuid.UUID) error {
	return m.deletePerson(id)
}
func (m *mockPersonRepo) AddPreference(pref domain.PropertyPreference) (domain.PropertyPreference, error) {
	return m.addPreference(pref)
}
func (m *mockPersonRepo) GetPreference(id uuid.UUID) (domain.PropertyPreference, error) {
	return m.getPreference(id)
}
func (m *mockPersonRepo) RemovePreference(id uuid.UUID) error {
	return m.removePreference(id)
}

// compile-time check
var _ repo.PersonRepo = (*mockPersonRepo)(nil)

// ---- Create ----------------------------------------------------------------

func TestPersonService_Create_OK(t *testing.T) {
	var captured domain.Person
	svc := service.NewPersonService(&mockPersonRepo{
		createPerson: func(p domain.Person) (domain.Person, error) {
			captured = p
			p.ID = uuid.New()
			return p, nil
		},
	})

	got, err := svc.Create("  Alice Tan ", "91234567", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Alice Tan", captured.Name, "name should be trimmed before storing")
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestPersonService_Create_InvalidPhone(t *testing.T) {
	svc := service.NewPersonService(&mockPersonRepo{})

	_, err := svc.Create("Alice Tan", "91-23", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPersonService_Create_RepoError(t *testing.T) {
	svc := service.NewPersonService(&mockPersonRepo{
		createPerson: func(domain.Person) (domain.Person, error) {
			return domain.Person{}, domain.ErrConflict
		},
	})

	_, err := svc.Create("Alice Tan", "91234567", "")

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorContains(t, err, "service.PersonService.Create")
}

// ---- GetByPhone ------------------------------------------------------------

func TestPersonService_GetByPhone_Trims(t *testing.T) {
	var captured string
	svc := service.NewPersonService(&mockPersonRepo{
		getPersonByPhone: func(phone string) (domain.Person, error) {
			captured = phone
			return domain.Person{Phone: phone}, nil
		},
	})

	_, err := svc.GetByPhone(" 91234567 ")

	require.NoError(t, err)
	assert.Equal(t, "91234567", captured)
}

func TestPersonService_GetByPhone_Blank(t *testing.T) {
	svc := service.NewPersonService(&mockPersonRepo{})

	_, err := svc.GetByPhone("   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- List ------------------------------------------------------------------

func TestPersonService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewPersonService(&mockPersonRepo{
		listPersons: func() []domain.Person { return nil },
	})

	got := svc.List()

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- AddPreference ---------------------------------------------------------

func TestPersonService_AddPreference_OK(t *testing.T) {
	personID := uuid.New()
	var captured domain.PropertyPreference
	svc := service.NewPersonService(&mockPersonRepo{
		addPreference: func(pref domain.PropertyPreference) (domain.PropertyPreference, error) {
			captured = pref
			pref.ID = uuid.New()
			return pref, nil
		},
	})

	got, err := svc.AddPreference(personID, 100, 200, []string{"pool", "Pool", "gym"})

	require.NoError(t, err)
	assert.Equal(t, personID, captured.PersonID)
	assert.Equal(t, domain.PriceRange{Lower: 100, Upper: 200}, captured.PriceRange)
	assert.Equal(t, []string{"gym", "pool"}, captured.Tags.Names(), "duplicate tags collapse")
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestPersonService_AddPreference_InvertedRange(t *testing.T) {
	svc := service.NewPersonService(&mockPersonRepo{})

	_, err := svc.AddPreference(uuid.New(), 200, 100, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPersonService_AddPreference_BlankTag(t *testing.T) {
	svc := service.NewPersonService(&mockPersonRepo{})

	_, err := svc.AddPreference(uuid.New(), 0, 1, []string{"pool", " "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete / RemovePreference ---------------------------------------------

func TestPersonService_Delete_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	svc := service.NewPersonService(&mockPersonRepo{
		deletePerson: func(uuid.UUID) error { return sentinel },
	})

	err := svc.Delete(uuid.New())

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorContains(t, err, "service.PersonService.Delete")
}

func TestPersonService_RemovePreference_NotFound(t *testing.T) {
	svc := service.NewPersonService(&mockPersonRepo{
		removePreference: func(uuid.UUID) error { return domain.ErrNotFound },
	})

	err := svc.RemovePreference(uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "service.PersonService.RemovePreference")
}
