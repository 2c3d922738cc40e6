package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
	"github.com/lesterlimjj/tp-sub001/internal/service"
)

// ---- mock ListingRepo ------------------------------------------------------

type mockListingRepo struct {
	createListing       func(l domain.Listing) (domain.Listing, error)
	getListing          func(id uuid.UUID) (domain.Listing, error)
	getListingByAddress func(addr domain.Address) (domain.Listing, error)
	listListings        func() []domain.Listing
	deleteListing       func(id uuid.UUID) error
	setListingTags      func(id uuid.UUID, tags domain.TagSet) (domain.Listing, error)
	setAvailability     func(id uuid.UUID, available bool) (domain.Listing, error)
	addOwner            func(listingID, personID uuid.UUID) error
	removeOwner         func(listingID, personID uuid.UUID) error
}

func (m *mockListingRepo) CreateListing(l domain.Listing) (domain.Listing, error) {
	return m.createListing(l)
}
func (m *mockListingRepo) GetListing(id uuid.UUID) (domain.Listing, error) {
	return m.getListing(id)
}
func (m *mockListingRepo) GetListingByAddress(addr domain.Address) (domain.Listing, error) {
	return m.getListingByAddress(addr)
}
func (m *mockListingRepo) ListListings() []domain.Listing {
	return m.listListings()
}
func (m *mockListingRepo) DeleteListing(id uuid.UUID) error {
	return m.deleteListing(id)
}
func (m *mockListingRepo) SetListingTags(id uuid.UUID, tags domain.TagSet) (domain.Listing, error) {
	return m.setListingTags(id, tags)
}
func (m *mockListingRepo) SetAvailability(id uuid.UUID, available bool) (domain.Listing, error) {
	return m.setAvailability(id, available)
}
func (m *mockListingRepo) AddOwner(listingID, personID uuid.UUID) error {
	return m.addOwner(listingID, personID)
}
func (m *mockListingRepo) RemoveOwner(listingID, personID uuid.UUID) error {
	return m.removeOwner(listingID, personID)
}

// compile-time check
var _ repo.ListingRepo = (*mockListingRepo)(nil)

func unitAddress() domain.Address {
	return domain.Address{PostalCode: "123456", UnitNumber: "#05-11"}
}

// ---- Create ----------------------------------------------------------------

func TestListingService_Create_OK(t *testing.T) {
	var captured domain.Listing
	svc := service.NewListingService(&mockListingRepo{
		createListing: func(l domain.Listing) (domain.Listing, error) {
			captured = l
			l.ID = uuid.New()
			return l, nil
		},
	}, &mockPersonRepo{})

	got, err := svc.Create(unitAddress(), " Skyline ", 500, 900, []string{"pool"})

	require.NoError(t, err)
	assert.Equal(t, "Skyline", captured.PropertyName)
	assert.True(t, captured.Available)
	assert.Equal(t, []string{"pool"}, captured.Tags.Names())
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestListingService_Create_BothNumberKinds(t *testing.T) {
	svc := service.NewListingService(&mockListingRepo{}, &mockPersonRepo{})
	addr := domain.Address{PostalCode: "123456", HouseNumber: "12", UnitNumber: "#01-01"}

	_, err := svc.Create(addr, "", 0, 1, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Create_NegativePrice(t *testing.T) {
	svc := service.NewListingService(&mockListingRepo{}, &mockPersonRepo{})

	_, err := svc.Create(unitAddress(), "", -1, 1, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- GetByAddress ----------------------------------------------------------

func TestListingService_GetByAddress_Invalid(t *testing.T) {
	svc := service.NewListingService(&mockListingRepo{}, &mockPersonRepo{})

	_, err := svc.GetByAddress(domain.Address{PostalCode: "12a"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Owners ----------------------------------------------------------------

func TestListingService_AddOwner_ResolvesPhone(t *testing.T) {
	listingID, personID := uuid.New(), uuid.New()
	var gotListing, gotPerson uuid.UUID
	svc := service.NewListingService(&mockListingRepo{
		addOwner: func(l, p uuid.UUID) error {
			gotListing, gotPerson = l, p
			return nil
		},
	}, &mockPersonRepo{
		getPersonByPhone: func(phone string) (domain.Person, error) {
			assert.Equal(t, "91234567", phone)
			return domain.Person{ID: personID, Phone: phone}, nil
		},
	})

	require.NoError(t, svc.AddOwner(listingID, "91234567"))

	assert.Equal(t, listingID, gotListing)
	assert.Equal(t, personID, gotPerson)
}

func TestListingService_AddOwner_UnknownPhone(t *testing.T) {
	svc := service.NewListingService(&mockListingRepo{}, &mockPersonRepo{
		getPersonByPhone: func(string) (domain.Person, error) {
			return domain.Person{}, domain.ErrNotFound
		},
	})

	err := svc.AddOwner(uuid.New(), "000")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "service.ListingService.AddOwner: owner 000")
}

func TestListingService_RemoveOwner_PropagatesRepoError(t *testing.T) {
	svc := service.NewListingService(&mockListingRepo{
		removeOwner: func(uuid.UUID, uuid.UUID) error { return domain.ErrNotFound },
	}, &mockPersonRepo{
		getPersonByPhone: func(phone string) (domain.Person, error) {
			return domain.Person{ID: uuid.New(), Phone: phone}, nil
		},
	})

	err := svc.RemoveOwner(uuid.New(), "91234567")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "service.ListingService.RemoveOwner")
}

func TestListingService_Get_WrapsRepoError(t *testing.T) {
	svc := service.NewListingService(&mockListingRepo{
		getListing: func(uuid.UUID) (domain.Listing, error) { return domain.Listing{}, domain.ErrNotFound },
	}, &mockPersonRepo{})

	_, err := svc.Get(uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "service.ListingService.Get")
}

// ---- SetTags ---------------------------------------------------------------

func TestListingService_SetTags(t *testing.T) {
	var captured domain.TagSet
	svc := service.NewListingService(&mockListingRepo{
		setListingTags: func(_ uuid.UUID, tags domain.TagSet) (domain.Listing, error) {
			captured = tags
			return domain.Listing{Tags: tags}, nil
		},
	}, &mockPersonRepo{})

	_, err := svc.SetTags(uuid.New(), []string{" Pool ", "gym"})

	require.NoError(t, err)
	assert.Equal(t, []string{"gym", "Pool"}, captured.Names())
}

func TestListingService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewListingService(&mockListingRepo{
		listListings: func() []domain.Listing { return nil },
	}, &mockPersonRepo{})

	got := svc.List()

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
