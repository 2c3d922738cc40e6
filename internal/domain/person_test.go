package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// ---- NewPerson -------------------------------------------------------------

func TestNewPerson_OK(t *testing.T) {
	got, err := domain.NewPerson(" Alice Tan ", "91234567", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Alice Tan", got.Name)
	assert.Equal(t, "91234567", got.Phone)
	assert.NotNil(t, got.Preferences)
	assert.NotNil(t, got.Listings)
	assert.Equal(t, uuid.Nil, got.ID, "IDs are assigned by the repository")
}

func TestNewPerson_Invalid(t *testing.T) {
	tests := []struct {
		name               string
		pname, phone, mail string
	}{
		{"blank name", "  ", "91234567", ""},
		{"short phone", "Bob", "12", ""},
		{"letters in phone", "Bob", "9123abcd", ""},
		{"bad email", "Bob", "91234567", "not-an-email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewPerson(tt.pname, tt.phone, tt.mail)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewPerson_EmailOptional(t *testing.T) {
	got, err := domain.NewPerson("Bob", "98765432", "")

	require.NoError(t, err)
	assert.Empty(t, got.Email)
}

// ---- identity and associations ---------------------------------------------

func TestPerson_SamePersonByPhone(t *testing.T) {
	a, err := domain.NewPerson("Alice", "91234567", "alice@example.com")
	require.NoError(t, err)
	b, err := domain.NewPerson("Alice Lim", "91234567", "other@example.com")
	require.NoError(t, err)
	c, err := domain.NewPerson("Alice", "90000000", "alice@example.com")
	require.NoError(t, err)

	assert.True(t, a.SamePerson(b))
	assert.False(t, a.SamePerson(c))
}

func TestPerson_TagsUnionsPreferences(t *testing.T) {
	p := domain.Person{ID: uuid.New()}
	p.Preferences = []domain.PropertyPreference{
		{ID: uuid.New(), PersonID: p.ID, Tags: mustTags(t, "hdb", "pool")},
		{ID: uuid.New(), PersonID: p.ID, Tags: mustTags(t, "POOL", "gym")},
	}

	assert.Equal(t, []string{"gym", "hdb", "pool"}, p.Tags().Names())
}

func TestPerson_PreferenceLookup(t *testing.T) {
	prefID := uuid.New()
	p := domain.Person{Preferences: []domain.PropertyPreference{{ID: prefID}}}

	_, ok := p.Preference(prefID)
	assert.True(t, ok)
	_, ok = p.Preference(uuid.New())
	assert.False(t, ok)
}

func TestPerson_CloneIsDeep(t *testing.T) {
	listingID := uuid.New()
	p := domain.Person{
		Preferences: []domain.PropertyPreference{{Tags: mustTags(t, "hdb")}},
		Listings:    []uuid.UUID{listingID},
	}

	c := p.Clone()
	c.Preferences[0].Tags.Add(domain.Tag{Name: "pool"})
	c.Listings[0] = uuid.New()

	assert.Equal(t, []string{"hdb"}, p.Preferences[0].Tags.Names())
	assert.True(t, p.OwnsListing(listingID))
}

// ---- NewPreference ---------------------------------------------------------

func TestNewPreference_OK(t *testing.T) {
	personID := uuid.New()

	got, err := domain.NewPreference(personID, domain.PriceRange{Lower: 1, Upper: 2}, nil)

	require.NoError(t, err)
	assert.Equal(t, personID, got.PersonID)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestNewPreference_RequiresPerson(t *testing.T) {
	_, err := domain.NewPreference(uuid.Nil, domain.PriceRange{Lower: 1, Upper: 2}, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewPreference_InvalidRange(t *testing.T) {
	_, err := domain.NewPreference(uuid.New(), domain.PriceRange{Lower: 5, Upper: 2}, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
