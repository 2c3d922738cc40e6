package seed_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
	"github.com/lesterlimjj/tp-sub001/internal/seed"
	"github.com/lesterlimjj/tp-sub001/internal/service"
)

func apply(t *testing.T, d seed.Dataset) (*repo.Store, error) {
	t.Helper()
	s := repo.NewStore()
	err := d.Apply(
		service.NewPersonService(s),
		service.NewListingService(s, s),
		service.NewTagService(s.Tags()),
	)
	return s, err
}

// ---- Sample ----------------------------------------------------------------

func TestSample_Applies(t *testing.T) {
	d, err := seed.Sample()
	require.NoError(t, err)

	s, err := apply(t, d)

	require.NoError(t, err)
	assert.Len(t, s.ListPersons(), 4)
	assert.Len(t, s.ListListings(), 5)

	devi, err := s.GetPersonByPhone("93334444")
	require.NoError(t, err)
	assert.Len(t, devi.Listings, 2)

	cove, err := s.GetListingByAddress(domain.Address{PostalCode: "098585", UnitNumber: "#20-01"})
	require.NoError(t, err)
	assert.False(t, cove.Available)

	active := s.Tags().ActiveTags()
	assert.Contains(t, active, "pool")
	assert.Len(t, active, 1)
}

func TestSample_TagCasingFollowsFirstUse(t *testing.T) {
	d, err := seed.Sample()
	require.NoError(t, err)
	s, err := apply(t, d)
	require.NoError(t, err)

	tag, err := s.Tags().Get("HDB")

	require.NoError(t, err)
	assert.Equal(t, "hdb", tag.Name, "preferences are seeded before listings")
}

// ---- Decode ----------------------------------------------------------------

func TestDecode_UnknownField(t *testing.T) {
	_, err := seed.Decode(strings.NewReader("persons:\n  - name: A\n    phone: \"123\"\n    age: 40\n"))

	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	d, err := seed.Decode(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, d.Persons)
	assert.Empty(t, d.Listings)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	body := `
listings:
  - postal_code: "123456"
    house_number: "7"
    price: { lower: 10, upper: 20 }
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	d, err := seed.LoadFile(path)

	require.NoError(t, err)
	require.Len(t, d.Listings, 1)
	assert.Equal(t, domain.PriceRange{Lower: 10, Upper: 20}, d.Listings[0].Price)
	assert.Nil(t, d.Listings[0].Available)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := seed.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ---- Apply -----------------------------------------------------------------

func TestApply_UnknownOwner(t *testing.T) {
	d := seed.Dataset{
		Listings: []seed.ListingRecord{{
			PostalCode: "123456",
			UnitNumber: "#01-01",
			Price:      domain.PriceRange{Lower: 0, Upper: 1},
			Owners:     []string{"000"},
		}},
	}

	_, err := apply(t, d)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "listing 0")
}

func TestApply_InvalidPerson(t *testing.T) {
	d := seed.Dataset{Persons: []seed.PersonRecord{{Name: "", Phone: "123"}}}

	_, err := apply(t, d)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApply_UnknownActiveTag(t *testing.T) {
	d := seed.Dataset{ActiveTags: []string{"pool"}}

	_, err := apply(t, d)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
