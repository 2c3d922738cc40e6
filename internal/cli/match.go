package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// NewMatchCmd creates the 'match' command group.
func NewMatchCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match listings to a preference, or persons to a listing",
	}
	cmd.AddCommand(newMatchListingsCmd(st))
	cmd.AddCommand(newMatchPersonsCmd(st))
	return cmd
}

func newMatchListingsCmd(st *state) *cobra.Command {
	var (
		phone string
		pref  int
	)
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Listings eligible for one of a person's preferences, best first",
		Long: `Rank the available listings a person does not already own against one of
their preferences. The score is one point for an overlapping price range plus
one per shared tag.`,
		Example: `  matcher match listings --phone 91234567
  matcher match listings --phone 91234567 --pref 2 --json`,
		Args: cobra.NoArgs,
		RunE: st.logged(func(cmd *cobra.Command, _ []string) error {
			return runMatchListings(cmd, st, phone, pref)
		}),
	}
	cmd.Flags().StringVar(&phone, "phone", "", "Phone of the person searching")
	cmd.Flags().IntVar(&pref, "pref", 1, "Preference number as shown by 'persons'")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func runMatchListings(cmd *cobra.Command, st *state, phone string, prefNo int) error {
	person, err := st.app.Persons.GetByPhone(phone)
	if err != nil {
		return fmt.Errorf("person %s: %w", phone, err)
	}
	if prefNo < 1 || prefNo > len(person.Preferences) {
		return fmt.Errorf("%w: %s has %d preferences, got --pref %d", domain.ErrValidation, person.Name, len(person.Preferences), prefNo)
	}
	pref := person.Preferences[prefNo-1]

	matches, err := st.app.Session.MatchListings(pref.ID)
	if err != nil {
		return err
	}
	p := st.pageParams()
	if st.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), matches, p)
	}

	rows := [][]string{}
	for _, m := range domain.Paginate(matches, p) {
		price := m.Listing.PriceRange.String()
		if m.PriceMatch {
			price += " *"
		}
		rows = append(rows, []string{
			strconv.Itoa(m.Score),
			m.Listing.Address.String(),
			m.Listing.PropertyName,
			price,
			joinTags(m.Listing.Tags),
			strings.Join(m.ActiveTags, ", "),
		})
	}
	title := fmt.Sprintf("Listings for %s, preference %d: %s", person.Name, prefNo, preferenceLines(person.Preferences[prefNo-1:prefNo]))
	return writeTable(cmd.OutOrStdout(),
		title+"\n"+pageTitle("Matches", len(matches), p),
		"No matching listings.",
		[]string{"Score", "Address", "Property", "Price", "Tags", "Matched tags"},
		rows,
	)
}

func newMatchPersonsCmd(st *state) *cobra.Command {
	var addr domain.Address
	cmd := &cobra.Command{
		Use:   "persons",
		Short: "Persons who would want a listing, best first",
		Long: `Rank the persons who would want a listing: they have a preference sharing a
tag or overlapping price range with it, and do not own it. Each row shows the
preferences that accept the listing.`,
		Example: `  matcher match persons --postal 560123 --unit "#05-11"
  matcher match persons --postal 459012 --house 18 --json`,
		Args: cobra.NoArgs,
		RunE: st.logged(func(cmd *cobra.Command, _ []string) error {
			return runMatchPersons(cmd, st, addr)
		}),
	}
	cmd.Flags().StringVar(&addr.PostalCode, "postal", "", "Postal code of the listing")
	cmd.Flags().StringVar(&addr.UnitNumber, "unit", "", "Unit number of the listing")
	cmd.Flags().StringVar(&addr.HouseNumber, "house", "", "House number of the listing")
	_ = cmd.MarkFlagRequired("postal")
	cmd.MarkFlagsOneRequired("unit", "house")
	cmd.MarkFlagsMutuallyExclusive("unit", "house")
	return cmd
}

func runMatchPersons(cmd *cobra.Command, st *state, addr domain.Address) error {
	listing, err := st.app.Listings.GetByAddress(addr)
	if err != nil {
		return fmt.Errorf("listing %s: %w", addr, err)
	}

	matches, err := st.app.Session.MatchPersons(listing.ID)
	if err != nil {
		return err
	}
	p := st.pageParams()
	if st.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), matches, p)
	}

	rows := [][]string{}
	for _, m := range domain.Paginate(matches, p) {
		rows = append(rows, []string{
			strconv.Itoa(m.Score),
			m.Person.Name,
			m.Person.Phone,
			preferenceLines(m.MatchingPreferences),
			strings.Join(m.ActiveTags, ", "),
		})
	}
	title := fmt.Sprintf("Persons for %s %s %s", listing.Address, listing.PriceRange, listing.PropertyName)
	return writeTable(cmd.OutOrStdout(),
		strings.TrimSpace(title)+"\n"+pageTitle("Matches", len(matches), p),
		"No matching persons.",
		[]string{"Score", "Name", "Phone", "Matching preferences", "Matched tags"},
		rows,
	)
}
