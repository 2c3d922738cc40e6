package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// NewListingsCmd creates the 'listings' command listing every listing.
func NewListingsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "listings",
		Short: "List property listings with their owners",
		Example: `  matcher listings
  matcher listings --page 2 --limit 10`,
		Args: cobra.NoArgs,
		RunE: st.logged(func(cmd *cobra.Command, _ []string) error {
			return runListings(cmd, st)
		}),
	}
}

func runListings(cmd *cobra.Command, st *state) error {
	listings := st.app.Listings.List()
	p := st.pageParams()
	if st.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), listings, p)
	}
	return writeTable(cmd.OutOrStdout(),
		pageTitle("Listings", len(listings), p),
		"No listings.",
		[]string{"Address", "Property", "Price", "Tags", "Owners", "Available"},
		listingRows(st.app, domain.Paginate(listings, p)),
	)
}

func listingRows(app *App, listings []domain.Listing) [][]string {
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			l.Address.String(),
			l.PropertyName,
			l.PriceRange.String(),
			joinTags(l.Tags),
			ownerNames(app, l),
			yesNo(l.Available),
		})
	}
	return rows
}

// ownerNames resolves the listing's owner IDs to "name (phone)".
func ownerNames(app *App, l domain.Listing) string {
	names := make([]string, 0, len(l.Owners))
	for _, id := range l.Owners {
		p, err := app.Persons.Get(id)
		if err != nil {
			continue
		}
		names = append(names, p.Name+" ("+p.Phone+")")
	}
	return strings.Join(names, "\n")
}
