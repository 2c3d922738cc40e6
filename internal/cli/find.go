package cli

import (
	"github.com/spf13/cobra"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// NewFindCmd creates the 'find' command group for tag searches.
func NewFindCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find persons or listings carrying all of some tags",
	}
	cmd.AddCommand(newFindListingsCmd(st))
	cmd.AddCommand(newFindPersonsCmd(st))
	return cmd
}

func newFindListingsCmd(st *state) *cobra.Command {
	var tags []string
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Listings tagged with every --tag (all listings when none given)",
		Example: `  matcher find listings --tag condo --tag pool
  matcher find listings -t hdb`,
		Args: cobra.NoArgs,
		RunE: st.logged(func(cmd *cobra.Command, _ []string) error {
			listings, err := st.app.Session.FindListingsByTags(tags)
			if err != nil {
				return err
			}
			p := st.pageParams()
			if st.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), listings, p)
			}
			return writeTable(cmd.OutOrStdout(),
				pageTitle("Listings", len(listings), p),
				"No listings found.",
				[]string{"Address", "Property", "Price", "Tags", "Owners", "Available"},
				listingRows(st.app, domain.Paginate(listings, p)),
			)
		}),
	}
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag the listing must carry (repeatable)")
	return cmd
}

func newFindPersonsCmd(st *state) *cobra.Command {
	var tags []string
	cmd := &cobra.Command{
		Use:     "persons",
		Short:   "Persons whose preferences together carry every --tag (nobody when none given)",
		Example: `  matcher find persons --tag condo --tag gym`,
		Args:    cobra.NoArgs,
		RunE: st.logged(func(cmd *cobra.Command, _ []string) error {
			persons, err := st.app.Session.FindPersonsByTags(tags)
			if err != nil {
				return err
			}
			p := st.pageParams()
			if st.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), persons, p)
			}
			return writeTable(cmd.OutOrStdout(),
				pageTitle("Persons", len(persons), p),
				"No persons found.",
				[]string{"Name", "Phone", "Email", "Preferences", "Owns"},
				personRows(domain.Paginate(persons, p)),
			)
		}),
	}
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag the person must want (repeatable)")
	return cmd
}
