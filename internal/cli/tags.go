package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// tagRow is the JSON form of one tag in the 'tags' listing.
type tagRow struct {
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	Preferences int    `json:"preferences"`
	Listings    int    `json:"listings"`
}

// prefRow is the JSON form of one preference in the active-tag listing.
type prefRow struct {
	Person     string                    `json:"person"`
	Phone      string                    `json:"phone"`
	Preference domain.PropertyPreference `json:"preference"`
}

// NewTagsCmd creates the 'tags' command.
func NewTagsCmd(st *state) *cobra.Command {
	var (
		active      []string
		clearFirst  bool
		preferences bool
	)
	cmd := &cobra.Command{
		Use:   "tags [prefix]",
		Short: "List tags, or the preferences carrying every active tag",
		Long: `Without flags, list tags (optionally those starting with prefix) with how
many preferences and listings use them and whether they are active.

--active replaces the active tags and, like --preferences, lists the
preferences carrying every active tag.`,
		Example: `  matcher tags
  matcher tags po
  matcher tags --active condo,pool
  matcher tags --clear --preferences`,
		Args: cobra.MaximumNArgs(1),
		RunE: st.logged(func(cmd *cobra.Command, args []string) error {
			if clearFirst {
				st.app.Tags.ClearActive()
			}
			if len(active) > 0 {
				if err := st.app.Tags.Activate(active...); err != nil {
					return err
				}
				preferences = true
			}
			if preferences {
				return runActivePreferences(cmd, st)
			}
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			return runTags(cmd, st, prefix)
		}),
	}
	cmd.Flags().StringSliceVarP(&active, "active", "a", nil, "Tags to mark active (comma separated or repeated)")
	cmd.Flags().BoolVar(&clearFirst, "clear", false, "Clear the active tags first")
	cmd.Flags().BoolVarP(&preferences, "preferences", "p", false, "List preferences carrying every active tag")
	return cmd
}

func runTags(cmd *cobra.Command, st *state, prefix string) error {
	tags := st.app.Tags.List(prefix)
	rows := make([]tagRow, 0, len(tags))
	for _, t := range tags {
		u, err := st.app.Tags.Usage(t.Name)
		if err != nil {
			return err
		}
		rows = append(rows, tagRow{
			Name:        t.Name,
			Active:      u.Active,
			Preferences: len(u.Preferences),
			Listings:    len(u.Listings),
		})
	}

	p := st.pageParams()
	if st.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), rows, p)
	}
	cells := [][]string{}
	for _, r := range domain.Paginate(rows, p) {
		cells = append(cells, []string{r.Name, yesNo(r.Active), strconv.Itoa(r.Preferences), strconv.Itoa(r.Listings)})
	}
	return writeTable(cmd.OutOrStdout(),
		pageTitle("Tags", len(rows), p),
		"No tags.",
		[]string{"Tag", "Active", "Preferences", "Listings"},
		cells,
	)
}

func runActivePreferences(cmd *cobra.Command, st *state) error {
	prefs := st.app.Session.FilterPreferencesByActiveTags()
	rows := make([]prefRow, 0, len(prefs))
	for _, pref := range prefs {
		person, err := st.app.Persons.Get(pref.PersonID)
		if err != nil {
			return err
		}
		rows = append(rows, prefRow{Person: person.Name, Phone: person.Phone, Preference: pref})
	}

	p := st.pageParams()
	if st.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), rows, p)
	}
	activeNames := []string{}
	for _, t := range st.app.Tags.Active() {
		activeNames = append(activeNames, t.Name)
	}
	cells := [][]string{}
	for _, r := range domain.Paginate(rows, p) {
		cells = append(cells, []string{r.Person, r.Phone, r.Preference.PriceRange.String(), joinTags(r.Preference.Tags)})
	}
	title := "Active tags: none"
	if len(activeNames) > 0 {
		title = "Active tags: " + joinNames(activeNames)
	}
	return writeTable(cmd.OutOrStdout(),
		title+"\n"+pageTitle("Preferences", len(rows), p),
		"No preferences carry the active tags.",
		[]string{"Person", "Phone", "Price", "Tags"},
		cells,
	)
}
