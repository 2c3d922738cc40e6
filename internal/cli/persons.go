package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// NewPersonsCmd creates the 'persons' command listing every person with their
// numbered preferences.
func NewPersonsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "persons",
		Aliases: []string{"people"},
		Short:   "List persons and their property preferences",
		Example: `  matcher persons
  matcher persons --json --limit 5`,
		Args: cobra.NoArgs,
		RunE: st.logged(func(cmd *cobra.Command, _ []string) error {
			return runPersons(cmd, st)
		}),
	}
}

func runPersons(cmd *cobra.Command, st *state) error {
	persons := st.app.Persons.List()
	p := st.pageParams()
	if st.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), persons, p)
	}
	return writeTable(cmd.OutOrStdout(),
		pageTitle("Persons", len(persons), p),
		"No persons.",
		[]string{"Name", "Phone", "Email", "Preferences", "Owns"},
		personRows(domain.Paginate(persons, p)),
	)
}

func personRows(persons []domain.Person) [][]string {
	rows := make([][]string, 0, len(persons))
	for _, p := range persons {
		rows = append(rows, []string{
			p.Name,
			p.Phone,
			p.Email,
			preferenceLines(p.Preferences),
			strconv.Itoa(len(p.Listings)),
		})
	}
	return rows
}

// preferenceLines renders preferences one per line, numbered from 1 as
// accepted by 'match listings --pref'.
func preferenceLines(prefs []domain.PropertyPreference) string {
	lines := make([]string, len(prefs))
	for i, pref := range prefs {
		lines[i] = fmt.Sprintf("%d. %s", i+1, pref.PriceRange)
		if len(pref.Tags) > 0 {
			lines[i] += " [" + joinTags(pref.Tags) + "]"
		}
	}
	return strings.Join(lines, "\n")
}
