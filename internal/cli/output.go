package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
)

// page is the JSON envelope of a paged list.
type page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// writeJSON pages items and encodes them with indentation.
func writeJSON[T any](w io.Writer, items []T, p domain.PageParams) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(page[T]{
		Items: domain.Paginate(items, p),
		Total: len(items),
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// writeTable renders rows under headers. An empty row set prints empty instead.
func writeTable(w io.Writer, title, empty string, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(title), t.Render())
	return err
}

// pageTitle describes which slice of total results is shown.
func pageTitle(what string, total int, p domain.PageParams) string {
	return fmt.Sprintf("%s (%d, page %d, %d per page)", what, total, p.Page, p.Limit)
}

func joinTags(tags domain.TagSet) string {
	return joinNames(tags.Names())
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
