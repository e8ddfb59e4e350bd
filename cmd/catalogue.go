package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eykd/fentarxiu-go/internal/domain"
)

// catalogueJSONEntry is one instrument in the catalogue command's JSON output.
type catalogueJSONEntry struct {
	Category int    `json:"category"`
	Family   string `json:"family"`
	Code     string `json:"code"`
	Prefix   string `json:"prefix"`
	Name     string `json:"name"`
}

// catalogueJSONResponse is the JSON output structure for the catalogue command.
type catalogueJSONResponse struct {
	Instruments []catalogueJSONEntry `json:"instruments"`
}

func familyName(category int) string {
	if name, ok := domain.CategoryName(category); ok {
		return name
	}
	return strconv.Itoa(category)
}

// formatCatalogueJSON writes every catalogue entry as JSON to w.
func formatCatalogueJSON(w io.Writer, cat *domain.Catalogue) {
	entries := cat.Entries()
	out := catalogueJSONResponse{Instruments: make([]catalogueJSONEntry, len(entries))}
	for i, e := range entries {
		out.Instruments[i] = catalogueJSONEntry{
			Category: e.Category,
			Family:   familyName(e.Category),
			Code:     e.Code,
			Prefix:   fmt.Sprintf("%d%s", e.Category, e.Code),
			Name:     e.Name,
		}
	}
	writeJSON(w, out)
}

// formatCatalogueHuman writes the catalogue grouped by family to w.
func formatCatalogueHuman(w io.Writer, cat *domain.Catalogue) {
	current := -1
	for _, e := range cat.Entries() {
		if e.Category != current {
			if current != -1 {
				fmt.Fprintln(w)
			}
			current = e.Category
			fmt.Fprintf(w, "%d %s\n", e.Category, familyName(e.Category))
		}
		fmt.Fprintf(w, "  %d%sX  %s\n", e.Category, e.Code, e.Name)
	}
}

// NewCatalogueCmd creates the catalogue command for the given catalogue.
func NewCatalogueCmd(cat *domain.Catalogue) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:          "catalogue",
		Short:        "List the instrument codes and their canonical names",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonFlag || GetJSON() || GetSettings().JSON {
				formatCatalogueJSON(cmd.OutOrStdout(), cat)
				return nil
			}
			formatCatalogueHuman(cmd.OutOrStdout(), cat)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")

	return cmd
}
