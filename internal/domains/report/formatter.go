package report

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
)

const (
	missPlaceholder = "-"
)

var (
	headerKeys = table.Row{"#", "ENTITY", "ORGANIZATION", "CIDR", "NET NAME", "NET HANDLE", "PARENT", "UPDATED"}
)

// FormatResultsToTable renders lookup results as a pretty table, misses are shown with placeholders.
func FormatResultsToTable(results []entities.LookupResult) string {
	t := table.NewWriter()
	t.AppendHeader(headerKeys)

	for i, result := range results {
		if result.IsMiss() {
			row := table.Row{i + 1, result.Entity.Value}
			for j, n := 0, len(headerKeys)-len(row); j < n; j++ {
				row = append(row, missPlaceholder)
			}

			t.AppendRow(row)
			continue
		}

		details := result.Data.Details
		t.AppendRow(table.Row{
			i + 1,
			result.Data.EntityName,
			orPlaceholder(details.OrgName),
			orPlaceholder(details.NetBlockCIDR),
			orPlaceholder(details.NetBlockName),
			orPlaceholder(details.NetBlockHandle),
			orPlaceholder(details.ParentName),
			orPlaceholder(details.UpDate),
		})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d found", lo.CountBy(results, func(r entities.LookupResult) bool {
		return !r.IsMiss()
	}))})

	return t.Render()
}

// FormatResultsToJSON renders lookup results as indented JSON.
func FormatResultsToJSON(results []entities.LookupResult) (output string, err error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return output, fmt.Errorf("FormatResultsToJSON: %w", err)
	}

	return string(data), nil
}

func orPlaceholder(value string) string {
	if lo.IsEmpty(value) {
		return missPlaceholder
	}

	return value
}
