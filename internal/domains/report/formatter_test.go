package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/arin-enricher/internal/domains/report"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
)

var (
	testResults = []entities.LookupResult{
		{
			Entity: entities.Entity{Value: "8.8.8.8", IsIPv4: true},
			Data: &entities.NormalizedData{
				EntityName: "8.8.8.8",
				Summary:    []string{"Google LLC"},
				Details: entities.DetailRecord{
					OrgName:        "Google LLC",
					NetBlockCIDR:   "8.8.8.0/24",
					NetBlockName:   "LVLT-GOGL-8-8-8",
					NetBlockHandle: "NET-8-8-8-0-1",
					ParentName:     "LVLT-ORG-8-8",
				},
			},
		},
		{
			Entity: entities.Entity{Value: "8.8.4.4", IsIPv4: true},
		},
	}
)

func TestFormatResultsToTable(t *testing.T) {
	t.Parallel()

	output := report.FormatResultsToTable(testResults)

	lines := strings.Split(output, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, output, "ORGANIZATION")
	assert.Contains(t, output, "Google LLC")
	assert.Contains(t, output, "8.8.8.0/24")
	assert.Contains(t, output, "8.8.4.4")
	assert.Contains(t, output, "1 FOUND")
}

func TestFormatResultsToJSON(t *testing.T) {
	t.Parallel()

	output, err := report.FormatResultsToJSON(testResults)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	require.Len(t, decoded, 2)
	assert.Nil(t, decoded[1]["data"])

	data, ok := decoded[0]["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "8.8.8.8", data["entity_name"])
}
