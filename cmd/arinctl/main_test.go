package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		value    string
		expected entities.Entity
	}{
		{
			value:    "8.8.8.8",
			expected: entities.Entity{Value: "8.8.8.8", IsIPv4: true, Types: []string{}},
		},
		{
			value:    "10.0.0.1",
			expected: entities.Entity{Value: "10.0.0.1", IsIPv4: true, IsPrivateIP: true, Types: []string{}},
		},
		{
			value:    "2001:4860:4860::8888",
			expected: entities.Entity{Value: "2001:4860:4860::8888", IsIPv6: true, Types: []string{}},
		},
		{
			value:    " 8.8.8.0/24 ",
			expected: entities.Entity{Value: "8.8.8.0/24", Types: []string{constants.EntityTypeIPv4CIDR}},
		},
		{
			value:    "example.com",
			expected: entities.Entity{Value: "example.com", Types: []string{}},
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.value, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, classify(testCase.value))
		})
	}
}
