package entities

import (
	"slices"
)

// Entity is a network identifier submitted by the host platform for enrichment.
type Entity struct {
	Value       string   `json:"value"`
	IsIPv4      bool     `json:"isIPv4"`
	IsIPv6      bool     `json:"isIPv6"`
	IsPrivateIP bool     `json:"isPrivateIP"`
	Types       []string `json:"types"`
}

func (e Entity) HasType(entityType string) bool {
	return slices.Contains(e.Types, entityType)
}

// Options are the per-invocation user options.
type Options struct {
	Blacklist  []string `json:"blacklist"`
	LookupIPv6 bool     `json:"lookupIPv6"`
}
