package eligibility

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/seancfoley/ipaddress-go/ipaddr"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
)

const (
	reasonEligible        = ""
	reasonBlacklisted     = "blacklisted"
	reasonPrivate         = "private"
	reasonIPv6Disabled    = "ipv6 disabled"
	reasonInvalidIPv6     = "invalid ipv6"
	reasonUnsupportedType = "unsupported type"
)

const ipv6BitCount = 128

type Service struct{}

func NewService() *Service {
	return new(Service)
}

// IsEligible reports whether the entity warrants a registry lookup.
func (s *Service) IsEligible(entity entities.Entity, options entities.Options) bool {
	return skipReason(entity, options) == reasonEligible
}

// Filter returns the eligible subset of entities in input order.
func (s *Service) Filter(logger zerolog.Logger, items []entities.Entity, options entities.Options) []entities.Entity {
	return lo.Filter(items, func(entity entities.Entity, _ int) bool {
		reason := skipReason(entity, options)
		if reason == reasonEligible {
			return true
		}

		logger.Trace().
			Str("entity", entity.Value).
			Str("reason", reason).
			Msg("Filter: entity skipped")

		return false
	})
}

func skipReason(entity entities.Entity, options entities.Options) string {
	if lo.Contains(options.Blacklist, entity.Value) {
		return reasonBlacklisted
	}

	if entity.IsIPv4 && !entity.IsPrivateIP {
		return reasonEligible
	}

	if entity.IsIPv6 && options.LookupIPv6 && isValidIPv6(entity.Value) {
		return reasonEligible
	}

	if entity.HasType(constants.EntityTypeIPv4CIDR) {
		return reasonEligible
	}

	// pick the most specific reason for the trace log
	switch {
	case entity.IsIPv4:
		return reasonPrivate
	case entity.IsIPv6 && !options.LookupIPv6:
		return reasonIPv6Disabled
	case entity.IsIPv6:
		return reasonInvalidIPv6
	default:
		return reasonUnsupportedType
	}
}

// isValidIPv6 re-validates the value, the IsIPv6 flag comes from the host classifier.
// Only a single address is accepted, optionally with a prefix length.
func isValidIPv6(value string) bool {
	if lo.IsEmpty(value) || strings.TrimSpace(value) != value {
		return false
	}

	host, prefix, hasPrefix := strings.Cut(value, "/")
	if hasPrefix {
		bits, err := strconv.Atoi(prefix)
		if err != nil || bits < 0 || bits > ipv6BitCount || strconv.Itoa(bits) != prefix {
			return false
		}
	}

	addr := ipaddr.NewIPAddressString(host).GetAddress()
	return addr != nil && addr.IsIPv6() && !addr.IsMultiple()
}
