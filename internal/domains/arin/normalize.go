package arin

import (
	"encoding/json"
	"fmt"

	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
)

const (
	missNotJSON          = "response is not a JSON object"
	missNoNet            = "net is missing"
	missNoParentNetRef   = "parentNetRef is missing"
	missNoOrgRef         = "orgRef is missing"
	missNoNetBlock       = "netBlock is missing"
	missMalformedNetwork = "net is malformed"
)

type parsedBody struct {
	raw  map[string]any
	body whoisBody
}

// parseBody decodes a 200 response body, missReason is set when the body can't be normalized.
func parseBody(data []byte) (parsed parsedBody, missReason string) {
	if err := json.Unmarshal(data, &parsed.raw); err != nil || parsed.raw == nil {
		return parsed, missNotJSON
	}

	// leaves decode leniently, so this only fails on a malformed net, reference or netBlock
	if err := json.Unmarshal(data, &parsed.body); err != nil {
		return parsed, missMalformedNetwork
	}

	net := parsed.body.Net
	switch {
	case net == nil:
		return parsed, missNoNet
	case net.ParentNetRef == nil:
		return parsed, missNoParentNetRef
	case net.OrgRef == nil:
		return parsed, missNoOrgRef
	case net.NetBlocks == nil || len(net.NetBlocks.NetBlock) == 0:
		return parsed, missNoNetBlock
	}

	return parsed, ""
}

// normalize flattens the registry document into the result schema.
func normalize(entity entities.Entity, parsed parsedBody) *entities.NormalizedData {
	var (
		net      = parsed.body.Net
		block, _ = net.NetBlocks.NetBlock.first()
	)

	return &entities.NormalizedData{
		EntityName: entity.Value,
		Summary:    []string{string(net.OrgRef.Name)},
		Details: entities.DetailRecord{
			AllData: parsed.raw,

			OrgHandle: string(net.OrgRef.Handle),
			OrgName:   string(net.OrgRef.Name),
			OrgRef:    string(net.OrgRef.Value),

			NetBlockHandle: net.Handle.String(),
			NetBlockName:   net.Name.String(),
			NetBlockCIDR:   fmt.Sprintf("%s/%s", net.StartAddress, block.CIDRLength),
			StartAddr:      net.StartAddress.String(),
			EndAddr:        net.EndAddress.String(),
			NetBlockRef:    net.Ref.String(),
			RegDate:        net.RegistrationDate.String(),
			UpDate:         net.UpdateDate.String(),

			ParentHandle: string(net.ParentNetRef.Handle),
			ParentName:   string(net.ParentNetRef.Name),
			ParentRef:    string(net.ParentNetRef.Value),
		},
	}
}
