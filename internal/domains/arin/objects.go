package arin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// whoisBody is the subset of the ARIN REST JSON document used for normalization.
// Leaves are wrapped as {"$": value}, attributes as {"@attr": value}.
type whoisBody struct {
	Net *network `json:"net"`
}

type network struct {
	Handle           leaf       `json:"handle"`
	Name             leaf       `json:"name"`
	Ref              leaf       `json:"ref"`
	StartAddress     leaf       `json:"startAddress"`
	EndAddress       leaf       `json:"endAddress"`
	RegistrationDate leaf       `json:"registrationDate"`
	UpdateDate       leaf       `json:"updateDate"`
	NetBlocks        *netBlocks `json:"netBlocks"`
	OrgRef           *reference `json:"orgRef"`
	ParentNetRef     *reference `json:"parentNetRef"`
}

type netBlocks struct {
	NetBlock netBlockList `json:"netBlock"`
}

type netBlock struct {
	CIDRLength   leaf `json:"cidrLength"`
	StartAddress leaf `json:"startAddress"`
	EndAddress   leaf `json:"endAddress"`
	Type         leaf `json:"type"`
	Description  leaf `json:"description"`
}

// netBlockList decodes either a single netBlock object or an array of them.
type netBlockList []netBlock

func (l *netBlockList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var blocks []netBlock
		if err := json.Unmarshal(data, &blocks); err != nil {
			return fmt.Errorf("UnmarshalJSON: %w", err)
		}

		*l = blocks
		return nil
	}

	var block netBlock
	if err := json.Unmarshal(data, &block); err != nil {
		return fmt.Errorf("UnmarshalJSON: %w", err)
	}

	*l = netBlockList{block}
	return nil
}

func (l netBlockList) first() (block netBlock, ok bool) {
	if len(l) == 0 {
		return block, false
	}

	return l[0], true
}

type reference struct {
	Handle scalar `json:"@handle"`
	Name   scalar `json:"@name"`
	Value  scalar `json:"$"`
}

// leaf tolerates a value that is not wrapped in an object and decodes it as empty.
type leaf struct {
	Value scalar `json:"$"`
}

func (l *leaf) UnmarshalJSON(data []byte) error {
	*l = leaf{}
	if !isObject(data) {
		return nil
	}

	var wrapped struct {
		Value scalar `json:"$"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("UnmarshalJSON: %w", err)
	}

	l.Value = wrapped.Value
	return nil
}

func (l leaf) String() string {
	return string(l.Value)
}

// scalar accepts JSON strings, numbers and booleans as plain text,
// objects and arrays decode as empty.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	switch data[0] {
	case '{', '[':
		*s = ""
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("UnmarshalJSON: %w", err)
		}

		*s = scalar(str)
	case 't', 'f':
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			return fmt.Errorf("UnmarshalJSON: %w", err)
		}

		*s = scalar(strconv.FormatBool(b))
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("UnmarshalJSON: %w", err)
		}

		*s = scalar(num.String())
	}

	return nil
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
