package entities

// LookupResult maps an entity to its normalized registry data.
// Data is nil for a miss, which the caller may cache.
type LookupResult struct {
	Entity Entity          `json:"entity"`
	Data   *NormalizedData `json:"data"`
}

func NewMissResult(entity Entity) *LookupResult {
	return &LookupResult{
		Entity: entity,
	}
}

func (r LookupResult) IsMiss() bool {
	return r.Data == nil
}

type NormalizedData struct {
	EntityName string       `json:"entity_name"`
	Summary    []string     `json:"summary"`
	Details    DetailRecord `json:"details"`
}

type DetailRecord struct {
	AllData map[string]any `json:"allData"`

	// organization
	OrgHandle string `json:"orgHandle"`
	OrgName   string `json:"orgName"`
	OrgRef    string `json:"orgRef"`

	// network
	NetBlockHandle string `json:"netBlockHandle"`
	NetBlockName   string `json:"netBlockName"`
	NetBlockCIDR   string `json:"netBlockCIDR"`
	StartAddr      string `json:"startAddr"`
	EndAddr        string `json:"endAddr"`
	NetBlockRef    string `json:"netBlockRef"`
	RegDate        string `json:"regDate"`
	UpDate         string `json:"upDate"`

	// parent network
	ParentHandle string `json:"parentHandle"`
	ParentName   string `json:"parentName"`
	ParentRef    string `json:"parentRef"`
}

// WhoisResponse is a raw upstream response, body left undecoded.
type WhoisResponse struct {
	URI        string
	StatusCode int
	Body       []byte
}
