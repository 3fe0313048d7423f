package constants

import "time"

const (
	ARINBaseURL          = "https://whois.arin.net/rest"
	ARINRequestTimeout   = 10 * time.Second
	ARINMaxConcurrency   = 10
	ARINUserAgent        = "arin-enricher"
	ARINErrorCodePrefix  = "ARIN_"
	ARINLookupErrorCode  = "2A"
	CategoryIP           = "ip"
	CategoryCIDR         = "cidr"
	EntityTypeIPv4CIDR   = "custom.IPv4CIDR"
	DefaultLogLevel      = "info"
	DefaultLogfilePath   = "/var/log/arin-enricher/arin-enricher.log"
	MQRequestTimeout     = 30 * time.Second
	CLIOutputFormatTable = "table"
	CLIOutputFormatJSON  = "json"
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)
