package constants

const (
	// in requests.
	MQARINLookup          = "arin.lookup"
	MQARINValidateOptions = "arin.validate_options"
)

const (
	MQClientName = "arin-enricher"
)
