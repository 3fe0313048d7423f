package infrastructure

import (
	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/lookup"
	"github.com/Fivegen-LLC/arin-enricher/internal/environment"
)

type IInjector interface {
	// MQ handlers.

	InjectLookupMQHandler() *lookup.MQHandler
}

type Kernel struct {
	env environment.Environment
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	return k, nil
}

func (k *Kernel) InjectLookupMQHandler() *lookup.MQHandler {
	return lookup.NewMQHandler(
		k.InjectIntegrationService(),
		constants.MQRequestTimeout,
	)
}
