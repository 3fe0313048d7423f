package main

import (
	"github.com/Fivegen-LLC/arin-enricher/infrastructure"
	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/mq"
)

func getMQRoutes(injector infrastructure.IInjector) map[string]mq.Handler {
	lookupHandler := injector.InjectLookupMQHandler()

	return map[string]mq.Handler{
		constants.MQARINLookup:          lookupHandler.Lookup,
		constants.MQARINValidateOptions: lookupHandler.ValidateOptions,
	}
}
