package infrastructure

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/arin-enricher/internal/domains/arin"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/arin/httpclient"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/eligibility"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/integration"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/mq"
)

var (
	httpClientService     *httpclient.Service
	httpClientServiceOnce sync.Once
)

func (k *Kernel) InjectHTTPClientService() *httpclient.Service {
	httpClientServiceOnce.Do(func() {
		httpClientService = httpclient.NewService(
			k.env.ARIN.BaseURL,
			k.env.ARIN.Timeout,
			k.env.ARIN.UserAgent,
		)
	})

	return httpClientService
}

var (
	arinService     *arin.Service
	arinServiceOnce sync.Once
)

func (k *Kernel) InjectARINService() *arin.Service {
	arinServiceOnce.Do(func() {
		arinService = arin.NewService(
			k.InjectHTTPClientService(),
		)
	})

	return arinService
}

var (
	eligibilityService     *eligibility.Service
	eligibilityServiceOnce sync.Once
)

func (k *Kernel) InjectEligibilityService() *eligibility.Service {
	eligibilityServiceOnce.Do(func() {
		eligibilityService = eligibility.NewService()
	})

	return eligibilityService
}

var (
	integrationService     *integration.Service
	integrationServiceOnce sync.Once
)

func (k *Kernel) InjectIntegrationService() *integration.Service {
	integrationServiceOnce.Do(func() {
		integrationService = integration.NewService(
			k.InjectARINService(),
			k.InjectEligibilityService(),
			k.env.ARIN.MaxConcurrency,
		)
		integrationService.Startup(log.Logger)
	})

	return integrationService
}

var (
	mqService     *mq.Service
	mqServiceOnce sync.Once
)

func (k *Kernel) InjectMQService() *mq.Service {
	mqServiceOnce.Do(func() {
		mqService = mq.NewService(k.env.MQ.URL)
	})

	return mqService
}
