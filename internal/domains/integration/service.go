package integration

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
	"github.com/Fivegen-LLC/arin-enricher/internal/errs"
)

type (
	ILookupService interface {
		Lookup(ctx context.Context, entity entities.Entity) (result *entities.LookupResult, err error)
	}

	IEligibilityService interface {
		Filter(logger zerolog.Logger, items []entities.Entity, options entities.Options) []entities.Entity
	}
)

type Service struct {
	lookupService      ILookupService
	eligibilityService IEligibilityService
	maxConcurrency     int

	logger  *zerolog.Logger
	started bool
	mx      sync.RWMutex
}

func NewService(lookupService ILookupService, eligibilityService IEligibilityService, maxConcurrency int) *Service {
	return &Service{
		lookupService:      lookupService,
		eligibilityService: eligibilityService,
		maxConcurrency:     max(maxConcurrency, 1),
	}
}

// Startup registers the logger, it must be called before any lookup.
func (s *Service) Startup(logger zerolog.Logger) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.logger = &logger
	s.started = true
}

func (s *Service) getLogger() (logger *zerolog.Logger, err error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if !s.started {
		return nil, errs.ErrNotStarted
	}

	return s.logger, nil
}

// DoLookup enriches the eligible entities, one registry query per entity.
// Results come back in completion order. The first hard error fails the whole batch.
func (s *Service) DoLookup(ctx context.Context, items []entities.Entity, options entities.Options) (results []entities.LookupResult, err error) {
	logger, err := s.getLogger()
	if err != nil {
		return nil, fmt.Errorf("DoLookup: %w", err)
	}

	logger.Trace().
		Any("entities", items).
		Msg("DoLookup: entities")

	eligible := s.eligibilityService.Filter(*logger, items, options)
	if len(eligible) == 0 {
		logger.Debug().
			Int("entities", len(items)).
			Msg("DoLookup: no eligible entities")

		return []entities.LookupResult{}, nil
	}

	ctx = logger.WithContext(ctx)
	p := pool.NewWithResults[*entities.LookupResult]().
		WithMaxGoroutines(min(s.maxConcurrency, len(eligible))).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for _, entity := range eligible {
		entity := entity
		p.Go(func(ctx context.Context) (*entities.LookupResult, error) {
			return s.lookupService.Lookup(ctx, entity)
		})
	}

	lookupResults, err := p.Wait()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("DoLookup: lookup failed")

		return nil, fmt.Errorf("DoLookup: %w", err)
	}

	results = lo.FilterMap(lookupResults, func(result *entities.LookupResult, _ int) (entities.LookupResult, bool) {
		if result == nil {
			return entities.LookupResult{}, false
		}

		return *result, true
	})

	logger.Debug().
		Any("lookupResults", results).
		Msg("DoLookup: result values")

	return results, nil
}

// ValidateOptions has nothing to validate yet, the hook is kept for future option checks.
func (s *Service) ValidateOptions(_ entities.Options) (validationErrors []string, err error) {
	if _, err = s.getLogger(); err != nil {
		return nil, fmt.Errorf("ValidateOptions: %w", err)
	}

	return []string{}, nil
}
