package arin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
	"github.com/Fivegen-LLC/arin-enricher/internal/errs"
)

type (
	IHTTPClientService interface {
		Fetch(ctx context.Context, category, value string) (response entities.WhoisResponse, err error)
	}
)

type Service struct {
	httpClientService IHTTPClientService
}

func NewService(httpClientService IHTTPClientService) *Service {
	return &Service{
		httpClientService: httpClientService,
	}
}

// Lookup queries the registry for a single entity.
// A nil result with a nil error means the entity carried no value.
func (s *Service) Lookup(ctx context.Context, entity entities.Entity) (result *entities.LookupResult, err error) {
	if lo.IsEmpty(entity.Value) {
		return nil, nil
	}

	logger := zerolog.Ctx(ctx)

	resp, err := s.httpClientService.Fetch(ctx, category(entity), entity.Value)
	if err != nil {
		logger.Error().
			Err(err).
			Str("entity", entity.Value).
			Msg("Lookup: request error")

		return nil, fmt.Errorf("Lookup: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// handled below
	case http.StatusInternalServerError:
		return nil, fmt.Errorf("Lookup: %w", errs.NewErrorPayload(
			"ARIN server was unable to process your request", "",
			http.StatusInternalServerError, constants.ARINLookupErrorCode, "Unable to Process Request",
			map[string]any{
				"err": nil,
			},
		))
	case http.StatusNotFound:
		return entities.NewMissResult(entity), nil
	case http.StatusBadRequest:
		response := map[string]any{
			"statusCode": resp.StatusCode,
			"body":       string(resp.Body),
		}

		return nil, fmt.Errorf("Lookup: %w", errs.NewErrorPayload(
			"Bad Request", "",
			http.StatusBadRequest, constants.ARINLookupErrorCode, "Bad Request",
			map[string]any{
				"uri":      resp.URI,
				"err":      nil,
				"response": response,
			},
		))
	default:
		return nil, fmt.Errorf("Lookup: %w", &errs.UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
			Entity:     entity,
		})
	}

	logger.Trace().
		Str("entity", entity.Value).
		Bytes("body", resp.Body).
		Msg("Lookup: got registry response")

	parsed, missReason := parseBody(resp.Body)
	if lo.IsNotEmpty(missReason) {
		logger.Trace().
			Str("entity", entity.Value).
			Str("reason", missReason).
			Msg("Lookup: registry response can't be normalized")

		return entities.NewMissResult(entity), nil
	}

	return &entities.LookupResult{
		Entity: entity,
		Data:   normalize(entity, parsed),
	}, nil
}

// category selects the registry endpoint for the entity.
func category(entity entities.Entity) string {
	if entity.HasType(constants.EntityTypeIPv4CIDR) {
		return constants.CategoryCIDR
	}

	return constants.CategoryIP
}
