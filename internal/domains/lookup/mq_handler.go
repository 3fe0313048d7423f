package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/arin-enricher/internal/domains/mq"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
	"github.com/Fivegen-LLC/arin-enricher/internal/errs"
)

type (
	IIntegrationService interface {
		DoLookup(ctx context.Context, items []entities.Entity, options entities.Options) (results []entities.LookupResult, err error)
		ValidateOptions(options entities.Options) (validationErrors []string, err error)
	}

	MQHandler struct {
		integrationService IIntegrationService
		requestTimeout     time.Duration

		validate *validator.Validate
	}
)

func NewMQHandler(integrationService IIntegrationService, requestTimeout time.Duration) *MQHandler {
	return &MQHandler{
		integrationService: integrationService,
		requestTimeout:     requestTimeout,

		validate: validator.New(),
	}
}

type lookupResponse struct {
	mq.Response

	Errors     []errs.ErrorObject          `json:"errors,omitempty"`
	Diagnostic *errs.UnexpectedStatusError `json:"diagnostic,omitempty"`
	Results    []entities.LookupResult     `json:"results"`
}

// Lookup enriches the requested entities with ARIN registry data.
func (h *MQHandler) Lookup(m *nats.Msg) (resp any) {
	var requestBody struct {
		Entities []entities.Entity `json:"entities" validate:"required,min=1"`
		Options  entities.Options  `json:"options"`
	}
	if err := json.Unmarshal(m.Data, &requestBody); err != nil {
		return mq.NewErrorResponse(fmt.Errorf("Lookup: %w", err).Error())
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return mq.NewErrorResponse(fmt.Errorf("Lookup: %w", err).Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.requestTimeout)
	defer cancel()

	results, err := h.integrationService.DoLookup(ctx, requestBody.Entities, requestBody.Options)
	if err != nil {
		log.Error().
			Err(err).
			Int("entities", len(requestBody.Entities)).
			Msg("Lookup: lookup failed")

		return newLookupErrorResponse(err)
	}

	return lookupResponse{
		Response: mq.NewOkResponse(),
		Results:  results,
	}
}

func newLookupErrorResponse(err error) lookupResponse {
	response := lookupResponse{
		Response: mq.NewErrorResponse(err.Error()),
	}

	var (
		payload   *errs.ErrorPayload
		statusErr *errs.UnexpectedStatusError
	)
	switch {
	case errors.As(err, &payload):
		response.Errors = payload.Errors
	case errors.As(err, &statusErr):
		response.Diagnostic = statusErr
	}

	return response
}

// ValidateOptions returns option validation errors, an empty list means the options are accepted.
func (h *MQHandler) ValidateOptions(m *nats.Msg) (resp any) {
	var requestBody struct {
		Options entities.Options `json:"options"`
	}
	if err := json.Unmarshal(m.Data, &requestBody); err != nil {
		return mq.NewErrorResponse(fmt.Errorf("ValidateOptions: %w", err).Error())
	}

	validationErrors, err := h.integrationService.ValidateOptions(requestBody.Options)
	if err != nil {
		return mq.NewErrorResponse(fmt.Errorf("ValidateOptions: %w", err).Error())
	}

	return struct {
		mq.Response

		Errors []string `json:"errors"`
	}{
		Response: mq.NewOkResponse(),
		Errors:   validationErrors,
	}
}
