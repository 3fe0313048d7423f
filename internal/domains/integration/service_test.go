package integration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/eligibility"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/integration"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/integration/integration_mocks"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
	"github.com/Fivegen-LLC/arin-enricher/internal/errs"
)

const (
	testMaxConcurrency = 4
)

var (
	errTestError = errors.New("test error")
)

var (
	googleEntity = entities.Entity{
		Value:  "8.8.8.8",
		IsIPv4: true,
		Types:  []string{},
	}
	cloudflareEntity = entities.Entity{
		Value:  "1.1.1.1",
		IsIPv4: true,
		Types:  []string{},
	}
	privateEntity = entities.Entity{
		Value:       "10.0.0.1",
		IsIPv4:      true,
		IsPrivateIP: true,
		Types:       []string{},
	}
	cidrEntity = entities.Entity{
		Value: "8.8.8.0/24",
		Types: []string{constants.EntityTypeIPv4CIDR},
	}
	googleData = &entities.NormalizedData{
		EntityName: "8.8.8.8",
		Summary:    []string{"Google LLC"},
		Details: entities.DetailRecord{
			OrgName:      "Google LLC",
			NetBlockCIDR: "8.8.8.0/24",
		},
	}
)

type serviceFields struct {
	lookupService *integration_mocks.MockILookupService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		lookupService: integration_mocks.NewMockILookupService(t),
	}
}

func newStartedService(f *serviceFields) *integration.Service {
	service := integration.NewService(f.lookupService, eligibility.NewService(), testMaxConcurrency)
	service.Startup(zerolog.Nop())

	return service
}

func TestService_DoLookup(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name            string
		items           []entities.Entity
		options         entities.Options
		prepare         func(f *serviceFields)
		expectedResults []entities.LookupResult
		expectedErr     error
	}{
		{
			name:            "private address is never queried",
			items:           []entities.Entity{privateEntity},
			expectedResults: []entities.LookupResult{},
		},
		{
			name:            "blacklisted address is never queried",
			items:           []entities.Entity{googleEntity},
			options:         entities.Options{Blacklist: []string{"8.8.8.8"}},
			expectedResults: []entities.LookupResult{},
		},
		{
			name:  "public address is enriched",
			items: []entities.Entity{googleEntity, privateEntity},
			prepare: func(f *serviceFields) {
				f.lookupService.EXPECT().
					Lookup(mock.Anything, googleEntity).
					Return(&entities.LookupResult{Entity: googleEntity, Data: googleData}, nil).
					Times(1)
			},
			expectedResults: []entities.LookupResult{
				{Entity: googleEntity, Data: googleData},
			},
		},
		{
			name:  "misses are kept",
			items: []entities.Entity{googleEntity, cloudflareEntity, cidrEntity},
			prepare: func(f *serviceFields) {
				f.lookupService.EXPECT().
					Lookup(mock.Anything, googleEntity).
					Return(&entities.LookupResult{Entity: googleEntity, Data: googleData}, nil).
					Times(1)

				f.lookupService.EXPECT().
					Lookup(mock.Anything, cloudflareEntity).
					Return(entities.NewMissResult(cloudflareEntity), nil).
					Times(1)

				f.lookupService.EXPECT().
					Lookup(mock.Anything, cidrEntity).
					Return(entities.NewMissResult(cidrEntity), nil).
					Times(1)
			},
			expectedResults: []entities.LookupResult{
				{Entity: googleEntity, Data: googleData},
				{Entity: cloudflareEntity},
				{Entity: cidrEntity},
			},
		},
		{
			name:  "empty result is dropped",
			items: []entities.Entity{{IsIPv4: true}},
			prepare: func(f *serviceFields) {
				f.lookupService.EXPECT().
					Lookup(mock.Anything, entities.Entity{IsIPv4: true}).
					Return(nil, nil).
					Times(1)
			},
			expectedResults: []entities.LookupResult{},
		},
		{
			name:        "hard error fails the batch",
			items:       []entities.Entity{googleEntity, cloudflareEntity},
			expectedErr: errTestError,
			prepare: func(f *serviceFields) {
				f.lookupService.EXPECT().
					Lookup(mock.Anything, googleEntity).
					Return(&entities.LookupResult{Entity: googleEntity, Data: googleData}, nil).
					Maybe()

				f.lookupService.EXPECT().
					Lookup(mock.Anything, cloudflareEntity).
					Return(nil, errTestError).
					Times(1)
			},
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := newStartedService(f)
			results, err := service.DoLookup(context.Background(), testCase.items, testCase.options)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				assert.Nil(t, results)
				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, testCase.expectedResults, results)
		})
	}
}

func TestService_DoLookupPayloadError(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	payload := errs.NewErrorPayload("Bad Request", "", 400, constants.ARINLookupErrorCode, "Bad Request", nil)
	f.lookupService.EXPECT().
		Lookup(mock.Anything, googleEntity).
		Return(nil, payload).
		Times(1)

	_, err := newStartedService(f).DoLookup(context.Background(), []entities.Entity{googleEntity}, entities.Options{})
	require.Error(t, err)

	var target *errs.ErrorPayload
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "ARIN_2A", target.First().Code)
	assert.Equal(t, "400", target.First().Status)
}

func TestService_DoLookupCancelsOutstanding(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.lookupService.EXPECT().
		Lookup(mock.Anything, cloudflareEntity).
		Return(nil, errTestError).
		Times(1)

	f.lookupService.EXPECT().
		Lookup(mock.Anything, googleEntity).
		RunAndReturn(func(ctx context.Context, _ entities.Entity) (*entities.LookupResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		Maybe()

	_, err := newStartedService(f).DoLookup(context.Background(), []entities.Entity{googleEntity, cloudflareEntity}, entities.Options{})
	require.ErrorIs(t, err, errTestError)
}

func TestService_NotStarted(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	service := integration.NewService(f.lookupService, eligibility.NewService(), testMaxConcurrency)

	_, err := service.DoLookup(context.Background(), []entities.Entity{googleEntity}, entities.Options{})
	require.ErrorIs(t, err, errs.ErrNotStarted)

	_, err = service.ValidateOptions(entities.Options{})
	require.ErrorIs(t, err, errs.ErrNotStarted)
}

func TestService_ValidateOptions(t *testing.T) {
	t.Parallel()

	service := newStartedService(newServiceFields(t))
	validationErrors, err := service.ValidateOptions(entities.Options{
		Blacklist:  []string{"8.8.8.8"},
		LookupIPv6: true,
	})
	require.NoError(t, err)
	assert.Empty(t, validationErrors)
}
