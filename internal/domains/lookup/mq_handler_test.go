package lookup_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/lookup"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/lookup/lookup_mocks"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/mq"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
	"github.com/Fivegen-LLC/arin-enricher/internal/errs"
)

const (
	testRequestTimeout = time.Second
)

var (
	testEntity = entities.Entity{
		Value:  "8.8.8.8",
		IsIPv4: true,
		Types:  []string{},
	}
)

type handlerFields struct {
	integrationService *lookup_mocks.MockIIntegrationService
}

func newHandlerFields(t *testing.T) *handlerFields {
	return &handlerFields{
		integrationService: lookup_mocks.NewMockIIntegrationService(t),
	}
}

type lookupReply struct {
	mq.Response

	Errors     []errs.ErrorObject      `json:"errors"`
	Diagnostic map[string]any          `json:"diagnostic"`
	Results    []entities.LookupResult `json:"results"`
}

func decodeReply(t *testing.T, resp any) (reply lookupReply) {
	t.Helper()

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &reply))

	return reply
}

func TestMQHandler_Lookup(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name    string
		body    string
		prepare func(f *handlerFields)
		check   func(t *testing.T, reply lookupReply)
	}{
		{
			name: "invalid json",
			body: `{"entities": `,
			check: func(t *testing.T, reply lookupReply) {
				assert.Equal(t, mq.StatusError, reply.Status)
				assert.NotEmpty(t, reply.Error)
			},
		},
		{
			name: "empty entities",
			body: `{"entities": [], "options": {}}`,
			check: func(t *testing.T, reply lookupReply) {
				assert.Equal(t, mq.StatusError, reply.Status)
				assert.Contains(t, reply.Error, "Entities")
			},
		},
		{
			name: "lookup results",
			body: `{"entities": [{"value": "8.8.8.8", "isIPv4": true, "types": []}], "options": {"blacklist": ["1.1.1.1"]}}`,
			prepare: func(f *handlerFields) {
				f.integrationService.EXPECT().
					DoLookup(mock.Anything, []entities.Entity{testEntity}, entities.Options{Blacklist: []string{"1.1.1.1"}}).
					Return([]entities.LookupResult{{Entity: testEntity}}, nil).
					Times(1)
			},
			check: func(t *testing.T, reply lookupReply) {
				assert.Equal(t, mq.StatusOK, reply.Status)
				require.Len(t, reply.Results, 1)
				assert.Equal(t, "8.8.8.8", reply.Results[0].Entity.Value)
				assert.True(t, reply.Results[0].IsMiss())
			},
		},
		{
			name: "error payload is forwarded",
			body: `{"entities": [{"value": "8.8.8.8", "isIPv4": true, "types": []}]}`,
			prepare: func(f *handlerFields) {
				f.integrationService.EXPECT().
					DoLookup(mock.Anything, []entities.Entity{testEntity}, entities.Options{}).
					Return(nil, errs.NewErrorPayload(
						"ARIN server was unable to process your request", "",
						http.StatusInternalServerError, constants.ARINLookupErrorCode, "Unable to Process Request", nil,
					)).
					Times(1)
			},
			check: func(t *testing.T, reply lookupReply) {
				assert.Equal(t, mq.StatusError, reply.Status)
				require.Len(t, reply.Errors, 1)
				assert.Equal(t, "ARIN_2A", reply.Errors[0].Code)
				assert.Equal(t, "500", reply.Errors[0].Status)
				assert.Empty(t, reply.Results)
			},
		},
		{
			name: "unexpected status is forwarded as diagnostic",
			body: `{"entities": [{"value": "8.8.8.8", "isIPv4": true, "types": []}]}`,
			prepare: func(f *handlerFields) {
				f.integrationService.EXPECT().
					DoLookup(mock.Anything, []entities.Entity{testEntity}, entities.Options{}).
					Return(nil, &errs.UnexpectedStatusError{
						StatusCode: http.StatusBadGateway,
						Body:       "bad gateway",
						Entity:     testEntity,
					}).
					Times(1)
			},
			check: func(t *testing.T, reply lookupReply) {
				assert.Equal(t, mq.StatusError, reply.Status)
				assert.Empty(t, reply.Errors)
				require.NotNil(t, reply.Diagnostic)
				assert.InDelta(t, http.StatusBadGateway, reply.Diagnostic["statusCode"], 0)
			},
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newHandlerFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			handler := lookup.NewMQHandler(f.integrationService, testRequestTimeout)
			resp := handler.Lookup(&nats.Msg{
				Subject: constants.MQARINLookup,
				Data:    []byte(testCase.body),
			})

			testCase.check(t, decodeReply(t, resp))
		})
	}
}

func TestMQHandler_ValidateOptions(t *testing.T) {
	t.Parallel()

	f := newHandlerFields(t)
	f.integrationService.EXPECT().
		ValidateOptions(entities.Options{LookupIPv6: true}).
		Return([]string{}, nil).
		Times(1)

	handler := lookup.NewMQHandler(f.integrationService, testRequestTimeout)
	resp := handler.ValidateOptions(&nats.Msg{
		Subject: constants.MQARINValidateOptions,
		Data:    []byte(`{"options": {"lookupIPv6": true}}`),
	})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "ok", "errors": []}`, string(data))
}
