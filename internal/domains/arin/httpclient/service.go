package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
	"github.com/Fivegen-LLC/arin-enricher/internal/errs"
)

type Service struct {
	client  *resty.Client
	baseURL string
}

func NewService(baseURL string, timeout time.Duration, userAgent string) *Service {
	// failed lookups are surfaced once, never re-attempted
	client := resty.New().
		SetRetryCount(0).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Service{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BuildURI returns the registry URI for the given category (ip or cidr) and entity value.
func (s *Service) BuildURI(category, value string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, category, value)
}

// Fetch issues a single GET to the registry, the body is returned as is.
func (s *Service) Fetch(ctx context.Context, category, value string) (response entities.WhoisResponse, err error) {
	uri := s.BuildURI(category, value)
	resp, err := s.client.R().
		SetContext(ctx).
		Get(uri)
	if err != nil {
		return response, fmt.Errorf("Fetch: %w", &errs.TransportError{
			URI: uri,
			Err: err,
		})
	}

	response = entities.WhoisResponse{
		URI:        uri,
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	return response, nil
}
