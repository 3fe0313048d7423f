package errs

import (
	"fmt"
	"strings"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
)

// ErrorPayload is the structured error surfaced to the host platform on classified failures.
type ErrorPayload struct {
	Errors []ErrorObject `json:"errors"`
}

type ErrorObject struct {
	Detail string         `json:"detail"`
	Status string         `json:"status"`
	Title  string         `json:"title"`
	Code   string         `json:"code"`
	Source *ErrorSource   `json:"source,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

type ErrorSource struct {
	Pointer string `json:"pointer"`
}

func NewErrorPayload(detail, pointer string, httpCode int, code, title string, meta map[string]any) *ErrorPayload {
	return &ErrorPayload{
		Errors: []ErrorObject{
			newErrorObject(detail, pointer, httpCode, code, title, meta),
		},
	}
}

func newErrorObject(detail, pointer string, httpCode int, code, title string, meta map[string]any) ErrorObject {
	obj := ErrorObject{
		Detail: detail,
		Status: fmt.Sprintf("%d", httpCode),
		Title:  title,
		Code:   constants.ARINErrorCodePrefix + code,
	}

	if pointer != "" {
		obj.Source = &ErrorSource{
			Pointer: pointer,
		}
	}

	if meta != nil {
		obj.Meta = meta
	}

	return obj
}

func (p *ErrorPayload) Error() string {
	messages := make([]string, 0, len(p.Errors))
	for _, e := range p.Errors {
		messages = append(messages, fmt.Sprintf("%s %s: %s: %s", e.Code, e.Status, e.Title, e.Detail))
	}

	return strings.Join(messages, "; ")
}

// First returns the first error object, the payload always carries at least one.
func (p *ErrorPayload) First() ErrorObject {
	if len(p.Errors) == 0 {
		return ErrorObject{}
	}

	return p.Errors[0]
}

// UnexpectedStatusError is returned for any upstream status not classified otherwise.
type UnexpectedStatusError struct {
	StatusCode int             `json:"statusCode"`
	Body       string          `json:"body"`
	Entity     entities.Entity `json:"entity"`
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.Entity.Value)
}

// TransportError wraps a connection level failure talking to the registry.
type TransportError struct {
	URI string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URI, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
