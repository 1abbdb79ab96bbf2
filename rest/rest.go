package rest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
)

const (
	subsys = "rest"

	defaultAPIRoot = "https://conduit.productionready.io/api"
)

// APIError is the cause attached to sdkerr.ErrAPIError for any non-2xx
// response. Errors holds the backend's validation payload
// {"errors": {field: [messages]}} when the body parses as one; Body keeps
// the raw payload either way.
type APIError struct {
	StatusCode int
	Errors     map[string][]string
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, strings.Join(e.Errors[field], ", ")))
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

func checkResponseError(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: statusCode, Body: body}

	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Errors = payload.Errors
	}
	return apiErr
}

func decodeResponse[T any](body []byte, op string) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithCause(err)
	}
	return &v, nil
}

func encodeBody(v any, op string) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}
	return body, nil
}
