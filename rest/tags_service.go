package rest

import (
	"context"
	"net/http"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// TagsService lists all tags known to the backend.
type TagsService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
}

// Do executes the service.
func (s *TagsService) Do(ctx context.Context) ([]string, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/tags").
		Build()

	op := "TagsService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp.StatusCode, resp.Body); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrAPIError).
			WithCause(err)
	}

	decoded, err := decodeResponse[tagsResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return decoded.Tags, nil
}
