// Package lists implements the client for the household-lists API.
package lists

import (
	"context"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// Client calls the household-lists API. Construct using [New].
type Client struct {
	endpoint *httpapi.Endpoint
}

// New constructs a new [*Client] with the given configuration.
func New(config *services.Config) (*Client, error) {
	endpoint, err := config.NewEndpoint()
	if err != nil {
		return nil, err
	}
	return &Client{endpoint: endpoint}, nil
}

// bearer returns the Authorization header for this client.
func (c *Client) bearer() []transportx.HeaderPair {
	return []transportx.HeaderPair{
		httpapi.BearerHeader(c.endpoint.AuthorizationValue),
	}
}

var listsMetadataErrors = map[int]string{
	403: "Forbidden",
	500: "Internal Server Error",
	0:   "Internal Server Error",
}

// GetListsMetadata invokes GET /v2/householdlists/ and enumerates the
// customer's lists.
func (c *Client) GetListsMetadata(ctx context.Context) (*model.HouseholdListsMetadata, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v2/householdlists/",
		Headers:      c.bearer(),
		ErrorTable:   listsMetadataErrors,
	}
	var metadata model.HouseholdListsMetadata
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

var getListErrors = map[int]string{
	400: "Bad Request",
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
	0:   "Internal Server Error",
}

// GetList invokes GET /v2/householdlists/{listId}/{status}/ and
// returns the list along with its items in the given status.
func (c *Client) GetList(ctx context.Context, listID, status string) (*model.HouseholdList, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v2/householdlists/{listId}/{status}/",
		PathParams: map[string]string{
			"listId": listID,
			"status": status,
		},
		Headers:    c.bearer(),
		ErrorTable: getListErrors,
	}
	var list model.HouseholdList
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

var createListErrors = map[int]string{
	400: "Bad Request",
	403: "Forbidden",
	409: "This list already exists",
	500: "Internal Server Error",
	0:   "Internal Server Error",
}

// CreateList invokes POST /v2/householdlists/ to create a list.
func (c *Client) CreateList(ctx context.Context, request *model.CreateHouseholdListRequest) (*model.HouseholdListMetadata, error) {
	desc := &httpapi.Descriptor{
		Method:       "POST",
		PathTemplate: "/v2/householdlists/",
		Headers:      c.bearer(),
		Body:         request,
		ErrorTable:   createListErrors,
	}
	var metadata model.HouseholdListMetadata
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

var createListItemErrors = map[int]string{
	400: "Bad Request",
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
	0:   "Internal Server Error",
}

// CreateListItem invokes POST /v2/householdlists/{listId}/items/ to
// add an item to a list.
func (c *Client) CreateListItem(ctx context.Context, listID string, request *model.CreateHouseholdListItemRequest) (*model.HouseholdListItem, error) {
	desc := &httpapi.Descriptor{
		Method:       "POST",
		PathTemplate: "/v2/householdlists/{listId}/items/",
		PathParams:   map[string]string{"listId": listID},
		Headers:      c.bearer(),
		Body:         request,
		ErrorTable:   createListItemErrors,
	}
	var item model.HouseholdListItem
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

var deleteListErrors = map[int]string{
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
	0:   "Internal Server Error",
}

// DeleteList invokes DELETE /v2/householdlists/{listId}/ and returns
// the raw response envelope, since the operation has no body.
func (c *Client) DeleteList(ctx context.Context, listID string) (*httpapi.Response, error) {
	desc := &httpapi.Descriptor{
		Method:       "DELETE",
		PathTemplate: "/v2/householdlists/{listId}/",
		PathParams:   map[string]string{"listId": listID},
		Headers:      c.bearer(),
		ErrorTable:   deleteListErrors,
	}
	return httpapi.Call(ctx, desc, c.endpoint)
}
