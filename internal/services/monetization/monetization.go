// Package monetization implements the client for the in-skill
// purchases API.
package monetization

import (
	"context"
	"strconv"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/urlx"
)

// Client calls the in-skill purchases API. Construct using [New].
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

// ProductsQuery contains the optional filters for
// [Client.GetInSkillProducts]. Zero values are omitted from the query
// string.
type ProductsQuery struct {
	// Purchasable filters on purchasability ("PURCHASABLE" or
	// "NOT_PURCHASABLE").
	Purchasable string

	// Entitled filters on entitlement ("ENTITLED" or "NOT_ENTITLED").
	Entitled string

	// ProductType filters on the product type.
	ProductType string

	// NextToken continues a previous enumeration.
	NextToken string

	// MaxResults bounds the page size; zero means server default.
	MaxResults int
}

// queryParams renders the filters in their documented order.
func (q *ProductsQuery) queryParams() []urlx.QueryParam {
	if q == nil {
		return nil
	}
	var params []urlx.QueryParam
	if q.Purchasable != "" {
		params = append(params, urlx.QueryParam{Key: "purchasable", Value: q.Purchasable})
	}
	if q.Entitled != "" {
		params = append(params, urlx.QueryParam{Key: "entitled", Value: q.Entitled})
	}
	if q.ProductType != "" {
		params = append(params, urlx.QueryParam{Key: "productType", Value: q.ProductType})
	}
	if q.NextToken != "" {
		params = append(params, urlx.QueryParam{Key: "nextToken", Value: q.NextToken})
	}
	if q.MaxResults > 0 {
		params = append(params, urlx.QueryParam{Key: "maxResults", Value: strconv.Itoa(q.MaxResults)})
	}
	return params
}

var productsErrors = map[int]string{
	400: "Invalid request",
	401: "The authentication token is invalid or doesn't have access to make this request",
	500: "Internal Server Error",
}

// GetInSkillProducts invokes GET
// /v1/users/~current/skills/~current/inSkillProducts and returns a
// page of products. The acceptLanguage value is the locale of the
// in-flight skill request.
func (c *Client) GetInSkillProducts(ctx context.Context, acceptLanguage string, query *ProductsQuery) (*model.InSkillProductsResponse, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v1/users/~current/skills/~current/inSkillProducts",
		QueryParams:  query.queryParams(),
		Headers: []transportx.HeaderPair{
			httpapi.BearerHeader(c.endpoint.AuthorizationValue),
			{Key: "Accept-Language", Value: acceptLanguage},
		},
		ErrorTable: productsErrors,
	}
	var response model.InSkillProductsResponse
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetInSkillProduct invokes GET
// /v1/users/~current/skills/~current/inSkillProducts/{productId} and
// returns a single product.
func (c *Client) GetInSkillProduct(ctx context.Context, acceptLanguage, productID string) (*model.InSkillProduct, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v1/users/~current/skills/~current/inSkillProducts/{productId}",
		PathParams:   map[string]string{"productId": productID},
		Headers: []transportx.HeaderPair{
			httpapi.BearerHeader(c.endpoint.AuthorizationValue),
			{Key: "Accept-Language", Value: acceptLanguage},
		},
		ErrorTable: productsErrors,
	}
	var product model.InSkillProduct
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
