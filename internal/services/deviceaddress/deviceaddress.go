// Package deviceaddress implements the client for the device-address
// settings API.
package deviceaddress

import (
	"context"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// Client calls the device-address API. Construct using [New].
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

// fullAddressErrors is the error table for [Client.GetFullAddress].
var fullAddressErrors = map[int]string{
	204: "No content available for this device address",
	403: "The authentication token is invalid or doesn't have access to the resource",
	405: "The method is not supported",
	429: "The skill has been throttled due to an excessive number of requests",
	0:   "Unexpected error",
}

// GetFullAddress invokes GET /v1/devices/{deviceId}/settings/address
// and returns the full civic address configured for the device.
func (c *Client) GetFullAddress(ctx context.Context, deviceID string) (*model.DeviceAddress, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v1/devices/{deviceId}/settings/address",
		PathParams:   map[string]string{"deviceId": deviceID},
		Headers: []transportx.HeaderPair{
			httpapi.BearerHeader(c.endpoint.AuthorizationValue),
		},
		ErrorTable: fullAddressErrors,
	}
	var address model.DeviceAddress
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// countryAndPostalCodeErrors is the error table for
// [Client.GetCountryAndPostalCode].
var countryAndPostalCodeErrors = map[int]string{
	204: "No content available for this device address",
	403: "The authentication token is invalid or doesn't have access to the resource",
	405: "The method is not supported",
	429: "The skill has been throttled due to an excessive number of requests",
	0:   "Unexpected error",
}

// GetCountryAndPostalCode invokes GET
// /v1/devices/{deviceId}/settings/address/countryAndPostalCode and
// returns the coarse-grained device address.
func (c *Client) GetCountryAndPostalCode(ctx context.Context, deviceID string) (*model.DeviceCountryAndPostalCode, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v1/devices/{deviceId}/settings/address/countryAndPostalCode",
		PathParams:   map[string]string{"deviceId": deviceID},
		Headers: []transportx.HeaderPair{
			httpapi.BearerHeader(c.endpoint.AuthorizationValue),
		},
		ErrorTable: countryAndPostalCodeErrors,
	}
	var address model.DeviceCountryAndPostalCode
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &address); err != nil {
		return nil, err
	}
	return &address, nil
}
