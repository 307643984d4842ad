// Package services contains the configuration shared by the generated
// service clients in its subpackages. Each subpackage is a one-to-one
// mapping from a documented platform operation to a call into the
// httpapi package, with a fixed method, path template, and per-status
// error-message table.
package services

import (
	"errors"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// DefaultAPIEndpoint is the North America API endpoint, used when the
// configuration does not name one.
const DefaultAPIEndpoint = "https://api.amazonalexa.com"

// ErrNilTransport means no transport was configured.
var ErrNilTransport = errors.New("services: transport must not be nil")

// Config is the API configuration shared by every generated client.
// It is immutable for the lifetime of the client that owns it.
type Config struct {
	// APIEndpoint is the OPTIONAL regional API endpoint; empty means
	// [DefaultAPIEndpoint].
	APIEndpoint string

	// AuthorizationValue is the bearer credential attached by the
	// generated methods. Clients that self-manage scoped credentials
	// through a token client leave it empty.
	AuthorizationValue string

	// Transport is the MANDATORY transport to use.
	Transport transportx.Transport

	// Logger is the OPTIONAL logger to use.
	Logger model.Logger

	// UserAgent is the OPTIONAL User-Agent header value.
	UserAgent string
}

// NewEndpoint validates the configuration and derives the immutable
// [*httpapi.Endpoint] owned by a service client.
func (c *Config) NewEndpoint() (*httpapi.Endpoint, error) {
	if c.Transport == nil {
		return nil, ErrNilTransport
	}
	baseURL := c.APIEndpoint
	if baseURL == "" {
		baseURL = DefaultAPIEndpoint
	}
	logger := c.Logger
	if logger == nil {
		logger = model.DiscardLogger
	}
	return &httpapi.Endpoint{
		BaseURL:            baseURL,
		Transport:          c.Transport,
		AuthorizationValue: c.AuthorizationValue,
		Logger:             logger,
		UserAgent:          c.UserAgent,
	}, nil
}
