package httpapi

//
// Service endpoint configuration
//

import (
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// Endpoint is the API configuration shared by every call a service
// client performs. It is read-only for the lifetime of the client that
// owns it and requires no synchronization.
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Endpoint struct {
	// BaseURL is the MANDATORY base URL of the service.
	BaseURL string

	// Transport is the MANDATORY transport to dispatch through.
	Transport transportx.Transport

	// AuthorizationValue is the OPTIONAL bearer credential that
	// generated methods attach via [BearerHeader].
	AuthorizationValue string

	// Logger is the OPTIONAL logger; nil means [model.DiscardLogger].
	Logger model.Logger

	// UserAgent is the OPTIONAL User-Agent header value.
	UserAgent string
}

// logger returns the configured logger or [model.DiscardLogger].
func (epnt *Endpoint) logger() model.Logger {
	if epnt.Logger != nil {
		return epnt.Logger
	}
	return model.DiscardLogger
}
