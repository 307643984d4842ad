package httpapi

//
// Service call descriptor (e.g., GET /v2/householdlists/)
//

import (
	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/urlx"
)

// Descriptor contains the parameters for calling a given service
// operation. Each generated method fills one descriptor per call.
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Descriptor struct {
	// Method is the MANDATORY request method.
	Method string

	// PathTemplate is the MANDATORY URL path, possibly containing
	// `{name}` placeholders resolved through PathParams.
	PathTemplate string

	// PathParams OPTIONALLY maps placeholder names to their raw,
	// unencoded values. A nil map leaves the template unmodified.
	PathParams map[string]string

	// QueryParams is the OPTIONAL ordered list of query parameters.
	QueryParams []urlx.QueryParam

	// Headers is the OPTIONAL ordered list of header pairs to send.
	Headers []transportx.HeaderPair

	// Body is the OPTIONAL request body. When NonJSONBody is false,
	// we serialize this value to JSON; otherwise it must be a string
	// or a []byte used verbatim.
	Body any

	// NonJSONBody OPTIONALLY disables JSON serialization of Body,
	// which supports form-encoded bodies such as the token grant.
	NonJSONBody bool

	// ErrorTable OPTIONALLY maps a status code outside [200, 300) to
	// the human-readable message of the resulting [*ServiceError].
	// Lookup is by exact status code only; when no entry matches we
	// use [DefaultErrorMessage].
	ErrorTable map[int]string
}

// BearerHeader constructs the Authorization header pair carrying the
// given bearer credential. Generated methods attach it themselves: the
// core never adds authorization on its own.
func BearerHeader(credential string) transportx.HeaderPair {
	return transportx.HeaderPair{
		Key:   "Authorization",
		Value: "Bearer " + credential,
	}
}
