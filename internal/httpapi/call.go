package httpapi

//
// Calling service operations.
//

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/urlx"
)

// Response is the parsed outcome of a successful call.
type Response struct {
	// StatusCode is the response status code, in [200, 300).
	StatusCode int

	// Headers is the ordered list of response header pairs.
	Headers []transportx.HeaderPair

	// Body is the parsed JSON body, or nil when the response body
	// was empty. An empty body is not an error.
	Body any

	// rawBody is the raw body used by [CallWithJSONResponse] to
	// produce a typed value.
	rawBody string
}

// ErrNonJSONBodyType means the descriptor requested a verbatim body
// but the Body field is neither a string nor a []byte.
var ErrNonJSONBodyType = errors.New("httpapi: non-JSON body must be a string or a []byte")

// newRequest creates the outbound request for the given descriptor
// and endpoint. This is the only place where URLs are built.
func newRequest(desc *Descriptor, epnt *Endpoint) (*transportx.Request, error) {
	URL := urlx.BuildURL(epnt.BaseURL, desc.PathTemplate, desc.QueryParams, desc.PathParams)
	body, err := serializeBody(desc)
	if err != nil {
		return nil, err
	}
	headers := desc.Headers
	if epnt.UserAgent != "" {
		headers = append(headers, transportx.HeaderPair{
			Key:   "User-Agent",
			Value: epnt.UserAgent,
		})
	}
	return &transportx.Request{
		URL:     URL,
		Method:  desc.Method,
		Headers: headers,
		Body:    body,
	}, nil
}

// serializeBody returns the raw request body for the descriptor: the
// JSON serialization of Body, the verbatim string when NonJSONBody is
// set, or the empty string when there's no body at all.
func serializeBody(desc *Descriptor) (string, error) {
	if desc.Body == nil {
		return "", nil
	}
	if desc.NonJSONBody {
		switch body := desc.Body.(type) {
		case string:
			return body, nil
		case []byte:
			return string(body), nil
		default:
			return "", ErrNonJSONBodyType
		}
	}
	data, err := json.Marshal(desc.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Call invokes the operation described by desc against the given
// endpoint and returns the parsed response.
//
// The outcome is classified as follows:
//
// - a transport-level failure yields a [*CallError] wrapping the
// transport error;
//
// - a non-empty body that is not valid JSON yields a [*ParseError];
//
// - a status code outside [200, 300) yields a [*ServiceError] whose
// message comes from the descriptor's error table;
//
// - otherwise we return a [*Response].
//
// Nothing is retried or recovered at this layer: every failure
// propagates to the caller as a distinguishable, classified error.
func Call(ctx context.Context, desc *Descriptor, epnt *Endpoint) (*Response, error) {
	req, err := newRequest(desc, epnt)
	if err != nil {
		return nil, err
	}
	epnt.logger().Debugf("httpapi: %s %s", req.Method, req.URL)
	txpResp, err := epnt.Transport.Dispatch(ctx, req)
	if err != nil {
		return nil, &CallError{Err: err}
	}
	var parsed any
	if txpResp.Body != "" {
		if err := json.Unmarshal([]byte(txpResp.Body), &parsed); err != nil {
			return nil, &ParseError{RawBody: txpResp.Body, Err: err}
		}
	}
	if txpResp.StatusCode < 200 || txpResp.StatusCode >= 300 {
		message, found := desc.ErrorTable[txpResp.StatusCode]
		if !found {
			message = DefaultErrorMessage
		}
		return nil, &ServiceError{
			StatusCode: txpResp.StatusCode,
			Headers:    txpResp.Headers,
			Response:   parsed,
			Message:    message,
		}
	}
	return &Response{
		StatusCode: txpResp.StatusCode,
		Headers:    txpResp.Headers,
		Body:       parsed,
		rawBody:    txpResp.Body,
	}, nil
}

// CallWithJSONResponse is like [Call] but additionally unmarshals the
// response body into output, which must be a pointer. An empty
// response body leaves output untouched.
func CallWithJSONResponse(ctx context.Context, desc *Descriptor, epnt *Endpoint, output any) (*Response, error) {
	resp, err := Call(ctx, desc, epnt)
	if err != nil {
		return nil, err
	}
	if resp.rawBody == "" {
		return resp, nil
	}
	if err := json.Unmarshal([]byte(resp.rawBody), output); err != nil {
		return nil, &ParseError{RawBody: resp.rawBody, Err: err}
	}
	return resp, nil
}
