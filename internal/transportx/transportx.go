// Package transportx defines the pluggable transport used to exchange
// messages with the skill platform, along with a default implementation
// based on net/http.
//
// A transport performs exactly one network exchange per dispatch. It
// resolves with a [*Response] for every HTTP outcome, including non-2xx
// status codes; only transport-level failures (DNS, connection refused,
// timeout, TLS) make a dispatch fail. Classifying status codes is the
// business of the httpapi package.
package transportx

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/skillwave/sdk-go/internal/model"
)

// HeaderPair is a single (key, value) header entry. Headers are
// modeled as an ordered list of pairs rather than a map: duplicate
// keys are legal and represent repeated header instances.
type HeaderPair struct {
	// Key is the header name.
	Key string

	// Value is the header value.
	Value string
}

// Request is an outbound request.
type Request struct {
	// URL is the absolute URL to use.
	URL string

	// Method is the HTTP verb, with the case supplied by the caller.
	Method string

	// Headers is the ordered list of header pairs.
	Headers []HeaderPair

	// Body is the optional raw body; empty means absent.
	Body string
}

// Response is the result of dispatching a [*Request].
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Headers is the ordered list of response header pairs.
	Headers []HeaderPair

	// Body is the optional raw body; empty means absent.
	Body string
}

// Transport sends a [*Request] and yields a [*Response] or fails with
// a transport-level error. Implementations own any deadline or
// cancellation policy beyond honouring the given context.
type Transport interface {
	Dispatch(ctx context.Context, req *Request) (*Response, error)
}

// DefaultMaxBodySize is the maximum response body size that the
// default transport is willing to read.
const DefaultMaxBodySize = 1 << 22

// netTransportComponent scopes the errors emitted by [*NetTransport].
const netTransportComponent = "nettransport"

// NetTransport is the default [Transport] built on net/http.
//
// The zero value is invalid; construct using [NewNetTransport].
type NetTransport struct {
	// client is the underlying HTTP client.
	client model.HTTPClient

	// logger is the logger to use.
	logger model.Logger
}

var _ Transport = &NetTransport{}

// NewNetTransport constructs a [*NetTransport] using the given
// [model.HTTPClient]. A nil logger is replaced by [model.DiscardLogger].
func NewNetTransport(client model.HTTPClient, logger model.Logger) *NetTransport {
	if logger == nil {
		logger = model.DiscardLogger
	}
	return &NetTransport{
		client: client,
		logger: logger,
	}
}

// Dispatch implements [Transport].
func (txp *NetTransport) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	var reqBody io.Reader
	if req.Body != "" {
		reqBody = strings.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, reqBody)
	if err != nil {
		return nil, NewError(netTransportComponent, err)
	}
	for _, pair := range req.Headers {
		httpReq.Header.Add(pair.Key, pair.Value)
	}
	txp.logger.Debugf("> %s %s", req.Method, req.URL)
	httpResp, err := txp.client.Do(httpReq)
	if err != nil {
		return nil, NewError(netTransportComponent, err)
	}
	defer httpResp.Body.Close()
	reader := io.LimitReader(httpResp.Body, DefaultMaxBodySize)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, NewError(netTransportComponent, err)
	}
	txp.logger.Debugf("< %d (%d bytes)", httpResp.StatusCode, len(data))
	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    NewHeaderPairs(httpResp.Header),
		Body:       string(data),
	}, nil
}

// NewHeaderPairs converts an http.Header into an ordered list of
// header pairs. Keys are emitted in sorted order since the map has no
// order of its own; values for the same key keep their wire order.
func NewHeaderPairs(header http.Header) []HeaderPair {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var pairs []HeaderPair
	for _, key := range keys {
		for _, value := range header[key] {
			pairs = append(pairs, HeaderPair{Key: key, Value: value})
		}
	}
	return pairs
}
