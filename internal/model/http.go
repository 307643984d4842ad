package model

//
// HTTP client contract
//

import "net/http"

// HTTPClient is an http.Client-like structure. We depend on this
// interface rather than on *http.Client directly so that tests can
// substitute a mock and embedders can inject their own client with
// custom TLS, proxying, or connection-pooling policies.
type HTTPClient interface {
	// Do sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = &http.Client{}
