// Package urlx contains pure helpers to build service URLs out of an
// endpoint, a path template with `{name}` placeholders, and an ordered
// list of query parameters.
package urlx

import (
	"net/url"
	"strings"
)

// QueryParam is a single query-string pair. Query parameters are
// modeled as an ordered list rather than a map because duplicate keys
// are legal and their relative order is significant.
type QueryParam struct {
	// Key is the query parameter key.
	Key string

	// Value is the query parameter value.
	Value string
}

// Escape percent-encodes a path or query component. We escape the same
// character set for both positions so that a value substituted into a
// path template and the same value used as a query value encode
// identically.
func Escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// BuildURL composes the absolute URL for a service call.
//
// The rules are the following:
//
// 1. a trailing `/` in the endpoint is dropped before concatenation;
//
// 2. for each entry in pathParams we replace the first occurrence of
// the literal `{name}` inside the template with the percent-encoded
// value; a nil pathParams leaves the template unmodified;
//
// 3. with a non-empty queryParams list, the query string starts with
// `?` unless the expanded path already contains a literal `?`, in
// which case we continue the existing group with `&`; pairs appear in
// input order, percent-encoded, joined by `&`;
//
// 4. a nil or empty queryParams list contributes nothing, not even
// the `?` separator.
func BuildURL(endpoint, pathTemplate string, queryParams []QueryParam, pathParams map[string]string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	path := pathTemplate
	for name, value := range pathParams {
		path = strings.Replace(path, "{"+name+"}", Escape(value), 1)
	}
	if len(queryParams) <= 0 {
		return endpoint + path
	}
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	var pairs []string
	for _, param := range queryParams {
		pairs = append(pairs, Escape(param.Key)+"="+Escape(param.Value))
	}
	return endpoint + path + separator + strings.Join(pairs, "&")
}
