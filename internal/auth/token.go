package auth

//
// Token acquisition: grant building, caching, persistence.
//

import (
	"context"
	"encoding/json"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/urlx"
)

// tokenResponse is the authorization endpoint's JSON response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
	TokenType   string `json:"token_type"`
}

// grantErrorTable maps the token grant's documented status codes to
// messages. The 200 entry is inert since the core only consults the
// table on non-2xx responses.
var grantErrorTable = map[int]string{
	200: "Token request sent.",
	400: "Bad Request",
	401: "Authentication Failed",
	500: "Internal Server Error",
}

// GetAccessToken returns an access token. A non-empty scope selects
// the client-credentials grant for that scope; an empty scope selects
// the refresh-token grant and requires a configured refresh token.
// Validation failures return before any network I/O.
func (c *TokenClient) GetAccessToken(ctx context.Context, scope string) (string, error) {
	if scope != "" && c.auth.RefreshToken != "" {
		return "", ErrScopeWithRefreshToken
	}
	if scope == "" && c.auth.RefreshToken == "" {
		return "", ErrNoGrantSource
	}
	cacheKey := scope
	if cacheKey == "" {
		cacheKey = refreshTokenCacheKey
	}
	now := c.timeNow()
	if tok, found := c.lookup(cacheKey); found && tok.expiryTime().Sub(now) > ExpiryOffset {
		return tok.Token, nil
	}
	resp, err := c.requestToken(ctx, scope)
	if err != nil {
		return "", err
	}
	tok := accessToken{
		Token:  resp.AccessToken,
		Expiry: now.UnixMilli() + resp.ExpiresIn*1000,
	}
	c.save(cacheKey, tok)
	return tok.Token, nil
}

// GetAccessTokenForScope is a convenience wrapper over
// [TokenClient.GetAccessToken] that fails with [ErrEmptyScope] when
// the scope is empty.
func (c *TokenClient) GetAccessTokenForScope(ctx context.Context, scope string) (string, error) {
	if scope == "" {
		return "", ErrEmptyScope
	}
	return c.GetAccessToken(ctx, scope)
}

// requestToken performs the token-grant call.
func (c *TokenClient) requestToken(ctx context.Context, scope string) (*tokenResponse, error) {
	desc := &httpapi.Descriptor{
		Method:       "POST",
		PathTemplate: tokenPath,
		Headers: []transportx.HeaderPair{{
			Key:   "Content-type",
			Value: "application/x-www-form-urlencoded",
		}},
		Body:        c.grantBody(scope),
		NonJSONBody: true,
		ErrorTable:  grantErrorTable,
	}
	var resp tokenResponse
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// grantBody builds the form-encoded grant body. The parameter order
// is part of the wire contract and must not change.
func (c *TokenClient) grantBody(scope string) string {
	grantType := GrantClientCredentials
	lastParam := "scope=" + urlx.Escape(scope)
	if scope == "" {
		grantType = GrantRefreshToken
		lastParam = "refresh_token=" + urlx.Escape(c.auth.RefreshToken)
	}
	return "grant_type=" + urlx.Escape(string(grantType)) +
		"&client_secret=" + urlx.Escape(c.auth.ClientSecret) +
		"&client_id=" + urlx.Escape(c.auth.ClientID) +
		"&" + lastParam
}

// lookup returns the cached token for the given key, consulting the
// in-memory map first and falling back to the persistent store.
func (c *TokenClient) lookup(cacheKey string) (accessToken, bool) {
	c.mu.Lock()
	tok, found := c.cache[cacheKey]
	c.mu.Unlock()
	if found {
		return tok, true
	}
	if c.store == nil {
		return accessToken{}, false
	}
	data, err := c.store.Get(cacheKey)
	if err != nil {
		return accessToken{}, false
	}
	if err := json.Unmarshal(data, &tok); err != nil {
		c.logger.Warnf("auth: cannot parse persisted token for %q: %s", cacheKey, err.Error())
		return accessToken{}, false
	}
	c.mu.Lock()
	c.cache[cacheKey] = tok
	c.mu.Unlock()
	return tok, true
}

// save stores the token in the in-memory cache and write-through
// persists it when a store is configured.
func (c *TokenClient) save(cacheKey string, tok accessToken) {
	c.mu.Lock()
	c.cache[cacheKey] = tok
	c.mu.Unlock()
	if c.store == nil {
		return
	}
	data, err := json.Marshal(tok)
	if err != nil {
		// tok only contains plain fields so this cannot happen
		return
	}
	if err := c.store.Set(cacheKey, data); err != nil {
		c.logger.Warnf("auth: cannot persist token for %q: %s", cacheKey, err.Error())
	}
}
