// Package auth implements the access-token client that service
// clients use to acquire and cache scoped bearer credentials from the
// platform's authorization endpoint.
//
// The client supports two grant types: client-credentials, where each
// request names an OAuth scope, and refresh-token, where the
// authentication configuration carries a long-lived refresh token and
// callers must not pass a scope. Exactly one of the two is active per
// token request.
//
// Tokens are cached per scope (or under a fixed sentinel key in
// refresh-token mode) and reused while they are more than
// [ExpiryOffset] away from expiring. The cache lock guards the map,
// not the fetch: concurrent callers requesting the same scope may each
// issue a grant call, and the last write wins.
package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// AuthEndpoint is the authorization authority serving token grants.
const AuthEndpoint = "https://api.amazon.com"

// tokenPath is the token-grant path at [AuthEndpoint].
const tokenPath = "/auth/O2/token"

// ExpiryOffset is the safety margin before the nominal expiry within
// which a cached token is already treated as absent.
const ExpiryOffset = 60 * time.Second

// refreshTokenCacheKey is the sentinel cache key used when acquiring
// tokens through the refresh-token grant.
const refreshTokenCacheKey = "refresh_access_token"

// GrantType is the token-exchange mode.
type GrantType string

const (
	// GrantClientCredentials is the scope-based grant. This is the
	// default mode.
	GrantClientCredentials = GrantType("client_credentials")

	// GrantRefreshToken exchanges the configured refresh token.
	GrantRefreshToken = GrantType("refresh_token")
)

// Config is the authentication configuration. It is immutable for the
// lifetime of the [*TokenClient] that owns it.
type Config struct {
	// ClientID is the MANDATORY client identifier.
	ClientID string

	// ClientSecret is the MANDATORY client secret.
	ClientSecret string

	// RefreshToken is the OPTIONAL refresh token. Configuring it is
	// mutually exclusive with passing explicit scopes.
	RefreshToken string
}

// Errors returned before any network I/O is attempted.
var (
	// ErrNilConfig means the authentication configuration is missing.
	ErrNilConfig = errors.New("auth: authentication configuration must not be nil")

	// ErrNilTransport means no transport was configured.
	ErrNilTransport = errors.New("auth: transport must not be nil")

	// ErrEmptyScope means a scoped request carried an empty scope.
	ErrEmptyScope = errors.New("auth: scope must not be empty")

	// ErrScopeWithRefreshToken means a scope was requested while a
	// refresh token is configured.
	ErrScopeWithRefreshToken = errors.New("auth: cannot combine an explicit scope with a configured refresh token")

	// ErrNoGrantSource means neither a scope nor a refresh token is
	// available to build a grant.
	ErrNoGrantSource = errors.New("auth: neither a scope nor a refresh token is available")

	// ErrMissingRefreshToken means refresh-token mode was selected
	// without configuring a refresh token.
	ErrMissingRefreshToken = errors.New("auth: refresh-token grant requires a refresh token")
)

// accessToken is a cached access token. Expiry is an absolute
// timestamp in milliseconds, matching the wire format we persist.
type accessToken struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"`
}

// expiryTime converts the expiry timestamp to a time.Time.
func (tok accessToken) expiryTime() time.Time {
	return time.UnixMilli(tok.Expiry)
}

// TokenClientConfig contains configuration for [NewTokenClient].
type TokenClientConfig struct {
	// Auth is the MANDATORY authentication configuration.
	Auth *Config

	// Transport is the MANDATORY transport to use.
	Transport transportx.Transport

	// GrantType is the OPTIONAL grant type; empty means
	// [GrantClientCredentials].
	GrantType GrantType

	// AuthEndpoint is the OPTIONAL authorization endpoint override;
	// empty means [AuthEndpoint].
	AuthEndpoint string

	// Logger is the OPTIONAL logger to use.
	Logger model.Logger

	// Store is the OPTIONAL key-value store into which we persist
	// cached tokens so they survive process restarts.
	Store model.KeyValueStore
}

// TokenClient acquires and caches access tokens. Construct using
// [NewTokenClient]. Each service client owns its own instance; there
// is no cross-instance sharing of the cache.
type TokenClient struct {
	// auth is the authentication configuration.
	auth *Config

	// cache maps a cache key to the cached token. It grows by one
	// entry per distinct scope ever requested and has no eviction.
	cache map[string]accessToken

	// endpoint is the authorization endpoint configuration.
	endpoint *httpapi.Endpoint

	// logger is the logger to use.
	logger model.Logger

	// mu guards cache.
	mu sync.Mutex

	// store optionally persists cache entries.
	store model.KeyValueStore

	// timeNow is overridable for testing.
	timeNow func() time.Time
}

// NewTokenClient constructs a [*TokenClient]. Validation failures are
// returned synchronously, before any network I/O.
func NewTokenClient(config *TokenClientConfig) (*TokenClient, error) {
	if config.Auth == nil {
		return nil, ErrNilConfig
	}
	if config.Transport == nil {
		return nil, ErrNilTransport
	}
	grantType := config.GrantType
	if grantType == "" {
		grantType = GrantClientCredentials
	}
	if grantType == GrantRefreshToken && config.Auth.RefreshToken == "" {
		return nil, ErrMissingRefreshToken
	}
	authEndpoint := config.AuthEndpoint
	if authEndpoint == "" {
		authEndpoint = AuthEndpoint
	}
	logger := config.Logger
	if logger == nil {
		logger = model.DiscardLogger
	}
	return &TokenClient{
		auth:  config.Auth,
		cache: make(map[string]accessToken),
		endpoint: &httpapi.Endpoint{
			BaseURL:   authEndpoint,
			Transport: config.Transport,
			Logger:    logger,
		},
		logger:  logger,
		store:   config.Store,
		timeNow: time.Now,
	}, nil
}
