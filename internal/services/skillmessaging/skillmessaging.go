// Package skillmessaging implements the client for the skill
// messaging API. Unlike the settings clients, this client self-manages
// its credentials: it owns a token client and acquires a scoped access
// token before each send.
package skillmessaging

import (
	"context"
	"fmt"

	"github.com/skillwave/sdk-go/internal/auth"
	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// Scope is the OAuth scope required to send skill messages.
const Scope = "alexa:skill_messaging"

// Config contains configuration for [New].
type Config struct {
	// API is the MANDATORY API configuration. Its
	// AuthorizationValue is ignored: this client acquires its own
	// scoped credentials.
	API *services.Config

	// Auth is the MANDATORY authentication configuration used to
	// acquire scoped tokens.
	Auth *auth.Config

	// AuthEndpoint is the OPTIONAL authorization endpoint override.
	AuthEndpoint string

	// Store is the OPTIONAL key-value store for token persistence.
	Store model.KeyValueStore
}

// Client calls the skill messaging API. Construct using [New].
type Client struct {
	endpoint *httpapi.Endpoint
	tokens   *auth.TokenClient
}

// New constructs a new [*Client] with the given configuration.
func New(config *Config) (*Client, error) {
	endpoint, err := config.API.NewEndpoint()
	if err != nil {
		return nil, fmt.Errorf("skillmessaging: %w", err)
	}
	tokens, err := auth.NewTokenClient(&auth.TokenClientConfig{
		Auth:         config.Auth,
		Transport:    config.API.Transport,
		AuthEndpoint: config.AuthEndpoint,
		Logger:       config.API.Logger,
		Store:        config.Store,
	})
	if err != nil {
		return nil, fmt.Errorf("skillmessaging: cannot construct the token client: %w", err)
	}
	return &Client{endpoint: endpoint, tokens: tokens}, nil
}

var sendMessageErrors = map[int]string{
	202: "Message has been successfully accepted, and will be sent to the skill",
	400: "Data is missing or not valid",
	403: "The skill messaging authentication token is expired or not valid",
	404: "The passed userId does not exist",
	429: "The requester has exceeded their maximum allowed rate of requests",
	500: "The SkillMessaging service encountered an internal error for a valid request",
	0:   "Unexpected error",
}

// SendMessage invokes POST /v1/skillmessages/users/{userId} to send a
// message to the skill on behalf of the given user. The operation has
// no response body, so it returns the raw response envelope.
func (c *Client) SendMessage(ctx context.Context, userID string, message *model.SkillMessagingRequest) (*httpapi.Response, error) {
	token, err := c.tokens.GetAccessTokenForScope(ctx, Scope)
	if err != nil {
		return nil, err
	}
	desc := &httpapi.Descriptor{
		Method:       "POST",
		PathTemplate: "/v1/skillmessages/users/{userId}",
		PathParams:   map[string]string{"userId": userID},
		Headers: []transportx.HeaderPair{
			httpapi.BearerHeader(token),
			{Key: "Content-Type", Value: "application/json"},
		},
		Body:       message,
		ErrorTable: sendMessageErrors,
	}
	return httpapi.Call(ctx, desc, c.endpoint)
}
