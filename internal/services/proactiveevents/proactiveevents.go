// Package proactiveevents implements the client for the proactive
// events API. Like skillmessaging, this client owns a token client
// and self-manages scoped credentials.
package proactiveevents

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillwave/sdk-go/internal/auth"
	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// Scope is the OAuth scope required to publish proactive events.
const Scope = "alexa::proactive_events"

// Stage selects the skill stage that receives the event.
type Stage string

const (
	// StageDevelopment routes events to the development stage.
	StageDevelopment = Stage("DEVELOPMENT")

	// StageLive routes events to the live stage.
	StageLive = Stage("LIVE")
)

// pathForStage maps a stage to its documented path.
func pathForStage(stage Stage) string {
	if stage == StageDevelopment {
		return "/v1/proactiveEvents/stages/development"
	}
	return "/v1/proactiveEvents"
}

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

// Client calls the proactive events API. Construct using [New].
type Client struct {
	endpoint *httpapi.Endpoint
	tokens   *auth.TokenClient
}

// New constructs a new [*Client] with the given configuration.
func New(config *Config) (*Client, error) {
	endpoint, err := config.API.NewEndpoint()
	if err != nil {
		return nil, fmt.Errorf("proactiveevents: %w", err)
	}
	tokens, err := auth.NewTokenClient(&auth.TokenClientConfig{
		Auth:         config.Auth,
		Transport:    config.API.Transport,
		AuthEndpoint: config.AuthEndpoint,
		Logger:       config.API.Logger,
		Store:        config.Store,
	})
	if err != nil {
		return nil, fmt.Errorf("proactiveevents: cannot construct the token client: %w", err)
	}
	return &Client{endpoint: endpoint, tokens: tokens}, nil
}

var createEventErrors = map[int]string{
	400: "A required parameter is not present or is incorrectly formatted",
	403: "The authentication token is invalid or doesn't have authorization to access the resource",
	409: "A skill attempted to create duplicate events using the same referenceId for the same customer",
	429: "The client has made more calls than the allowed limit",
	500: "The request caused an unhandled exception",
	503: "The server is unavailable to process the request",
	0:   "Unexpected error",
}

// CreateEvent publishes the given event to the given stage. A missing
// referenceId is filled with a fresh UUID before sending, since the
// API requires one to deduplicate deliveries.
func (c *Client) CreateEvent(ctx context.Context, event *model.ProactiveEventRequest, stage Stage) (*httpapi.Response, error) {
	token, err := c.tokens.GetAccessTokenForScope(ctx, Scope)
	if err != nil {
		return nil, err
	}
	if event.ReferenceID == "" {
		event.ReferenceID = uuid.NewString()
	}
	desc := &httpapi.Descriptor{
		Method:       "POST",
		PathTemplate: pathForStage(stage),
		Headers: []transportx.HeaderPair{
			httpapi.BearerHeader(token),
			{Key: "Content-Type", Value: "application/json"},
		},
		Body:       event,
		ErrorTable: createEventErrors,
	}
	return httpapi.Call(ctx, desc, c.endpoint)
}
