// Package reminders implements the client for the reminders API.
package reminders

import (
	"context"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// Client calls the reminders API. Construct using [New].
type Client struct {
	endpoint *httpapi.Endpoint
}

// New constructs a new [*Client] with the given configuration.
func New(config *services.Config) (*Client, error) {
	endpoint, err := config.NewEndpoint()
	if err != nil {
		return nil, err
	}
	return &Client{endpoint: endpoint}, nil
}

// bearer returns the Authorization header for this client.
func (c *Client) bearer() []transportx.HeaderPair {
	return []transportx.HeaderPair{
		httpapi.BearerHeader(c.endpoint.AuthorizationValue),
	}
}

// reminderErrors is shared by every reminders operation: the API
// documents the same status semantics for all of them.
var reminderErrors = map[int]string{
	400: "Bad Request",
	401: "User Authentication Failed",
	403: "Forbidden",
	404: "Not Found",
	429: "Too Many Requests",
	500: "Internal Server Error",
	503: "Service Unavailable",
}

// GetReminders invokes GET /v1/alerts/reminders/ and returns all the
// reminders created by this skill for the current user.
func (c *Client) GetReminders(ctx context.Context) (*model.RemindersList, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v1/alerts/reminders/",
		Headers:      c.bearer(),
		ErrorTable:   reminderErrors,
	}
	var list model.RemindersList
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetReminder invokes GET /v1/alerts/reminders/{alertToken} and
// returns a single reminder.
func (c *Client) GetReminder(ctx context.Context, alertToken string) (*model.Reminder, error) {
	desc := &httpapi.Descriptor{
		Method:       "GET",
		PathTemplate: "/v1/alerts/reminders/{alertToken}",
		PathParams:   map[string]string{"alertToken": alertToken},
		Headers:      c.bearer(),
		ErrorTable:   reminderErrors,
	}
	var reminder model.Reminder
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// CreateReminder invokes POST /v1/alerts/reminders/ to schedule a
// new reminder.
func (c *Client) CreateReminder(ctx context.Context, request *model.ReminderRequest) (*model.ReminderResponse, error) {
	desc := &httpapi.Descriptor{
		Method:       "POST",
		PathTemplate: "/v1/alerts/reminders/",
		Headers:      c.bearer(),
		Body:         request,
		ErrorTable:   reminderErrors,
	}
	var response model.ReminderResponse
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateReminder invokes PUT /v1/alerts/reminders/{alertToken} to
// modify an existing reminder.
func (c *Client) UpdateReminder(ctx context.Context, alertToken string, request *model.ReminderRequest) (*model.ReminderResponse, error) {
	desc := &httpapi.Descriptor{
		Method:       "PUT",
		PathTemplate: "/v1/alerts/reminders/{alertToken}",
		PathParams:   map[string]string{"alertToken": alertToken},
		Headers:      c.bearer(),
		Body:         request,
		ErrorTable:   reminderErrors,
	}
	var response model.ReminderResponse
	if _, err := httpapi.CallWithJSONResponse(ctx, desc, c.endpoint, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteReminder invokes DELETE /v1/alerts/reminders/{alertToken}
// and returns the raw response envelope, since the operation has no
// body.
func (c *Client) DeleteReminder(ctx context.Context, alertToken string) (*httpapi.Response, error) {
	desc := &httpapi.Descriptor{
		Method:       "DELETE",
		PathTemplate: "/v1/alerts/reminders/{alertToken}",
		PathParams:   map[string]string{"alertToken": alertToken},
		Headers:      c.bearer(),
		ErrorTable:   reminderErrors,
	}
	return httpapi.Call(ctx, desc, c.endpoint)
}
