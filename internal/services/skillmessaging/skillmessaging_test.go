package skillmessaging

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/skillwave/sdk-go/internal/auth"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/testingx"
	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/transportx/mocks"
)

func TestSendMessage(t *testing.T) {
	t.Run("acquires a scoped token and sends the message", func(t *testing.T) {
		var (
			mu       sync.Mutex
			requests []*transportx.Request
		)
		client, err := New(&Config{
			API: &services.Config{
				Transport: &mocks.Transport{
					MockDispatch: func(ctx context.Context, req *transportx.Request) (*transportx.Response, error) {
						mu.Lock()
						requests = append(requests, req)
						mu.Unlock()
						if strings.Contains(req.URL, "/auth/O2/token") {
							return &transportx.Response{
								StatusCode: 200,
								Body:       `{"access_token":"Atza|scoped","expires_in":3600,"scope":"alexa:skill_messaging","token_type":"bearer"}`,
							}, nil
						}
						return &transportx.Response{StatusCode: 202}, nil
					},
				},
			},
			Auth: &auth.Config{ClientID: "id", ClientSecret: "secret"},
		})
		if err != nil {
			t.Fatal(err)
		}
		resp, err := client.SendMessage(context.Background(), "amzn1.ask.account.user", &model.SkillMessagingRequest{
			Data: map[string]interface{}{"event": "reminder"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 202 {
			t.Fatal("unexpected status code", resp.StatusCode)
		}
		if len(requests) != 2 {
			t.Fatal("expected a grant and a message request, got", len(requests))
		}
		grant, message := requests[0], requests[1]
		if !strings.Contains(grant.Body, "scope=alexa%3Askill_messaging") {
			t.Fatal("unexpected grant body", grant.Body)
		}
		if message.URL != "https://api.amazonalexa.com/v1/skillmessages/users/amzn1.ask.account.user" {
			t.Fatal("unexpected URL", message.URL)
		}
		var authorized bool
		for _, pair := range message.Headers {
			authorized = authorized || (pair.Key == "Authorization" && pair.Value == "Bearer Atza|scoped")
		}
		if !authorized {
			t.Fatal("missing the scoped bearer header")
		}
	})

	t.Run("the token is reused across sends", func(t *testing.T) {
		var grants int
		client, err := New(&Config{
			API: &services.Config{
				Transport: &mocks.Transport{
					MockDispatch: func(ctx context.Context, req *transportx.Request) (*transportx.Response, error) {
						if strings.Contains(req.URL, "/auth/O2/token") {
							grants++
							return &transportx.Response{
								StatusCode: 200,
								Body:       `{"access_token":"Atza|scoped","expires_in":3600,"scope":"","token_type":"bearer"}`,
							}, nil
						}
						return &transportx.Response{StatusCode: 202}, nil
					},
				},
			},
			Auth: &auth.Config{ClientID: "id", ClientSecret: "secret"},
		})
		if err != nil {
			t.Fatal(err)
		}
		for idx := 0; idx < 3; idx++ {
			if _, err := client.SendMessage(context.Background(), "user", &model.SkillMessagingRequest{
				Data: map[string]interface{}{},
			}); err != nil {
				t.Fatal(err)
			}
		}
		if grants != 1 {
			t.Fatal("expected a single grant, got", grants)
		}
	})
}

func TestSendMessageWithLocalServers(t *testing.T) {
	if testing.Short() {
		t.Skip("skip test in short mode")
	}

	backend := &testingx.AuthorizationServer{
		ClientID:     "mockId",
		ClientSecret: "mockSecret",
	}
	authServer := httptest.NewServer(backend.NewMux())
	defer authServer.Close()

	var received map[string]any
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer Atza|") {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		data, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal(data, &received); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer apiServer.Close()

	client, err := New(&Config{
		API: &services.Config{
			APIEndpoint: apiServer.URL,
			Transport:   transportx.NewNetTransport(http.DefaultClient, nil),
		},
		Auth:         &auth.Config{ClientID: "mockId", ClientSecret: "mockSecret"},
		AuthEndpoint: authServer.URL,
	})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := client.SendMessage(context.Background(), "user", &model.SkillMessagingRequest{
		Data:                map[string]interface{}{"event": "sync"},
		ExpiresAfterSeconds: 60,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 202 {
		t.Fatal("unexpected status code", resp.StatusCode)
	}
	if backend.Grants() != 1 {
		t.Fatal("expected a single grant, got", backend.Grants())
	}
	if received["data"].(map[string]any)["event"] != "sync" {
		t.Fatal("unexpected message payload", received)
	}
}
