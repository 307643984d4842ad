package auth

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/kvstore"
	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/transportx/mocks"
)

// grantRecorder is a mock transport answering every dispatch with a
// fixed token grant response and counting the calls it received.
type grantRecorder struct {
	calls  int
	bodies []string
	resp   *transportx.Response
	err    error
}

func (r *grantRecorder) transport() *mocks.Transport {
	return &mocks.Transport{
		MockDispatch: func(ctx context.Context, req *transportx.Request) (*transportx.Response, error) {
			r.calls++
			r.bodies = append(r.bodies, req.Body)
			return r.resp, r.err
		},
	}
}

// tokenGrantResponse returns a well-formed grant response.
func tokenGrantResponse(token string, expiresIn int64) *transportx.Response {
	return &transportx.Response{
		StatusCode: 200,
		Body: `{"access_token":"` + token + `","expires_in":` +
			strconv.FormatInt(expiresIn, 10) +
			`,"scope":"","token_type":"bearer"}`,
	}
}

func TestNewTokenClient(t *testing.T) {
	t.Run("requires an authentication configuration", func(t *testing.T) {
		client, err := NewTokenClient(&TokenClientConfig{
			Transport: &mocks.Transport{},
		})
		if !errors.Is(err, ErrNilConfig) {
			t.Fatal("not the error we expected", err)
		}
		if client != nil {
			t.Fatal("expected nil client")
		}
	})

	t.Run("requires a transport", func(t *testing.T) {
		client, err := NewTokenClient(&TokenClientConfig{
			Auth: &Config{ClientID: "id", ClientSecret: "secret"},
		})
		if !errors.Is(err, ErrNilTransport) {
			t.Fatal("not the error we expected", err)
		}
		if client != nil {
			t.Fatal("expected nil client")
		}
	})

	t.Run("refresh-token mode requires a refresh token", func(t *testing.T) {
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: &mocks.Transport{},
			GrantType: GrantRefreshToken,
		})
		if !errors.Is(err, ErrMissingRefreshToken) {
			t.Fatal("not the error we expected", err)
		}
		if client != nil {
			t.Fatal("expected nil client")
		}
	})
}

func TestGetAccessToken(t *testing.T) {
	t.Run("client-credentials grant body", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "mockId", ClientSecret: "mockSecret"},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		token, err := client.GetAccessToken(context.Background(), "alexa:skill_messaging")
		if err != nil {
			t.Fatal(err)
		}
		if token != "Atza|token" {
			t.Fatal("unexpected token", token)
		}
		expect := "grant_type=client_credentials&client_secret=mockSecret&client_id=mockId&scope=alexa%3Askill_messaging"
		if rec.bodies[0] != expect {
			t.Fatal("unexpected grant body", rec.bodies[0])
		}
	})

	t.Run("refresh-token grant body", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth: &Config{
				ClientID:     "mockId",
				ClientSecret: "mockSecret",
				RefreshToken: "mockRefreshToken",
			},
			Transport: rec.transport(),
			GrantType: GrantRefreshToken,
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := client.GetAccessToken(context.Background(), ""); err != nil {
			t.Fatal(err)
		}
		expect := "grant_type=refresh_token&client_secret=mockSecret&client_id=mockId&refresh_token=mockRefreshToken"
		if rec.bodies[0] != expect {
			t.Fatal("unexpected grant body", rec.bodies[0])
		}
	})

	t.Run("a valid cached token avoids the network", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		for idx := 0; idx < 3; idx++ {
			if _, err := client.GetAccessTokenForScope(context.Background(), "alexa::devices:all:address:full:read"); err != nil {
				t.Fatal(err)
			}
		}
		if rec.calls != 1 {
			t.Fatal("expected a single grant call, got", rec.calls)
		}
	})

	t.Run("a token within the expiry offset is refetched", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := client.GetAccessToken(context.Background(), "scope"); err != nil {
			t.Fatal(err)
		}
		// move the clock to 30s before expiry, inside the offset
		client.timeNow = func() time.Time {
			return time.Now().Add(3600*time.Second - 30*time.Second)
		}
		if _, err := client.GetAccessToken(context.Background(), "scope"); err != nil {
			t.Fatal(err)
		}
		if rec.calls != 2 {
			t.Fatal("expected two grant calls, got", rec.calls)
		}
	})

	t.Run("distinct scopes use distinct cache entries", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := client.GetAccessToken(context.Background(), "scope-a"); err != nil {
			t.Fatal(err)
		}
		if _, err := client.GetAccessToken(context.Background(), "scope-b"); err != nil {
			t.Fatal(err)
		}
		if rec.calls != 2 {
			t.Fatal("expected two grant calls, got", rec.calls)
		}
	})

	t.Run("scope with a configured refresh token fails before any I/O", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth: &Config{
				ClientID:     "id",
				ClientSecret: "secret",
				RefreshToken: "refresh",
			},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		token, err := client.GetAccessToken(context.Background(), "scope")
		if !errors.Is(err, ErrScopeWithRefreshToken) {
			t.Fatal("not the error we expected", err)
		}
		if token != "" {
			t.Fatal("expected empty token")
		}
		if rec.calls != 0 {
			t.Fatal("expected no network calls, got", rec.calls)
		}
	})

	t.Run("no scope and no refresh token fails before any I/O", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := client.GetAccessToken(context.Background(), ""); !errors.Is(err, ErrNoGrantSource) {
			t.Fatal("not the error we expected", err)
		}
		if rec.calls != 0 {
			t.Fatal("expected no network calls, got", rec.calls)
		}
	})

	t.Run("a grant rejection surfaces the error table message", func(t *testing.T) {
		rec := &grantRecorder{resp: &transportx.Response{StatusCode: 401}}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "wrong"},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		_, err = client.GetAccessToken(context.Background(), "scope")
		var svcErr *httpapi.ServiceError
		if !errors.As(err, &svcErr) {
			t.Fatal("expected a ServiceError, got", err)
		}
		if svcErr.Message != "Authentication Failed" {
			t.Fatal("unexpected message", svcErr.Message)
		}
	})
}

func TestGetAccessTokenForScope(t *testing.T) {
	t.Run("fails fast on an empty scope", func(t *testing.T) {
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		client, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: rec.transport(),
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := client.GetAccessTokenForScope(context.Background(), ""); !errors.Is(err, ErrEmptyScope) {
			t.Fatal("not the error we expected", err)
		}
		if rec.calls != 0 {
			t.Fatal("expected no network calls, got", rec.calls)
		}
	})
}

func TestTokenPersistence(t *testing.T) {
	t.Run("a persisted token survives a client restart", func(t *testing.T) {
		store := &kvstore.Memory{}
		rec := &grantRecorder{resp: tokenGrantResponse("Atza|token", 3600)}
		first, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: rec.transport(),
			Store:     store,
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := first.GetAccessToken(context.Background(), "scope"); err != nil {
			t.Fatal(err)
		}
		second, err := NewTokenClient(&TokenClientConfig{
			Auth:      &Config{ClientID: "id", ClientSecret: "secret"},
			Transport: rec.transport(),
			Store:     store,
		})
		if err != nil {
			t.Fatal(err)
		}
		token, err := second.GetAccessToken(context.Background(), "scope")
		if err != nil {
			t.Fatal(err)
		}
		if token != "Atza|token" {
			t.Fatal("unexpected token", token)
		}
		if rec.calls != 1 {
			t.Fatal("expected a single grant call, got", rec.calls)
		}
	})
}
