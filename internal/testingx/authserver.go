// Package testingx contains fake servers for exercising the SDK over
// real HTTP connections inside tests.
package testingx

//
// Code for testing the token-grant flow.
//

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// AuthorizationServer implements the token-grant workflow of the
// authorization authority.
//
// The zero value is invalid; fill the credential fields before use.
//
// This struct's methods panic for several errors. Only use for
// testing purposes!
type AuthorizationServer struct {
	// ClientID is the only client identifier we accept.
	ClientID string

	// ClientSecret is the only client secret we accept.
	ClientSecret string

	// RefreshToken is the refresh token we accept, when set.
	RefreshToken string

	// ExpiresIn is the expires_in value to return; zero means 3600.
	ExpiresIn int64

	// grants counts the token grants we served.
	grants int

	// mu provides mutual exclusion.
	mu sync.Mutex
}

// Grants returns the number of token grants served so far.
//
// This method is safe to call concurrently with incoming requests.
func (s *AuthorizationServer) Grants() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grants
}

// NewMux constructs an [*http.ServeMux] configured with the correct routing.
func (s *AuthorizationServer) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/auth/O2/token", s.handleTokenGrant())
	return mux
}

func (s *AuthorizationServer) handleTokenGrant() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if ctype := r.Header.Get("Content-Type"); !strings.HasPrefix(ctype, "application/x-www-form-urlencoded") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		rawBody, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		form, err := url.ParseQuery(string(rawBody))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if form.Get("client_id") != s.ClientID || form.Get("client_secret") != s.ClientSecret {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch form.Get("grant_type") {
		case "client_credentials":
			if form.Get("scope") == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		case "refresh_token":
			if s.RefreshToken == "" || form.Get("refresh_token") != s.RefreshToken {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		expiresIn := s.ExpiresIn
		if expiresIn <= 0 {
			expiresIn = 3600
		}
		s.mu.Lock()
		s.grants++
		s.mu.Unlock()
		data, err := json.Marshal(map[string]any{
			"access_token": "Atza|" + uuid.NewString(),
			"expires_in":   expiresIn,
			"scope":        form.Get("scope"),
			"token_type":   "bearer",
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
}
