// Package root contains the toplevel skillctl command.
package root

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/skillwave/sdk-go/internal/auth"
	"github.com/skillwave/sdk-go/internal/kvstore"
	"github.com/skillwave/sdk-go/internal/log/handlers/cli"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
)

// Cmd is the root command.
var Cmd = kingpin.New("skillctl", "Command line client for the skill platform APIs")

// Command is syntax sugar for defining sub-commands.
var Command = Cmd.Command

// Session contains the state shared by all sub-commands.
type Session struct {
	// API configures calls to the skill platform APIs.
	API *services.Config

	// Auth contains the client credentials.
	Auth *auth.Config

	// Store persists access tokens across invocations.
	Store model.KeyValueStore
}

// Init returns the session for sub-commands that need one. It is set
// by the root PreAction, so it is only callable from an Action.
var Init func() (*Session, error)

func init() {
	endpoint := Cmd.Flag("endpoint", "Set a custom API endpoint").String()
	apiToken := Cmd.Flag("api-token", "Use this API access token instead of the device one").String()
	clientID := Cmd.Flag("client-id", "OAuth client ID").Envar("SKILLWAVE_CLIENT_ID").String()
	clientSecret := Cmd.Flag("client-secret", "OAuth client secret").Envar("SKILLWAVE_CLIENT_SECRET").String()
	refreshToken := Cmd.Flag("refresh-token", "OAuth refresh token").Envar("SKILLWAVE_REFRESH_TOKEN").String()
	cacheDir := Cmd.Flag("cache-dir", "Set a custom token cache directory").String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
		}

		Init = func() (*Session, error) {
			store, err := tokenStore(*cacheDir)
			if err != nil {
				return nil, err
			}
			return &Session{
				API: &services.Config{
					APIEndpoint:        *endpoint,
					AuthorizationValue: *apiToken,
					Transport:          transportx.NewNetTransport(http.DefaultClient, log.Log),
					Logger:             log.Log,
					UserAgent:          "skillctl",
				},
				Auth: &auth.Config{
					ClientID:     *clientID,
					ClientSecret: *clientSecret,
					RefreshToken: *refreshToken,
				},
				Store: store,
			}, nil
		}

		return nil
	})
}

func tokenStore(dir string) (model.KeyValueStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "cannot determine the home directory")
		}
		dir = filepath.Join(home, ".skillctl", "tokens")
	}
	log.Debugf("Caching tokens inside %s", dir)
	store, err := kvstore.NewFS(dir)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open the token cache")
	}
	return store, nil
}
