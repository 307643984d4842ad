// Package token implements the token command.
package token

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/root"
	"github.com/skillwave/sdk-go/internal/auth"
)

func init() {
	cmd := root.Command("token", "Acquire an access token and print it")
	scope := cmd.Flag("scope", "Request a token for this scope").String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		client, err := auth.NewTokenClient(&auth.TokenClientConfig{
			Auth:      sess.Auth,
			Transport: sess.API.Transport,
			Logger:    sess.API.Logger,
			Store:     sess.Store,
		})
		if err != nil {
			return err
		}
		token, err := client.GetAccessToken(context.Background(), *scope)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, token)
		return nil
	})
}
