// Package message implements the message command.
package message

import (
	"context"
	"encoding/json"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/root"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services/skillmessaging"
)

func init() {
	cmd := root.Command("message", "Send a message to the skill on behalf of a user")
	userID := cmd.Flag("user-id", "The user to send the message to").Required().String()
	data := cmd.Flag("data", "The message payload as JSON").Default("{}").String()
	expiry := cmd.Flag("expiry", "Seconds after which an undelivered message expires").Int64()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(*data), &payload); err != nil {
			return errors.Wrap(err, "cannot parse the message payload")
		}
		client, err := skillmessaging.New(&skillmessaging.Config{
			API:   sess.API,
			Auth:  sess.Auth,
			Store: sess.Store,
		})
		if err != nil {
			return err
		}
		resp, err := client.SendMessage(context.Background(), *userID, &model.SkillMessagingRequest{
			Data:                payload,
			ExpiresAfterSeconds: *expiry,
		})
		if err != nil {
			return err
		}
		log.Infof("Message accepted with status %d", resp.StatusCode)
		return nil
	})
}
