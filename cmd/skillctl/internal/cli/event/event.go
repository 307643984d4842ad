// Package event implements the event command.
package event

import (
	"context"
	"encoding/json"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/root"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services/proactiveevents"
)

func init() {
	cmd := root.Command("event", "Publish a proactive event")
	file := cmd.Flag("file", "Read the event from this JSON file").Required().String()
	live := cmd.Flag("live", "Publish to the live stage instead of development").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(*file)
		if err != nil {
			return errors.Wrap(err, "cannot read the event file")
		}
		var event model.ProactiveEventRequest
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(err, "cannot parse the event file")
		}
		client, err := proactiveevents.New(&proactiveevents.Config{
			API:   sess.API,
			Auth:  sess.Auth,
			Store: sess.Store,
		})
		if err != nil {
			return err
		}
		stage := proactiveevents.StageDevelopment
		if *live {
			stage = proactiveevents.StageLive
		}
		resp, err := client.CreateEvent(context.Background(), &event, stage)
		if err != nil {
			return err
		}
		log.Infof("Event accepted with status %d", resp.StatusCode)
		return nil
	})
}
