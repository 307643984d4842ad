// Package lists implements the lists command.
package lists

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/root"
	"github.com/skillwave/sdk-go/internal/must"
	"github.com/skillwave/sdk-go/internal/services/lists"
)

func init() {
	cmd := root.Command("lists", "Show the household lists or a single list")
	listID := cmd.Flag("list-id", "Only show this list").String()
	status := cmd.Flag("status", "The item status to show").Default("active").String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		client, err := lists.New(sess.API)
		if err != nil {
			return err
		}
		ctx := context.Background()
		var result any
		if *listID != "" {
			log.Debugf("Fetching list %s with status %s", *listID, *status)
			result, err = client.GetList(ctx, *listID, *status)
		} else {
			result, err = client.GetListsMetadata(ctx)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s\n", must.MarshalJSON(result))
		return nil
	})
}
