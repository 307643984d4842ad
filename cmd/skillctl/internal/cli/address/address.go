// Package address implements the address command.
package address

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/root"
	"github.com/skillwave/sdk-go/internal/must"
	"github.com/skillwave/sdk-go/internal/services/deviceaddress"
)

func init() {
	cmd := root.Command("address", "Show the address configured for a device")
	deviceID := cmd.Flag("device-id", "The device to query").Required().String()
	countryOnly := cmd.Flag("country-only", "Only fetch the country and postal code").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		client, err := deviceaddress.New(sess.API)
		if err != nil {
			return err
		}
		ctx := context.Background()
		var result any
		if *countryOnly {
			result, err = client.GetCountryAndPostalCode(ctx, *deviceID)
		} else {
			result, err = client.GetFullAddress(ctx, *deviceID)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s\n", must.MarshalJSON(result))
		return nil
	})
}
