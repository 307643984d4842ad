// Package products implements the products command.
package products

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/root"
	"github.com/skillwave/sdk-go/internal/must"
	"github.com/skillwave/sdk-go/internal/services/monetization"
)

func init() {
	cmd := root.Command("products", "Show the in-skill products available to the user")
	language := cmd.Flag("language", "The Accept-Language value to use").Default("en-US").String()
	productID := cmd.Flag("product-id", "Only show this product").String()
	entitled := cmd.Flag("entitled", "Only show products the user is entitled to").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		client, err := monetization.New(sess.API)
		if err != nil {
			return err
		}
		ctx := context.Background()
		var result any
		if *productID != "" {
			result, err = client.GetInSkillProduct(ctx, *language, *productID)
		} else {
			query := &monetization.ProductsQuery{}
			if *entitled {
				query.Entitled = "ENTITLED"
			}
			result, err = client.GetInSkillProducts(ctx, *language, query)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s\n", must.MarshalJSON(result))
		return nil
	})
}
