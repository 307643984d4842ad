package monetization

import (
	"context"
	"testing"

	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/transportx/mocks"
)

func newClient(t *testing.T, seen **transportx.Request, resp *transportx.Response) *Client {
	client, err := New(&services.Config{
		AuthorizationValue: "apiAccessToken",
		Transport: &mocks.Transport{
			MockDispatch: func(ctx context.Context, req *transportx.Request) (*transportx.Response, error) {
				*seen = req
				return resp, nil
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestGetInSkillProducts(t *testing.T) {
	t.Run("renders the filters in order", func(t *testing.T) {
		var seen *transportx.Request
		client := newClient(t, &seen, &transportx.Response{
			StatusCode: 200,
			Body:       `{"inSkillProducts":[],"isTruncated":false,"nextToken":""}`,
		})
		_, err := client.GetInSkillProducts(context.Background(), "en-US", &ProductsQuery{
			Purchasable: "PURCHASABLE",
			Entitled:    "NOT_ENTITLED",
			MaxResults:  25,
		})
		if err != nil {
			t.Fatal(err)
		}
		expect := "https://api.amazonalexa.com/v1/users/~current/skills/~current/inSkillProducts" +
			"?purchasable=PURCHASABLE&entitled=NOT_ENTITLED&maxResults=25"
		if seen.URL != expect {
			t.Fatal("unexpected URL", seen.URL)
		}
		var language string
		for _, pair := range seen.Headers {
			if pair.Key == "Accept-Language" {
				language = pair.Value
			}
		}
		if language != "en-US" {
			t.Fatal("unexpected accept-language", language)
		}
	})

	t.Run("a nil query contributes no query string", func(t *testing.T) {
		var seen *transportx.Request
		client := newClient(t, &seen, &transportx.Response{
			StatusCode: 200,
			Body:       `{"inSkillProducts":[]}`,
		})
		if _, err := client.GetInSkillProducts(context.Background(), "en-US", nil); err != nil {
			t.Fatal(err)
		}
		expect := "https://api.amazonalexa.com/v1/users/~current/skills/~current/inSkillProducts"
		if seen.URL != expect {
			t.Fatal("unexpected URL", seen.URL)
		}
	})
}

func TestGetInSkillProduct(t *testing.T) {
	var seen *transportx.Request
	client := newClient(t, &seen, &transportx.Response{
		StatusCode: 200,
		Body:       `{"productId":"amzn1.adg.product.abc","referenceName":"gold_pack"}`,
	})
	product, err := client.GetInSkillProduct(context.Background(), "en-US", "amzn1.adg.product.abc")
	if err != nil {
		t.Fatal(err)
	}
	expect := "https://api.amazonalexa.com/v1/users/~current/skills/~current/inSkillProducts/amzn1.adg.product.abc"
	if seen.URL != expect {
		t.Fatal("unexpected URL", seen.URL)
	}
	if product.ReferenceName != "gold_pack" {
		t.Fatal("unexpected reference name", product.ReferenceName)
	}
}
