package lists

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/skillwave/sdk-go/internal/httpapi"
	"github.com/skillwave/sdk-go/internal/model"
	"github.com/skillwave/sdk-go/internal/services"
	"github.com/skillwave/sdk-go/internal/transportx"
	"github.com/skillwave/sdk-go/internal/transportx/mocks"
)

// newClient returns a client whose transport records the request and
// answers with the given canned response.
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

func TestGetListsMetadata(t *testing.T) {
	var seen *transportx.Request
	client := newClient(t, &seen, &transportx.Response{
		StatusCode: 200,
		Body:       `{"lists":[{"listId":"abc","name":"grocery","state":"active"}]}`,
	})
	metadata, err := client.GetListsMetadata(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if seen.URL != "https://api.amazonalexa.com/v2/householdlists/" {
		t.Fatal("unexpected URL", seen.URL)
	}
	expect := &model.HouseholdListsMetadata{
		Lists: []model.HouseholdListMetadata{
			{ListID: "abc", Name: "grocery", State: "active"},
		},
	}
	if diff := cmp.Diff(expect, metadata); diff != "" {
		t.Fatal(diff)
	}
}

func TestGetList(t *testing.T) {
	var seen *transportx.Request
	client := newClient(t, &seen, &transportx.Response{
		StatusCode: 200,
		Body:       `{"listId":"abc","name":"grocery","state":"active","version":3,"items":[]}`,
	})
	list, err := client.GetList(context.Background(), "abc", "active")
	if err != nil {
		t.Fatal(err)
	}
	if seen.URL != "https://api.amazonalexa.com/v2/householdlists/abc/active/" {
		t.Fatal("unexpected URL", seen.URL)
	}
	if list.Version != 3 {
		t.Fatal("unexpected version", list.Version)
	}
}

func TestCreateList(t *testing.T) {
	var seen *transportx.Request
	client := newClient(t, &seen, &transportx.Response{
		StatusCode: 201,
		Body:       `{"listId":"abc","name":"grocery","state":"active"}`,
	})
	metadata, err := client.CreateList(context.Background(), &model.CreateHouseholdListRequest{
		Name:  "grocery",
		State: "active",
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen.Method != "POST" {
		t.Fatal("unexpected method", seen.Method)
	}
	if seen.Body != `{"name":"grocery","state":"active"}` {
		t.Fatal("unexpected body", seen.Body)
	}
	if metadata.ListID != "abc" {
		t.Fatal("unexpected list ID", metadata.ListID)
	}
}

func TestCreateListItem(t *testing.T) {
	var seen *transportx.Request
	client := newClient(t, &seen, &transportx.Response{
		StatusCode: 201,
		Body:       `{"id":"item1","value":"milk","status":"active","version":1}`,
	})
	item, err := client.CreateListItem(context.Background(), "abc", &model.CreateHouseholdListItemRequest{
		Value:  "milk",
		Status: "active",
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen.URL != "https://api.amazonalexa.com/v2/householdlists/abc/items/" {
		t.Fatal("unexpected URL", seen.URL)
	}
	if item.ID != "item1" {
		t.Fatal("unexpected item ID", item.ID)
	}
}

func TestDeleteList(t *testing.T) {
	t.Run("returns the envelope on success", func(t *testing.T) {
		var seen *transportx.Request
		client := newClient(t, &seen, &transportx.Response{StatusCode: 200})
		resp, err := client.DeleteList(context.Background(), "abc")
		if err != nil {
			t.Fatal(err)
		}
		if seen.Method != "DELETE" {
			t.Fatal("unexpected method", seen.Method)
		}
		if resp.StatusCode != 200 {
			t.Fatal("unexpected status code", resp.StatusCode)
		}
		if resp.Body != nil {
			t.Fatal("expected nil body")
		}
	})

	t.Run("maps 404 through the table", func(t *testing.T) {
		var seen *transportx.Request
		client := newClient(t, &seen, &transportx.Response{StatusCode: 404})
		_, err := client.DeleteList(context.Background(), "abc")
		var svcErr *httpapi.ServiceError
		if !errors.As(err, &svcErr) {
			t.Fatal("expected a ServiceError, got", err)
		}
		if svcErr.Message != "Not Found" {
			t.Fatal("unexpected message", svcErr.Message)
		}
	})
}
