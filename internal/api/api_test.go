package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/janvolk/lostfound/internal/db"
	"github.com/janvolk/lostfound/internal/model"
	"github.com/janvolk/lostfound/internal/store"
)

func setupTestServer(t *testing.T) (*httptest.Server, *model.Item) {
	t.Helper()
	database := db.NewTestDB(t)
	server := httptest.NewServer(NewRouter(database))
	t.Cleanup(server.Close)

	item, err := store.InsertItem(context.Background(), database, &model.Item{
		ItemType:    model.ItemTypeFound,
		ItemName:    "Red Umbrella",
		Location:    "Main Hall",
		ContactInfo: "555-0101",
		Tag:         "umbrellas",
	})
	if err != nil {
		t.Fatalf("seeding item: %v", err)
	}
	return server, item
}

func TestListItemsEndpoint(t *testing.T) {
	server, seeded := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/items")
	if err != nil {
		t.Fatalf("GET /api/items: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var items []model.Item
	json.NewDecoder(resp.Body).Decode(&items)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID != seeded.ID || items[0].Tag != "umbrellas" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestListItemsSearchEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/items?search=umbrella")
	if err != nil {
		t.Fatalf("GET /api/items?search=umbrella: %v", err)
	}
	defer resp.Body.Close()
	var items []model.Item
	json.NewDecoder(resp.Body).Decode(&items)
	if len(items) != 1 {
		t.Errorf("expected 1 match, got %d", len(items))
	}

	resp2, err := http.Get(server.URL + "/api/items?search=wallet")
	if err != nil {
		t.Fatalf("GET /api/items?search=wallet: %v", err)
	}
	defer resp2.Body.Close()
	items = nil
	json.NewDecoder(resp2.Body).Decode(&items)
	if len(items) != 0 {
		t.Errorf("expected 0 matches, got %d", len(items))
	}
}

func TestGetItemEndpoint(t *testing.T) {
	server, seeded := setupTestServer(t)

	resp, err := http.Get(fmt.Sprintf("%s/api/items/%d", server.URL, seeded.ID))
	if err != nil {
		t.Fatalf("GET /api/items/{id}: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var item model.Item
	json.NewDecoder(resp.Body).Decode(&item)
	if item.ItemName != "Red Umbrella" || item.ItemType != model.ItemTypeFound {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestGetItemNotFound(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/items/9999")
	if err != nil {
		t.Fatalf("GET /api/items/9999: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}

	resp2, err := http.Get(server.URL + "/api/items/not-a-number")
	if err != nil {
		t.Fatalf("GET /api/items/not-a-number: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for bad id, got %d", resp2.StatusCode)
	}
}
