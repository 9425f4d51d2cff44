package printify_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-sync/core/printify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) (printify.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := printify.NewClient(printify.Config{
		Endpoint: server.URL,
		Token:    "test-token",
		ShopID:   "shop-1",
	})
	require.NoError(t, err)
	return client, server
}

func TestNewClient_Validation(t *testing.T) {
	_, err := printify.NewClient(printify.Config{ShopID: "shop-1"})
	assert.Error(t, err)

	_, err = printify.NewClient(printify.Config{Token: "tok"})
	assert.Error(t, err)
}

func TestGetProducts(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/shops/shop-1/products.json", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id":                "prod-1",
					"title":             "Classic Tee",
					"blueprint_id":      5,
					"print_provider_id": 10,
					"variants": []map[string]any{
						{"id": 1, "title": "S", "price": 2000, "is_enabled": true, "options": map[string]string{"size": "S"}},
					},
				},
			},
		})
	})

	products, err := client.GetProducts(context.Background())

	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "prod-1", products[0].ID)
	assert.Equal(t, 5, products[0].BlueprintID)
	require.Len(t, products[0].Variants, 1)
	assert.Equal(t, map[string]string{"size": "S"}, products[0].Variants[0].Options)
}

func TestGetBlueprint(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/catalog/blueprints/5/print_providers.json", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 10, "title": "Current"},
			{"id": 29, "title": "Alternative"},
		})
	})

	blueprint, err := client.GetBlueprint(context.Background(), 5)

	assert.NoError(t, err)
	require.NotNil(t, blueprint)
	assert.Equal(t, 5, blueprint.ID)
	require.Len(t, blueprint.Providers, 2)
	assert.Equal(t, "Alternative", blueprint.Providers[1].Title)
}

func TestGetBlueprint_Absent(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	blueprint, err := client.GetBlueprint(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, blueprint)
}

func TestGetBlueprintVariants(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/catalog/blueprints/5/print_providers/29/variants.json", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"variants": []map[string]any{
				{"id": 99, "title": "S", "options": map[string]string{"size": "S"}},
			},
		})
	})

	snapshot, err := client.GetBlueprintVariants(context.Background(), 5, 29)

	assert.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 5, snapshot.BlueprintID)
	assert.Equal(t, 29, snapshot.PrintProviderID)
	require.Len(t, snapshot.Variants, 1)

	_, ok := snapshot.AvailableIDs()[99]
	assert.True(t, ok)
}

func TestGetBlueprintVariants_ServerError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetBlueprintVariants(context.Background(), 5, 29)

	assert.Error(t, err)
}

func TestUpdateProduct(t *testing.T) {
	var received printify.UpdatePayload

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/shops/shop-1/products/prod-1.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	})

	payload := printify.UpdatePayload{
		PrintProviderID: 29,
		Variants:        []printify.VariantUpdate{{ID: 99, Price: 2000, IsEnabled: true}},
	}
	err := client.UpdateProduct(context.Background(), "prod-1", payload)

	assert.NoError(t, err)
	assert.Equal(t, payload, received)
}

func TestUpdateProduct_Rejected(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid variant"}`))
	})

	err := client.UpdateProduct(context.Background(), "prod-1", printify.UpdatePayload{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestUpdatePayload_IsProviderSwitch(t *testing.T) {
	switchPayload := printify.UpdatePayload{PrintProviderID: 29}
	plainPayload := printify.UpdatePayload{}

	assert.True(t, switchPayload.IsProviderSwitch())
	assert.False(t, plainPayload.IsProviderSwitch())
}
