package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"food-ordering-api/data"
	"food-ordering-api/handlers"
	"food-ordering-api/models"
	"food-ordering-api/routes"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// newServer builds a fully routed engine over freshly seeded collections.
func newServer(t *testing.T) (*gin.Engine, *store.Collection[models.Dish], *store.Collection[models.Order]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	dishes := store.NewCollection(func(d *models.Dish) string { return d.ID })
	orders := store.NewCollection(func(o *models.Order) string { return o.ID })
	var seeded []string
	for _, dish := range data.Dishes() {
		require.NoError(t, dishes.Insert(dish))
		seeded = append(seeded, dish.ID)
	}
	for _, order := range data.Orders() {
		require.NoError(t, orders.Insert(order))
		seeded = append(seeded, order.ID)
	}
	ids := store.NewSequence(seeded...)

	r := gin.New()
	routes.SetupRoutes(r,
		handlers.NewDishes(dishes, ids, logger),
		handlers.NewOrders(orders, ids, logger),
	)
	return r, dishes, orders
}

// do performs one request; a non-nil body is wrapped as {"data": body}.
func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(map[string]any{"data": body})
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// payload decodes a response envelope.
func payload(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// record returns the "data" object of a success envelope.
func record(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := payload(t, w)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// errorMessage returns the "error" field of a failure envelope.
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	msg, ok := payload(t, w)["error"].(string)
	require.True(t, ok, "response has no error message: %s", w.Body.String())
	return msg
}

func validDishBody() map[string]any {
	return map[string]any{
		"name":        "Pasta",
		"description": "Fresh pasta in tomato sauce",
		"price":       12,
		"image_url":   "https://example.com/pasta.jpg",
	}
}

func validOrderBody() map[string]any {
	return map[string]any{
		"deliverTo":    "42 Galaxy Way",
		"mobileNumber": "(555) 123-4567",
		"status":       "pending",
		"dishes": []any{
			map[string]any{"dishId": "d351db2b49b69679504652ea1d6c4f92", "quantity": 2},
		},
	}
}
