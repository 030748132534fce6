package handlers_test

import (
	"net/http"
	"testing"

	"food-ordering-api/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDishes(t *testing.T) {
	r, dishes, _ := newServer(t)

	w := do(t, r, http.MethodGet, "/dishes", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list, ok := payload(t, w)["data"].([]any)
	require.True(t, ok)
	assert.Len(t, list, dishes.Len())
	first := list[0].(map[string]any)
	assert.Equal(t, data.Dishes()[0].ID, first["id"])
}

func TestCreateDish(t *testing.T) {
	r, dishes, _ := newServer(t)
	before := dishes.Len()

	w := do(t, r, http.MethodPost, "/dishes", validDishBody())

	require.Equal(t, http.StatusCreated, w.Code)
	dish := record(t, w)
	assert.Equal(t, "Pasta", dish["name"])
	assert.Equal(t, float64(12), dish["price"])
	assert.NotEmpty(t, dish["id"])
	assert.Equal(t, before+1, dishes.Len())

	// the new record is readable under its assigned id
	read := do(t, r, http.MethodGet, "/dishes/"+dish["id"].(string), nil)
	require.Equal(t, http.StatusOK, read.Code)
	assert.Equal(t, dish, record(t, read))
}

func TestCreateDish_AssignsUniqueIDs(t *testing.T) {
	r, _, _ := newServer(t)

	seen := map[string]bool{}
	for _, seeded := range data.Dishes() {
		seen[seeded.ID] = true
	}
	for i := 0; i < 5; i++ {
		w := do(t, r, http.MethodPost, "/dishes", validDishBody())
		require.Equal(t, http.StatusCreated, w.Code)
		id := record(t, w)["id"].(string)
		assert.False(t, seen[id], "id %q handed out twice", id)
		seen[id] = true
	}
}

func TestCreateDish_MissingFields(t *testing.T) {
	for _, field := range []string{"name", "description", "price", "image_url"} {
		t.Run(field, func(t *testing.T) {
			r, dishes, _ := newServer(t)
			before := dishes.Len()

			body := validDishBody()
			delete(body, field)
			w := do(t, r, http.MethodPost, "/dishes", body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Must include a "+field, errorMessage(t, w))
			assert.Equal(t, before, dishes.Len(), "failed create must not mutate the collection")
		})
	}
}

func TestCreateDish_EmptyStringFieldIsMissing(t *testing.T) {
	r, dishes, _ := newServer(t)
	before := dishes.Len()

	body := validDishBody()
	body["name"] = ""
	w := do(t, r, http.MethodPost, "/dishes", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Must include a name", errorMessage(t, w))
	assert.Equal(t, before, dishes.Len())
}

// Known quirk: a numeric zero counts as present, so a free dish is legal
// even though empty strings are rejected as missing.
func TestCreateDish_ZeroPriceAccepted(t *testing.T) {
	r, _, _ := newServer(t)

	body := validDishBody()
	body["price"] = 0
	w := do(t, r, http.MethodPost, "/dishes", body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(0), record(t, w)["price"])
}

func TestCreateDish_NegativePrice(t *testing.T) {
	r, dishes, _ := newServer(t)
	before := dishes.Len()

	body := validDishBody()
	body["price"] = -5
	w := do(t, r, http.MethodPost, "/dishes", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "can not be negative")
	assert.Equal(t, before, dishes.Len())
}

func TestCreateDish_NonNumericPrice(t *testing.T) {
	r, dishes, _ := newServer(t)
	before := dishes.Len()

	body := validDishBody()
	body["price"] = "twelve"
	w := do(t, r, http.MethodPost, "/dishes", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `price is not of type "number".`, errorMessage(t, w))
	assert.Equal(t, before, dishes.Len())
}

func TestReadDish_NotFound(t *testing.T) {
	r, _, _ := newServer(t)

	w := do(t, r, http.MethodGet, "/dishes/nope", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dish does not exist: nope.", errorMessage(t, w))
}

func TestUpdateDish(t *testing.T) {
	r, _, _ := newServer(t)
	id := data.Dishes()[0].ID

	body := validDishBody()
	w := do(t, r, http.MethodPut, "/dishes/"+id, body)

	require.Equal(t, http.StatusOK, w.Code)
	dish := record(t, w)
	assert.Equal(t, id, dish["id"], "update must not change the id")
	assert.Equal(t, "Pasta", dish["name"])

	read := do(t, r, http.MethodGet, "/dishes/"+id, nil)
	require.Equal(t, http.StatusOK, read.Code)
	assert.Equal(t, dish, record(t, read))
}

func TestUpdateDish_OmittedBodyIDKeepsExisting(t *testing.T) {
	r, _, _ := newServer(t)
	id := data.Dishes()[1].ID

	w := do(t, r, http.MethodPut, "/dishes/"+id, validDishBody())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, record(t, w)["id"])
}

func TestUpdateDish_MatchingBodyIDAccepted(t *testing.T) {
	r, _, _ := newServer(t)
	id := data.Dishes()[0].ID

	body := validDishBody()
	body["id"] = id
	w := do(t, r, http.MethodPut, "/dishes/"+id, body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, record(t, w)["id"])
}

func TestUpdateDish_IDMismatch(t *testing.T) {
	r, _, _ := newServer(t)
	seeded := data.Dishes()[0]

	body := validDishBody()
	body["id"] = "999"
	w := do(t, r, http.MethodPut, "/dishes/"+seeded.ID, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "does not match route id")

	// nothing was overwritten
	read := do(t, r, http.MethodGet, "/dishes/"+seeded.ID, nil)
	assert.Equal(t, seeded.Name, record(t, read)["name"])
}

func TestUpdateDish_NegativePriceLeavesRecordAlone(t *testing.T) {
	r, _, _ := newServer(t)
	seeded := data.Dishes()[0]

	body := validDishBody()
	body["price"] = -5
	w := do(t, r, http.MethodPut, "/dishes/"+seeded.ID, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	read := do(t, r, http.MethodGet, "/dishes/"+seeded.ID, nil)
	assert.Equal(t, float64(seeded.Price), record(t, read)["price"])
}

func TestUpdateDish_NotFound(t *testing.T) {
	r, _, _ := newServer(t)

	w := do(t, r, http.MethodPut, "/dishes/nope", validDishBody())

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateDish_Idempotent(t *testing.T) {
	r, _, _ := newServer(t)
	id := data.Dishes()[2].ID

	body := validDishBody()
	first := do(t, r, http.MethodPut, "/dishes/"+id, body)
	require.Equal(t, http.StatusOK, first.Code)
	second := do(t, r, http.MethodPut, "/dishes/"+id, body)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, record(t, first), record(t, second))
}
