package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys shared between pipeline steps. A step either attaches a
// value for the steps behind it or aborts the chain; nothing touches the
// collections before the terminal step.
const (
	ctxBody      = "body"      // decoded data envelope (map[string]any)
	ctxDishData  = "dishData"  // data object proven by the dish presence checks
	ctxOrderData = "orderData" // data object proven by the order presence checks
	ctxDish      = "dish"      // *models.Dish matched by the route id
	ctxOrder     = "order"     // *models.Order matched by the route id
	ctxDishes    = "dishes"    // raw dishes array from the order body
	ctxStatus    = "status"    // raw status value from the order body
)

// abort ends the pipeline with a structured failure; later steps never run.
func abort(c *gin.Context, status int, format string, args ...any) {
	c.AbortWithStatusJSON(status, gin.H{"error": fmt.Sprintf(format, args...)})
}

// respond writes the success envelope.
func respond(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"data": payload})
}

// decodeData parses the {"data": {...}} request envelope and attaches the
// inner object to the context. A missing or empty body decodes to an empty
// object, which the presence checks will then reject field by field.
func decodeData(c *gin.Context) {
	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		abort(c, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if body.Data == nil {
		body.Data = map[string]any{}
	}
	c.Set(ctxBody, body.Data)
	c.Next()
}

// envelope returns the data object attached by decodeData.
func envelope(c *gin.Context) map[string]any {
	return c.MustGet(ctxBody).(map[string]any)
}

// present implements the rule shared by every required-field check: nil,
// false and the empty string count as missing; numbers always count as
// present, zero included; arrays and objects count as present even when
// empty.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	default:
		return true
	}
}

// requireField builds the presence step for one field. On success the whole
// data object is attached under dataKey for the steps that follow.
func requireField(field, dataKey, format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := envelope(c)
		if present(data[field]) {
			c.Set(dataKey, data)
			c.Next()
			return
		}
		abort(c, http.StatusBadRequest, format, field)
	}
}

// str renders a validated field value for storage.
func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// num reports whether v is a JSON number.
func num(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
