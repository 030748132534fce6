package handlers

import (
	"net/http"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Orders serves the /orders resource, including the lifecycle rules: a
// status must be present and non-empty on update, and an order may only be
// deleted while it is still pending.
type Orders struct {
	collection *store.Collection[models.Order]
	ids        *store.Sequence
	log        *logrus.Logger
}

func NewOrders(collection *store.Collection[models.Order], ids *store.Sequence, log *logrus.Logger) *Orders {
	return &Orders{collection: collection, ids: ids, log: log}
}

// List handles GET /orders.
func (h *Orders) List(c *gin.Context) {
	respond(c, http.StatusOK, h.collection.List())
}

// Create is the POST /orders pipeline.
func (h *Orders) Create() gin.HandlersChain {
	return gin.HandlersChain{
		decodeData,
		h.requireOrderField("deliverTo"),
		h.requireOrderField("mobileNumber"),
		h.requireOrderField("dishes"),
		h.dishesIsArray,
		h.dishesNotEmpty,
		h.quantitiesPresent,
		h.quantitiesPositive,
		h.quantitiesAreNumbers,
		h.create,
	}
}

// Read is the GET /orders/:orderId pipeline.
func (h *Orders) Read() gin.HandlersChain {
	return gin.HandlersChain{h.orderExists, h.read}
}

// Update is the PUT /orders/:orderId pipeline.
func (h *Orders) Update() gin.HandlersChain {
	return gin.HandlersChain{
		decodeData,
		h.orderExists,
		h.requireOrderField("deliverTo"),
		h.requireOrderField("mobileNumber"),
		h.requireOrderField("dishes"),
		h.dishesIsArray,
		h.dishesNotEmpty,
		h.quantitiesPresent,
		h.quantitiesPositive,
		h.quantitiesAreNumbers,
		h.statusPresent,
		h.statusNotEmpty,
		h.statusNotDelivered,
		h.idMatchesRoute,
		h.update,
	}
}

// Delete is the DELETE /orders/:orderId pipeline.
func (h *Orders) Delete() gin.HandlersChain {
	return gin.HandlersChain{h.orderExists, h.statusIsPending, h.destroy}
}

// ── Pipeline steps ──────────────────────────────────────────────────────────

func (h *Orders) requireOrderField(field string) gin.HandlerFunc {
	return requireField(field, ctxOrderData, "Order/dish must include %s")
}

// dishesIsArray attaches the raw dishes array for the steps behind it.
func (h *Orders) dishesIsArray(c *gin.Context) {
	data := c.MustGet(ctxOrderData).(map[string]any)
	if items, ok := data["dishes"].([]any); ok {
		c.Set(ctxDishes, items)
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, "Order must include at least one dish")
}

func (h *Orders) dishesNotEmpty(c *gin.Context) {
	if len(c.MustGet(ctxDishes).([]any)) > 0 {
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, "Order must include at least one dish")
}

// checkQuantities walks the line items, collecting every index rejected by
// bad plus the running total of the quantities that passed. The reported
// total counts only the valid items.
func (h *Orders) checkQuantities(c *gin.Context, bad func(quantity any) bool) {
	items := c.MustGet(ctxDishes).([]any)
	total := 0
	var badIndexes []int
	for i, raw := range items {
		var quantity any
		if item, ok := raw.(map[string]any); ok {
			quantity = item["quantity"]
		}
		if bad(quantity) {
			badIndexes = append(badIndexes, i)
			continue
		}
		if q, ok := num(quantity); ok {
			total += int(q)
		}
	}
	if len(badIndexes) == 0 {
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest,
		"Dish %d must have a quantity that is an integer greater than 0. The quantity ordered was: %d",
		badIndexes[0], total)
}

func (h *Orders) quantitiesPresent(c *gin.Context) {
	h.checkQuantities(c, func(quantity any) bool {
		return quantity == nil
	})
}

func (h *Orders) quantitiesPositive(c *gin.Context) {
	h.checkQuantities(c, func(quantity any) bool {
		q, ok := num(quantity)
		return ok && q < 1
	})
}

func (h *Orders) quantitiesAreNumbers(c *gin.Context) {
	h.checkQuantities(c, func(quantity any) bool {
		_, ok := num(quantity)
		return !ok
	})
}

// orderExists matches the route id against the collection and attaches the
// found record. Steps that assume a matched order run after this one.
func (h *Orders) orderExists(c *gin.Context) {
	id := c.Param("orderId")
	if order := h.collection.Find(id); order != nil {
		c.Set(ctxOrder, order)
		c.Next()
		return
	}
	abort(c, http.StatusNotFound, "%s doesn't exist.", id)
}

// statusPresent requires the status key in the body; an empty value still
// counts here and is caught by statusNotEmpty.
func (h *Orders) statusPresent(c *gin.Context) {
	if status, ok := envelope(c)["status"]; ok {
		c.Set(ctxStatus, status)
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, "Order must have a status of %s", statemachine.Describe())
}

func (h *Orders) statusNotEmpty(c *gin.Context) {
	if present(c.MustGet(ctxStatus)) {
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, "Order must have a status of %s", statemachine.Describe())
}

// statusNotDelivered guards completed orders against edits, but only the
// literal "invalid" sentinel trips it; a delivered order passes through.
func (h *Orders) statusNotDelivered(c *gin.Context) {
	if str(c.MustGet(ctxStatus)) != "invalid" {
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, "Delivery status invalid: a delivered order cannot be changed")
}

// idMatchesRoute rejects a body id that conflicts with the route id; an
// absent or empty body id is fine.
func (h *Orders) idMatchesRoute(c *gin.Context) {
	orderID := c.Param("orderId")
	if id, ok := envelope(c)["id"]; ok && present(id) && str(id) != orderID {
		abort(c, http.StatusBadRequest, "Order id does not match route id. Order: %v, Route: %s.", id, orderID)
		return
	}
	c.Next()
}

func (h *Orders) statusIsPending(c *gin.Context) {
	order := c.MustGet(ctxOrder).(*models.Order)
	if order.Status == models.StatusPending {
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, "An order cannot be deleted unless it is pending")
}

// ── Terminal handlers ───────────────────────────────────────────────────────

func (h *Orders) create(c *gin.Context) {
	data := c.MustGet(ctxOrderData).(map[string]any)
	order := &models.Order{
		ID:           h.ids.Next(),
		DeliverTo:    str(data["deliverTo"]),
		MobileNumber: str(data["mobileNumber"]),
		// status is copied as supplied; an absent status stays empty
		Status: orderStatus(data["status"]),
		Dishes: lineItems(c.MustGet(ctxDishes).([]any)),
	}
	if err := h.collection.Insert(order); err != nil {
		// unreachable while ids come from the sequence
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	h.log.WithField("order_id", order.ID).Info("order created")
	respond(c, http.StatusCreated, order)
}

func (h *Orders) read(c *gin.Context) {
	respond(c, http.StatusOK, c.MustGet(ctxOrder).(*models.Order))
}

// update overwrites every mutable field in place; the existing id stands
// whether or not the body resubmits it.
func (h *Orders) update(c *gin.Context) {
	data := c.MustGet(ctxOrderData).(map[string]any)
	order := c.MustGet(ctxOrder).(*models.Order)

	order.DeliverTo = str(data["deliverTo"])
	order.MobileNumber = str(data["mobileNumber"])
	order.Status = orderStatus(c.MustGet(ctxStatus))
	order.Dishes = lineItems(c.MustGet(ctxDishes).([]any))

	respond(c, http.StatusOK, order)
}

func (h *Orders) destroy(c *gin.Context) {
	order := c.MustGet(ctxOrder).(*models.Order)
	h.collection.Remove(order.ID)
	h.log.WithField("order_id", order.ID).Info("order deleted")
	c.Status(http.StatusNoContent)
}

// ── Conversions ─────────────────────────────────────────────────────────────

func orderStatus(v any) models.OrderStatus {
	if v == nil {
		return ""
	}
	return models.OrderStatus(str(v))
}

// lineItems converts the validated dishes array; every quantity has been
// proven numeric and positive by the pipeline.
func lineItems(items []any) []models.OrderLineItem {
	out := make([]models.OrderLineItem, 0, len(items))
	for _, raw := range items {
		item, _ := raw.(map[string]any)
		quantity, _ := num(item["quantity"])
		dishID, _ := item["dishId"].(string)
		out = append(out, models.OrderLineItem{DishID: dishID, Quantity: int(quantity)})
	}
	return out
}
