package handlers

import (
	"net/http"

	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dishes serves the /dishes resource. Every write operation is an explicit
// ordered pipeline over the request context: step ordering is part of the
// contract, since later steps assume earlier ones succeeded.
type Dishes struct {
	collection *store.Collection[models.Dish]
	ids        *store.Sequence
	log        *logrus.Logger
}

func NewDishes(collection *store.Collection[models.Dish], ids *store.Sequence, log *logrus.Logger) *Dishes {
	return &Dishes{collection: collection, ids: ids, log: log}
}

// List handles GET /dishes.
func (h *Dishes) List(c *gin.Context) {
	respond(c, http.StatusOK, h.collection.List())
}

// Create is the POST /dishes pipeline.
func (h *Dishes) Create() gin.HandlersChain {
	return gin.HandlersChain{
		decodeData,
		h.requireDishField("name"),
		h.requireDishField("description"),
		h.requireDishField("price"),
		h.requireDishField("image_url"),
		h.priceIsNumber,
		h.priceNotNegative,
		h.create,
	}
}

// Read is the GET /dishes/:dishId pipeline.
func (h *Dishes) Read() gin.HandlersChain {
	return gin.HandlersChain{h.dishExists, h.read}
}

// Update is the PUT /dishes/:dishId pipeline.
func (h *Dishes) Update() gin.HandlersChain {
	return gin.HandlersChain{
		decodeData,
		h.dishExists,
		h.idMatchesRoute,
		h.requireDishField("name"),
		h.requireDishField("description"),
		h.requireDishField("price"),
		h.requireDishField("image_url"),
		h.priceIsNumber,
		h.priceNotNegative,
		h.update,
	}
}

// ── Pipeline steps ──────────────────────────────────────────────────────────

func (h *Dishes) requireDishField(field string) gin.HandlerFunc {
	return requireField(field, ctxDishData, "Must include a %s")
}

// priceIsNumber assumes the presence check already proved price exists.
func (h *Dishes) priceIsNumber(c *gin.Context) {
	data := c.MustGet(ctxDishData).(map[string]any)
	if _, ok := num(data["price"]); ok {
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, `price is not of type "number".`)
}

func (h *Dishes) priceNotNegative(c *gin.Context) {
	data := c.MustGet(ctxDishData).(map[string]any)
	if price, _ := num(data["price"]); price >= 0 {
		c.Next()
		return
	}
	abort(c, http.StatusBadRequest, "Price can not be negative... price.")
}

// dishExists matches the route id against the collection and attaches the
// found record. Steps that assume a matched dish run after this one.
func (h *Dishes) dishExists(c *gin.Context) {
	id := c.Param("dishId")
	if dish := h.collection.Find(id); dish != nil {
		c.Set(ctxDish, dish)
		c.Next()
		return
	}
	abort(c, http.StatusNotFound, "Dish does not exist: %s.", id)
}

// idMatchesRoute rejects a body id that conflicts with the route id; an
// absent or empty body id is fine.
func (h *Dishes) idMatchesRoute(c *gin.Context) {
	dish := c.MustGet(ctxDish).(*models.Dish)
	if id, ok := envelope(c)["id"]; ok && present(id) && str(id) != dish.ID {
		abort(c, http.StatusBadRequest, "Dish id does not match route id. Dish: %v, Route: %s", id, dish.ID)
		return
	}
	c.Next()
}

// ── Terminal handlers ───────────────────────────────────────────────────────

func (h *Dishes) create(c *gin.Context) {
	data := c.MustGet(ctxDishData).(map[string]any)
	price, _ := num(data["price"])
	dish := &models.Dish{
		ID:          h.ids.Next(),
		Name:        str(data["name"]),
		Description: str(data["description"]),
		Price:       int(price),
		ImageURL:    str(data["image_url"]),
	}
	if err := h.collection.Insert(dish); err != nil {
		// unreachable while ids come from the sequence
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	h.log.WithField("dish_id", dish.ID).Info("dish created")
	respond(c, http.StatusCreated, dish)
}

func (h *Dishes) read(c *gin.Context) {
	respond(c, http.StatusOK, c.MustGet(ctxDish).(*models.Dish))
}

// update overwrites every mutable field in place; the existing id stands
// whether or not the body resubmits it.
func (h *Dishes) update(c *gin.Context) {
	data := c.MustGet(ctxDishData).(map[string]any)
	dish := c.MustGet(ctxDish).(*models.Dish)

	price, _ := num(data["price"])
	dish.Name = str(data["name"])
	dish.Description = str(data["description"])
	dish.Price = int(price)
	dish.ImageURL = str(data["image_url"])

	respond(c, http.StatusOK, dish)
}
