package models

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

type Order struct {
	ID           string          `json:"id"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       OrderStatus     `json:"status"`
	Dishes       []OrderLineItem `json:"dishes"`
}

// OrderLineItem pairs a dish identifier with a requested quantity.
// The dish id is not cross-checked against the dish collection.
type OrderLineItem struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}
