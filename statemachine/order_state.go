package statemachine

import (
	"strings"

	"food-ordering-api/models"
)

// Transition defines one step of the order lifecycle
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// flow is the authoritative lifecycle definition: a forward-only
// progression with no branches. Only two rules are mechanically enforced
// by the handlers (an order is deletable only while pending, and a status
// must be present and non-empty on update); the rest of the flow is
// communicated to clients through error messages and the info endpoint.
var flow = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// Flow returns the lifecycle states in order.
func Flow() []models.OrderStatus {
	return flow
}

// IsValid reports whether s is one of the named lifecycle states.
func IsValid(s models.OrderStatus) bool {
	for _, status := range flow {
		if status == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s is the final lifecycle state.
func IsTerminal(s models.OrderStatus) bool {
	return s == flow[len(flow)-1]
}

// Next returns the state following s, and false when s is terminal or not
// a lifecycle state at all.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	for i, status := range flow[:len(flow)-1] {
		if status == s {
			return flow[i+1], true
		}
	}
	return "", false
}

// Describe returns the comma-joined state list used verbatim in
// client-facing status error messages.
func Describe() string {
	names := make([]string, len(flow))
	for i, s := range flow {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Transitions returns the full state machine for documentation.
func Transitions() []Transition {
	ts := make([]Transition, 0, len(flow)-1)
	for i := 0; i < len(flow)-1; i++ {
		ts = append(ts, Transition{From: flow[i], To: flow[i+1]})
	}
	return ts
}
