// Package data holds the records both collections start with. Ids are
// random hex, deliberately non-sequential, so the id generator has to work
// around them rather than continue from them.
package data

import "food-ordering-api/models"

// Dishes returns a fresh copy of the seed dishes.
func Dishes() []*models.Dish {
	return []*models.Dish{
		{
			ID:          "d351db2b49b69679504652ea1d6c4f92",
			Name:        "Dolcelatte and chickpea spaghetti",
			Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
			Price:       19,
			ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
		},
		{
			ID:          "90c3d873684bf381dfab29034b5bba73",
			Name:        "Falafel and tahini bagel",
			Description: "A warm bagel filled with falafel and tahini",
			Price:       6,
			ImageURL:    "https://images.pexels.com/photos/4560347/pexels-photo-4560347.jpeg",
		},
		{
			ID:          "3c637d011d844ebab1205fef8a7e36ea",
			Name:        "Broccoli and beetroot stir fry",
			Description: "Crunchy stir fry featuring fresh broccoli and beetroot",
			Price:       15,
			ImageURL:    "https://images.pexels.com/photos/4144234/pexels-photo-4144234.jpeg",
		},
	}
}

// Orders returns a fresh copy of the seed orders.
func Orders() []*models.Order {
	return []*models.Order{
		{
			ID:           "f6069a542257054114138301947672ba",
			DeliverTo:    "1600 Pennsylvania Avenue NW, Washington, DC 20500",
			MobileNumber: "(555) 555-5555",
			Status:       models.StatusOutForDelivery,
			Dishes: []models.OrderLineItem{
				{DishID: "90c3d873684bf381dfab29034b5bba73", Quantity: 1},
			},
		},
		{
			ID:           "5a887d326e83d3c5bdcbee398ea32aff",
			DeliverTo:    "308 Negra Arroyo Lane, Albuquerque, NM",
			MobileNumber: "(505) 143-3369",
			Status:       models.StatusDelivered,
			Dishes: []models.OrderLineItem{
				{DishID: "d351db2b49b69679504652ea1d6c4f92", Quantity: 2},
				{DishID: "3c637d011d844ebab1205fef8a7e36ea", Quantity: 1},
			},
		},
	}
}
