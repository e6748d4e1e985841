package models

import "time"

// CartEntry is one menu item put into a user's cart. Email is the owner.
type CartEntry struct {
	ID         string    `json:"_id"`
	MenuItemID string    `json:"menuItemId"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}
