package models

import "time"

// Payment is the record of one completed checkout. CartItems lists the
// cart entry ids it settled.
type Payment struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transactionId"`
	TotalAmount   float64   `json:"totalAmount"`
	Quantity      int       `json:"quantity"`
	CartItems     []string  `json:"cartItems"`
	MenuItems     []string  `json:"menuItems"`
	ItemNames     []string  `json:"itemNames"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

// AdminStats aggregates store-wide counts and revenue.
type AdminStats struct {
	Users    int64   `json:"users"`
	FoodItem int64   `json:"foodItem"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}
