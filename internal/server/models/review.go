package models

import "time"

type Review struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
