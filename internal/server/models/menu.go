package models

import "time"

type MenuItem struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Recipe    string    `json:"recipe"`
	CreatedAt time.Time `json:"createdAt"`
}

// MenuImageUpload is a presigned URL the client PUTs an image to; Key is
// the object key to store in MenuItem.Image afterwards.
type MenuImageUpload struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
