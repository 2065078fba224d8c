package inventory

import "time"

// Item is a raw stock record. Stock is tracked in PrimaryUnit.
// A negative Stock means the item is untracked/unlimited by convention;
// it is stored and returned as-is, never clamped.
type Item struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	PrimaryUnit  string    `json:"primary_unit"`
	Stock        float64   `json:"stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
