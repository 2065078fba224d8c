package mapping

import "context"

// Repository defines all database operations for BOM mappings.
// Get returns (nil, nil) when no mapping exists for the key; the
// explosion engine treats that as a terminal leaf, not a failure.
type Repository interface {
	Upsert(ctx context.Context, m *Mapping) error
	Delete(ctx context.Context, restaurantID, menuItemID string) error

	Get(ctx context.Context, restaurantID, menuItemID string) (*Mapping, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Mapping, error)
}
