package inventory

import "context"

// Repository defines all database operations for inventory items.
// A lookup that finds nothing returns (nil, nil); callers treat a
// missing item as zero stock, not as a failure.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, restaurantID, itemID string) error

	GetByID(ctx context.Context, itemID string) (*Item, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Item, error)
}
