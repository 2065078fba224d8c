package inventory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	items map[string]*Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*Item)}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	existing, ok := r.items[item.ID]
	if !ok || existing.RestaurantID != item.RestaurantID {
		return errors.New("inventory item not found")
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, restaurantID, itemID string) error {
	existing, ok := r.items[itemID]
	if !ok || existing.RestaurantID != restaurantID {
		return errors.New("inventory item not found")
	}
	delete(r.items, itemID)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, itemID string) (*Item, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Item, error) {
	items := []*Item{}
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			cp := *item
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
