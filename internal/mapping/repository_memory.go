package mapping

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	// keyed by restaurantID + "/" + menuItemID
	mappings map[string]*Mapping
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{mappings: make(map[string]*Mapping)}
}

func key(restaurantID, menuItemID string) string {
	return restaurantID + "/" + menuItemID
}

func (r *InMemoryRepository) Upsert(ctx context.Context, m *Mapping) error {
	k := key(m.RestaurantID, m.MenuItemID)
	if existing, ok := r.mappings[k]; ok {
		m.ID = existing.ID
		m.CreatedAt = existing.CreatedAt
	} else {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()
	cp := *m
	r.mappings[k] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, restaurantID, menuItemID string) error {
	k := key(restaurantID, menuItemID)
	if _, ok := r.mappings[k]; !ok {
		return errors.New("mapping not found")
	}
	delete(r.mappings, k)
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, restaurantID, menuItemID string) (*Mapping, error) {
	m, ok := r.mappings[key(restaurantID, menuItemID)]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Mapping, error) {
	mappings := []*Mapping{}
	for _, m := range r.mappings {
		if m.RestaurantID == restaurantID {
			cp := *m
			mappings = append(mappings, &cp)
		}
	}
	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].MenuItemID < mappings[j].MenuItemID
	})
	return mappings, nil
}
