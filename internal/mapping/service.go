package mapping

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("mapping not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save validates and stores a mapping, replacing any previous mapping
// for the same (restaurant, menu item) pair.
func (s *Service) Save(
	ctx context.Context,
	restaurantID string,
	menuItemID string,
	components []Component,
	steps []string,
) (*Mapping, error) {
	if restaurantID == "" || strings.TrimSpace(menuItemID) == "" {
		return nil, errors.New("missing required fields")
	}
	if err := validateComponents(components, false); err != nil {
		return nil, err
	}

	m := &Mapping{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		MenuItemID:   strings.TrimSpace(menuItemID),
		Components:   components,
		Steps:        steps,
	}
	if err := s.repo.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID, menuItemID string) error {
	return s.repo.Delete(ctx, restaurantID, menuItemID)
}

func (s *Service) Get(ctx context.Context, restaurantID, menuItemID string) (*Mapping, error) {
	m, err := s.repo.Get(ctx, restaurantID, menuItemID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, restaurantID string) ([]*Mapping, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// validateComponents enforces structural shape only. Quantities are
// deliberately NOT range-checked: merchant-entered values (including
// zero and negative) pass through to the engine arithmetically.
func validateComponents(components []Component, inOverride bool) error {
	for i, c := range components {
		switch c.Type {
		case ComponentInventory:
			if strings.TrimSpace(c.InventoryItemID) == "" {
				return fmt.Errorf("component %d: inventory_item_id is required", i)
			}
			if strings.TrimSpace(c.Unit) == "" {
				return fmt.Errorf("component %d: unit is required", i)
			}
			if len(c.Overrides) > 0 {
				return fmt.Errorf("component %d: inventory components cannot carry overrides", i)
			}
		case ComponentMenu:
			if strings.TrimSpace(c.MenuItemID) == "" {
				return fmt.Errorf("component %d: menu_item_id is required", i)
			}
			if inOverride && len(c.Overrides) > 0 {
				return fmt.Errorf("component %d: override components cannot nest further overrides", i)
			}
			if err := validateComponents(c.Overrides, true); err != nil {
				return fmt.Errorf("component %d: %w", i, err)
			}
		default:
			return fmt.Errorf("component %d: unknown type %q", i, c.Type)
		}
	}
	return nil
}
