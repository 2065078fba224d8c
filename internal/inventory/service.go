package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"rasoi/internal/units"
)

var ErrNotFound = errors.New("inventory item not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	restaurantID string,
	name string,
	primaryUnit string,
	stock float64,
) (*Item, error) {
	if restaurantID == "" || strings.TrimSpace(name) == "" {
		return nil, errors.New("missing required fields")
	}
	if strings.TrimSpace(primaryUnit) == "" {
		return nil, errors.New("primary unit is required")
	}

	item := &Item{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(name),
		PrimaryUnit:  strings.TrimSpace(primaryUnit),
		// Negative stock means untracked; stored as given.
		Stock: stock,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(
	ctx context.Context,
	restaurantID string,
	itemID string,
	name string,
	primaryUnit string,
	stock float64,
) (*Item, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(primaryUnit) == "" {
		return nil, errors.New("missing required fields")
	}

	item := &Item{
		ID:           itemID,
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(name),
		PrimaryUnit:  strings.TrimSpace(primaryUnit),
		Stock:        stock,
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID, itemID string) error {
	return s.repo.Delete(ctx, restaurantID, itemID)
}

func (s *Service) Get(ctx context.Context, restaurantID, itemID string) (*Item, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, restaurantID string) ([]*Item, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// UnitRecognized reports whether a primary unit belongs to a known
// conversion family. Unknown units are allowed (merchants invent units
// like "tray") but usage and capacity figures for them only reconcile
// against components declared in the exact same unit.
func (s *Service) UnitRecognized(unit string) bool {
	_, ok := units.Lookup(unit)
	return ok
}
