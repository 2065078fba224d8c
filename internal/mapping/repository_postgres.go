package mapping

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// UPSERT (one mapping per restaurant + menu item)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, m *Mapping) error {
	components, err := json.Marshal(m.Components)
	if err != nil {
		return err
	}
	steps, err := json.Marshal(m.Steps)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO item_mappings (
			id,
			restaurant_id,
			menu_item_id,
			components,
			steps,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (restaurant_id, menu_item_id) DO UPDATE
		SET components = EXCLUDED.components,
		    steps = EXCLUDED.steps,
		    updated_at = now()
		RETURNING id, created_at, updated_at
	`, m.ID, m.RestaurantID, m.MenuItemID, components, steps).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *PostgresRepository) Delete(ctx context.Context, restaurantID, menuItemID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM item_mappings
		WHERE restaurant_id = $1 AND menu_item_id = $2
	`, restaurantID, menuItemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("mapping not found")
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, restaurantID, menuItemID string) (*Mapping, error) {
	var (
		m          Mapping
		components []byte
		steps      []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, menu_item_id, components, steps, created_at, updated_at
		FROM item_mappings
		WHERE restaurant_id = $1 AND menu_item_id = $2
	`, restaurantID, menuItemID).Scan(
		&m.ID,
		&m.RestaurantID,
		&m.MenuItemID,
		&components,
		&steps,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(components, &m.Components); err != nil {
		return nil, err
	}
	if len(steps) > 0 {
		if err := json.Unmarshal(steps, &m.Steps); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Mapping, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, menu_item_id, components, steps, created_at, updated_at
		FROM item_mappings
		WHERE restaurant_id = $1
		ORDER BY menu_item_id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mappings := []*Mapping{}
	for rows.Next() {
		var (
			m          Mapping
			components []byte
			steps      []byte
		)
		if err := rows.Scan(
			&m.ID,
			&m.RestaurantID,
			&m.MenuItemID,
			&components,
			&steps,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(components, &m.Components); err != nil {
			return nil, err
		}
		if len(steps) > 0 {
			if err := json.Unmarshal(steps, &m.Steps); err != nil {
				return nil, err
			}
		}
		mappings = append(mappings, &m)
	}
	return mappings, rows.Err()
}
