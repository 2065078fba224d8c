package inventory

import (
	"context"
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

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO inventory_items (
			id,
			restaurant_id,
			name,
			primary_unit,
			stock,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING created_at, updated_at
	`, item.ID, item.RestaurantID, item.Name, item.PrimaryUnit, item.Stock).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE inventory_items
		SET name = $1,
		    primary_unit = $2,
		    stock = $3,
		    updated_at = now()
		WHERE id = $4 AND restaurant_id = $5
	`, item.Name, item.PrimaryUnit, item.Stock, item.ID, item.RestaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("inventory item not found")
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, restaurantID, itemID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM inventory_items
		WHERE id = $1 AND restaurant_id = $2
	`, itemID, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("inventory item not found")
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, itemID string) (*Item, error) {
	item := &Item{}
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, name, primary_unit, stock, created_at, updated_at
		FROM inventory_items
		WHERE id = $1
	`, itemID).Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.PrimaryUnit,
		&item.Stock,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, primary_unit, stock, created_at, updated_at
		FROM inventory_items
		WHERE restaurant_id = $1
		ORDER BY name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.PrimaryUnit,
			&item.Stock,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
