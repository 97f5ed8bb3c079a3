package database

import (
	"context"
	"database/sql"
	"fmt"

	"mall-tour-planner/internal/models"
)

type shopRepository struct {
	db *sql.DB
}

func (r *shopRepository) List(ctx context.Context) ([]models.Shop, error) {
	query := `SELECT name, floor, x, y FROM shops ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	shops := []models.Shop{}
	for rows.Next() {
		var s models.Shop
		if err := rows.Scan(&s.Name, &s.Floor, &s.X, &s.Y); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return shops, nil
}

func (r *shopRepository) GetByName(ctx context.Context, name string) (*models.Shop, error) {
	query := `SELECT name, floor, x, y FROM shops WHERE name = ?`

	var s models.Shop
	err := r.db.QueryRowContext(ctx, query, name).Scan(&s.Name, &s.Floor, &s.X, &s.Y)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: shop %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &s, nil
}

// ReplaceAll swaps the whole mall in one transaction, preserving slice order
// in the position column
func (r *shopRepository) ReplaceAll(ctx context.Context, shops []models.Shop) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shops`); err != nil {
		return fmt.Errorf("failed to clear shops: %w", err)
	}

	query := `INSERT INTO shops (name, floor, x, y, position) VALUES (?, ?, ?, ?, ?)`
	for i, s := range shops {
		if _, err := tx.ExecContext(ctx, query, s.Name, s.Floor, s.X, s.Y, i); err != nil {
			return fmt.Errorf("failed to insert shop %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *shopRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shops`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count shops: %w", err)
	}
	return count, nil
}
