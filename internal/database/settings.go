package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"mall-tour-planner/internal/models"
)

type settingsRepository struct {
	db *sql.DB
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `SELECT key, value FROM settings`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settingsMap := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settingsMap[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// Missing keys fall back to the reference defaults
	settings := models.DefaultSettings()
	if v, err := strconv.ParseFloat(settingsMap["floor_penalty"], 64); err == nil {
		settings.FloorPenalty = v
	}
	if v, err := strconv.Atoi(settingsMap["max_passes"]); err == nil {
		settings.MaxPasses = v
	}
	if v, err := strconv.Atoi(settingsMap["num_floors"]); err == nil {
		settings.NumFloors = v
	}
	if v, err := strconv.Atoi(settingsMap["shops_per_floor"]); err == nil {
		settings.ShopsPerFloor = v
	}
	if v, err := strconv.ParseInt(settingsMap["seed"], 10, 64); err == nil {
		settings.Seed = v
	}

	return settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, s *models.Settings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`

	pairs := map[string]string{
		"floor_penalty":   strconv.FormatFloat(s.FloorPenalty, 'f', -1, 64),
		"max_passes":      strconv.Itoa(s.MaxPasses),
		"num_floors":      strconv.Itoa(s.NumFloors),
		"shops_per_floor": strconv.Itoa(s.ShopsPerFloor),
		"seed":            strconv.FormatInt(s.Seed, 10),
	}

	for key, value := range pairs {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("failed to update %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
