package repository

import (
	"context"
	"fmt"

	"fraud_awareness/internal/model"
)

// MaterialRepository defines operations for awareness material data
type MaterialRepository interface {
	FindAll(ctx context.Context) ([]model.Material, error)
}

type materialRepository struct {
	db Querier
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db Querier) MaterialRepository {
	return &materialRepository{db: db}
}

// FindAll retrieves all awareness materials, newest first
func (r *materialRepository) FindAll(ctx context.Context) ([]model.Material, error) {
	sql := `SELECT id, title, content, category, created_at FROM fraud_materials ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query fraud materials: %w", err)
	}
	defer rows.Close()

	var materials []model.Material
	for rows.Next() {
		var m model.Material
		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.Category, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fraud material row: %w", err)
		}
		materials = append(materials, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fraud material rows: %w", err)
	}
	return materials, nil
}
