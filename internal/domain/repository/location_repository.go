package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"
)

type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	FindByID(ctx context.Context, id int64) (*model.Location, error)
	Update(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, id int64) error
}

type pgLocationRepository struct {
	db *sql.DB
}

func NewPgLocationRepository(db *sql.DB) LocationRepository {
	return &pgLocationRepository{db: db}
}

func (r *pgLocationRepository) Create(ctx context.Context, location *model.Location) error {
	query := `INSERT INTO locations (star_system, area)
	          VALUES ($1, $2)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, location.StarSystem, location.Area).
		Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return fmt.Errorf("pgLocationRepository.Create: %w", err)
	}
	return nil
}

func (r *pgLocationRepository) FindByID(ctx context.Context, id int64) (*model.Location, error) {
	query := `SELECT id, star_system, area, created_at, updated_at
	          FROM locations WHERE id = $1`
	location := &model.Location{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&location.ID, &location.StarSystem, &location.Area, &location.CreatedAt, &location.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgLocationRepository.FindByID: %w", err)
	}
	return location, nil
}

func (r *pgLocationRepository) Update(ctx context.Context, location *model.Location) error {
	query := `UPDATE locations
	          SET star_system = $1, area = $2, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $3
	          RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, location.StarSystem, location.Area, location.ID).
		Scan(&location.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("pgLocationRepository.Update: %w", err)
	}
	return nil
}

func (r *pgLocationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgLocationRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
