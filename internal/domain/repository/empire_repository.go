package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type EmpireRepository interface {
	Create(ctx context.Context, empire *model.Empire) error
	FindByID(ctx context.Context, id int64) (*model.Empire, error)
	Update(ctx context.Context, empire *model.Empire) error
	Delete(ctx context.Context, id int64) error
}

type pgEmpireRepository struct {
	db *sql.DB
}

func NewPgEmpireRepository(db *sql.DB) EmpireRepository {
	return &pgEmpireRepository{db: db}
}

func (r *pgEmpireRepository) Create(ctx context.Context, empire *model.Empire) error {
	query := `INSERT INTO empires (name, slug, slogan, location_id, description)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		empire.Name, empire.Slug, empire.Slogan, empire.LocationID, empire.Description,
	).Scan(&empire.ID, &empire.CreatedAt, &empire.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // slug unique constraint
				return fmt.Errorf("empire with this slug already exists: %w", common.ErrConflict)
			case "23503": // location_id foreign key
				return fmt.Errorf("referenced location does not exist: %w", common.ErrBadRequest)
			}
		}
		return fmt.Errorf("pgEmpireRepository.Create: %w", err)
	}
	return nil
}

func (r *pgEmpireRepository) FindByID(ctx context.Context, id int64) (*model.Empire, error) {
	query := `SELECT id, name, slug, slogan, location_id, description, created_at, updated_at
	          FROM empires WHERE id = $1`
	empire := &model.Empire{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&empire.ID, &empire.Name, &empire.Slug, &empire.Slogan, &empire.LocationID,
		&empire.Description, &empire.CreatedAt, &empire.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEmpireRepository.FindByID: %w", err)
	}
	return empire, nil
}

func (r *pgEmpireRepository) Update(ctx context.Context, empire *model.Empire) error {
	query := `UPDATE empires
	          SET name = $1, slug = $2, slogan = $3, location_id = $4, description = $5, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $6
	          RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		empire.Name, empire.Slug, empire.Slogan, empire.LocationID, empire.Description, empire.ID,
	).Scan(&empire.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("referenced location does not exist: %w", common.ErrBadRequest)
		}
		return fmt.Errorf("pgEmpireRepository.Update: %w", err)
	}
	return nil
}

func (r *pgEmpireRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM empires WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgEmpireRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
