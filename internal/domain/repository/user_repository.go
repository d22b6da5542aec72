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

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (email, hashed_password, fullname, role)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.HashedPassword, user.FullName, user.Role.String(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, email, hashed_password, fullname, role, created_at, updated_at
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, hashed_password, fullname, role, created_at, updated_at
	          FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email), "FindByEmail")
}

func (r *pgUserRepository) scanUser(row *sql.Row, op string) (*model.User, error) {
	user := &model.User{}
	var storedRole string
	err := row.Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.FullName, &storedRole,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.%s: %w", op, err)
	}

	// An unrecognized stored role is a data-integrity failure, not READER.
	role, err := model.ParseRole(storedRole)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.%s: user %d: %w", op, user.ID, err)
	}
	user.Role = role
	return user, nil
}

func (r *pgUserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users
	          SET email = $1, hashed_password = $2, fullname = $3, role = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $5
	          RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.HashedPassword, user.FullName, user.Role.String(), user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	return nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
