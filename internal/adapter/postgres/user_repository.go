package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
)

// UserRepository implements port.UserRepository using pgxpool for PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetUser(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT username, role, disabled, hashed_password FROM users WHERE username = $1`, username).
		Scan(&u.Username, &u.Role, &u.Disabled, &u.HashedPassword)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT username, role, disabled FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		err := row.Scan(&u.Username, &u.Role, &u.Disabled)
		return u, err
	})
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (username, hashed_password, role, disabled) VALUES ($1, $2, $3, $4)`,
		user.Username, user.HashedPassword, user.Role, user.Disabled)
	if isUniqueViolation(err) {
		return port.ErrUserExists
	}
	return err
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET hashed_password = $2, role = $3, disabled = $4 WHERE username = $1`,
		user.Username, user.HashedPassword, user.Role, user.Disabled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, username string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}
