package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/user"
)

const (
	getUserByIDSQL = `SELECT id, email, name FROM users WHERE id = $1`

	upsertUserSQL = `INSERT INTO users (email, name) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`
)

var _ user.Repository = (*UserRepository)(nil)

// UserRepository implements user.Repository backed by PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a UserRepository that uses the given pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx, getUserByIDSQL, id).Scan(&u.ID, &u.Email, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get user %d", id)
	}
	return &u, nil
}

// Upsert inserts u or renames the user with the same email, setting u.ID.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	if err := r.pool.QueryRow(ctx, upsertUserSQL, u.Email, u.Name).Scan(&u.ID); err != nil {
		return errors.Wrapf(err, "upsert user %q", u.Email)
	}
	return nil
}
