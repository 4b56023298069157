package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/cart"
)

const (
	listCartSQL = `SELECT user_id, product_id, quantity, price_at_add, added_at
		FROM cart_items WHERE user_id = $1 ORDER BY added_at, product_id`

	upsertCartItemSQL = `INSERT INTO cart_items (user_id, product_id, quantity, price_at_add, added_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, product_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			price_at_add = EXCLUDED.price_at_add`

	removeCartItemSQL = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
)

var _ cart.Repository = (*CartRepository)(nil)

// CartRepository implements cart.Repository backed by PostgreSQL.
type CartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a CartRepository that uses the given pool.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) List(ctx context.Context, userID int64) ([]cart.Item, error) {
	rows, err := r.pool.Query(ctx, listCartSQL, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "list cart of user %d", userID)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (cart.Item, error) {
		var it cart.Item
		err := row.Scan(&it.UserID, &it.ProductID, &it.Quantity, &it.PriceAtAdd, &it.AddedAt)
		return it, err
	})
}

func (r *CartRepository) Upsert(ctx context.Context, it cart.Item) error {
	_, err := r.pool.Exec(ctx, upsertCartItemSQL, it.UserID, it.ProductID, it.Quantity, it.PriceAtAdd, it.AddedAt)
	if err != nil {
		return errors.Wrapf(err, "upsert cart item %d for user %d", it.ProductID, it.UserID)
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, productID int64) error {
	tag, err := r.pool.Exec(ctx, removeCartItemSQL, userID, productID)
	if err != nil {
		return errors.Wrapf(err, "remove cart item %d for user %d", productID, userID)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}
