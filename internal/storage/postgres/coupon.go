package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/coupon"
)

const (
	couponColumns = `id, code, description, discount_type, discount_value, minimum_order_amount,
		maximum_discount_amount, usage_limit, used_count, valid_from, valid_until, is_active,
		created_at, updated_at`

	findCouponByCodeSQL = `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`
	findCouponByIDSQL   = `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`
	listCouponsSQL      = `SELECT ` + couponColumns + ` FROM coupons ORDER BY id`

	hasCouponUsageSQL = `SELECT EXISTS (SELECT 1 FROM coupon_usages WHERE coupon_id = $1 AND user_id = $2)`

	// incrementCouponUseSQL refuses to pass the usage limit; the row lock it
	// takes serializes concurrent redemptions of the same coupon.
	incrementCouponUseSQL = `UPDATE coupons SET used_count = used_count + 1, updated_at = NOW()
		WHERE id = $1 AND (usage_limit IS NULL OR used_count < usage_limit)`

	insertCouponUsageSQL = `INSERT INTO coupon_usages (coupon_id, user_id, order_id, used_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (coupon_id, user_id) DO NOTHING`

	insertCouponSQL = `INSERT INTO coupons (code, description, discount_type, discount_value,
		minimum_order_amount, maximum_discount_amount, usage_limit, valid_from, valid_until,
		is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	upsertCouponSQL = `INSERT INTO coupons (code, description, discount_type, discount_value,
		minimum_order_amount, maximum_discount_amount, usage_limit, valid_from, valid_until, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (code) DO UPDATE SET
			description = EXCLUDED.description,
			discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value,
			minimum_order_amount = EXCLUDED.minimum_order_amount,
			maximum_discount_amount = EXCLUDED.maximum_discount_amount,
			usage_limit = CASE WHEN EXCLUDED.usage_limit < coupons.used_count
				THEN coupons.used_count ELSE EXCLUDED.usage_limit END,
			valid_from = EXCLUDED.valid_from,
			valid_until = EXCLUDED.valid_until,
			updated_at = NOW()
		RETURNING id, usage_limit, is_active`

	setCouponActiveSQL = `UPDATE coupons SET is_active = $2, updated_at = NOW() WHERE id = $1`

	deleteCouponSQL = `DELETE FROM coupons WHERE id = $1
		AND NOT EXISTS (SELECT 1 FROM coupon_usages WHERE coupon_id = $1)`

	couponExistsSQL = `SELECT EXISTS (SELECT 1 FROM coupons WHERE id = $1)`

	orderOwnedBySQL = `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1 AND user_id = $2)`
)

// couponQueries implements coupon.Repository on either the pool or a
// transaction.
type couponQueries struct {
	q querier
}

var _ coupon.Repository = couponQueries{}

func (r couponQueries) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return r.findOne(ctx, findCouponByCodeSQL, code)
}

func (r couponQueries) HasUsage(ctx context.Context, couponID, userID int64) (bool, error) {
	var used bool
	if err := r.q.QueryRow(ctx, hasCouponUsageSQL, couponID, userID).Scan(&used); err != nil {
		return false, errors.Wrapf(err, "check usage of coupon %d", couponID)
	}
	return used, nil
}

func (r couponQueries) RecordUsage(ctx context.Context, u coupon.Usage) error {
	tag, err := r.q.Exec(ctx, incrementCouponUseSQL, u.CouponID)
	if err != nil {
		return errors.Wrapf(err, "increment uses of coupon %d", u.CouponID)
	}
	if tag.RowsAffected() == 0 {
		return coupon.ErrUsageLimitReached
	}

	tag, err = r.q.Exec(ctx, insertCouponUsageSQL, u.CouponID, u.UserID, u.OrderID, u.UsedAt)
	if err != nil {
		return errors.Wrapf(err, "insert usage of coupon %d", u.CouponID)
	}
	if tag.RowsAffected() == 0 {
		return coupon.ErrAlreadyUsed
	}
	return nil
}

func (r couponQueries) findOne(ctx context.Context, sql string, arg any) (*coupon.Coupon, error) {
	rows, err := r.q.Query(ctx, sql, arg)
	if err != nil {
		return nil, errors.Wrapf(err, "find coupon %v", arg)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coupon.ErrNotFound
		}
		return nil, errors.Wrapf(err, "find coupon %v", arg)
	}
	return &c, nil
}

var _ coupon.Store = (*CouponStore)(nil)

// CouponStore implements coupon.Store backed by PostgreSQL.
type CouponStore struct {
	couponQueries
	pool *pgxpool.Pool
}

// NewCouponStore returns a CouponStore that uses the given pool.
func NewCouponStore(pool *pgxpool.Pool) *CouponStore {
	return &CouponStore{couponQueries: couponQueries{q: pool}, pool: pool}
}

// RecordUsage runs the redemption in its own transaction.
func (s *CouponStore) RecordUsage(ctx context.Context, u coupon.Usage) error {
	return s.InTx(ctx, func(repo coupon.Repository) error {
		return repo.RecordUsage(ctx, u)
	})
}

func (s *CouponStore) InTx(ctx context.Context, fn func(repo coupon.Repository) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(couponQueries{q: tx})
	})
}

func (s *CouponStore) FindByID(ctx context.Context, id int64) (*coupon.Coupon, error) {
	return s.findOne(ctx, findCouponByIDSQL, id)
}

func (s *CouponStore) List(ctx context.Context) ([]coupon.Coupon, error) {
	rows, err := s.pool.Query(ctx, listCouponsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "list coupons")
	}
	return pgx.CollectRows(rows, scanCoupon)
}

func (s *CouponStore) Create(ctx context.Context, c *coupon.Coupon) error {
	err := s.pool.QueryRow(ctx, insertCouponSQL,
		c.Code, c.Description, string(c.DiscountType), c.Value,
		c.MinimumOrderAmount, c.MaximumDiscountAmount, c.UsageLimit, c.ValidFrom, c.ValidUntil,
		c.IsActive, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return coupon.ErrCodeTaken
		}
		return errors.Wrapf(err, "create coupon %s", c.Code)
	}
	return nil
}

// Upsert inserts c or redefines the coupon with the same code. An existing
// coupon keeps its used count and active flag, and its usage limit is never
// lowered below the used count. c is updated with the stored values.
func (s *CouponStore) Upsert(ctx context.Context, c *coupon.Coupon) error {
	err := s.pool.QueryRow(ctx, upsertCouponSQL,
		c.Code, c.Description, string(c.DiscountType), c.Value,
		c.MinimumOrderAmount, c.MaximumDiscountAmount, c.UsageLimit, c.ValidFrom, c.ValidUntil,
		c.IsActive,
	).Scan(&c.ID, &c.UsageLimit, &c.IsActive)
	if err != nil {
		return errors.Wrapf(err, "upsert coupon %s", c.Code)
	}
	return nil
}

func (s *CouponStore) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := s.pool.Exec(ctx, setCouponActiveSQL, id, active)
	if err != nil {
		return errors.Wrapf(err, "set coupon %d active=%t", id, active)
	}
	if tag.RowsAffected() == 0 {
		return coupon.ErrNotFound
	}
	return nil
}

func (s *CouponStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, deleteCouponSQL, id)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			// Referenced by an order without a usage row.
			return coupon.ErrInUse
		}
		return errors.Wrapf(err, "delete coupon %d", id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, couponExistsSQL, id).Scan(&exists); err != nil {
		return errors.Wrapf(err, "check coupon %d", id)
	}
	if exists {
		return coupon.ErrInUse
	}
	return coupon.ErrNotFound
}

func (s *CouponStore) OrderOwnedBy(ctx context.Context, orderID, userID int64) (bool, error) {
	var owned bool
	if err := s.pool.QueryRow(ctx, orderOwnedBySQL, orderID, userID).Scan(&owned); err != nil {
		return false, errors.Wrapf(err, "check order %d owner", orderID)
	}
	return owned, nil
}

func scanCoupon(row pgx.CollectableRow) (coupon.Coupon, error) {
	var (
		c            coupon.Coupon
		discountType string
	)
	err := row.Scan(
		&c.ID, &c.Code, &c.Description, &discountType, &c.Value, &c.MinimumOrderAmount,
		&c.MaximumDiscountAmount, &c.UsageLimit, &c.UsedCount, &c.ValidFrom, &c.ValidUntil, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	c.DiscountType = coupon.DiscountType(discountType)
	return c, err
}
