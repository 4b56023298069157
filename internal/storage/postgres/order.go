package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notify"
	"github.com/xenking/storefront/internal/domain/order"
)

const (
	orderColumns = `id, order_number, user_id, status, subtotal, tax_amount, shipping_amount,
		discount_amount, total_amount, coupon_id, coupon_code, payment_method,
		shipping_address, billing_address, tracking_number, delivered_at, notes,
		created_at, updated_at`

	getOrderSQL       = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	lockOrderSQL      = getOrderSQL + ` FOR UPDATE`
	listUserOrdersSQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	orderItemsSQL = `SELECT order_id, product_id, product_name, quantity, unit_price, line_total
		FROM order_items WHERE order_id = ANY($1) ORDER BY id`

	orderHistorySQL = `SELECT order_id, status, comment, actor, created_at
		FROM order_status_history WHERE order_id = ANY($1) ORDER BY id`

	insertOrderSQL = `INSERT INTO orders (order_number, user_id, status, subtotal, tax_amount,
		shipping_amount, discount_amount, total_amount, coupon_id, coupon_code, payment_method,
		shipping_address, billing_address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (order_number) DO NOTHING
		RETURNING id`

	insertOrderItemSQL = `INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)`

	insertHistorySQL = `INSERT INTO order_status_history (order_id, status, comment, actor, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	updateOrderSQL = `UPDATE orders SET status = $2, tracking_number = $3, delivered_at = $4, updated_at = $5
		WHERE id = $1`

	// cartLinesSQL locks the user's cart rows so two checkouts of the same
	// cart serialize.
	cartLinesSQL = `SELECT c.product_id, p.name, c.quantity, p.price, p.stock_quantity, p.is_active
		FROM cart_items c JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.product_id
		FOR UPDATE OF c`

	clearCartSQL = `DELETE FROM cart_items WHERE user_id = $1`

	decrementStockSQL = `UPDATE products SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND stock_quantity >= $2`

	restoreStockSQL = `UPDATE products SET stock_quantity = stock_quantity + $2, updated_at = NOW()
		WHERE id = $1`
)

// addressJSON is the JSONB form of order.Address.
type addressJSON struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country,omitempty"`
}

func toAddressJSON(a order.Address) addressJSON {
	return addressJSON(a)
}

func (a addressJSON) address() order.Address {
	return order.Address(a)
}

var _ order.Store = (*OrderStore)(nil)

// OrderStore implements order.Store backed by PostgreSQL.
type OrderStore struct {
	pool *pgxpool.Pool
}

// NewOrderStore returns an OrderStore that uses the given pool.
func NewOrderStore(pool *pgxpool.Pool) *OrderStore {
	return &OrderStore{pool: pool}
}

// InTx runs fn in a transaction that commits only when fn returns nil.
func (s *OrderStore) InTx(ctx context.Context, fn func(tx order.Tx) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(&orderTx{tx: tx})
	})
}

func (s *OrderStore) Get(ctx context.Context, id int64) (*order.Order, error) {
	return loadOrder(ctx, s.pool, getOrderSQL, id)
}

func (s *OrderStore) ListByUser(ctx context.Context, userID int64, f order.ListFilter) ([]order.Order, error) {
	var status *string
	if f.Status != nil {
		st := string(*f.Status)
		status = &st
	}
	rows, err := s.pool.Query(ctx, listUserOrdersSQL, userID, status, f.Limit, f.Offset)
	if err != nil {
		return nil, errors.Wrapf(err, "list orders of user %d", userID)
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, errors.Wrapf(err, "list orders of user %d", userID)
	}
	if err := attachDetails(ctx, s.pool, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type orderTx struct {
	tx pgx.Tx
}

func (t *orderTx) CartLines(ctx context.Context, userID int64) ([]order.CartLine, error) {
	rows, err := t.tx.Query(ctx, cartLinesSQL, userID)
	if err != nil {
		return nil, errors.Wrap(err, "query cart lines")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (order.CartLine, error) {
		var l order.CartLine
		err := row.Scan(&l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.StockQuantity, &l.IsActive)
		return l, err
	})
}

func (t *orderTx) ClearCart(ctx context.Context, userID int64) error {
	_, err := t.tx.Exec(ctx, clearCartSQL, userID)
	return err
}

func (t *orderTx) DecrementStock(ctx context.Context, productID int64, qty int) (bool, error) {
	tag, err := t.tx.Exec(ctx, decrementStockSQL, productID, qty)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (t *orderTx) RestoreStock(ctx context.Context, productID int64, qty int) error {
	_, err := t.tx.Exec(ctx, restoreStockSQL, productID, qty)
	return err
}

func (t *orderTx) InsertOrder(ctx context.Context, o *order.Order) (bool, error) {
	err := t.tx.QueryRow(ctx, insertOrderSQL,
		o.Number, o.UserID, string(o.Status), o.Subtotal, o.TaxAmount,
		o.ShippingAmount, o.DiscountAmount, o.TotalAmount, o.CouponID, o.CouponCode, string(o.PaymentMethod),
		toAddressJSON(o.ShippingAddress), toAddressJSON(o.BillingAddress), o.Notes, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	b := &pgx.Batch{}
	for _, it := range o.Items {
		b.Queue(insertOrderItemSQL, o.ID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.LineTotal)
	}
	for _, h := range o.History {
		b.Queue(insertHistorySQL, o.ID, string(h.Status), h.Comment, h.Actor, h.CreatedAt)
	}
	if err := t.tx.SendBatch(ctx, b).Close(); err != nil {
		return false, errors.Wrap(err, "insert order items")
	}
	return true, nil
}

func (t *orderTx) LockOrder(ctx context.Context, id int64) (*order.Order, error) {
	return loadOrder(ctx, t.tx, lockOrderSQL, id)
}

func (t *orderTx) UpdateOrder(ctx context.Context, o *order.Order) error {
	_, err := t.tx.Exec(ctx, updateOrderSQL, o.ID, string(o.Status), o.TrackingNumber, o.DeliveredAt, o.UpdatedAt)
	return err
}

func (t *orderTx) AppendHistory(ctx context.Context, orderID int64, ch order.StatusChange) error {
	_, err := t.tx.Exec(ctx, insertHistorySQL, orderID, string(ch.Status), ch.Comment, ch.Actor, ch.CreatedAt)
	return err
}

func (t *orderTx) Enqueue(ctx context.Context, e notify.Event) error {
	return insertEvent(ctx, t.tx, e)
}

func (t *orderTx) Coupons() coupon.Repository {
	return couponQueries{q: t.tx}
}

func loadOrder(ctx context.Context, q querier, sql string, id int64) (*order.Order, error) {
	rows, err := q.Query(ctx, sql, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %d", id)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get order %d", id)
	}

	orders := []order.Order{o}
	if err := attachDetails(ctx, q, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachDetails loads items and status history for orders in two queries.
func attachDetails(ctx context.Context, q querier, orders []order.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	rows, err := q.Query(ctx, orderItemsSQL, ids)
	if err != nil {
		return errors.Wrap(err, "query order items")
	}
	var (
		orderID int64
		it      order.Item
	)
	_, err = pgx.ForEachRow(rows, []any{&orderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.LineTotal}, func() error {
		o := &orders[index[orderID]]
		o.Items = append(o.Items, it)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "scan order items")
	}

	rows, err = q.Query(ctx, orderHistorySQL, ids)
	if err != nil {
		return errors.Wrap(err, "query order history")
	}
	var (
		status string
		ch     order.StatusChange
	)
	_, err = pgx.ForEachRow(rows, []any{&orderID, &status, &ch.Comment, &ch.Actor, &ch.CreatedAt}, func() error {
		ch.Status = order.Status(status)
		o := &orders[index[orderID]]
		o.History = append(o.History, ch)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "scan order history")
	}
	return nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o             order.Order
		status        string
		paymentMethod string
		shipping      addressJSON
		billing       addressJSON
	)
	err := row.Scan(
		&o.ID, &o.Number, &o.UserID, &status, &o.Subtotal, &o.TaxAmount, &o.ShippingAmount,
		&o.DiscountAmount, &o.TotalAmount, &o.CouponID, &o.CouponCode, &paymentMethod,
		&shipping, &billing, &o.TrackingNumber, &o.DeliveredAt, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
	)
	o.Status = order.Status(status)
	o.PaymentMethod = order.PaymentMethod(paymentMethod)
	o.ShippingAddress = shipping.address()
	o.BillingAddress = billing.address()
	return o, err
}
