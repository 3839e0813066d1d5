package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

const orderColumns = `
	id, number, customer_id, cart_id, currency, status, payment_status,
	shipping_method, payment_method, shipping_address, billing_address, phone, coupon_code,
	subtotal_minor, discount_minor, shipping_fee_minor, tax_minor, wallet_used_minor, total_minor,
	version, created_at, updated_at`

type orderRepository struct {
	store *Store
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	shipping, billing, err := marshalAddresses(order)
	if err != nil {
		return err
	}

	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		`,
			order.ID, order.Number, order.CustomerID, order.CartID, order.Currency,
			string(order.Status), string(order.PaymentStatus),
			string(order.ShippingMethod), string(order.PaymentMethod), shipping, billing,
			order.Phone, order.CouponCode,
			order.SubtotalMinor, order.DiscountMinor, order.ShippingFeeMinor, order.TaxMinor,
			order.WalletUsedMinor, order.TotalMinor,
			order.Version, order.CreatedAt, order.UpdatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyExists
			}
			return fmt.Errorf("insert order: %w", err)
		}

		for i, item := range order.Items {
			var inventory sql.NullInt64
			if item.Variant != nil {
				inventory = sql.NullInt64{Int64: item.Variant.Inventory, Valid: true}
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (
					id, order_id, position, name, image, variant_id, variant_inventory, qty, price_minor
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			`,
				item.ID, order.ID, i, item.Name, item.Image, item.VariantID, inventory, item.Qty, item.PriceMinor,
			); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		if err := insertEvents(ctx, tx, order.Timeline); err != nil {
			return err
		}
		return insertReturns(ctx, tx, order.ID, order.Returns)
	})
}

func (r *orderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	return r.getBy(ctx, "id", id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (domain.Order, error) {
	return r.getBy(ctx, "number", number)
}

func (r *orderRepository) getBy(ctx context.Context, column, value string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	order, err := scanOrder(r.store.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE `+column+` = $1`, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	if err := r.loadDetails(ctx, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.store.db.QueryContext(ctx, query+" LIMIT $2", customerID, limit)
	} else {
		rows, err = r.store.db.QueryContext(ctx, query, customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		if err := r.loadDetails(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// Save обновляет статусы с проверкой версии и дописывает новые записи таймлайна
// и возвраты в одной транзакции.
func (r *orderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE orders
			SET status = $1,
			    payment_status = $2,
			    version = version + 1,
			    updated_at = $3
			WHERE id = $4
			  AND version = $5
		`,
			string(order.Status), string(order.PaymentStatus), order.UpdatedAt, order.ID, order.Version,
		)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			exists, err := orderExistsTx(ctx, tx, order.ID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrOrderNotFound
			}
			return domain.ErrVersionConflict
		}

		var events, returns int
		if err := tx.QueryRowContext(ctx, `
			SELECT
				(SELECT COUNT(*) FROM order_status_events WHERE order_id = $1),
				(SELECT COUNT(*) FROM order_returns WHERE order_id = $1)
		`, order.ID).Scan(&events, &returns); err != nil {
			return fmt.Errorf("count order history: %w", err)
		}
		if len(order.Timeline) < events || len(order.Returns) < returns {
			return domain.Invalid("order %s history is append-only", order.ID)
		}

		if err := insertEvents(ctx, tx, order.Timeline[events:]); err != nil {
			return err
		}
		return insertReturns(ctx, tx, order.ID, order.Returns[returns:])
	})
	if err != nil {
		return domain.Order{}, err
	}

	saved := order.Clone()
	saved.Version++
	return saved, nil
}

func (r *orderRepository) loadDetails(ctx context.Context, order *domain.Order) error {
	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return err
	}
	order.Items = items

	if order.Timeline, err = r.loadEvents(ctx, order.ID); err != nil {
		return err
	}
	order.Returns, err = r.loadReturns(ctx, order.ID)
	return err
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, name, image, variant_id, variant_inventory, qty, price_minor
		FROM order_items
		WHERE order_id = $1
		ORDER BY position ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var (
			item      domain.OrderItem
			inventory sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Image, &item.VariantID, &inventory, &item.Qty, &item.PriceMinor); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if inventory.Valid {
			item.Variant = &domain.VariantRef{ID: item.VariantID, Inventory: inventory.Int64}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

func (r *orderRepository) loadEvents(ctx context.Context, orderID string) ([]domain.OrderStatusEvent, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT order_id, from_status, to_status, message, created_at
		FROM order_status_events
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order timeline: %w", err)
	}
	defer rows.Close()

	events := make([]domain.OrderStatusEvent, 0)
	for rows.Next() {
		var (
			event    domain.OrderStatusEvent
			from, to string
		)
		if err := rows.Scan(&event.OrderID, &from, &to, &event.Message, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order status event: %w", err)
		}
		event.FromStatus = domain.OrderStatus(from)
		event.ToStatus = domain.OrderStatus(to)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order timeline: %w", err)
	}
	return events, nil
}

func (r *orderRepository) loadReturns(ctx context.Context, orderID string) ([]domain.ReturnRequest, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT item_id, reason, requested_at
		FROM order_returns
		WHERE order_id = $1
		ORDER BY requested_at ASC, item_id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order returns: %w", err)
	}
	defer rows.Close()

	var returns []domain.ReturnRequest
	for rows.Next() {
		var ret domain.ReturnRequest
		if err := rows.Scan(&ret.ItemID, &ret.Reason, &ret.RequestedAt); err != nil {
			return nil, fmt.Errorf("scan order return: %w", err)
		}
		returns = append(returns, ret)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order returns: %w", err)
	}
	return returns, nil
}

func insertEvents(ctx context.Context, tx *sql.Tx, events []domain.OrderStatusEvent) error {
	for _, event := range events {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_status_events (order_id, from_status, to_status, message, created_at)
			VALUES ($1,$2,$3,$4,$5)
		`, event.OrderID, string(event.FromStatus), string(event.ToStatus), event.Message, event.CreatedAt); err != nil {
			return fmt.Errorf("insert order status event: %w", err)
		}
	}
	return nil
}

func insertReturns(ctx context.Context, tx *sql.Tx, orderID string, returns []domain.ReturnRequest) error {
	for _, ret := range returns {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_returns (order_id, item_id, reason, requested_at)
			VALUES ($1,$2,$3,$4)
		`, orderID, ret.ItemID, ret.Reason, ret.RequestedAt); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: item %s already returned", domain.ErrReturnNotAllowed, ret.ItemID)
			}
			return fmt.Errorf("insert order return: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order                                            domain.Order
		status, paymentStatus, shippingMethod, payMethod string
		shipping, billing                                []byte
	)
	if err := row.Scan(
		&order.ID, &order.Number, &order.CustomerID, &order.CartID, &order.Currency,
		&status, &paymentStatus, &shippingMethod, &payMethod, &shipping, &billing,
		&order.Phone, &order.CouponCode,
		&order.SubtotalMinor, &order.DiscountMinor, &order.ShippingFeeMinor, &order.TaxMinor,
		&order.WalletUsedMinor, &order.TotalMinor,
		&order.Version, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentStatus = domain.PaymentStatus(paymentStatus)
	order.ShippingMethod = domain.ShippingMethod(shippingMethod)
	order.PaymentMethod = domain.PaymentMethod(payMethod)

	var err error
	if order.ShippingAddress, err = unmarshalAddress(shipping); err != nil {
		return domain.Order{}, err
	}
	if order.BillingAddress, err = unmarshalAddress(billing); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func marshalAddresses(order domain.Order) (shipping, billing []byte, err error) {
	if order.ShippingAddress != nil {
		if shipping, err = json.Marshal(order.ShippingAddress); err != nil {
			return nil, nil, fmt.Errorf("marshal shipping address: %w", err)
		}
	}
	if order.BillingAddress != nil {
		if billing, err = json.Marshal(order.BillingAddress); err != nil {
			return nil, nil, fmt.Errorf("marshal billing address: %w", err)
		}
	}
	return shipping, billing, nil
}

func unmarshalAddress(raw []byte) (*domain.Address, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var addr domain.Address
	if err := json.Unmarshal(raw, &addr); err != nil {
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}
	return &addr, nil
}

func orderExistsTx(ctx context.Context, tx *sql.Tx, orderID string) (bool, error) {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM orders WHERE id = $1`, orderID).Scan(&id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, fmt.Errorf("check order exists: %w", err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
