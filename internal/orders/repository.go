package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bunueleria-system/internal/domain"
)

type ListFilter struct {
	Date   string // YYYY-MM-DD, required
	Status string // empty or "all" means no filter
	Queue  string
}

type RepositoryInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	OrderCodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, f ListFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (domain.Order, error)
	SetStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) RepositoryInterface {
	return &Repository{db: db}
}

// Create persists the order, its items and the initial status-log row in one
// transaction. The same transaction bumps the queue counter, so the turn
// number is collision-free even under concurrent submissions.
func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Take the next turn number for the order's queue.
	var turn int
	var prefix string
	err = tx.QueryRowContext(ctx, `
		UPDATE queue_types
		SET current_counter = current_counter + 1
		WHERE name = $1 AND is_active
		RETURNING current_counter, prefix
	`, order.QueueType).Scan(&turn, &prefix)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("queue %s: %w", order.QueueType, domain.ErrQueueNotFound)
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to advance queue counter: %w", err)
	}
	order.TurnNumber = fmt.Sprintf("%s%03d", prefix, turn)

	// 2. Insert the order.
	var phone, addr, hood, payment sql.NullString
	if order.Delivery != nil {
		phone = sql.NullString{String: order.Delivery.Phone, Valid: true}
		addr = sql.NullString{String: order.Delivery.Address, Valid: true}
		hood = sql.NullString{String: order.Delivery.Neighborhood, Valid: true}
		payment = sql.NullString{String: order.Delivery.PaymentMethod, Valid: true}
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders
		    (order_code, customer_name, turn_number, order_type, queue_type, status, total_amount,
		     delivery_phone, delivery_address, delivery_neighborhood, delivery_payment_method,
		     order_date, updated_at)
		VALUES
		    ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, order_date, updated_at
	`,
		order.OrderCode,
		order.CustomerName,
		order.TurnNumber,
		order.OrderType,
		order.QueueType,
		order.Status,
		order.Total,
		phone, addr, hood, payment,
	).Scan(&order.ID, &order.OrderDate, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	// 3. Insert the validated items.
	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, name, category, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, order.ID, item.ItemID, item.Name, item.Category, item.Quantity, item.Price, item.Price*int64(item.Quantity))
		if err != nil {
			return fmt.Errorf("failed to insert order item %s: %w", item.ItemID, err)
		}
	}

	// 4. Record the initial status.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_status_log (order_id, status, changed_by)
		VALUES ($1, $2, 'order-service')
	`, order.ID, order.Status)
	if err != nil {
		return fmt.Errorf("failed to insert order status log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) OrderCodeExists(ctx context.Context, code string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE order_code = $1`, code).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check order code: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.Order, error) {
	query := `
		SELECT id, order_code, customer_name, turn_number, order_type, queue_type, status, total_amount,
		       delivery_phone, delivery_address, delivery_neighborhood, delivery_payment_method,
		       order_date, delivered_at, updated_at
		FROM orders
		WHERE order_date::date = $1::date`
	args := []any{f.Date}

	if f.Status != "" && f.Status != "all" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Queue != "" && f.Queue != "all" {
		args = append(args, f.Queue)
		query += fmt.Sprintf(" AND queue_type = $%d", len(args))
	}
	query += " ORDER BY order_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.orderItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, order_code, customer_name, turn_number, order_type, queue_type, status, total_amount,
		       delivery_phone, delivery_address, delivery_neighborhood, delivery_payment_method,
		       order_date, delivered_at, updated_at
		FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}

	o.Items, err = r.orderItems(ctx, o.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    updated_at = NOW(),
		    delivered_at = CASE WHEN $1 = 'delivered' THEN NOW() ELSE delivered_at END
		WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		err = domain.ErrOrderNotFound
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_status_log (order_id, status, changed_by)
		VALUES ($1, $2, 'admin-dashboard')
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to insert order status log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) orderItems(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_id, name, category, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderLine
	for rows.Next() {
		var it domain.OrderLine
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Category, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	var phone, addr, hood, payment sql.NullString
	err := row.Scan(
		&o.ID, &o.OrderCode, &o.CustomerName, &o.TurnNumber, &o.OrderType, &o.QueueType,
		&o.Status, &o.Total, &phone, &addr, &hood, &payment,
		&o.OrderDate, &o.DeliveredAt, &o.UpdatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	if phone.Valid || addr.Valid || hood.Valid {
		o.Delivery = &domain.DeliveryData{
			Phone:         phone.String,
			Address:       addr.String,
			Neighborhood:  hood.String,
			PaymentMethod: payment.String,
		}
	}
	return o, nil
}
