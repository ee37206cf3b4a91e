package queues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bunueleria-system/internal/domain"
)

// Info is a queue counter plus today's order counts for the admin dashboard.
type Info struct {
	domain.QueueCounter
	PendingOrders   int `json:"pendingOrders"`
	PreparingOrders int `json:"preparingOrders"`
	ReadyOrders     int `json:"readyOrders"`
	ActiveOrders    int `json:"activeOrders"`
}

type RepositoryInterface interface {
	ListWithStats(ctx context.Context, date string) ([]Info, error)
	Adjust(ctx context.Context, name domain.QueueType, action string, value int) (int, error)
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) ListWithStats(ctx context.Context, date string) ([]Info, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT q.name, q.display_name, q.prefix, q.current_counter, q.is_active,
		       COUNT(o.id) FILTER (WHERE o.status = 'pending')   AS pending_orders,
		       COUNT(o.id) FILTER (WHERE o.status = 'preparing') AS preparing_orders,
		       COUNT(o.id) FILTER (WHERE o.status = 'ready')     AS ready_orders,
		       COUNT(o.id) FILTER (WHERE o.status IN ('pending', 'preparing', 'ready')) AS active_orders
		FROM queue_types q
		LEFT JOIN orders o ON o.queue_type = q.name AND o.order_date::date = $1::date
		WHERE q.is_active
		GROUP BY q.id, q.name, q.display_name, q.prefix, q.current_counter, q.is_active
		ORDER BY q.id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list queues: %w", err)
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var q Info
		err := rows.Scan(&q.Name, &q.DisplayName, &q.Prefix, &q.Counter, &q.Active,
			&q.PendingOrders, &q.PreparingOrders, &q.ReadyOrders, &q.ActiveOrders)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// adjustSQL returns the single atomic UPDATE for each counter operation.
// Decrement floors at zero in SQL, so concurrent decrements can't drive the
// counter negative.
func adjustSQL(action string) (string, bool) {
	switch action {
	case "increment":
		return `UPDATE queue_types SET current_counter = current_counter + 1
			WHERE name = $1 RETURNING current_counter`, false
	case "decrement":
		return `UPDATE queue_types SET current_counter = GREATEST(current_counter - 1, 0)
			WHERE name = $1 RETURNING current_counter`, false
	case "reset":
		return `UPDATE queue_types SET current_counter = 0
			WHERE name = $1 RETURNING current_counter`, false
	case "set":
		return `UPDATE queue_types SET current_counter = $2
			WHERE name = $1 RETURNING current_counter`, true
	}
	return "", false
}

func (r *Repository) Adjust(ctx context.Context, name domain.QueueType, action string, value int) (int, error) {
	query, needsValue := adjustSQL(action)
	if query == "" {
		return 0, domain.ValidationError{Field: "action", Message: "invalid action"}
	}

	args := []any{name}
	if needsValue {
		args = append(args, value)
	}

	var counter int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&counter)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrQueueNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust queue %s: %w", name, err)
	}
	return counter, nil
}
