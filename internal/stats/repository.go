package stats

import (
	"context"
	"database/sql"
	"fmt"
)

// DailyStats summarizes one day of orders for the admin dashboard.
type DailyStats struct {
	Date            string        `json:"date"`
	TotalOrders     int           `json:"totalOrders"`
	PendingOrders   int           `json:"pendingOrders"`
	PreparingOrders int           `json:"preparingOrders"`
	ReadyOrders     int           `json:"readyOrders"`
	DeliveredOrders int           `json:"deliveredOrders"`
	CancelledOrders int           `json:"cancelledOrders"`
	Revenue         int64         `json:"revenue"`
	TopProducts     []ProductStat `json:"topProducts"`
}

// ProductStat is one row of the day's best sellers.
type ProductStat struct {
	ItemID        string `json:"id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"totalQuantity"`
	TotalRevenue  int64  `json:"totalRevenue"`
}

type RepositoryInterface interface {
	Daily(ctx context.Context, date string) (DailyStats, error)
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) Daily(ctx context.Context, date string) (DailyStats, error) {
	s := DailyStats{Date: date}

	// Revenue counts every order that wasn't cancelled.
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'preparing'),
		       COUNT(*) FILTER (WHERE status = 'ready'),
		       COUNT(*) FILTER (WHERE status = 'delivered'),
		       COUNT(*) FILTER (WHERE status = 'cancelled'),
		       COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0)
		FROM orders
		WHERE order_date::date = $1::date
	`, date).Scan(&s.TotalOrders, &s.PendingOrders, &s.PreparingOrders,
		&s.ReadyOrders, &s.DeliveredOrders, &s.CancelledOrders, &s.Revenue)
	if err != nil {
		return DailyStats{}, fmt.Errorf("failed to load daily stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.item_id, oi.name, SUM(oi.quantity) AS total_quantity, SUM(oi.total_price) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.order_date::date = $1::date AND o.status <> 'cancelled'
		GROUP BY oi.item_id, oi.name
		ORDER BY total_quantity DESC
		LIMIT 5
	`, date)
	if err != nil {
		return DailyStats{}, fmt.Errorf("failed to load top products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p ProductStat
		if err := rows.Scan(&p.ItemID, &p.Name, &p.TotalQuantity, &p.TotalRevenue); err != nil {
			return DailyStats{}, err
		}
		s.TopProducts = append(s.TopProducts, p)
	}
	return s, rows.Err()
}
