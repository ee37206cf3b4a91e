package domain

import "time"

type OrderType string

const (
	OrderTypePhysical OrderType = "physical"
	OrderTypeDelivery OrderType = "delivery"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a recognized status value.
// Transitions themselves are unrestricted: the admin dashboard may move an
// order to any recognized status, including backwards.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// QueueType is the ordering queue an order's turn number belongs to.
type QueueType string

const (
	QueueTradicionales QueueType = "tradicionales"
	QueueEspeciales    QueueType = "especiales"
	QueueMixtos        QueueType = "mixtos"
)

// OrderLine is a cart line after validation: price and category are copied
// from the catalog, never from the client.
type OrderLine struct {
	ItemID   string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category"`
}

// DeliveryData is required for delivery orders.
type DeliveryData struct {
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Neighborhood  string `json:"neighborhood"`
	PaymentMethod string `json:"paymentMethod"`
}

type Order struct {
	ID           int64         `json:"id"`
	OrderCode    string        `json:"orderCode"`
	CustomerName string        `json:"customerName"`
	TurnNumber   string        `json:"turnNumber"`
	OrderType    OrderType     `json:"orderType"`
	Status       OrderStatus   `json:"status"`
	Items        []OrderLine   `json:"items"`
	Total        int64         `json:"total"`
	QueueType    QueueType     `json:"queueType"`
	Delivery     *DeliveryData `json:"deliveryData,omitempty"`
	OrderDate    time.Time     `json:"orderDate"`
	DeliveredAt  *time.Time    `json:"deliveredAt,omitempty"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// QueueCounter is one numbered service queue. The counter only moves through
// increment/decrement/reset/set and never goes below zero.
type QueueCounter struct {
	Name        QueueType `json:"name"`
	DisplayName string    `json:"displayName"`
	Prefix      string    `json:"prefix"`
	Counter     int       `json:"currentCounter"`
	Active      bool      `json:"isActive"`
}
