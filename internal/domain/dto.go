package domain

// CartLine is untrusted client input. A spoofed "price" field, if sent,
// is simply not decoded.
type CartLine struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName string        `json:"customerName" validate:"required"`
	OrderType    OrderType     `json:"orderType" validate:"required,oneof=physical delivery"`
	Items        []CartLine    `json:"items" validate:"required,min=1,dive"`
	Delivery     *DeliveryData `json:"deliveryData,omitempty"`
}

type UpdateStatusRequest struct {
	ID     int64       `json:"id" validate:"required"`
	Status OrderStatus `json:"status" validate:"required"`
}

type AdjustQueueRequest struct {
	QueueName QueueType `json:"queue_name" validate:"required"`
	Action    string    `json:"action" validate:"required,oneof=increment decrement reset set"`
	Value     *int      `json:"value,omitempty"`
}
