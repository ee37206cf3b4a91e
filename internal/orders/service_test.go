package orders

import (
	"context"
	"testing"

	"bunueleria-system/internal/catalog"
	"bunueleria-system/internal/domain"
	"bunueleria-system/internal/logger"

	"github.com/stretchr/testify/require"
)

// mockRepo records calls and simulates the store.
type mockRepo struct {
	created     []domain.Order
	existing    map[string]bool
	setStatuses []domain.OrderStatus
	orders      map[int64]domain.Order
}

func newMockRepo() *mockRepo {
	return &mockRepo{existing: map[string]bool{}, orders: map[int64]domain.Order{}}
}

func (m *mockRepo) Create(_ context.Context, o *domain.Order) error {
	o.ID = int64(len(m.created) + 1)
	o.TurnNumber = "T001"
	m.created = append(m.created, *o)
	return nil
}

func (m *mockRepo) OrderCodeExists(_ context.Context, code string) (bool, error) {
	return m.existing[code], nil
}

func (m *mockRepo) List(_ context.Context, _ ListFilter) ([]domain.Order, error) { return nil, nil }

func (m *mockRepo) GetByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

func (m *mockRepo) SetStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	o, ok := m.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	m.orders[id] = o
	m.setStatuses = append(m.setStatuses, status)
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

type mockPublisher struct {
	created       int
	statusChanged int
}

func (m *mockPublisher) OrderCreated(_ context.Context, _ domain.Order) error {
	m.created++
	return nil
}

func (m *mockPublisher) OrderStatusChanged(_ context.Context, _ int64, _ domain.OrderStatus) error {
	m.statusChanged++
	return nil
}

func newTestService(repo RepositoryInterface, pub EventPublisher) ServiceInterface {
	return NewService(repo, catalog.New(), pub, logger.New("test"))
}

func TestCreateOrder(t *testing.T) {
	repo := newMockRepo()
	pub := &mockPublisher{}
	svc := newTestService(repo, pub)

	order, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		CustomerName: "María",
		OrderType:    domain.OrderTypePhysical,
		Items: []domain.CartLine{
			{ID: "bunuelo-clasico", Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.Equal(t, domain.StatusPending, order.Status)
	require.Equal(t, int64(3000), order.Total)
	require.Equal(t, domain.QueueTradicionales, order.QueueType)
	require.Regexp(t, `^REY\d{6}$`, order.OrderCode)
	require.Equal(t, "T001", order.TurnNumber)
	require.Len(t, repo.created, 1)
	require.Equal(t, 1, pub.created)
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		req  domain.CreateOrderRequest
	}{
		{
			name: "missing customer name",
			req: domain.CreateOrderRequest{
				OrderType: domain.OrderTypePhysical,
				Items:     []domain.CartLine{{ID: "bunuelo-clasico", Quantity: 1}},
			},
		},
		{
			name: "blank customer name",
			req: domain.CreateOrderRequest{
				CustomerName: "   ",
				OrderType:    domain.OrderTypePhysical,
				Items:        []domain.CartLine{{ID: "bunuelo-clasico", Quantity: 1}},
			},
		},
		{
			name: "invalid order type",
			req: domain.CreateOrderRequest{
				CustomerName: "María",
				OrderType:    "drive_thru",
				Items:        []domain.CartLine{{ID: "bunuelo-clasico", Quantity: 1}},
			},
		},
		{
			name: "empty items",
			req: domain.CreateOrderRequest{
				CustomerName: "María",
				OrderType:    domain.OrderTypePhysical,
			},
		},
		{
			name: "delivery without delivery data",
			req: domain.CreateOrderRequest{
				CustomerName: "María",
				OrderType:    domain.OrderTypeDelivery,
				Items:        []domain.CartLine{{ID: "bunuelo-clasico", Quantity: 1}},
			},
		},
		{
			name: "delivery with incomplete delivery data",
			req: domain.CreateOrderRequest{
				CustomerName: "María",
				OrderType:    domain.OrderTypeDelivery,
				Items:        []domain.CartLine{{ID: "bunuelo-clasico", Quantity: 1}},
				Delivery:     &domain.DeliveryData{Phone: "3001234567"},
			},
		},
		{
			name: "unknown item",
			req: domain.CreateOrderRequest{
				CustomerName: "María",
				OrderType:    domain.OrderTypePhysical,
				Items:        []domain.CartLine{{ID: "does-not-exist", Quantity: 1}},
			},
		},
		{
			name: "zero quantity",
			req: domain.CreateOrderRequest{
				CustomerName: "María",
				OrderType:    domain.OrderTypePhysical,
				Items:        []domain.CartLine{{ID: "bunuelo-clasico", Quantity: 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			pub := &mockPublisher{}
			svc := newTestService(repo, pub)

			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			require.True(t, domain.IsValidation(err), "expected a validation error, got %v", err)
			// nothing persisted and nothing published on failure
			require.Empty(t, repo.created)
			require.Zero(t, pub.created)
		})
	}
}

func TestCreateDeliveryOrderKeepsDeliveryData(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockPublisher{})

	order, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		CustomerName: "Carlos",
		OrderType:    domain.OrderTypeDelivery,
		Items:        []domain.CartLine{{ID: "bunuelo-hawaiano", Quantity: 1}},
		Delivery: &domain.DeliveryData{
			Phone:         "3001234567",
			Address:       "Calle 10 #5-23",
			Neighborhood:  "Centro",
			PaymentMethod: "efectivo",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order.Delivery)
	require.Equal(t, "Centro", order.Delivery.Neighborhood)
	require.Equal(t, domain.QueueEspeciales, order.QueueType)
}

func TestUpdateStatus(t *testing.T) {
	repo := newMockRepo()
	repo.orders[7] = domain.Order{ID: 7, Status: domain.StatusPending}
	pub := &mockPublisher{}
	svc := newTestService(repo, pub)

	err := svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{ID: 7, Status: domain.StatusPreparing})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPreparing, repo.orders[7].Status)
	require.Equal(t, 1, pub.statusChanged)

	// setting the same status twice leaves the order in the same state
	err = svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{ID: 7, Status: domain.StatusPreparing})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPreparing, repo.orders[7].Status)
}

func TestUpdateStatusErrors(t *testing.T) {
	repo := newMockRepo()
	repo.orders[7] = domain.Order{ID: 7, Status: domain.StatusPending}
	svc := newTestService(repo, &mockPublisher{})

	err := svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{ID: 99, Status: domain.StatusReady})
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	err = svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{ID: 7, Status: "frozen"})
	require.True(t, domain.IsValidation(err))
	require.Equal(t, domain.StatusPending, repo.orders[7].Status)
}

func TestDeleteOrder(t *testing.T) {
	repo := newMockRepo()
	repo.orders[3] = domain.Order{ID: 3}
	svc := newTestService(repo, &mockPublisher{})

	require.NoError(t, svc.Delete(context.Background(), 3))
	require.ErrorIs(t, svc.Delete(context.Background(), 3), domain.ErrOrderNotFound)
}
