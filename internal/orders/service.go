package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"bunueleria-system/internal/catalog"
	"bunueleria-system/internal/domain"
	"bunueleria-system/internal/logger"
	"bunueleria-system/internal/metrics"
	"bunueleria-system/internal/pricing"

	"github.com/go-playground/validator/v10"
)

// EventPublisher pushes order events to the notification stream. The stream
// is advisory: publish failures are logged by the service, never returned.
type EventPublisher interface {
	OrderCreated(ctx context.Context, o domain.Order) error
	OrderStatusChanged(ctx context.Context, id int64, status domain.OrderStatus) error
}

type ServiceInterface interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	List(ctx context.Context, f ListFilter) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo      RepositoryInterface
	menu      *catalog.Catalog
	publisher EventPublisher
	log       *logger.Logger
	validate  *validator.Validate
}

func NewService(repo RepositoryInterface, menu *catalog.Catalog, publisher EventPublisher, log *logger.Logger) ServiceInterface {
	return &Service{
		repo:      repo,
		menu:      menu,
		publisher: publisher,
		log:       log,
		validate:  validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := s.validateRequest(req); err != nil {
		return domain.Order{}, err
	}

	// Price the cart from the catalog; client prices never enter here.
	priced, err := pricing.PriceCart(s.menu, req.Items)
	if err != nil {
		return domain.Order{}, err
	}

	code, err := generateOrderCode(ctx, s.repo)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		OrderCode:    code,
		CustomerName: strings.TrimSpace(req.CustomerName),
		OrderType:    req.OrderType,
		Status:       domain.StatusPending,
		Items:        priced.Lines,
		Total:        priced.Total,
		QueueType:    priced.QueueType,
	}
	if req.OrderType == domain.OrderTypeDelivery {
		order.Delivery = req.Delivery
	}

	if err := s.repo.Create(ctx, &order); err != nil {
		return domain.Order{}, err
	}

	metrics.OrdersCreated.WithLabelValues(string(order.QueueType)).Inc()
	s.log.Info("order_created", map[string]any{
		"order_code": order.OrderCode,
		"turn":       order.TurnNumber,
		"queue_type": order.QueueType,
		"total":      order.Total,
	})

	if err := s.publisher.OrderCreated(ctx, order); err != nil {
		s.log.Error("publish_failed", err, map[string]any{"order_code": order.OrderCode})
	}
	return order, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Order, error) {
	if f.Date == "" {
		f.Date = time.Now().Format("2006-01-02")
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) error {
	if req.ID == 0 {
		return domain.ValidationError{Field: "id", Message: "order id is required"}
	}
	if !domain.ValidOrderStatus(req.Status) {
		return domain.ValidationError{Field: "status", Message: "invalid status value"}
	}

	if err := s.repo.SetStatus(ctx, req.ID, req.Status); err != nil {
		return err
	}

	metrics.StatusUpdates.WithLabelValues(string(req.Status)).Inc()
	s.log.Info("order_status_updated", map[string]any{"order_id": req.ID, "status": req.Status})

	if err := s.publisher.OrderStatusChanged(ctx, req.ID, req.Status); err != nil {
		s.log.Error("publish_failed", err, map[string]any{"order_id": req.ID})
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("order_deleted", map[string]any{"order_id": id})
	return nil
}

func (s *Service) validateRequest(req domain.CreateOrderRequest) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.ValidationError{
				Field:   fe.Field(),
				Message: "failed " + fe.Tag() + " validation",
			}
		}
		return domain.ValidationError{Field: "request", Message: err.Error()}
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return domain.ValidationError{Field: "customerName", Message: "customer name is required"}
	}

	if req.OrderType == domain.OrderTypeDelivery {
		d := req.Delivery
		if d == nil {
			return domain.ValidationError{Field: "deliveryData", Message: "delivery data is required for delivery orders"}
		}
		if d.Phone == "" || d.Address == "" || d.Neighborhood == "" {
			return domain.ValidationError{Field: "deliveryData", Message: "phone, address and neighborhood are required"}
		}
	}
	return nil
}
