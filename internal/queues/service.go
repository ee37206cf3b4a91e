package queues

import (
	"context"
	"time"

	"bunueleria-system/internal/domain"
	"bunueleria-system/internal/logger"
)

type AdjustResult struct {
	QueueName  domain.QueueType `json:"queue_name"`
	NewCounter int              `json:"new_counter"`
}

type ServiceInterface interface {
	List(ctx context.Context, date string) ([]Info, error)
	Adjust(ctx context.Context, req domain.AdjustQueueRequest) (AdjustResult, error)
}

type Service struct {
	repo RepositoryInterface
	log  *logger.Logger
}

func NewService(repo RepositoryInterface, log *logger.Logger) ServiceInterface {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, date string) ([]Info, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return s.repo.ListWithStats(ctx, date)
}

func (s *Service) Adjust(ctx context.Context, req domain.AdjustQueueRequest) (AdjustResult, error) {
	if req.QueueName == "" {
		return AdjustResult{}, domain.ValidationError{Field: "queue_name", Message: "queue_name is required"}
	}
	switch req.Action {
	case "increment", "decrement", "reset":
	case "set":
		if req.Value == nil {
			return AdjustResult{}, domain.ValidationError{Field: "value", Message: "value is required for action 'set'"}
		}
	default:
		return AdjustResult{}, domain.ValidationError{Field: "action", Message: "invalid action"}
	}

	var value int
	if req.Value != nil {
		value = *req.Value
	}

	counter, err := s.repo.Adjust(ctx, req.QueueName, req.Action, value)
	if err != nil {
		return AdjustResult{}, err
	}

	s.log.Info("queue_updated", map[string]any{
		"queue":       req.QueueName,
		"action":      req.Action,
		"new_counter": counter,
	})
	return AdjustResult{QueueName: req.QueueName, NewCounter: counter}, nil
}
