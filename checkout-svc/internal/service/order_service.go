package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coffeehouse/checkout-svc/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrInvalidOrder  = errors.New("invalid order payload")
	ErrInvalidPeriod = errors.New("period must be today or all")
)

const (
	defaultPopularLimit = 10
	maxPopularLimit     = 50
)

type OrderService struct {
	repo       OrderRepository
	qrEncoder  QRGenerator
	popularity PopularityStore
	logger     *zap.Logger
}

func NewOrderService(repo OrderRepository, qr QRGenerator, popularity PopularityStore, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{repo: repo, qrEncoder: qr, popularity: popularity, logger: logger}
}

func Validate(order *domain.Order) error {
	if strings.TrimSpace(order.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidOrder)
	}
	if order.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidOrder)
	}
	return nil
}

// Create persists the order, attaches a receipt QR and counts the drink
// towards popularity. QR and popularity failures are only logged; a missing
// QR is regenerated on first read.
func (s *OrderService) Create(order *domain.Order) error {
	if err := Validate(order); err != nil {
		return err
	}
	if order.Status == "" {
		order.Status = domain.StatusReceived
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	if s.qrEncoder != nil {
		qr, err := s.qrEncoder.Generate(order.ID)
		if err == nil {
			err = s.repo.SaveQRCode(order.ID, qr)
		}
		if err != nil {
			s.logger.Warn("failed to attach receipt QR", zap.Int("order_id", order.ID), zap.Error(err))
		}
	}

	if s.popularity != nil {
		at := order.CreatedAt
		if at.IsZero() {
			at = time.Now()
		}
		if err := s.popularity.RecordOrder(context.Background(), order.Name, at); err != nil {
			s.logger.Warn("failed to record drink popularity", zap.String("name", order.Name), zap.Error(err))
		}
	}
	return nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			if err := s.repo.SaveQRCode(orderID, regenerated); err != nil {
				s.logger.Warn("failed to cache regenerated QR", zap.Int("order_id", orderID), zap.Error(err))
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/checkout/orders/%d/qrcode", orderID)
}

func (s *OrderService) Popular(period string, limit int) ([]domain.DrinkPopularity, error) {
	if period != domain.PeriodToday && period != domain.PeriodAll {
		return nil, ErrInvalidPeriod
	}
	switch {
	case limit <= 0:
		limit = defaultPopularLimit
	case limit > maxPopularLimit:
		limit = maxPopularLimit
	}
	if s.popularity == nil {
		return []domain.DrinkPopularity{}, nil
	}
	return s.popularity.Top(context.Background(), period, limit)
}
