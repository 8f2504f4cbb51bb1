package service

import (
	"context"
	"time"

	"coffeehouse/checkout-svc/internal/domain"
	"coffeehouse/checkout-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	SaveQRCode(orderID int, qr []byte) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
}

type PopularityStore interface {
	RecordOrder(ctx context.Context, drink string, at time.Time) error
	Top(ctx context.Context, period string, limit int) ([]domain.DrinkPopularity, error)
}

type OrderServiceInterface interface {
	Create(order *domain.Order) error
	Get(orderID int) (*domain.Order, error)
	List() ([]domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
	Popular(period string, limit int) ([]domain.DrinkPopularity, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(msg domain.OrderMessage)
}

var (
	_ OrderServiceInterface = (*OrderService)(nil)
	_ ConsumerInterface     = (*Consumer)(nil)
	_ MessageReader         = (*kafka.Reader)(nil)
	_ QRGenerator           = DefaultQRGenerator{}
	_ PopularityStore       = (*storage.PopularityStore)(nil)
	_ OrderRepository       = (*storage.PostgresRepository)(nil)
)
