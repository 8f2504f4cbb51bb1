package service

import (
	"context"

	"coffeehouse/coffee-svc/internal/domain"
	"coffeehouse/coffee-svc/internal/storage"
)

// Collaborators of a single Customizer. All of them are bound to one
// customization session.

type CatalogLookup interface {
	FetchCatalogItem(ctx context.Context, id int) (*domain.CatalogItem, error)
}

type OrderStateGateway interface {
	Read(ctx context.Context) (*domain.OrderParameters, error)
	Write(ctx context.Context, params domain.OrderParameters) error
}

type Navigator interface {
	NavigateTo(path string)
}

type Notifier interface {
	ShowNotification(ctx context.Context, message string, level domain.Level) error
}

// Backing stores shared by every session.

type CatalogRepository interface {
	ListCategories() ([]domain.Category, error)
	ListItems(category domain.Category) ([]domain.CatalogItem, error)
	GetItem(id int) (*domain.CatalogItem, error)
}

type CatalogCache interface {
	GetItem(ctx context.Context, id int) (*domain.CatalogItem, error)
	SetItem(ctx context.Context, item *domain.CatalogItem) error
}

type OrderStore interface {
	SaveOrder(ctx context.Context, sessionID string, params domain.OrderParameters) error
	LoadOrder(ctx context.Context, sessionID string) (*domain.OrderParameters, error)
}

type FlashStore interface {
	Push(ctx context.Context, sessionID string, notification domain.Notification) error
	Drain(ctx context.Context, sessionID string) ([]domain.Notification, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.OrderMessage) error
}

type CatalogServiceInterface interface {
	CatalogLookup
	Categories() ([]domain.Category, error)
	List(category domain.Category) ([]domain.CatalogItem, error)
}

type SessionServiceInterface interface {
	Open(ctx context.Context, itemID int) (*Session, error)
	Get(id string) (*Session, error)
	Close(id string) bool
	Flashes(ctx context.Context, id string) ([]domain.Notification, error)
	Checkout(ctx context.Context, id string) (*domain.OrderParameters, error)
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ SessionServiceInterface = (*SessionManager)(nil)

	_ CatalogRepository = (*storage.PostgresRepository)(nil)
	_ CatalogRepository = (*storage.StaticCatalog)(nil)
	_ CatalogCache      = (*storage.RedisCache)(nil)
	_ OrderStore        = (*storage.RedisOrderState)(nil)
	_ FlashStore        = (*storage.RedisFlashStore)(nil)
	_ OrderPublisher    = (*storage.KafkaPublisher)(nil)
)
