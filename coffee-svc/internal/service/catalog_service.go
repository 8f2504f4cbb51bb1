package service

import (
	"context"
	"errors"

	"coffeehouse/coffee-svc/internal/domain"

	"go.uber.org/zap"
)

type CatalogService struct {
	repo   CatalogRepository
	cache  CatalogCache
	logger *zap.Logger
}

func NewCatalogService(repo CatalogRepository, cache CatalogCache, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

func (s *CatalogService) Categories() ([]domain.Category, error) {
	return s.repo.ListCategories()
}

func (s *CatalogService) List(category domain.Category) ([]domain.CatalogItem, error) {
	return s.repo.ListItems(category)
}

// FetchCatalogItem reads through the cache. Cache errors are logged and
// treated as a miss.
func (s *CatalogService) FetchCatalogItem(ctx context.Context, id int) (*domain.CatalogItem, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}

	if s.cache != nil {
		item, err := s.cache.GetItem(ctx, id)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Int("item_id", id), zap.Error(err))
		} else if item != nil {
			return item, nil
		}
	}

	item, err := s.repo.GetItem(id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("catalog lookup failed", zap.Int("item_id", id), zap.Error(err))
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetItem(ctx, item); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Int("item_id", id), zap.Error(err))
		}
	}
	return item, nil
}
