package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-reports-api/internal/models"
	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
)

const categoryCacheKey = "categories:all"

type categoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

// CategoryService serves the event category catalogue, read through the cache.
type CategoryService struct {
	repo    categoryLister
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(repo categoryLister, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{repo: repo, cache: cache, metrics: metrics, logger: logger, ttl: ttl}
}

// List returns every category ordered by name and reports whether the cache served it.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, bool, error) {
	categories, hit, err := readThrough(ctx, s.cache, categoryCacheKey, s.ttl, s.load)
	if err != nil {
		return nil, false, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, hit, nil
}

func (s *CategoryService) load(ctx context.Context) ([]models.Category, error) {
	start := time.Now()
	categories, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("categories_list", time.Since(start))
	if err != nil {
		s.logger.Error("list categories failed", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list categories")
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
