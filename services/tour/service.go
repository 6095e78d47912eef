package tour

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	tourRepo "tourhub/database/repository/tour"
	"tourhub/models"
	"tourhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// catalogCacheTTL bounds staleness of the cached distinct-value lists.
const catalogCacheTTL = 10 * time.Minute

const (
	categoriesCacheKey = "catalog:categories"
	citiesCacheKey     = "catalog:cities"
)

// List retrieves active tours matching the filter, newest first.
func (s *DefaultTourService) List(filter tourRepo.ListFilter) ([]models.Tour, error) {
	return s.Repo.List(filter)
}

// Get retrieves a single tour by id.
func (s *DefaultTourService) Get(id string) (*models.Tour, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Categories returns the distinct categories across active tours,
// served from the catalog cache when possible.
func (s *DefaultTourService) Categories() ([]string, error) {
	return s.cachedDistinct(categoriesCacheKey, s.Repo.Categories)
}

// Cities returns the distinct cities across active tours,
// served from the catalog cache when possible.
func (s *DefaultTourService) Cities() ([]string, error) {
	return s.cachedDistinct(citiesCacheKey, s.Repo.Cities)
}

func (s *DefaultTourService) cachedDistinct(key string, fetch func() ([]string, error)) ([]string, error) {
	ctx := context.Background()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var values []string
			if jsonErr := json.Unmarshal([]byte(cached), &values); jsonErr == nil {
				return values, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	values, err := fetch()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, jsonErr := json.Marshal(values); jsonErr == nil {
			if err := s.Cache.Set(ctx, key, data, catalogCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return values, nil
}

// invalidateCatalogCache drops the distinct-value lists after a tour write.
func (s *DefaultTourService) invalidateCatalogCache() {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	if err := s.Cache.Del(ctx, categoriesCacheKey, citiesCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

// Create validates and persists a new tour.
func (s *DefaultTourService) Create(t *models.Tour) (*models.Tour, error) {
	if t.Title == "" || t.Price <= 0 || t.MaxGroupSize < 1 {
		return nil, ErrValidation
	}

	t.ID = uuid.New().String()
	t.IsActive = true
	t.Available = true
	t.Reviews = []models.Review{}
	t.AvgRating = 0
	t.TotalReviews = 0
	if t.Includes == nil {
		t.Includes = []string{}
	}
	if t.Excludes == nil {
		t.Excludes = []string{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	s.invalidateCatalogCache()
	return t, nil
}
