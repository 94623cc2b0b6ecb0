package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"barterBack/internal/models"
)

const (
	categoryCacheKey = "catalog:categories"
	catalogCacheTTL  = 10 * time.Minute
)

// CategoryService is a read-through over the category reference data. With a
// redis client configured the list is cached; the catalog changes only via
// out-of-band seeding, so a short TTL is enough.
type CategoryService struct {
	CategoryRepo CategoryStore
	Cache        *redis.Client
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	if s.Cache != nil {
		payload, err := s.Cache.Get(ctx, categoryCacheKey).Result()
		if err == nil {
			var cached []models.Category
			if json.Unmarshal([]byte(payload), &cached) == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			log.Printf("category cache read failed: %v", err)
		}
	}

	categories, err := s.CategoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(categories); err == nil {
			if err := s.Cache.Set(ctx, categoryCacheKey, payload, catalogCacheTTL).Err(); err != nil {
				log.Printf("category cache write failed: %v", err)
			}
		}
	}

	return categories, nil
}
