package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"barterBack/internal/models"
)

const conditionCacheKey = "catalog:conditions"

type ConditionService struct {
	ConditionRepo ConditionStore
	Cache         *redis.Client
}

func (s *ConditionService) GetAllConditions(ctx context.Context) ([]models.Condition, error) {
	if s.Cache != nil {
		payload, err := s.Cache.Get(ctx, conditionCacheKey).Result()
		if err == nil {
			var cached []models.Condition
			if json.Unmarshal([]byte(payload), &cached) == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			log.Printf("condition cache read failed: %v", err)
		}
	}

	conditions, err := s.ConditionRepo.GetAllConditions(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(conditions); err == nil {
			if err := s.Cache.Set(ctx, conditionCacheKey, payload, catalogCacheTTL).Err(); err != nil {
				log.Printf("condition cache write failed: %v", err)
			}
		}
	}

	return conditions, nil
}
