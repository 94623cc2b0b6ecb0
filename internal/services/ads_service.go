package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barterBack/internal/models"
)

// AdsService validates and executes ad mutations against the catalog and the
// ad repository. Mutations never return a Go error: every outcome, including
// an unexpected repository failure, is reported as a result value with a
// boolean flag and a message.
type AdsService struct {
	UserRepo      UserStore
	AdRepo        AdStore
	CategoryRepo  CategoryStore
	ConditionRepo ConditionStore
}

func (s *AdsService) CreateAd(ctx context.Context, username string, req models.AdMutationRequest) models.AdCreateResult {
	if username == "" || req.Title == "" || req.Description == "" || req.Category == "" || req.Condition == "" {
		return models.AdCreateResult{
			Kind:    models.FailureMissingField,
			Message: "Send all required fields (username, title, description, category, condition)",
		}
	}

	category, err := s.CategoryRepo.GetCategoryByName(ctx, req.Category)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return models.AdCreateResult{
				Kind:    models.FailureInvalidReference,
				Message: fmt.Sprintf("Invalid category: %s", req.Category),
			}
		}
		return models.AdCreateResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	condition, err := s.ConditionRepo.GetConditionByName(ctx, req.Condition)
	if err != nil {
		if errors.Is(err, models.ErrConditionNotFound) {
			return models.AdCreateResult{
				Kind:    models.FailureInvalidReference,
				Message: fmt.Sprintf("Invalid condition: %s", req.Condition),
			}
		}
		return models.AdCreateResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return models.AdCreateResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	ad := models.Ad{
		UserID:      user.ID,
		Username:    user.Username,
		Title:       req.Title,
		Description: req.Description,
		Category:    &category,
		Condition:   &condition,
		CreatedAt:   time.Now(),
	}
	if _, err := s.AdRepo.CreateAd(ctx, ad); err != nil {
		return models.AdCreateResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	return models.AdCreateResult{
		IsCreated: true,
		Message:   fmt.Sprintf("Ad created successfully (%s, %s, %s, %s)", username, req.Title, req.Category, req.Condition),
	}
}

func (s *AdsService) DeleteAd(ctx context.Context, username string, req models.AdDeleteRequest) models.AdDeleteResult {
	if req.AdID == 0 {
		return models.AdDeleteResult{
			Kind:    models.FailureMissingField,
			Message: "Send all required fields (username, ad_id)",
		}
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.AdDeleteResult{
				Kind:    models.FailureNotFound,
				Message: fmt.Sprintf("Invalid username (now: %s)", username),
			}
		}
		return models.AdDeleteResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	if _, err := s.AdRepo.GetAdByIDAndUserID(ctx, req.AdID, user.ID); err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			return models.AdDeleteResult{
				Kind:    models.FailureNotFound,
				Message: fmt.Sprintf("Ad with ID:%d does not exist or does not belong to the user", req.AdID),
			}
		}
		return models.AdDeleteResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	if err := s.AdRepo.DeleteAdByIDAndUserID(ctx, req.AdID, user.ID); err != nil {
		return models.AdDeleteResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	return models.AdDeleteResult{IsDeleted: true, Message: "Ad successfully deleted"}
}

func (s *AdsService) EditAd(ctx context.Context, username string, req models.AdMutationRequest) models.AdEditResult {
	if username == "" || req.AdID == 0 || req.Title == "" || req.Description == "" || req.Category == "" || req.Condition == "" {
		return models.AdEditResult{
			Kind:    models.FailureMissingField,
			Message: "Send all required fields (username, ad_id, title, description, category, condition)",
		}
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.AdEditResult{
				Kind:    models.FailureNotFound,
				Message: fmt.Sprintf("Invalid username (now: %s)", username),
			}
		}
		return models.AdEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	ad, err := s.AdRepo.GetAdByIDAndUserID(ctx, req.AdID, user.ID)
	if err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			return models.AdEditResult{
				Kind:    models.FailureNotFound,
				Message: fmt.Sprintf("Ad with ID:%d does not exist or does not belong to the user", req.AdID),
			}
		}
		return models.AdEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	category, err := s.CategoryRepo.GetCategoryByName(ctx, req.Category)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return models.AdEditResult{
				Kind:    models.FailureInvalidReference,
				Message: fmt.Sprintf("Invalid category: %s", req.Category),
			}
		}
		return models.AdEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	condition, err := s.ConditionRepo.GetConditionByName(ctx, req.Condition)
	if err != nil {
		if errors.Is(err, models.ErrConditionNotFound) {
			return models.AdEditResult{
				Kind:    models.FailureInvalidReference,
				Message: fmt.Sprintf("Invalid condition: %s", req.Condition),
			}
		}
		return models.AdEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	ad.Title = req.Title
	ad.Description = req.Description
	ad.Category = &category
	ad.Condition = &condition
	if err := s.AdRepo.UpdateAd(ctx, ad); err != nil {
		return models.AdEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	return models.AdEditResult{
		IsEdited: true,
		Message:  fmt.Sprintf("Ad edited successfully (%s, %s, %s, %s)", username, req.Title, req.Category, req.Condition),
	}
}

// ListAds resolves the named filter facets strictly: an unknown category or
// condition name fails the whole call with ErrInvalidFilter instead of being
// silently dropped.
func (s *AdsService) ListAds(ctx context.Context, filter models.AdFilterRequest) ([]models.Ad, error) {
	var categoryIDs []int
	for _, name := range filter.Categories {
		category, err := s.CategoryRepo.GetCategoryByName(ctx, name)
		if err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				return nil, models.ErrInvalidFilter
			}
			return nil, err
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	var conditionIDs []int
	for _, name := range filter.Conditions {
		condition, err := s.ConditionRepo.GetConditionByName(ctx, name)
		if err != nil {
			if errors.Is(err, models.ErrConditionNotFound) {
				return nil, models.ErrInvalidFilter
			}
			return nil, err
		}
		conditionIDs = append(conditionIDs, condition.ID)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	return s.AdRepo.GetAdsFiltered(ctx, models.AdSearch{
		Query:        filter.Query,
		CategoryIDs:  categoryIDs,
		ConditionIDs: conditionIDs,
		Limit:        filter.Limit,
		Offset:       (filter.Page - 1) * filter.Limit,
	})
}
