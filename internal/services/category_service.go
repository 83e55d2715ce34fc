package services

import (
	"context"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/repositories"
)

type CategoryService struct {
	CategoryRepo *repositories.CategoryRepository
}

// ListCategories returns the active categories in alphabetical order.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetActiveCategories(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByID(ctx, id)
}

// SeedCategories inserts the default catalog taxonomy, leaving rows that
// already exist untouched. Runs at startup; safe to repeat.
func (s *CategoryService) SeedCategories(ctx context.Context, categories []models.Category) error {
	for _, c := range categories {
		if err := s.CategoryRepo.UpsertCategory(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
