package services

import (
	"errors"

	"cookbook/internal/models"
	"cookbook/internal/repositories"
)

// CatalogService serves the read-only tag and ingredient reference data.
type CatalogService struct {
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(tagRepo repositories.TagRepository, ingredientRepo repositories.IngredientRepository) *CatalogService {
	return &CatalogService{
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
	}
}

// Tags returns all tags.
func (s *CatalogService) Tags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

// Tag returns a single tag by ID.
func (s *CatalogService) Tag(id string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

// Ingredients returns ingredients filtered by name fragment.
func (s *CatalogService) Ingredients(name string) ([]models.Ingredient, error) {
	return s.ingredientRepo.Search(name)
}
