package repositories

import "cookbook/internal/models"

// TagRepository defines the interface for tag data access. Tags are seeded
// by the bulk importer and read-only afterwards.
type TagRepository interface {
	GetAll() ([]models.Tag, error)
	GetByID(id string) (*models.Tag, error)
	GetByIDs(ids []string) ([]models.Tag, error)
	Create(tag *models.Tag) error
}

// IngredientRepository defines the interface for ingredient data access.
type IngredientRepository interface {
	Search(name string) ([]models.Ingredient, error)
	GetByID(id string) (*models.Ingredient, error)
	GetByIDs(ids []string) ([]models.Ingredient, error)
	Create(ingredient *models.Ingredient) error
	Count() (int64, error)
}
