package repositories

import (
	"fmt"

	"cookbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{
		db: db,
	}
}

func (r *GORMRecipeRepository) filtered(filter RecipeFilter) *gorm.DB {
	q := r.db.Model(&models.Recipe{})
	if filter.AuthorID != "" {
		q = q.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		q = q.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
	}
	if filter.FavoritedBy != "" {
		q = q.Joins(
			"JOIN favorites ON favorites.recipe_id = recipes.id AND favorites.user_id = ?",
			filter.FavoritedBy,
		)
	}
	if filter.InCartOf != "" {
		q = q.Joins(
			"JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id AND shopping_carts.user_id = ?",
			filter.InCartOf,
		)
	}
	return q.Session(&gorm.Session{})
}

// List returns a page of recipes matching the filter, newest first, plus the
// total count.
func (r *GORMRecipeRepository) List(filter RecipeFilter, offset, limit int) ([]models.Recipe, int64, error) {
	base := r.filtered(filter)

	var count int64
	if err := base.Distinct("recipes.id").Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	var recipes []models.Recipe
	err := base.
		Distinct("recipes.*").
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, count, nil
}

// GetByID retrieves a recipe with its author, tags and ingredient rows.
func (r *GORMRecipeRepository) GetByID(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, "recipes.id = ?", id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &recipe, nil
}

// Create persists the recipe, its tag links and its ingredient rows in one
// transaction. Tags and ingredients themselves already exist; only the join
// rows are written.
func (r *GORMRecipeRepository) Create(recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].ID = uuid.New().String()
		recipe.Ingredients[i].RecipeID = recipe.ID
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Omit("Author", "Tags.*", "Ingredients.Ingredient").
			Create(recipe).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", translateErr(err))
	}
	return nil
}

// Update rewrites the recipe's scalar fields, replaces its tag set and
// wholesale-replaces its ingredient rows (delete all, reinsert) in one
// transaction.
func (r *GORMRecipeRepository) Update(recipe *models.Recipe) error {
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].ID = uuid.New().String()
		recipe.Ingredients[i].RecipeID = recipe.ID
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RecipeIngredient{}, "recipe_id = ?", recipe.ID).Error; err != nil {
			return err
		}
		if err := tx.Omit("Ingredient").Create(&recipe.Ingredients).Error; err != nil {
			return err
		}
		anchor := models.Recipe{ID: recipe.ID}
		if err := tx.Model(&anchor).Association("Tags").Replace(recipe.Tags); err != nil {
			return err
		}
		updates := map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
		}
		if recipe.Image != "" {
			updates["image"] = recipe.Image
		}
		return tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(updates).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", translateErr(err))
	}
	return nil
}

// Delete removes the recipe together with its ingredient rows, tag links,
// favorites and cart entries, leaving no dangling references.
func (r *GORMRecipeRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Recipe{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Delete(&models.RecipeIngredient{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Favorite{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ShoppingCart{}, "recipe_id = ?", id).Error
	})
	return err
}

// ListByAuthor returns the author's recipes, newest first, truncated to
// limit when limit is positive.
func (r *GORMRecipeRepository) ListByAuthor(authorID string, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	q := r.db.Where("author_id = ?", authorID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes by author: %w", err)
	}
	return recipes, nil
}

// CountByAuthor returns how many recipes the author has published.
func (r *GORMRecipeRepository) CountByAuthor(authorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes by author: %w", err)
	}
	return count, nil
}
