package repositories

import (
	"fmt"

	"cookbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRelationRepository is a GORM implementation of RelationRepository
// backed by the favorites and shopping_carts tables.
type GORMRelationRepository struct {
	db *gorm.DB
}

// NewGORMRelationRepository creates a new instance of GORMRelationRepository.
func NewGORMRelationRepository(db *gorm.DB) *GORMRelationRepository {
	return &GORMRelationRepository{
		db: db,
	}
}

// AddFavorite inserts a favorite row; ErrDuplicate when the pair exists.
func (r *GORMRelationRepository) AddFavorite(userID, recipeID string) error {
	fav := models.Favorite{
		ID:       uuid.New().String(),
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.Create(&fav).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

// RemoveFavorite deletes the favorite row; ErrNotFound when absent.
func (r *GORMRelationRepository) RemoveFavorite(userID, recipeID string) error {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND recipe_id = ?", userID, recipeID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFavorited reports whether the user has favorited the recipe.
func (r *GORMRelationRepository) IsFavorited(userID, recipeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// AddToCart inserts a shopping-cart row; ErrDuplicate when the pair exists.
func (r *GORMRelationRepository) AddToCart(userID, recipeID string) error {
	entry := models.ShoppingCart{
		ID:       uuid.New().String(),
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

// RemoveFromCart deletes the shopping-cart row; ErrNotFound when absent.
func (r *GORMRelationRepository) RemoveFromCart(userID, recipeID string) error {
	res := r.db.Delete(&models.ShoppingCart{}, "user_id = ? AND recipe_id = ?", userID, recipeID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsInCart reports whether the recipe is in the user's shopping cart.
func (r *GORMRelationRepository) IsInCart(userID, recipeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShoppingCart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check cart: %w", err)
	}
	return count > 0, nil
}

// ShoppingListLines aggregates the user's cart: it joins cart entries to
// ingredient rows, groups by (name, unit) and sums the amounts, ordered by
// ingredient name.
func (r *GORMRelationRepository) ShoppingListLines(userID string) ([]ShoppingListLine, error) {
	var lines []ShoppingListLine
	err := r.db.Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate shopping list: %w", err)
	}
	return lines, nil
}
