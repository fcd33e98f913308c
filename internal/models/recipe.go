package models

import (
	"time"
)

// Recipe is an author-owned record combining tags, ingredient amounts and
// descriptive text. Image holds the URL path of the stored photo.
type Recipe struct {
	ID          string             `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AuthorID    string             `json:"-" gorm:"index;type:varchar(36)"`
	Author      User               `json:"author" gorm:"foreignKey:AuthorID"`
	Name        string             `json:"name" gorm:"type:varchar(200)"`
	Image       string             `json:"image" gorm:"type:varchar(255)"`
	Text        string             `json:"text" gorm:"type:text"`
	CookingTime int                `json:"cooking_time"`
	Tags        []Tag              `json:"tags" gorm:"many2many:recipe_tags"`
	Ingredients []RecipeIngredient `json:"ingredients" gorm:"foreignKey:RecipeID"`
	CreatedAt   time.Time          `json:"-"`
	UpdatedAt   time.Time          `json:"-"`
}

// RecipeIngredient joins a recipe to an ingredient with a per-recipe amount.
// The (recipe, ingredient) pair is unique.
type RecipeIngredient struct {
	ID           string     `json:"-" gorm:"primaryKey;type:varchar(36)"`
	RecipeID     string     `json:"-" gorm:"uniqueIndex:idx_recipe_ingredient;type:varchar(36)"`
	IngredientID string     `json:"-" gorm:"uniqueIndex:idx_recipe_ingredient;type:varchar(36)"`
	Ingredient   Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
	Amount       int        `json:"amount"`
}

// Favorite is a per-user bookmark on a recipe, unique per (user, recipe).
type Favorite struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"uniqueIndex:idx_favorite_user_recipe;type:varchar(36)"`
	RecipeID  string    `gorm:"uniqueIndex:idx_favorite_user_recipe;type:varchar(36)"`
	CreatedAt time.Time
}

// ShoppingCart stages a recipe for the shopping-list export, unique per
// (user, recipe).
type ShoppingCart struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"uniqueIndex:idx_cart_user_recipe;type:varchar(36)"`
	RecipeID  string    `gorm:"uniqueIndex:idx_cart_user_recipe;type:varchar(36)"`
	CreatedAt time.Time
}
