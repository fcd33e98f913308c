package repositories

import "cookbook/internal/models"

// RecipeFilter narrows a recipe listing. Zero values mean "no filter".
type RecipeFilter struct {
	AuthorID    string
	TagSlugs    []string
	FavoritedBy string // user ID whose favorites to select
	InCartOf    string // user ID whose shopping cart to select
}

// RecipeRepository defines the interface for recipe data access. Create and
// Update persist the recipe together with its tag set and ingredient rows in
// one transaction; Update replaces the ingredient rows wholesale.
type RecipeRepository interface {
	List(filter RecipeFilter, offset, limit int) ([]models.Recipe, int64, error)
	GetByID(id string) (*models.Recipe, error)
	Create(recipe *models.Recipe) error
	Update(recipe *models.Recipe) error
	Delete(id string) error
	ListByAuthor(authorID string, limit int) ([]models.Recipe, error)
	CountByAuthor(authorID string) (int64, error)
}

// ShoppingListLine is one aggregated row of a user's shopping list: the
// summed amount of an ingredient across every recipe in the cart.
type ShoppingListLine struct {
	Name            string
	MeasurementUnit string
	Total           int
}

// RelationRepository covers the favorite and shopping-cart toggles plus the
// shopping-list aggregation read.
type RelationRepository interface {
	AddFavorite(userID, recipeID string) error
	RemoveFavorite(userID, recipeID string) error
	IsFavorited(userID, recipeID string) (bool, error)

	AddToCart(userID, recipeID string) error
	RemoveFromCart(userID, recipeID string) error
	IsInCart(userID, recipeID string) (bool, error)

	ShoppingListLines(userID string) ([]ShoppingListLine, error)
}
