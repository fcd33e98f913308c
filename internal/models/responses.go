package models

// Read-side shapes. Every mutation re-renders its result through these,
// never through the write input, so derived fields are always present.

// UserProfile is the canonical user representation with the viewer-scoped
// subscription flag.
type UserProfile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// AuthorProfile extends UserProfile with the author's recipes, optionally
// truncated by a recipes_limit query parameter, and their total count.
type AuthorProfile struct {
	UserProfile
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int64           `json:"recipes_count"`
}

// RecipeSummary is the compact recipe shape returned by favorite and
// shopping-cart toggles and nested under subscription authors.
type RecipeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeIngredientView is an ingredient joined through a recipe, carrying
// the per-recipe amount.
type RecipeIngredientView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeDetail is the canonical recipe representation. The two booleans are
// viewer-scoped and always false for anonymous callers.
type RecipeDetail struct {
	ID               string                 `json:"id"`
	Tags             []Tag                  `json:"tags"`
	Author           UserProfile            `json:"author"`
	Ingredients      []RecipeIngredientView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// Summary converts a recipe to its compact shape.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// Profile converts a user to its canonical read shape.
func (u *User) Profile(isSubscribed bool) UserProfile {
	return UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
