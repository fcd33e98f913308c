package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"cookbook/internal/models"
	"cookbook/internal/repositories"
)

// ImageStore persists an inline base64 image payload and returns the URL
// path it will be served from.
type ImageStore interface {
	SaveBase64(data string) (string, error)
}

// EventPublisher pushes recipe lifecycle events to the message broker.
type EventPublisher interface {
	PublishRecipeEvent(event string, data map[string]interface{}) error
}

// IngredientAmount references an existing ingredient with a per-recipe
// amount.
type IngredientAmount struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

// RecipeInput is the write shape for creating and updating recipes. It is
// never serialized back to clients; responses always go through
// models.RecipeDetail.
type RecipeInput struct {
	Name        string             `json:"name"`
	Text        string             `json:"text"`
	CookingTime int                `json:"cooking_time"`
	Image       string             `json:"image"`
	Ingredients []IngredientAmount `json:"ingredients"`
	Tags        []string           `json:"tags"`
}

// RecipeService handles recipe CRUD, the favorite and shopping-cart toggles
// and the shopping-list export.
type RecipeService struct {
	recipeRepo     repositories.RecipeRepository
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
	relationRepo   repositories.RelationRepository
	subRepo        repositories.SubscriptionRepository
	images         ImageStore
	events         EventPublisher // may be nil when no broker is configured
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	tagRepo repositories.TagRepository,
	ingredientRepo repositories.IngredientRepository,
	relationRepo repositories.RelationRepository,
	subRepo repositories.SubscriptionRepository,
	images ImageStore,
	events EventPublisher,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		relationRepo:   relationRepo,
		subRepo:        subRepo,
		images:         images,
		events:         events,
	}
}

// validate checks the write shape and resolves tag and ingredient
// references. Any failure rejects the whole write; nothing is persisted.
func (s *RecipeService) validate(in RecipeInput, requireImage bool) ([]models.Tag, []models.RecipeIngredient, error) {
	fieldErrs := FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		fieldErrs["name"] = "this field is required"
	} else if len(in.Name) > models.RecipeNameMaxLength {
		fieldErrs["name"] = fmt.Sprintf("must be at most %d characters", models.RecipeNameMaxLength)
	}
	if strings.TrimSpace(in.Text) == "" {
		fieldErrs["text"] = "this field is required"
	}
	if in.CookingTime < models.CookingTimeMin {
		fieldErrs["cooking_time"] = fmt.Sprintf("cooking time cannot be less than %d", models.CookingTimeMin)
	} else if in.CookingTime > models.CookingTimeMax {
		fieldErrs["cooking_time"] = fmt.Sprintf("cooking time cannot be greater than %d", models.CookingTimeMax)
	}
	if requireImage && in.Image == "" {
		fieldErrs["image"] = "this field is required"
	}

	var rows []models.RecipeIngredient
	if len(in.Ingredients) == 0 {
		fieldErrs["ingredients"] = "a recipe needs at least one ingredient"
	} else {
		ids := make([]string, 0, len(in.Ingredients))
		seen := make(map[string]bool)
		duplicate := false
		for _, item := range in.Ingredients {
			if seen[item.ID] {
				duplicate = true
			}
			seen[item.ID] = true
			ids = append(ids, item.ID)
			if item.Amount < models.AmountMin {
				fieldErrs["ingredients"] = fmt.Sprintf("ingredient amount cannot be less than %d", models.AmountMin)
			} else if item.Amount > models.AmountMax {
				fieldErrs["ingredients"] = fmt.Sprintf("ingredient amount cannot be greater than %d", models.AmountMax)
			}
		}
		if duplicate {
			fieldErrs["ingredients"] = "ingredients of one recipe must be unique"
		}
		if _, ok := fieldErrs["ingredients"]; !ok {
			found, err := s.ingredientRepo.GetByIDs(ids)
			if err != nil {
				return nil, nil, err
			}
			if len(found) != len(ids) {
				fieldErrs["ingredients"] = "ingredient does not exist"
			} else {
				byID := make(map[string]models.Ingredient, len(found))
				for _, ing := range found {
					byID[ing.ID] = ing
				}
				for _, item := range in.Ingredients {
					rows = append(rows, models.RecipeIngredient{
						IngredientID: item.ID,
						Ingredient:   byID[item.ID],
						Amount:       item.Amount,
					})
				}
			}
		}
	}

	var tags []models.Tag
	if len(in.Tags) == 0 {
		fieldErrs["tags"] = "a recipe needs at least one tag"
	} else {
		seen := make(map[string]bool)
		duplicate := false
		for _, id := range in.Tags {
			if seen[id] {
				duplicate = true
			}
			seen[id] = true
		}
		if duplicate {
			fieldErrs["tags"] = "tags of one recipe must be unique"
		} else {
			found, err := s.tagRepo.GetByIDs(in.Tags)
			if err != nil {
				return nil, nil, err
			}
			if len(found) != len(in.Tags) {
				fieldErrs["tags"] = "tag does not exist"
			} else {
				tags = found
			}
		}
	}

	if len(fieldErrs) > 0 {
		return nil, nil, fieldErrs
	}
	return tags, rows, nil
}

// detail renders a recipe through the canonical read shape. The viewer
// booleans are false for anonymous viewers (empty viewerID).
func (s *RecipeService) detail(recipe *models.Recipe, viewerID string) (*models.RecipeDetail, error) {
	isFavorited := false
	isInCart := false
	isSubscribed := false
	if viewerID != "" {
		var err error
		if isFavorited, err = s.relationRepo.IsFavorited(viewerID, recipe.ID); err != nil {
			return nil, err
		}
		if isInCart, err = s.relationRepo.IsInCart(viewerID, recipe.ID); err != nil {
			return nil, err
		}
		if viewerID != recipe.AuthorID {
			if isSubscribed, err = s.subRepo.Exists(viewerID, recipe.AuthorID); err != nil {
				return nil, err
			}
		}
	}

	ingredients := make([]models.RecipeIngredientView, 0, len(recipe.Ingredients))
	for _, row := range recipe.Ingredients {
		ingredients = append(ingredients, models.RecipeIngredientView{
			ID:              row.IngredientID,
			Name:            row.Ingredient.Name,
			MeasurementUnit: row.Ingredient.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	tags := recipe.Tags
	if tags == nil {
		tags = []models.Tag{}
	}

	return &models.RecipeDetail{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           recipe.Author.Profile(isSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}, nil
}

func (s *RecipeService) publish(event string, recipe *models.Recipe) {
	if s.events == nil {
		return
	}
	err := s.events.PublishRecipeEvent(event, map[string]interface{}{
		"recipe_id": recipe.ID,
		"author_id": recipe.AuthorID,
		"name":      recipe.Name,
	})
	if err != nil {
		log.Printf("Failed to publish %s event for recipe %s: %v", event, recipe.ID, err)
	}
}

// Get returns the canonical representation of one recipe.
func (s *RecipeService) Get(recipeID, viewerID string) (*models.RecipeDetail, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.detail(recipe, viewerID)
}

// List returns a page of recipes matching the filter plus the total count.
func (s *RecipeService) List(filter repositories.RecipeFilter, viewerID string, offset, limit int) ([]models.RecipeDetail, int64, error) {
	recipes, count, err := s.recipeRepo.List(filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	details := make([]models.RecipeDetail, 0, len(recipes))
	for i := range recipes {
		d, err := s.detail(&recipes[i], viewerID)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *d)
	}
	return details, count, nil
}

// Create validates the payload, stores the image and persists the recipe.
// The author is always the requesting identity, never client-supplied.
func (s *RecipeService) Create(author *models.User, in RecipeInput) (*models.RecipeDetail, error) {
	tags, rows, err := s.validate(in, true)
	if err != nil {
		return nil, err
	}
	imageURL, err := s.images.SaveBase64(in.Image)
	if err != nil {
		return nil, FieldErrors{"image": "invalid image payload"}
	}

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        in.Name,
		Image:       imageURL,
		Text:        in.Text,
		CookingTime: in.CookingTime,
		Tags:        tags,
		Ingredients: rows,
	}
	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	s.publish("recipe.created", recipe)

	created, err := s.recipeRepo.GetByID(recipe.ID)
	if err != nil {
		return nil, err
	}
	return s.detail(created, author.ID)
}

// Update validates the payload and rewrites the recipe. Only the author or
// an admin may update; ingredient rows are replaced wholesale and the tag
// set is reset. An absent image keeps the stored one.
func (s *RecipeService) Update(recipeID string, viewer *models.User, in RecipeInput) (*models.RecipeDetail, error) {
	existing, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.AuthorID != viewer.ID && !viewer.IsAdmin() {
		return nil, ErrForbidden
	}

	tags, rows, err := s.validate(in, false)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if in.Image != "" {
		if imageURL, err = s.images.SaveBase64(in.Image); err != nil {
			return nil, FieldErrors{"image": "invalid image payload"}
		}
	}

	recipe := &models.Recipe{
		ID:          recipeID,
		AuthorID:    existing.AuthorID,
		Name:        in.Name,
		Image:       imageURL,
		Text:        in.Text,
		CookingTime: in.CookingTime,
		Tags:        tags,
		Ingredients: rows,
	}
	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	s.publish("recipe.updated", recipe)

	updated, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	return s.detail(updated, viewer.ID)
}

// Delete removes the recipe and every dependent row. Only the author or an
// admin may delete.
func (s *RecipeService) Delete(recipeID string, viewer *models.User) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if recipe.AuthorID != viewer.ID && !viewer.IsAdmin() {
		return ErrForbidden
	}
	if err := s.recipeRepo.Delete(recipeID); err != nil {
		return err
	}
	s.publish("recipe.deleted", recipe)
	return nil
}

// Favorite adds the recipe to the user's favorites and returns the compact
// summary. A duplicate pair is a conflict; the unique index decides races.
func (s *RecipeService) Favorite(userID, recipeID string) (*models.RecipeSummary, error) {
	return s.addRelation(userID, recipeID, s.relationRepo.AddFavorite)
}

// Unfavorite removes the favorite; not-found when it was never created.
func (s *RecipeService) Unfavorite(userID, recipeID string) error {
	return s.removeRelation(userID, recipeID, s.relationRepo.RemoveFavorite)
}

// AddToCart stages the recipe in the user's shopping cart.
func (s *RecipeService) AddToCart(userID, recipeID string) (*models.RecipeSummary, error) {
	return s.addRelation(userID, recipeID, s.relationRepo.AddToCart)
}

// RemoveFromCart removes the recipe from the user's shopping cart.
func (s *RecipeService) RemoveFromCart(userID, recipeID string) error {
	return s.removeRelation(userID, recipeID, s.relationRepo.RemoveFromCart)
}

func (s *RecipeService) addRelation(userID, recipeID string, add func(string, string) error) (*models.RecipeSummary, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecipeNotExist
		}
		return nil, err
	}
	if err := add(userID, recipeID); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyInList
		}
		return nil, err
	}
	summary := recipe.Summary()
	return &summary, nil
}

func (s *RecipeService) removeRelation(userID, recipeID string, remove func(string, string) error) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecipeNotExist
		}
		return err
	}
	if err := remove(userID, recipeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRelationNotExist
		}
		return err
	}
	return nil
}

// ShoppingList renders the user's aggregated shopping list as a
// line-oriented plain-text document.
func (s *RecipeService) ShoppingList(user *models.User) (string, error) {
	lines, err := s.relationRepo.ShoppingListLines(user.ID)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Shopping list for %s %s\n", user.FirstName, user.LastName)
	for _, line := range lines {
		fmt.Fprintf(&b, "%s - %d %s\n", line.Name, line.Total, line.MeasurementUnit)
	}
	return b.String(), nil
}
