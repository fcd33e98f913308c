package handlers

import (
	"fmt"
	"log"

	"cookbook/internal/middleware"
	"cookbook/internal/models"
	"cookbook/internal/repositories"
	"cookbook/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RecipeHandler handles HTTP requests for recipes, the favorite and
// shopping-cart toggles and the shopping-list download.
type RecipeHandler struct {
	recipeService *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// RegisterRoutes registers the recipe routes with the Fiber app. The fixed
// download path is registered before the :id parameter.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router, authRequired, authOptional fiber.Handler) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Get("/download_shopping_cart", authRequired, h.HandleDownloadShoppingCart)
	recipeRoutes.Get("/", authOptional, h.HandleList)
	recipeRoutes.Post("/", authRequired, h.HandleCreate)
	recipeRoutes.Get("/:id", authOptional, h.HandleGet)
	recipeRoutes.Patch("/:id", authRequired, h.HandleUpdate)
	recipeRoutes.Delete("/:id", authRequired, h.HandleDelete)
	recipeRoutes.Post("/:id/favorite", authRequired, h.HandleFavorite)
	recipeRoutes.Delete("/:id/favorite", authRequired, h.HandleUnfavorite)
	recipeRoutes.Post("/:id/shopping_cart", authRequired, h.HandleAddToCart)
	recipeRoutes.Delete("/:id/shopping_cart", authRequired, h.HandleRemoveFromCart)
}

// HandleList returns a page of recipes. Supported filters: author, tags
// (slug, repeatable), is_favorited and is_in_shopping_cart. The relation
// filters only apply to authenticated callers.
func (h *RecipeHandler) HandleList(c *fiber.Ctx) error {
	offset, limit := pageParams(c)

	filter := repositories.RecipeFilter{
		AuthorID: c.Query("author"),
	}
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		filter.TagSlugs = append(filter.TagSlugs, string(slug))
	}

	viewerID := ""
	if viewer := middleware.CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
		if c.QueryBool("is_favorited") {
			filter.FavoritedBy = viewer.ID
		}
		if c.QueryBool("is_in_shopping_cart") {
			filter.InCartOf = viewer.ID
		}
	}

	details, count, err := h.recipeService.List(filter, viewerID, offset, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginated(c, count, details)
}

// HandleGet returns one recipe in its canonical representation.
func (h *RecipeHandler) HandleGet(c *fiber.Ctx) error {
	viewerID := ""
	if viewer := middleware.CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}
	detail, err := h.recipeService.Get(c.Params("id"), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(detail)
}

// HandleCreate creates a recipe owned by the caller.
func (h *RecipeHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.RecipeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	viewer := middleware.CurrentUser(c)
	detail, err := h.recipeService.Create(viewer, input)
	if err != nil {
		log.Printf("Error creating recipe: %v", err)
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(detail)
}

// HandleUpdate rewrites a recipe. Restricted to the author or an admin.
func (h *RecipeHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.RecipeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	viewer := middleware.CurrentUser(c)
	detail, err := h.recipeService.Update(c.Params("id"), viewer, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(detail)
}

// HandleDelete removes a recipe. Restricted to the author or an admin.
func (h *RecipeHandler) HandleDelete(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	if err := h.recipeService.Delete(c.Params("id"), viewer); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RecipeHandler) handleAddRelation(c *fiber.Ctx, add func(userID, recipeID string) (*models.RecipeSummary, error)) error {
	viewer := middleware.CurrentUser(c)
	summary, err := add(viewer.ID, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

func (h *RecipeHandler) handleRemoveRelation(c *fiber.Ctx, remove func(userID, recipeID string) error) error {
	viewer := middleware.CurrentUser(c)
	if err := remove(viewer.ID, c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleFavorite adds the recipe to the caller's favorites.
func (h *RecipeHandler) HandleFavorite(c *fiber.Ctx) error {
	return h.handleAddRelation(c, h.recipeService.Favorite)
}

// HandleUnfavorite removes the recipe from the caller's favorites.
func (h *RecipeHandler) HandleUnfavorite(c *fiber.Ctx) error {
	return h.handleRemoveRelation(c, h.recipeService.Unfavorite)
}

// HandleAddToCart stages the recipe in the caller's shopping cart.
func (h *RecipeHandler) HandleAddToCart(c *fiber.Ctx) error {
	return h.handleAddRelation(c, h.recipeService.AddToCart)
}

// HandleRemoveFromCart removes the recipe from the caller's shopping cart.
func (h *RecipeHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	return h.handleRemoveRelation(c, h.recipeService.RemoveFromCart)
}

// HandleDownloadShoppingCart exports the caller's aggregated shopping list
// as a plain-text attachment.
func (h *RecipeHandler) HandleDownloadShoppingCart(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	document, err := h.recipeService.ShoppingList(viewer)
	if err != nil {
		return respondServiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", models.ShoppingCartFileName))
	return c.SendString(document)
}
