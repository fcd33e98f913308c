package handlers

import (
	"cookbook/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the read-only tag and ingredient endpoints.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Get("/", h.HandleGetTags)
	tagRoutes.Get("/:id", h.HandleGetTag)

	ingredientRoutes := router.Group("/ingredients")
	ingredientRoutes.Get("/", h.HandleGetIngredients)
}

// HandleGetTags returns all tags.
func (h *CatalogHandler) HandleGetTags(c *fiber.Ctx) error {
	tags, err := h.catalogService.Tags()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tags)
}

// HandleGetTag returns a single tag.
func (h *CatalogHandler) HandleGetTag(c *fiber.Ctx) error {
	tag, err := h.catalogService.Tag(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tag)
}

// HandleGetIngredients returns ingredients, filtered by the name query
// parameter when present.
func (h *CatalogHandler) HandleGetIngredients(c *fiber.Ctx) error {
	ingredients, err := h.catalogService.Ingredients(c.Query("name"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(ingredients)
}
