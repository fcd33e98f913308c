package handlers

import (
	"fmt"
	"log"

	"cookbook/internal/middleware"
	"cookbook/internal/models"
	"cookbook/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for accounts and subscriptions.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Fixed paths
// are registered before the :id parameter so they are not shadowed.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired, authOptional fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/me", authRequired, h.HandleMe)
	userRoutes.Get("/subscriptions", authRequired, h.HandleSubscriptions)
	userRoutes.Post("/set_password", authRequired, h.HandleSetPassword)
	userRoutes.Get("/", authOptional, h.HandleList)
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.Get("/:id", authOptional, h.HandleGet)
	userRoutes.Post("/:id/subscribe", authRequired, h.HandleSubscribe)
	userRoutes.Delete("/:id/subscribe", authRequired, h.HandleUnsubscribe)
}

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,min=1,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=150"`
}

// HandleRegister creates a new account.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	user := models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	if err := h.authService.Register(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user.Profile(false))
}

// HandleList returns a page of user profiles.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	viewerID := ""
	if viewer := middleware.CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}
	profiles, count, err := h.userService.List(viewerID, offset, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginated(c, count, profiles)
}

// HandleMe returns the caller's own profile.
func (h *UserHandler) HandleMe(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	return c.JSON(viewer.Profile(false))
}

// HandleGet returns one user profile.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	viewerID := ""
	if viewer := middleware.CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}
	profile, err := h.userService.GetProfile(c.Params("id"), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// SetPasswordRequest represents the password-change request body.
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=150"`
}

// HandleSetPassword changes the caller's password.
func (h *UserHandler) HandleSetPassword(c *fiber.Ctx) error {
	var req SetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	viewer := middleware.CurrentUser(c)
	if err := h.authService.SetPassword(viewer.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSubscriptions lists the authors the caller subscribes to.
func (h *UserHandler) HandleSubscriptions(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	offset, limit := pageParams(c)
	recipesLimit := c.QueryInt("recipes_limit", 0)

	profiles, count, err := h.userService.Subscriptions(viewer.ID, offset, limit, recipesLimit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginated(c, count, profiles)
}

// HandleSubscribe subscribes the caller to an author.
func (h *UserHandler) HandleSubscribe(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	recipesLimit := c.QueryInt("recipes_limit", 0)

	profile, err := h.userService.Subscribe(viewer.ID, c.Params("id"), recipesLimit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// HandleUnsubscribe removes the caller's subscription to an author.
func (h *UserHandler) HandleUnsubscribe(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	if err := h.userService.Unsubscribe(viewer.ID, c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
