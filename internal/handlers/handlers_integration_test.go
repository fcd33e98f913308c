package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"cookbook/internal/handlers"
	"cookbook/internal/middleware"
	"cookbook/internal/models"
	"cookbook/internal/repositories"
	"cookbook/internal/services"
	"cookbook/pkg/imagestore"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// A 1x1 transparent PNG, small enough to inline in request bodies.
const testImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

var dbCounter int64

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	tagID   string
	flourID string
	sugarID string
}

// setupApp builds a Fiber app over a fresh in-memory SQLite database with
// every handler wired, plus a seeded tag and two ingredients.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.SetDefault("PAGE_SIZE", 6)
	viper.SetDefault("PAGE_SIZE_MAX", 100)
	viper.AutomaticEnv()

	// A unique name keeps each test's database isolated.
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Subscribe{},
		&models.AuthToken{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.ShoppingCart{},
	)
	assert.NoError(t, err)

	images, err := imagestore.New(t.TempDir(), "/media")
	assert.NoError(t, err)

	userRepo := repositories.NewGORMUserRepository(db)
	subRepo := repositories.NewGORMSubscriptionRepository(db)
	tokenRepo := repositories.NewGORMTokenRepository(db)
	tagRepo := repositories.NewGORMTagRepository(db)
	ingredientRepo := repositories.NewGORMIngredientRepository(db)
	recipeRepo := repositories.NewGORMRecipeRepository(db)
	relationRepo := repositories.NewGORMRelationRepository(db)

	authService := services.NewAuthService(userRepo, tokenRepo, viper.GetString("JWT_SECRET"))
	userService := services.NewUserService(userRepo, subRepo, recipeRepo)
	catalogService := services.NewCatalogService(tagRepo, ingredientRepo)
	recipeService := services.NewRecipeService(
		recipeRepo, tagRepo, ingredientRepo, relationRepo, subRepo, images, nil,
	)

	app := fiber.New()
	authRequired := middleware.AuthRequired(authService)
	authOptional := middleware.AuthOptional(authService)

	api := app.Group("/api")
	handlers.NewAuthHandler(authService).RegisterRoutes(api, authRequired)
	handlers.NewUserHandler(userService, authService).RegisterRoutes(api, authRequired, authOptional)
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(api)
	handlers.NewRecipeHandler(recipeService).RegisterRoutes(api, authRequired, authOptional)

	tag := models.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}
	assert.NoError(t, tagRepo.Create(&tag))
	flour := models.Ingredient{Name: "flour", MeasurementUnit: "g"}
	assert.NoError(t, ingredientRepo.Create(&flour))
	sugar := models.Ingredient{Name: "sugar", MeasurementUnit: "g"}
	assert.NoError(t, ingredientRepo.Create(&sugar))

	return &testEnv{
		app:     app,
		db:      db,
		tagID:   tag.ID,
		flourID: flour.ID,
		sugarID: sugar.ID,
	}
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// registerAndLogin creates an account and returns its bearer token and ID.
func registerAndLogin(t *testing.T, env *testEnv, username, email string) (token, userID string) {
	t.Helper()

	resp := doRequest(t, env.app, http.MethodPost, "/api/users/", "", map[string]string{
		"email":      email,
		"username":   username,
		"first_name": "Test",
		"last_name":  "User",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var profile models.UserProfile
	decodeBody(t, resp, &profile)

	resp = doRequest(t, env.app, http.MethodPost, "/api/auth/token/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp["auth_token"])

	return loginResp["auth_token"], profile.ID
}

func recipePayload(env *testEnv, name string, flourAmount int) map[string]interface{} {
	return map[string]interface{}{
		"name":         name,
		"text":         "Mix everything and cook.",
		"cooking_time": 15,
		"image":        testImage,
		"ingredients": []map[string]interface{}{
			{"id": env.flourID, "amount": flourAmount},
		},
		"tags": []string{env.tagID},
	}
}

func TestRegisterLoginAndLogout(t *testing.T) {
	env := setupApp(t)

	token, _ := registerAndLogin(t, env, "cook", "cook@example.com")

	resp := doRequest(t, env.app, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.UserProfile
	decodeBody(t, resp, &me)
	assert.Equal(t, "cook", me.Username)

	// Duplicate email is a conflict.
	resp = doRequest(t, env.app, http.MethodPost, "/api/users/", "", map[string]string{
		"email":      "cook@example.com",
		"username":   "othercook",
		"first_name": "Other",
		"last_name":  "Cook",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Logout revokes the token; it stops working immediately.
	resp = doRequest(t, env.app, http.MethodPost, "/api/auth/token/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterRejectsBadUsername(t *testing.T) {
	env := setupApp(t)

	resp := doRequest(t, env.app, http.MethodPost, "/api/users/", "", map[string]string{
		"email":      "bad@example.com",
		"username":   "bad username!",
		"first_name": "Bad",
		"last_name":  "Name",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Contains(t, body, "errors")
}

func TestBlockedUserCannotLogin(t *testing.T) {
	env := setupApp(t)

	token, userID := registerAndLogin(t, env, "blocked", "blocked@example.com")

	err := env.db.Model(&models.User{}).Where("id = ?", userID).Update("is_blocked", true).Error
	assert.NoError(t, err)

	resp := doRequest(t, env.app, http.MethodPost, "/api/auth/token/login", "", map[string]string{
		"email":    "blocked@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "user is blocked", body["errors"])

	// Existing tokens stop authenticating as well.
	resp = doRequest(t, env.app, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRecipeCreateAndRead(t *testing.T) {
	env := setupApp(t)
	token, userID := registerAndLogin(t, env, "author", "author@example.com")

	resp := doRequest(t, env.app, http.MethodPost, "/api/recipes/", token, recipePayload(env, "Pancakes", 200))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.RecipeDetail
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Pancakes", created.Name)
	assert.Equal(t, userID, created.Author.ID)
	assert.Contains(t, created.Image, "/media/")
	assert.Len(t, created.Ingredients, 1)
	assert.Equal(t, "flour", created.Ingredients[0].Name)
	assert.Equal(t, 200, created.Ingredients[0].Amount)
	assert.Len(t, created.Tags, 1)
	assert.False(t, created.IsFavorited)

	// Anonymous read works and the viewer booleans stay false.
	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.RecipeDetail
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.False(t, fetched.IsFavorited)
	assert.False(t, fetched.IsInShoppingCart)

	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRecipeValidationOverTheWire(t *testing.T) {
	env := setupApp(t)
	token, _ := registerAndLogin(t, env, "author", "author@example.com")

	payload := recipePayload(env, "Bad recipe", 200)
	payload["cooking_time"] = 0
	resp := doRequest(t, env.app, http.MethodPost, "/api/recipes/", token, payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Errors, "cooking_time")

	// Nothing was persisted.
	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Count int64 `json:"count"`
	}
	decodeBody(t, resp, &list)
	assert.Equal(t, int64(0), list.Count)
}

func TestFavoriteAndCartLifecycle(t *testing.T) {
	env := setupApp(t)
	authorToken, _ := registerAndLogin(t, env, "author", "author@example.com")
	viewerToken, _ := registerAndLogin(t, env, "viewer", "viewer@example.com")

	resp := doRequest(t, env.app, http.MethodPost, "/api/recipes/", authorToken, recipePayload(env, "Pancakes", 200))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var recipe models.RecipeDetail
	decodeBody(t, resp, &recipe)

	// Favorite returns the compact summary.
	resp = doRequest(t, env.app, http.MethodPost, "/api/recipes/"+recipe.ID+"/favorite", viewerToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var summary models.RecipeSummary
	decodeBody(t, resp, &summary)
	assert.Equal(t, recipe.ID, summary.ID)
	assert.Equal(t, "Pancakes", summary.Name)

	// A second POST for the same pair is a conflict.
	resp = doRequest(t, env.app, http.MethodPost, "/api/recipes/"+recipe.ID+"/favorite", viewerToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The flag is viewer-scoped.
	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/"+recipe.ID, viewerToken, nil)
	var asViewer models.RecipeDetail
	decodeBody(t, resp, &asViewer)
	assert.True(t, asViewer.IsFavorited)

	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/"+recipe.ID, authorToken, nil)
	var asAuthor models.RecipeDetail
	decodeBody(t, resp, &asAuthor)
	assert.False(t, asAuthor.IsFavorited)

	// is_favorited filters the listing for the authenticated viewer.
	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/?is_favorited=true", viewerToken, nil)
	var favorites struct {
		Count int64 `json:"count"`
	}
	decodeBody(t, resp, &favorites)
	assert.Equal(t, int64(1), favorites.Count)

	resp = doRequest(t, env.app, http.MethodDelete, "/api/recipes/"+recipe.ID+"/favorite", viewerToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/"+recipe.ID, viewerToken, nil)
	var afterRemoval models.RecipeDetail
	decodeBody(t, resp, &afterRemoval)
	assert.False(t, afterRemoval.IsFavorited)

	// Removing a pair that does not exist is a conflict, not a 404.
	resp = doRequest(t, env.app, http.MethodDelete, "/api/recipes/"+recipe.ID+"/favorite", viewerToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestShoppingCartDownload(t *testing.T) {
	env := setupApp(t)
	token, _ := registerAndLogin(t, env, "shopper", "shopper@example.com")

	resp := doRequest(t, env.app, http.MethodPost, "/api/recipes/", token, recipePayload(env, "Pancakes", 200))
	var pancakes models.RecipeDetail
	decodeBody(t, resp, &pancakes)

	cookies := recipePayload(env, "Cookies", 300)
	cookies["ingredients"] = []map[string]interface{}{
		{"id": env.flourID, "amount": 300},
		{"id": env.sugarID, "amount": 150},
	}
	resp = doRequest(t, env.app, http.MethodPost, "/api/recipes/", token, cookies)
	var cookiesDetail models.RecipeDetail
	decodeBody(t, resp, &cookiesDetail)

	for _, id := range []string{pancakes.ID, cookiesDetail.ID} {
		resp = doRequest(t, env.app, http.MethodPost, "/api/recipes/"+id+"/shopping_cart", token, nil)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/download_shopping_cart", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "shopping_cart.txt")
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "Shopping list for Test User")
	// Amounts are summed per ingredient across both recipes.
	assert.Contains(t, text, "flour - 500 g")
	assert.Contains(t, text, "sugar - 150 g")
}

func TestRecipeUpdateAndDeletePermissions(t *testing.T) {
	env := setupApp(t)
	authorToken, _ := registerAndLogin(t, env, "author", "author@example.com")
	strangerToken, _ := registerAndLogin(t, env, "stranger", "stranger@example.com")

	resp := doRequest(t, env.app, http.MethodPost, "/api/recipes/", authorToken, recipePayload(env, "Pancakes", 200))
	var recipe models.RecipeDetail
	decodeBody(t, resp, &recipe)

	update := recipePayload(env, "Waffles", 250)
	delete(update, "image")

	resp = doRequest(t, env.app, http.MethodPatch, "/api/recipes/"+recipe.ID, strangerToken, update)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodPatch, "/api/recipes/"+recipe.ID, authorToken, update)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.RecipeDetail
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Waffles", updated.Name)
	// The stored image survives an update without a new payload.
	assert.Equal(t, recipe.Image, updated.Image)

	resp = doRequest(t, env.app, http.MethodDelete, "/api/recipes/"+recipe.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Seed dependent rows so the delete has something to cascade over.
	resp = doRequest(t, env.app, http.MethodPost, "/api/recipes/"+recipe.ID+"/favorite", strangerToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doRequest(t, env.app, http.MethodPost, "/api/recipes/"+recipe.ID+"/shopping_cart", strangerToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodDelete, "/api/recipes/"+recipe.ID, authorToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/"+recipe.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// No dangling rows survive the delete.
	for _, model := range []interface{}{
		&models.RecipeIngredient{}, &models.Favorite{}, &models.ShoppingCart{},
	} {
		var count int64
		assert.NoError(t, env.db.Model(model).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}
}

func TestSubscriptionFlow(t *testing.T) {
	env := setupApp(t)
	authorToken, authorID := registerAndLogin(t, env, "author", "author@example.com")
	readerToken, _ := registerAndLogin(t, env, "reader", "reader@example.com")

	resp := doRequest(t, env.app, http.MethodPost, "/api/recipes/", authorToken, recipePayload(env, "Pancakes", 200))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Self-subscription is rejected.
	resp = doRequest(t, env.app, http.MethodPost, "/api/users/"+authorID+"/subscribe", authorToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodPost, "/api/users/"+authorID+"/subscribe", readerToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var author models.AuthorProfile
	decodeBody(t, resp, &author)
	assert.Equal(t, authorID, author.ID)
	assert.True(t, author.IsSubscribed)
	assert.Equal(t, int64(1), author.RecipesCount)
	assert.Len(t, author.Recipes, 1)

	// A duplicate subscription is a conflict.
	resp = doRequest(t, env.app, http.MethodPost, "/api/users/"+authorID+"/subscribe", readerToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/users/subscriptions", readerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var subscriptions struct {
		Count   int64                  `json:"count"`
		Results []models.AuthorProfile `json:"results"`
	}
	decodeBody(t, resp, &subscriptions)
	assert.Equal(t, int64(1), subscriptions.Count)
	assert.Len(t, subscriptions.Results, 1)

	resp = doRequest(t, env.app, http.MethodDelete, "/api/users/"+authorID+"/subscribe", readerToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodDelete, "/api/users/"+authorID+"/subscribe", readerToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRecipeListPagination(t *testing.T) {
	env := setupApp(t)
	token, _ := registerAndLogin(t, env, "author", "author@example.com")

	for i := 0; i < 8; i++ {
		resp := doRequest(t, env.app, http.MethodPost, "/api/recipes/", token,
			recipePayload(env, fmt.Sprintf("Recipe %d", i), 100+i))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	var page struct {
		Count   int64                 `json:"count"`
		Results []models.RecipeDetail `json:"results"`
	}

	resp := doRequest(t, env.app, http.MethodGet, "/api/recipes/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(8), page.Count)
	assert.Len(t, page.Results, 6)

	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/?page=2", "", nil)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(8), page.Count)
	assert.Len(t, page.Results, 2)

	resp = doRequest(t, env.app, http.MethodGet, "/api/recipes/?limit=3", "", nil)
	decodeBody(t, resp, &page)
	assert.Len(t, page.Results, 3)
}

func TestSetPassword(t *testing.T) {
	env := setupApp(t)
	token, _ := registerAndLogin(t, env, "cook", "cook@example.com")

	resp := doRequest(t, env.app, http.MethodPost, "/api/users/set_password", token, map[string]string{
		"current_password": "wrongpassword",
		"new_password":     "newpassword123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodPost, "/api/users/set_password", token, map[string]string{
		"current_password": "password123",
		"new_password":     "newpassword123",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodPost, "/api/auth/token/login", "", map[string]string{
		"email":    "cook@example.com",
		"password": "newpassword123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestCatalogEndpoints(t *testing.T) {
	env := setupApp(t)

	resp := doRequest(t, env.app, http.MethodGet, "/api/tags/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var tags []models.Tag
	decodeBody(t, resp, &tags)
	assert.Len(t, tags, 1)
	assert.Equal(t, "breakfast", tags[0].Slug)

	resp = doRequest(t, env.app, http.MethodGet, "/api/tags/"+env.tagID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var tag models.Tag
	decodeBody(t, resp, &tag)
	assert.Equal(t, env.tagID, tag.ID)

	resp = doRequest(t, env.app, http.MethodGet, "/api/ingredients/?name=fl", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ingredients []models.Ingredient
	decodeBody(t, resp, &ingredients)
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "flour", ingredients[0].Name)
}
