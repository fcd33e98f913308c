package repositories

import (
	"sort"
	"strings"
	"sync"

	"cookbook/internal/models"

	"github.com/google/uuid"
)

// MockTagRepository is an in-memory implementation of TagRepository.
type MockTagRepository struct {
	tags map[string]models.Tag
	mu   sync.RWMutex
}

// NewMockTagRepository creates a new instance of MockTagRepository.
func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{
		tags: make(map[string]models.Tag),
	}
}

// GetAll returns all tags ordered by name.
func (r *MockTagRepository) GetAll() ([]models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tagList := make([]models.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		tagList = append(tagList, t)
	}
	sort.Slice(tagList, func(i, j int) bool { return tagList[i].Name < tagList[j].Name })
	return tagList, nil
}

// GetByID returns a tag by its ID.
func (r *MockTagRepository) GetByID(id string) (*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.tags[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tag, nil
}

// GetByIDs returns the tags matching the given IDs.
func (r *MockTagRepository) GetByIDs(ids []string) ([]models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tagList []models.Tag
	for _, id := range ids {
		if tag, ok := r.tags[id]; ok {
			tagList = append(tagList, tag)
		}
	}
	return tagList, nil
}

// Create adds a new tag, rejecting duplicate slugs.
func (r *MockTagRepository) Create(tag *models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tags {
		if existing.Slug == tag.Slug {
			return ErrDuplicate
		}
	}
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	r.tags[tag.ID] = *tag
	return nil
}

// MockIngredientRepository is an in-memory implementation of
// IngredientRepository.
type MockIngredientRepository struct {
	ingredients map[string]models.Ingredient
	mu          sync.RWMutex
}

// NewMockIngredientRepository creates a new instance of
// MockIngredientRepository.
func NewMockIngredientRepository() *MockIngredientRepository {
	return &MockIngredientRepository{
		ingredients: make(map[string]models.Ingredient),
	}
}

// Search returns ingredients whose name starts with the fragment, ordered by
// name. An empty fragment returns everything.
func (r *MockIngredientRepository) Search(name string) ([]models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Ingredient
	for _, ing := range r.ingredients {
		if name == "" || strings.HasPrefix(strings.ToLower(ing.Name), strings.ToLower(name)) {
			result = append(result, ing)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// GetByID returns an ingredient by its ID.
func (r *MockIngredientRepository) GetByID(id string) (*models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.ingredients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ing, nil
}

// GetByIDs returns the ingredients matching the given IDs.
func (r *MockIngredientRepository) GetByIDs(ids []string) ([]models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Ingredient
	for _, id := range ids {
		if ing, ok := r.ingredients[id]; ok {
			result = append(result, ing)
		}
	}
	return result, nil
}

// Create adds a new ingredient.
func (r *MockIngredientRepository) Create(ingredient *models.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}
	r.ingredients[ingredient.ID] = *ingredient
	return nil
}

// Count returns the number of stored ingredients.
func (r *MockIngredientRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.ingredients)), nil
}
