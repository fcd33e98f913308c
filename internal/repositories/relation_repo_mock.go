package repositories

import (
	"sort"
	"sync"
)

type relationKey struct {
	userID   string
	recipeID string
}

// MockRelationRepository is an in-memory implementation of
// RelationRepository. Recipe ingredient data for the shopping-list
// aggregation is seeded through SeedRecipeIngredients.
type MockRelationRepository struct {
	favorites   map[relationKey]struct{}
	cart        map[relationKey]struct{}
	ingredients map[string][]ShoppingListLine // recipeID -> per-recipe rows
	mu          sync.RWMutex
}

// NewMockRelationRepository creates a new instance of
// MockRelationRepository.
func NewMockRelationRepository() *MockRelationRepository {
	return &MockRelationRepository{
		favorites:   make(map[relationKey]struct{}),
		cart:        make(map[relationKey]struct{}),
		ingredients: make(map[string][]ShoppingListLine),
	}
}

// SeedRecipeIngredients registers the ingredient rows of a recipe so the
// aggregation can sum them.
func (r *MockRelationRepository) SeedRecipeIngredients(recipeID string, rows []ShoppingListLine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ingredients[recipeID] = rows
}

// AddFavorite records a favorite pair.
func (r *MockRelationRepository) AddFavorite(userID, recipeID string) error {
	return r.add(r.favorites, userID, recipeID)
}

// RemoveFavorite deletes a favorite pair.
func (r *MockRelationRepository) RemoveFavorite(userID, recipeID string) error {
	return r.remove(r.favorites, userID, recipeID)
}

// IsFavorited reports whether the favorite pair exists.
func (r *MockRelationRepository) IsFavorited(userID, recipeID string) (bool, error) {
	return r.exists(r.favorites, userID, recipeID)
}

// AddToCart records a cart pair.
func (r *MockRelationRepository) AddToCart(userID, recipeID string) error {
	return r.add(r.cart, userID, recipeID)
}

// RemoveFromCart deletes a cart pair.
func (r *MockRelationRepository) RemoveFromCart(userID, recipeID string) error {
	return r.remove(r.cart, userID, recipeID)
}

// IsInCart reports whether the cart pair exists.
func (r *MockRelationRepository) IsInCart(userID, recipeID string) (bool, error) {
	return r.exists(r.cart, userID, recipeID)
}

// ShoppingListLines sums seeded ingredient rows across every recipe in the
// user's cart, grouped by (name, unit) and ordered by name.
func (r *MockRelationRepository) ShoppingListLines(userID string) ([]ShoppingListLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type group struct {
		name string
		unit string
	}
	totals := make(map[group]int)
	for key := range r.cart {
		if key.userID != userID {
			continue
		}
		for _, row := range r.ingredients[key.recipeID] {
			totals[group{row.Name, row.MeasurementUnit}] += row.Total
		}
	}

	lines := make([]ShoppingListLine, 0, len(totals))
	for g, total := range totals {
		lines = append(lines, ShoppingListLine{
			Name:            g.name,
			MeasurementUnit: g.unit,
			Total:           total,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines, nil
}

func (r *MockRelationRepository) add(set map[relationKey]struct{}, userID, recipeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := relationKey{userID, recipeID}
	if _, ok := set[key]; ok {
		return ErrDuplicate
	}
	set[key] = struct{}{}
	return nil
}

func (r *MockRelationRepository) remove(set map[relationKey]struct{}, userID, recipeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := relationKey{userID, recipeID}
	if _, ok := set[key]; !ok {
		return ErrNotFound
	}
	delete(set, key)
	return nil
}

func (r *MockRelationRepository) exists(set map[relationKey]struct{}, userID, recipeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := set[relationKey{userID, recipeID}]
	return ok, nil
}
