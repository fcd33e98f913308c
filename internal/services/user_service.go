package services

import (
	"errors"
	"fmt"

	"cookbook/internal/models"
	"cookbook/internal/repositories"
)

// UserService handles profiles and the subscribe/unsubscribe relation.
type UserService struct {
	userRepo   repositories.UserRepository
	subRepo    repositories.SubscriptionRepository
	recipeRepo repositories.RecipeRepository
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	recipeRepo repositories.RecipeRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		subRepo:    subRepo,
		recipeRepo: recipeRepo,
	}
}

// Profile renders a user through the canonical read shape. The
// is_subscribed flag is viewer-scoped and false for anonymous viewers
// (empty viewerID).
func (s *UserService) Profile(user *models.User, viewerID string) (models.UserProfile, error) {
	isSubscribed := false
	if viewerID != "" && viewerID != user.ID {
		var err error
		isSubscribed, err = s.subRepo.Exists(viewerID, user.ID)
		if err != nil {
			return models.UserProfile{}, err
		}
	}
	return user.Profile(isSubscribed), nil
}

// GetProfile loads a user by ID and renders their profile.
func (s *UserService) GetProfile(id, viewerID string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile, err := s.Profile(user, viewerID)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns a page of user profiles plus the total count.
func (s *UserService) List(viewerID string, offset, limit int) ([]models.UserProfile, int64, error) {
	users, count, err := s.userRepo.List(offset, limit)
	if err != nil {
		return nil, 0, err
	}
	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profile, err := s.Profile(&users[i], viewerID)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, count, nil
}

// authorProfile renders an author with their nested recipes, optionally
// truncated to recipesLimit, and the total recipe count.
func (s *UserService) authorProfile(author *models.User, viewerID string, recipesLimit int) (*models.AuthorProfile, error) {
	profile, err := s.Profile(author, viewerID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipeRepo.ListByAuthor(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipeRepo.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, recipes[i].Summary())
	}
	return &models.AuthorProfile{
		UserProfile:  profile,
		Recipes:      summaries,
		RecipesCount: count,
	}, nil
}

// Subscribe creates a subscription from the user to the author and returns
// the author rendered with nested recipes. Self-subscription and duplicate
// subscriptions are rejected; the duplicate case is decided by the unique
// index, so concurrent requests produce exactly one row.
func (s *UserService) Subscribe(userID, authorID string, recipesLimit int) (*models.AuthorProfile, error) {
	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if userID == authorID {
		return nil, ErrSelfSubscribe
	}
	err = s.subRepo.Create(&models.Subscribe{UserID: userID, AuthorID: authorID})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return s.authorProfile(author, userID, recipesLimit)
}

// Unsubscribe removes the subscription; ErrNotSubscribed when none exists.
func (s *UserService) Unsubscribe(userID, authorID string) error {
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.subRepo.Delete(userID, authorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotSubscribed
		}
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

// Subscriptions returns a page of the authors the user subscribes to, each
// with nested recipes, plus the total count.
func (s *UserService) Subscriptions(userID string, offset, limit, recipesLimit int) ([]models.AuthorProfile, int64, error) {
	authors, count, err := s.subRepo.ListAuthors(userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	profiles := make([]models.AuthorProfile, 0, len(authors))
	for i := range authors {
		profile, err := s.authorProfile(&authors[i], userID, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, count, nil
}
