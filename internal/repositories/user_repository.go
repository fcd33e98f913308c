package repositories

import "cookbook/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List(offset, limit int) ([]models.User, int64, error)
	UpdatePassword(id, hashedPassword string) error
}

// SubscriptionRepository defines the interface for the subscriber→author
// relation.
type SubscriptionRepository interface {
	Create(sub *models.Subscribe) error
	Delete(userID, authorID string) error
	Exists(userID, authorID string) (bool, error)
	ListAuthors(userID string, offset, limit int) ([]models.User, int64, error)
}

// TokenRepository stores issued bearer tokens; a deleted token no longer
// authenticates.
type TokenRepository interface {
	Save(token *models.AuthToken) error
	Delete(token string) error
	Exists(token string) (bool, error)
}
