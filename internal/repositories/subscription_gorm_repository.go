package repositories

import (
	"fmt"

	"cookbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSubscriptionRepository is a GORM implementation of
// SubscriptionRepository.
type GORMSubscriptionRepository struct {
	db *gorm.DB
}

// NewGORMSubscriptionRepository creates a new instance of
// GORMSubscriptionRepository.
func NewGORMSubscriptionRepository(db *gorm.DB) *GORMSubscriptionRepository {
	return &GORMSubscriptionRepository{
		db: db,
	}
}

// Create inserts a subscription row. The unique (user, author) index decides
// the winner between concurrent duplicates; the loser gets ErrDuplicate.
func (r *GORMSubscriptionRepository) Create(sub *models.Subscribe) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if err := r.db.Create(sub).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

// Delete removes the subscription row if present.
func (r *GORMSubscriptionRepository) Delete(userID, authorID string) error {
	res := r.db.Delete(&models.Subscribe{}, "user_id = ? AND author_id = ?", userID, authorID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether userID subscribes to authorID.
func (r *GORMSubscriptionRepository) Exists(userID, authorID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscribe{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return count > 0, nil
}

// ListAuthors returns a page of the authors the user subscribes to, plus the
// total count.
func (r *GORMSubscriptionRepository) ListAuthors(userID string, offset, limit int) ([]models.User, int64, error) {
	base := r.db.Model(&models.User{}).
		Joins("JOIN subscribes ON subscribes.author_id = users.id").
		Where("subscribes.user_id = ?", userID).
		Session(&gorm.Session{})

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var authors []models.User
	err := base.
		Order("subscribes.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&authors).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return authors, count, nil
}
