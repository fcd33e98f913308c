package repositories

import (
	"fmt"

	"cookbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTokenRepository is a GORM implementation of TokenRepository.
type GORMTokenRepository struct {
	db *gorm.DB
}

// NewGORMTokenRepository creates a new instance of GORMTokenRepository.
func NewGORMTokenRepository(db *gorm.DB) *GORMTokenRepository {
	return &GORMTokenRepository{
		db: db,
	}
}

// Save records an issued token.
func (r *GORMTokenRepository) Save(token *models.AuthToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to save token: %w", translateErr(err))
	}
	return nil
}

// Delete revokes a token. Deleting an unknown token returns ErrNotFound.
func (r *GORMTokenRepository) Delete(token string) error {
	res := r.db.Delete(&models.AuthToken{}, "token = ?", token)
	if res.Error != nil {
		return fmt.Errorf("failed to delete token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether the token is still live.
func (r *GORMTokenRepository) Exists(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AuthToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return count > 0, nil
}
