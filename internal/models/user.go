package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole distinguishes regular accounts from administrators.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents a registered account.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(254)" validate:"required,email,max=254"`
	Username   string   `json:"username" gorm:"uniqueIndex;type:varchar(150)" validate:"required,min=1,max=150"`
	FirstName  string   `json:"first_name" gorm:"type:varchar(150)" validate:"required,max=150"`
	LastName   string   `json:"last_name" gorm:"type:varchar(150)" validate:"required,max=150"`
	Password   string   `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role       UserRole `json:"-" gorm:"type:varchar(16);default:user"`
	IsBlocked  bool     `json:"-" gorm:"default:false"`
	gorm.Model `json:"-"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Subscribe is a directed follow relation from a subscriber to an author.
// Uniqueness of the pair is enforced by the database index so concurrent
// duplicate subscribe requests resolve to exactly one winner.
type Subscribe struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user" gorm:"uniqueIndex:idx_subscriber_author;type:varchar(36)"`
	AuthorID  string    `json:"author" gorm:"uniqueIndex:idx_subscriber_author;type:varchar(36)"`
	CreatedAt time.Time `json:"-"`
}

// AuthToken records an issued bearer token. A token authenticates only while
// its row exists; logout deletes the row.
type AuthToken struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"index;type:varchar(36)"`
	Token     string    `gorm:"uniqueIndex;type:varchar(512)"`
	CreatedAt time.Time
}
