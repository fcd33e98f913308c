package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for state conflicts, missing records and authorization
// failures. Handlers map these to HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrRecipeNotExist     = errors.New("recipe does not exist")
	ErrAlreadyInList      = errors.New("recipe was already added")
	ErrRelationNotExist   = errors.New("recipe was not added")
	ErrForbidden          = errors.New("only the author or an admin may do this")
	ErrBlocked            = errors.New("user is blocked")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrSelfSubscribe      = errors.New("cannot subscribe to yourself")
	ErrAlreadySubscribed  = errors.New("already subscribed to this author")
	ErrNotSubscribed      = errors.New("not subscribed to this author")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// FieldErrors collects per-field validation messages. Any entry rejects the
// whole write; nothing is persisted.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
