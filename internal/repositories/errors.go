package repositories

import "errors"

// Sentinel errors shared by every repository implementation. GORM error
// translation maps driver-level unique violations to ErrDuplicate so toggle
// races are resolved by the database, not by application locking.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
