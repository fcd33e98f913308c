package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// translateErr maps GORM errors to the repository sentinels. Requires the
// connection to be opened with TranslateError so unique-constraint
// violations surface as gorm.ErrDuplicatedKey on every driver.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
