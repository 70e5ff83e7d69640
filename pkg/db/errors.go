package db

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether the error chain contains GORM's record-not-found
// sentinel. Services use it to keep "absent" distinct from store faults.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
