package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLite constraint failures. The driver translates unique and foreign key codes
// into GORM errors; the message check covers statements that bypass translation.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}
