package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKey matches both gorm's translated error and the raw driver
// messages (MySQL 1062, sqlite "UNIQUE constraint failed" in tests).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
