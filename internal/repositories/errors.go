package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Classification helpers so callers can branch on the failure category
// without depending on driver specifics.

func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}

// DuplicateColumn reports which unique column a duplicate-key error hit,
// based on the constraint or index name embedded in the driver message.
func DuplicateColumn(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "wallet_address"):
		return "wallet_address"
	case strings.Contains(msg, "email"):
		return "email"
	case strings.Contains(msg, "session_id"):
		return "session_id"
	case strings.Contains(msg, "code"):
		return "code"
	}
	return ""
}
