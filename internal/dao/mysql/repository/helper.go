package repository

import (
	"errors"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError maps gorm errors to business codes:
// ErrRecordNotFound -> CodeNotFound, everything else -> CodeDBError.
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf is wrapDBError with a formatted message.
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}
