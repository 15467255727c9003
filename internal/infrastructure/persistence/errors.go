package persistence

import (
	"errors"

	"github.com/culturehub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateNotFound maps gorm.ErrRecordNotFound onto a not-found domain error
// naming the resource; other errors pass through.
func translateNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NotFound(resource)
	}
	return err
}
