package services

import (
	"errors"
	"fmt"
	"strings"

	"remote-jobs-api/internal/storage"

	"github.com/rs/zerolog/log"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrReferenceMissing) {
		return fmt.Errorf("%w: %s (referenced record missing)", ErrNotFound, operation)
	}
	log.Error().Err(err).Str("operation", operation).Msg("Unexpected repository error")
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// normalizePage applies the default page size and caps it.
func normalizePage(limit, offset, def, max int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
