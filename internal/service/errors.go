package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/motor-mingle/server/internal/repository"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

func notFoundOr(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource, nil)
	}
	return err
}

// validID rejects ids that cannot name a stored record, so malformed path
// parameters surface as 404 instead of a database error.
func validID(id, resource string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return nil
}
