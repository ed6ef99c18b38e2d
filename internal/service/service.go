// Package service holds the domain core: the exercise catalog, the workout
// aggregate lifecycle, the analytics queries and the user lifecycle. Services
// speak apperr kinds upward and depend on store interfaces downward; nothing
// here knows about HTTP.
package service

import (
	"errors"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
)

// wrapStore keeps already-classified errors (a masked NotFound raised inside
// an aggregate write must survive the rollback with its kind) and tags
// everything else as a system failure.
func wrapStore(err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		return err
	}
	return apperr.System(err)
}
