package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dramhound/dramhound/gen/ent"
	"github.com/dramhound/dramhound/internal/common"
)

// classify maps storage errors onto the pipeline taxonomy. Constraint
// violations are item-level and recoverable; anything else from the driver is
// treated as lost connectivity and aborts the pass.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return fmt.Errorf("%w: %v", common.ErrNotFound, err)
	case ent.IsConstraintError(err):
		return fmt.Errorf("%w: %v", common.ErrConflict, err)
	case ent.IsValidationError(err):
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", common.ErrDatabase, err)
	default:
		return fmt.Errorf("%w: %v", common.ErrDatabase, err)
	}
}
