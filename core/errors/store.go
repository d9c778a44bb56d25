package errors

import (
	"context"
	stderrors "errors"
	"net"
	"strings"

	"github.com/lib/pq"
)

// TranslateStoreError folds storage failures into the service taxonomy:
// connectivity problems become ErrStoreUnavailable (safe to retry),
// everything else is internal. The message only reaches the client on the
// internal branch; connectivity failures share one retry-friendly wording.
func TranslateStoreError(err error, message string) *AppError {
	var netErr net.Error
	var pqErr *pq.Error
	switch {
	case stderrors.As(err, &netErr),
		stderrors.Is(err, context.DeadlineExceeded),
		stderrors.As(err, &pqErr) && strings.HasPrefix(string(pqErr.Code), "08"):
		return NewAppError(ErrStoreUnavailable, "Storage temporarily unavailable, please try again.", err)
	default:
		return NewAppError(ErrInternalServer, message, err)
	}
}
