package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julianlopez/vainilla-catalog/internal/core"
	"github.com/julianlopez/vainilla-catalog/pkg/problem"
)

// writeError maps service errors to problem responses. Validation errors
// carry their own client-facing message; detail covers the rest.
func writeError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error, detail string) {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		log.WarnContext(ctx, "validation failed", "err", err)
		problem.Write(w, http.StatusBadRequest, "Validation Error", verr.Msg)

	case errors.Is(err, core.ErrNotFound):
		log.WarnContext(ctx, "resource not found", "err", err)
		problem.Write(w, http.StatusNotFound, "Not Found", detail)

	case errors.Is(err, context.DeadlineExceeded):
		log.ErrorContext(ctx, "operation timeout", "err", err)
		problem.Write(w, http.StatusGatewayTimeout, "Timeout", "Operation took too long.")

	default:
		log.ErrorContext(ctx, "internal server error", "err", err)
		problem.Write(w, http.StatusInternalServerError, "Internal Server Error", detail)
	}
}
