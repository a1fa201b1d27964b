package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func requireID(entity string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be positive", ErrInvalidInput, entity)
	}
	return nil
}

// logStoreFailure records a failed store call. Missing rows are expected
// outcomes and stay out of the error log.
func logStoreFailure(ctx context.Context, logger *logging.Logger, msg string, err error, args ...any) {
	if errors.Is(err, ErrNotFound) {
		logger.InfoContext(ctx, msg, append(args, "error", err)...)
		return
	}
	logger.ErrorContext(ctx, msg, append(args, "error", err)...)
}

func defaultLogger(logger *logging.Logger) *logging.Logger {
	if logger == nil {
		return logging.Default()
	}
	return logger
}
