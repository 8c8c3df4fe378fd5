package gorm

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	maxRetries   = 5
	retryBackoff = 50 * time.Millisecond
)

func (s *Store) withRetry(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := retryBackoff

	for attempt := 0; ; attempt++ {
		err := fn(ctx, db)
		if err == nil {
			return nil
		}

		if attempt >= maxRetries || !isRetryable(err, codes...) {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "retrying database operation", slog.Int("attempt", attempt+1), slogx.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.WithStack(ctx.Err())
		case <-timer.C:
		}

		backoff *= 2
	}
}

func isRetryable(err error, codes ...sqlite3.ErrorCode) bool {
	for _, c := range codes {
		if errors.Is(err, c) {
			return true
		}
	}

	return false
}
