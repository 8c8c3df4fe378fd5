package setup

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/orders/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes the result of the given factory so that
// every caller shares the same instance.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once    sync.Once
		service T
		err     error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			service, err = factory(ctx, conf)
			if err != nil {
				err = errors.WithStack(err)
			}
		})

		return service, err
	}
}

var (
	closersMutex sync.Mutex
	closers      []func() error
)

func onClose(fn func() error) {
	closersMutex.Lock()
	defer closersMutex.Unlock()

	closers = append(closers, fn)
}

// Close releases the resources created by the setup functions, in reverse
// order of creation.
func Close() error {
	closersMutex.Lock()
	defer closersMutex.Unlock()

	var errs []error
	for _, fn := range slices.Backward(closers) {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}

	closers = nil

	if len(errs) > 0 {
		return errors.WithStack(errs[0])
	}

	return nil
}
