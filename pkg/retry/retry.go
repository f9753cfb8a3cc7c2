package retry

// This code follows: https://github.com/gruntwork-io/terratest/blob/master/modules/retry/retry.go

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// DoWithRetry runs the specified action. If it returns nil, return nil. If it returns an error, sleep for
// sleepBetweenRetries and try again, up to a maximum of maxRetries retries. If maxRetries is exceeded, return a
// MaxRetriesExceeded error wrapping the last error. Cancelling ctx stops waiting and returns the context error.
func DoWithRetry(ctx context.Context, actionDescription string, maxRetries int, sleepBetweenRetries time.Duration, logger *logrus.Entry, action func(attempt int) error) error {
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		logger.Debug(actionDescription)

		lastErr = action(i)
		if lastErr == nil {
			return nil
		}

		// don't sleep after the final retry attempt
		if i == maxRetries {
			logger.WithError(lastErr).Warningf("%s returned an error. Retry Count: %v.", actionDescription, i)
			break
		}

		logger.WithError(lastErr).Warningf("%s returned an error. Sleeping for %s and will try again. Retry Count: %v.", actionDescription, sleepBetweenRetries, i)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleepBetweenRetries):
		}
	}

	return MaxRetriesExceeded{Description: actionDescription, MaxRetries: maxRetries, Err: lastErr}
}

// MaxRetriesExceeded is an error that occurs when the maximum amount of retries is exceeded.
type MaxRetriesExceeded struct {
	Description string
	MaxRetries  int
	Err         error
}

func (err MaxRetriesExceeded) Error() string {
	return fmt.Sprintf("'%s' unsuccessful after %d retries: %v", err.Description, err.MaxRetries, err.Err)
}

func (err MaxRetriesExceeded) Unwrap() error {
	return err.Err
}
