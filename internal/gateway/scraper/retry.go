// Package scraper содержит retry логику для веб-скрапинга.
package scraper

import (
	"context"
	"fmt"
	"math"
	"time"

	"nexusforge/internal/config"

	"go.uber.org/zap"
)

// WithRetry выполняет функцию с retry логикой
func WithRetry(ctx context.Context, logger *zap.Logger, cfg config.RetryConfig, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			if attempt > 0 {
				logger.Debug("Function succeeded after retry",
					zap.Int("attempt", attempt+1),
					zap.Int("max_retries", cfg.MaxRetries))
			}
			return nil
		}

		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		// Экспоненциальный backoff с верхней границей
		delay := time.Duration(float64(cfg.InitialDelay) * math.Pow(cfg.BackoffMultiplier, float64(attempt)))
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}

		logger.Debug("Function failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", cfg.MaxRetries),
			zap.Duration("delay", delay),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("function failed after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}
