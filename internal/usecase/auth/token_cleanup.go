package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"logitrack/internal/logger"
)

// StartTokenCleanupJob periodically removes refresh tokens that have
// expired. Runs until the context is cancelled.
func (s *Service) StartTokenCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Token cleanup job started",
		zap.Duration("interval", interval),
	)

	s.cleanupExpiredTokens(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup job stopped")
			return
		case <-ticker.C:
			s.cleanupExpiredTokens(ctx)
		}
	}
}

func (s *Service) cleanupExpiredTokens(ctx context.Context) {
	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Error("Failed to delete expired tokens", zap.Error(err))
		return
	}

	if deleted > 0 {
		logger.Debug("Expired tokens cleaned up",
			zap.Int64("deleted", deleted),
		)
	}
}
