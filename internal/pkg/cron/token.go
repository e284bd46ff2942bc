package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/jwt"
)

type TokenJobs struct {
	jwtService jwt.Service
	now        func() time.Time
}

func NewTokenJobs(jwtService jwt.Service) *TokenJobs {
	return &TokenJobs{jwtService: jwtService, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_revoked_tokens", interval, j.PurgeRevokedTokens)
}

func (j *TokenJobs) PurgeRevokedTokens(ctx context.Context) error {
	removed := j.jwtService.PurgeRevoked(j.now())
	if removed > 0 {
		slog.Info("Cron: purged revoked tokens", "count", removed)
	}
	return nil
}
