package job

import (
	"FitPulse/internal/pkg/logger"
	"FitPulse/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// QuarterFinalizeJob 每日零点检查，跨入新季度的首日冻结上一季度竞赛分
type QuarterFinalizeJob struct {
	rankingSvc service.RankingService
}

func NewQuarterFinalizeJob(rankingSvc service.RankingService) *QuarterFinalizeJob {
	return &QuarterFinalizeJob{rankingSvc: rankingSvc}
}

func (s *QuarterFinalizeJob) Run() {
	traceID := "job-quarter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	now := time.Now()
	month := now.Month()
	if now.Day() != 1 || (month != time.January && month != time.April && month != time.July && month != time.October) {
		return
	}

	if err := s.rankingSvc.FinalizeQuarter(ctx, now); err != nil {
		log.ErrorContext(ctx, "quarter finalize job error", "err", err)
	}
}
