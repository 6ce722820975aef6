package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"ebook-backend/internal/shared"
	"ebook-backend/pkg/logger"
)

type Scheduler struct {
	scheduler      *asynq.Scheduler
	retentionHours int
}

func NewScheduler(redisAddress string, retentionHours int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler:      scheduler,
		retentionHours: retentionHours,
	}
}

func (s *Scheduler) RegisterCleanupJobs() error {
	return s.registerCleanupExpiredPDFsJob()
}

// ================================================
// JOB 1: Cleanup Expired PDFs (Hourly)
// ================================================
// WHY HOURLY?
// - Artifacts expire sau 24h, quét mỗi giờ giữ over-retention dưới 1h
// - Purge là filesystem scan rẻ nên chạy thường xuyên không sao
func (s *Scheduler) registerCleanupExpiredPDFsJob() error {
	payload, err := json.Marshal(shared.CleanupExpiredPDFsPayload{
		RetentionHours: s.retentionHours,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCleanupExpiredPDFs, payload)

	_, err = s.scheduler.Register(
		"0 * * * *", // Every hour at minute 0
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register CleanupExpiredPDFs job", err)
		return err
	}

	logger.Info("✓ Registered CleanupExpiredPDFs: hourly", map[string]interface{}{
		"retention_hours": s.retentionHours,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
