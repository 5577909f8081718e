package jobs

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPromotionSweepSpec runs the sweep every two seconds.
const DefaultPromotionSweepSpec = "*/2 * * * * *"

// PromotionExpirer ends promotions that ran out before the command's time.
type PromotionExpirer interface {
	Handle(ctx context.Context, command commands.ExpirePromotionsCommand) (int, error)
}

// PromotionExpiryJob un-promotes restaurants whose paid promotion ended.
type PromotionExpiryJob struct {
	handler PromotionExpirer
	spec    string
	cron    *cron.Cron
	now     func() time.Time
	logger  *slog.Logger
}

// NewPromotionExpiryJob schedules handler with a six-field cron spec. An
// empty spec selects DefaultPromotionSweepSpec.
func NewPromotionExpiryJob(handler PromotionExpirer, spec string, logger *slog.Logger) *PromotionExpiryJob {
	if spec == "" {
		spec = DefaultPromotionSweepSpec
	}
	return &PromotionExpiryJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		now:     time.Now,
		logger:  logger.With("component", "promotion_expiry_job"),
	}
}

func (j *PromotionExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started", "spec", j.spec)
	return nil
}

// Run performs one sweep.
func (j *PromotionExpiryJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpirePromotionsCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Promotions expired", "restaurants", expired)
	}
}

// Stop waits for a running sweep to finish.
func (j *PromotionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}
