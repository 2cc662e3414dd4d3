package interviewstatusworker

import (
	"context"
	"time"

	"rh-hub-backend/config"
	"rh-hub-backend/db"
	interviewstore "rh-hub-backend/lib/interview/store"
	baseworker "rh-hub-backend/lib/utils/base-worker"
)

func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Workers.InterviewStatusIntervalSec) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	i := &impl{
		BaseImpl: *baseworker.NewInstance("InterviewStatusWorker", 15*time.Second, interval),
		store:    interviewstore.NewInstance(db.DB),
		now:      time.Now,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store interviewstore.Provider
	now   func() time.Time
}

// handle переводит прошедшие собеседования без оценки в pending_feedback
func (i impl) handle(ctx context.Context) error {
	count, err := i.store.MarkOverdue(i.now())
	if err != nil {
		return err
	}
	if count > 0 {
		i.GetLogger().
			WithField("count", count).
			Info("собеседования переведены в ожидание оценки")
	}
	return nil
}
