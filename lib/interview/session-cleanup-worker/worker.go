package sessioncleanupworker

import (
	"context"
	"time"

	"mock-interview-backend/db"
	interviewsessionstore "mock-interview-backend/lib/interview/session-store"
	"mock-interview-backend/lib/metrics"
	baseworker "mock-interview-backend/lib/utils/base-worker"
)

// Задача удаления брошенных сессий интервью
func StartWorker(ctx context.Context, ttl time.Duration) {
	i := &impl{
		BaseImpl:     *baseworker.NewInstance("InterviewSessionCleanupWorker", 30*time.Second, time.Hour),
		sessionStore: interviewsessionstore.NewInstance(db.DB),
		ttl:          ttl,
		now:          time.Now,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	sessionStore interviewsessionstore.Provider
	ttl          time.Duration
	now          func() time.Time
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	if i.ttl <= 0 {
		return
	}
	count, err := i.sessionStore.DeleteExpired(i.now().Add(-i.ttl))
	if err != nil {
		logger.WithError(err).Error("ошибка удаления устаревших сессий интервью")
		return
	}
	if count > 0 {
		metrics.SessionsExpired.Add(float64(count))
		logger.WithField("count", count).Info("удалены устаревшие сессии интервью")
	}
}
