package sessioncleanupworker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	baseworker "mock-interview-backend/lib/utils/base-worker"
	dbmodels "mock-interview-backend/models/db"
)

type fakeStore struct {
	before  time.Time
	calls   int
	deleted int64
	err     error
}

func (f *fakeStore) Create(rec dbmodels.InterviewSession) (string, error) { return rec.ID, nil }

func (f *fakeStore) GetByID(id string) (*dbmodels.InterviewSession, error) { return nil, nil }

func (f *fakeStore) Update(id string, state string, data string) error { return nil }

func (f *fakeStore) Delete(id string) error { return nil }

func (f *fakeStore) DeleteExpired(updatedBefore time.Time) (int64, error) {
	f.calls++
	f.before = updatedBefore
	return f.deleted, f.err
}

func newWorker(store *fakeStore, ttl time.Duration, now time.Time) impl {
	return impl{
		BaseImpl:     *baseworker.NewInstance("test", 0, time.Hour),
		sessionStore: store,
		ttl:          ttl,
		now:          func() time.Time { return now },
	}
}

func TestHandle(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run(`expired sessions are deleted by ttl`, func(t *testing.T) {
		store := &fakeStore{deleted: 3}
		newWorker(store, 24*time.Hour, now).handle(context.Background())
		require.Equal(t, 1, store.calls)
		require.Equal(t, now.Add(-24*time.Hour), store.before)
	})

	t.Run(`zero ttl disables cleanup`, func(t *testing.T) {
		store := &fakeStore{}
		newWorker(store, 0, now).handle(context.Background())
		require.Equal(t, 0, store.calls)
	})

	t.Run(`store error is not fatal`, func(t *testing.T) {
		store := &fakeStore{err: errors.New("db down")}
		require.NotPanics(t, func() {
			newWorker(store, time.Hour, now).handle(context.Background())
		})
		require.Equal(t, 1, store.calls)
	})
}
