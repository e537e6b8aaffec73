package report

import (
	"context"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"sync"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListByRangeFunc func(ctx context.Context, rng domain.DateRange) ([]domain.TimeEntry, error)

	calls struct {
		ListByRange []struct {
			Ctx context.Context
			Rng domain.DateRange
		}
	}
	lockListByRange sync.RWMutex
}

func (mock *entryRepoMock) ListByRange(ctx context.Context, rng domain.DateRange) ([]domain.TimeEntry, error) {
	if mock.ListByRangeFunc == nil {
		panic("entryRepoMock.ListByRangeFunc: method is nil but entryRepo.ListByRange was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rng domain.DateRange
	}{Ctx: ctx, Rng: rng}
	mock.lockListByRange.Lock()
	mock.calls.ListByRange = append(mock.calls.ListByRange, callInfo)
	mock.lockListByRange.Unlock()
	return mock.ListByRangeFunc(ctx, rng)
}

func (mock *entryRepoMock) ListByRangeCalls() []struct {
	Ctx context.Context
	Rng domain.DateRange
} {
	mock.lockListByRange.RLock()
	calls := mock.calls.ListByRange
	mock.lockListByRange.RUnlock()
	return calls
}
