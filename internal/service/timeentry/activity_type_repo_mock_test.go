package timeentry

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"sync"
)

var _ activityTypeRepo = &activityTypeRepoMock{}

type activityTypeRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *activityTypeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error) {
	if mock.GetByIDFunc == nil {
		panic("activityTypeRepoMock.GetByIDFunc: method is nil but activityTypeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *activityTypeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
