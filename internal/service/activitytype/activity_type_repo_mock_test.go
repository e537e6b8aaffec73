package activitytype

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"sync"
)

var _ activityTypeRepo = &activityTypeRepoMock{}

type activityTypeRepoMock struct {
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.ActivityType, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error)
	CreateFunc      func(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error)
	UpdateFunc      func(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error

	calls struct {
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			At  *domain.ActivityType
		}
		Update []struct {
			Ctx context.Context
			At  *domain.ActivityType
		}
		Delete []struct {
			Ctx     context.Context
			Id      uuid.UUID
			OwnerID uuid.UUID
		}
	}
	lockListByOwner sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *activityTypeRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ActivityType, error) {
	if mock.ListByOwnerFunc == nil {
		panic("activityTypeRepoMock.ListByOwnerFunc: method is nil but activityTypeRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *activityTypeRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
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

func (mock *activityTypeRepoMock) Create(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error) {
	if mock.CreateFunc == nil {
		panic("activityTypeRepoMock.CreateFunc: method is nil but activityTypeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		At  *domain.ActivityType
	}{Ctx: ctx, At: at}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, at)
}

func (mock *activityTypeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	At  *domain.ActivityType
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityTypeRepoMock) Update(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error) {
	if mock.UpdateFunc == nil {
		panic("activityTypeRepoMock.UpdateFunc: method is nil but activityTypeRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		At  *domain.ActivityType
	}{Ctx: ctx, At: at}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, at)
}

func (mock *activityTypeRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	At  *domain.ActivityType
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *activityTypeRepoMock) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("activityTypeRepoMock.DeleteFunc: method is nil but activityTypeRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      uuid.UUID
		OwnerID uuid.UUID
	}{Ctx: ctx, Id: id, OwnerID: ownerID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, ownerID)
}

func (mock *activityTypeRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
