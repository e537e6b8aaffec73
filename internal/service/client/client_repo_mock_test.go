package client

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"sync"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Client, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	CreateFunc  func(ctx context.Context, c *domain.Client) (*domain.Client, error)
	UpdateFunc  func(ctx context.Context, c *domain.Client) (*domain.Client, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Client
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Client
		}
		Delete []struct {
			Ctx     context.Context
			Id      uuid.UUID
			OwnerID uuid.UUID
		}
	}
	lockList sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *clientRepoMock) List(ctx context.Context) ([]domain.Client, error) {
	if mock.ListFunc == nil {
		panic("clientRepoMock.ListFunc: method is nil but clientRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *clientRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *clientRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if mock.GetByIDFunc == nil {
		panic("clientRepoMock.GetByIDFunc: method is nil but clientRepo.GetByID was just called")
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

func (mock *clientRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *clientRepoMock) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if mock.CreateFunc == nil {
		panic("clientRepoMock.CreateFunc: method is nil but clientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Client
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *clientRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Client
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *clientRepoMock) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if mock.UpdateFunc == nil {
		panic("clientRepoMock.UpdateFunc: method is nil but clientRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Client
	}{Ctx: ctx, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *clientRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Client
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *clientRepoMock) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("clientRepoMock.DeleteFunc: method is nil but clientRepo.Delete was just called")
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

func (mock *clientRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
