package clientgroup

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"sync"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.ClientGroup, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ClientGroup, error)
	CreateFunc  func(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error)
	UpdateFunc  func(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error)
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
			G   *domain.ClientGroup
		}
		Update []struct {
			Ctx context.Context
			G   *domain.ClientGroup
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

func (mock *groupRepoMock) List(ctx context.Context) ([]domain.ClientGroup, error) {
	if mock.ListFunc == nil {
		panic("groupRepoMock.ListFunc: method is nil but groupRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *groupRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *groupRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClientGroup, error) {
	if mock.GetByIDFunc == nil {
		panic("groupRepoMock.GetByIDFunc: method is nil but groupRepo.GetByID was just called")
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

func (mock *groupRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *groupRepoMock) Create(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error) {
	if mock.CreateFunc == nil {
		panic("groupRepoMock.CreateFunc: method is nil but groupRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.ClientGroup
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *groupRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.ClientGroup
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *groupRepoMock) Update(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error) {
	if mock.UpdateFunc == nil {
		panic("groupRepoMock.UpdateFunc: method is nil but groupRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.ClientGroup
	}{Ctx: ctx, G: g}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, g)
}

func (mock *groupRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	G   *domain.ClientGroup
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *groupRepoMock) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("groupRepoMock.DeleteFunc: method is nil but groupRepo.Delete was just called")
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

func (mock *groupRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
