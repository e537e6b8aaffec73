package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/client"
	"sync"
)

var _ clientService = &clientServiceMock{}

type clientServiceMock struct {
	ListClientsFunc  func(ctx context.Context) ([]domain.Client, error)
	CreateClientFunc func(ctx context.Context, input client.ClientInput) (*domain.Client, error)
	UpdateClientFunc func(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error)
	DeleteClientFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListClients []struct {
			Ctx context.Context
		}
		CreateClient []struct {
			Ctx   context.Context
			Input client.ClientInput
		}
		UpdateClient []struct {
			Ctx   context.Context
			Input client.UpdateClientInput
		}
		DeleteClient []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListClients sync.RWMutex
	lockCreateClient sync.RWMutex
	lockUpdateClient sync.RWMutex
	lockDeleteClient sync.RWMutex
}

func (mock *clientServiceMock) ListClients(ctx context.Context) ([]domain.Client, error) {
	if mock.ListClientsFunc == nil {
		panic("clientServiceMock.ListClientsFunc: method is nil but clientService.ListClients was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListClients.Lock()
	mock.calls.ListClients = append(mock.calls.ListClients, callInfo)
	mock.lockListClients.Unlock()
	return mock.ListClientsFunc(ctx)
}

func (mock *clientServiceMock) ListClientsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListClients.RLock()
	calls := mock.calls.ListClients
	mock.lockListClients.RUnlock()
	return calls
}

func (mock *clientServiceMock) CreateClient(ctx context.Context, input client.ClientInput) (*domain.Client, error) {
	if mock.CreateClientFunc == nil {
		panic("clientServiceMock.CreateClientFunc: method is nil but clientService.CreateClient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input client.ClientInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateClient.Lock()
	mock.calls.CreateClient = append(mock.calls.CreateClient, callInfo)
	mock.lockCreateClient.Unlock()
	return mock.CreateClientFunc(ctx, input)
}

func (mock *clientServiceMock) CreateClientCalls() []struct {
	Ctx   context.Context
	Input client.ClientInput
} {
	mock.lockCreateClient.RLock()
	calls := mock.calls.CreateClient
	mock.lockCreateClient.RUnlock()
	return calls
}

func (mock *clientServiceMock) UpdateClient(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error) {
	if mock.UpdateClientFunc == nil {
		panic("clientServiceMock.UpdateClientFunc: method is nil but clientService.UpdateClient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input client.UpdateClientInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateClient.Lock()
	mock.calls.UpdateClient = append(mock.calls.UpdateClient, callInfo)
	mock.lockUpdateClient.Unlock()
	return mock.UpdateClientFunc(ctx, input)
}

func (mock *clientServiceMock) UpdateClientCalls() []struct {
	Ctx   context.Context
	Input client.UpdateClientInput
} {
	mock.lockUpdateClient.RLock()
	calls := mock.calls.UpdateClient
	mock.lockUpdateClient.RUnlock()
	return calls
}

func (mock *clientServiceMock) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteClientFunc == nil {
		panic("clientServiceMock.DeleteClientFunc: method is nil but clientService.DeleteClient was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteClient.Lock()
	mock.calls.DeleteClient = append(mock.calls.DeleteClient, callInfo)
	mock.lockDeleteClient.Unlock()
	return mock.DeleteClientFunc(ctx, id)
}

func (mock *clientServiceMock) DeleteClientCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteClient.RLock()
	calls := mock.calls.DeleteClient
	mock.lockDeleteClient.RUnlock()
	return calls
}
