package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/timeentry"
	"sync"
)

var _ timeEntryService = &timeEntryServiceMock{}

type timeEntryServiceMock struct {
	ListEntriesFunc func(ctx context.Context) ([]domain.TimeEntry, error)
	CreateEntryFunc func(ctx context.Context, input timeentry.EntryInput) (*domain.TimeEntry, error)
	UpdateEntryFunc func(ctx context.Context, id uuid.UUID, input timeentry.EntryInput) (*domain.TimeEntry, error)
	DeleteEntryFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListEntries []struct {
			Ctx context.Context
		}
		CreateEntry []struct {
			Ctx   context.Context
			Input timeentry.EntryInput
		}
		UpdateEntry []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input timeentry.EntryInput
		}
		DeleteEntry []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListEntries sync.RWMutex
	lockCreateEntry sync.RWMutex
	lockUpdateEntry sync.RWMutex
	lockDeleteEntry sync.RWMutex
}

func (mock *timeEntryServiceMock) ListEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("timeEntryServiceMock.ListEntriesFunc: method is nil but timeEntryService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx)
}

func (mock *timeEntryServiceMock) ListEntriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) CreateEntry(ctx context.Context, input timeentry.EntryInput) (*domain.TimeEntry, error) {
	if mock.CreateEntryFunc == nil {
		panic("timeEntryServiceMock.CreateEntryFunc: method is nil but timeEntryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeentry.EntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *timeEntryServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input timeentry.EntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) UpdateEntry(ctx context.Context, id uuid.UUID, input timeentry.EntryInput) (*domain.TimeEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("timeEntryServiceMock.UpdateEntryFunc: method is nil but timeEntryService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input timeentry.EntryInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, id, input)
}

func (mock *timeEntryServiceMock) UpdateEntryCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input timeentry.EntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("timeEntryServiceMock.DeleteEntryFunc: method is nil but timeEntryService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, id)
}

func (mock *timeEntryServiceMock) DeleteEntryCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}
