package event

import (
	"context"
	"sync"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc func(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	ListFunc   func(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ev  *domain.Event
		}
		List []struct {
			Ctx    context.Context
			Filter domain.EventFilter
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  *domain.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ev  *domain.Event
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EventFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *eventRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.EventFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
