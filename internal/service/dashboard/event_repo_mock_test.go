package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CountByGroupFunc func(ctx context.Context) (map[uuid.UUID]int, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListFunc         func(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)

	calls struct {
		CountByGroup []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.EventFilter
		}
	}
	lockCountByGroup sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *eventRepoMock) CountByGroup(ctx context.Context) (map[uuid.UUID]int, error) {
	if mock.CountByGroupFunc == nil {
		panic("eventRepoMock.CountByGroupFunc: method is nil but eventRepo.CountByGroup was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByGroup.Lock()
	mock.calls.CountByGroup = append(mock.calls.CountByGroup, callInfo)
	mock.lockCountByGroup.Unlock()
	return mock.CountByGroupFunc(ctx)
}

func (mock *eventRepoMock) CountByGroupCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByGroup.RLock()
	calls := mock.calls.CountByGroup
	mock.lockCountByGroup.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
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

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
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
