package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	CountFunc       func(ctx context.Context) (int, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeaderFunc func(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
	ListFunc        func(ctx context.Context) ([]domain.Group, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByLeader []struct {
			Ctx      context.Context
			LeaderID uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCount       sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetByLeader sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *groupRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("groupRepoMock.CountFunc: method is nil but groupRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *groupRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *groupRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
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

func (mock *groupRepoMock) GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error) {
	if mock.GetByLeaderFunc == nil {
		panic("groupRepoMock.GetByLeaderFunc: method is nil but groupRepo.GetByLeader was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LeaderID uuid.UUID
	}{Ctx: ctx, LeaderID: leaderID}
	mock.lockGetByLeader.Lock()
	mock.calls.GetByLeader = append(mock.calls.GetByLeader, callInfo)
	mock.lockGetByLeader.Unlock()
	return mock.GetByLeaderFunc(ctx, leaderID)
}

func (mock *groupRepoMock) GetByLeaderCalls() []struct {
	Ctx      context.Context
	LeaderID uuid.UUID
} {
	mock.lockGetByLeader.RLock()
	calls := mock.calls.GetByLeader
	mock.lockGetByLeader.RUnlock()
	return calls
}

func (mock *groupRepoMock) List(ctx context.Context) ([]domain.Group, error) {
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
