package group

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	CreateFunc      func(ctx context.Context, g *domain.Group) (*domain.Group, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeaderFunc func(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
	ListFunc        func(ctx context.Context) ([]domain.Group, error)
	LockByIDFunc    func(ctx context.Context, id uuid.UUID) error
	SetLeaderFunc   func(ctx context.Context, id uuid.UUID, leaderID *uuid.UUID) (*domain.Group, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			G   *domain.Group
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
		LockByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetLeader []struct {
			Ctx      context.Context
			Id       uuid.UUID
			LeaderID *uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetByLeader sync.RWMutex
	lockList        sync.RWMutex
	lockLockByID    sync.RWMutex
	lockSetLeader   sync.RWMutex
}

func (mock *groupRepoMock) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	if mock.CreateFunc == nil {
		panic("groupRepoMock.CreateFunc: method is nil but groupRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Group
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *groupRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.Group
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
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

func (mock *groupRepoMock) LockByID(ctx context.Context, id uuid.UUID) error {
	if mock.LockByIDFunc == nil {
		panic("groupRepoMock.LockByIDFunc: method is nil but groupRepo.LockByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockLockByID.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, callInfo)
	mock.lockLockByID.Unlock()
	return mock.LockByIDFunc(ctx, id)
}

func (mock *groupRepoMock) LockByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockLockByID.RLock()
	calls := mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}

func (mock *groupRepoMock) SetLeader(ctx context.Context, id uuid.UUID, leaderID *uuid.UUID) (*domain.Group, error) {
	if mock.SetLeaderFunc == nil {
		panic("groupRepoMock.SetLeaderFunc: method is nil but groupRepo.SetLeader was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		LeaderID *uuid.UUID
	}{Ctx: ctx, Id: id, LeaderID: leaderID}
	mock.lockSetLeader.Lock()
	mock.calls.SetLeader = append(mock.calls.SetLeader, callInfo)
	mock.lockSetLeader.Unlock()
	return mock.SetLeaderFunc(ctx, id, leaderID)
}

func (mock *groupRepoMock) SetLeaderCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	LeaderID *uuid.UUID
} {
	mock.lockSetLeader.RLock()
	calls := mock.calls.SetLeader
	mock.lockSetLeader.RUnlock()
	return calls
}
