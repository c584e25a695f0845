package attendance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeaderFunc func(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
	LockByIDFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByLeader []struct {
			Ctx      context.Context
			LeaderID uuid.UUID
		}
		LockByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockGetByLeader sync.RWMutex
	lockLockByID    sync.RWMutex
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
