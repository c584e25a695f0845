package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc          func(ctx context.Context, u *domain.User) (*domain.User, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc            func(ctx context.Context, role *domain.UserRole) ([]domain.User, error)
	ListMembersFunc     func(ctx context.Context, groupID uuid.UUID) ([]domain.User, error)
	SetPasswordHashFunc func(ctx context.Context, id uuid.UUID, hash string) error
	UpdateFunc          func(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx  context.Context
			Role *domain.UserRole
		}
		ListMembers []struct {
			Ctx     context.Context
			GroupID uuid.UUID
		}
		SetPasswordHash []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Hash string
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.UserUpdateParams
		}
	}
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockList            sync.RWMutex
	lockListMembers     sync.RWMutex
	lockSetPasswordHash sync.RWMutex
	lockUpdate          sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, role *domain.UserRole) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Role *domain.UserRole
	}{Ctx: ctx, Role: role}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, role)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Role *domain.UserRole
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.User, error) {
	if mock.ListMembersFunc == nil {
		panic("userRepoMock.ListMembersFunc: method is nil but userRepo.ListMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
	}{Ctx: ctx, GroupID: groupID}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, groupID)
}

func (mock *userRepoMock) ListMembersCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}

func (mock *userRepoMock) SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.SetPasswordHashFunc == nil {
		panic("userRepoMock.SetPasswordHashFunc: method is nil but userRepo.SetPasswordHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Hash string
	}{Ctx: ctx, Id: id, Hash: hash}
	mock.lockSetPasswordHash.Lock()
	mock.calls.SetPasswordHash = append(mock.calls.SetPasswordHash, callInfo)
	mock.lockSetPasswordHash.Unlock()
	return mock.SetPasswordHashFunc(ctx, id, hash)
}

func (mock *userRepoMock) SetPasswordHashCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Hash string
} {
	mock.lockSetPasswordHash.RLock()
	calls := mock.calls.SetPasswordHash
	mock.lockSetPasswordHash.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.UserUpdateParams
	}{Ctx: ctx, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.UserUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
