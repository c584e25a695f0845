package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/user"
)

var _ memberService = &memberServiceMock{}

type memberServiceMock struct {
	AddMemberFunc   func(ctx context.Context, p domain.Principal, input user.AddMemberInput) (*domain.User, error)
	ListMembersFunc func(ctx context.Context, p domain.Principal, groupID *uuid.UUID, search string) ([]domain.User, error)

	calls struct {
		AddMember []struct {
			Ctx   context.Context
			P     domain.Principal
			Input user.AddMemberInput
		}
		ListMembers []struct {
			Ctx     context.Context
			P       domain.Principal
			GroupID *uuid.UUID
			Search  string
		}
	}
	lockAddMember   sync.RWMutex
	lockListMembers sync.RWMutex
}

func (mock *memberServiceMock) AddMember(ctx context.Context, p domain.Principal, input user.AddMemberInput) (*domain.User, error) {
	if mock.AddMemberFunc == nil {
		panic("memberServiceMock.AddMemberFunc: method is nil but memberService.AddMember was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input user.AddMemberInput
	}{Ctx: ctx, P: p, Input: input}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, p, input)
}

func (mock *memberServiceMock) AddMemberCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input user.AddMemberInput
} {
	mock.lockAddMember.RLock()
	calls := mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *memberServiceMock) ListMembers(ctx context.Context, p domain.Principal, groupID *uuid.UUID, search string) ([]domain.User, error) {
	if mock.ListMembersFunc == nil {
		panic("memberServiceMock.ListMembersFunc: method is nil but memberService.ListMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		P       domain.Principal
		GroupID *uuid.UUID
		Search  string
	}{Ctx: ctx, P: p, GroupID: groupID, Search: search}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, p, groupID, search)
}

func (mock *memberServiceMock) ListMembersCalls() []struct {
	Ctx     context.Context
	P       domain.Principal
	GroupID *uuid.UUID
	Search  string
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}
