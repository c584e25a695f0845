package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/attendance"
)

var _ attendanceService = &attendanceServiceMock{}

type attendanceServiceMock struct {
	ListFunc   func(ctx context.Context, p domain.Principal, input attendance.ListInput) ([]domain.AttendanceRecord, error)
	MarkFunc   func(ctx context.Context, p domain.Principal, input attendance.MarkInput) (*attendance.Result, error)
	SubmitFunc func(ctx context.Context, p domain.Principal, input attendance.SubmitInput) (*attendance.Result, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			P     domain.Principal
			Input attendance.ListInput
		}
		Mark []struct {
			Ctx   context.Context
			P     domain.Principal
			Input attendance.MarkInput
		}
		Submit []struct {
			Ctx   context.Context
			P     domain.Principal
			Input attendance.SubmitInput
		}
	}
	lockList   sync.RWMutex
	lockMark   sync.RWMutex
	lockSubmit sync.RWMutex
}

func (mock *attendanceServiceMock) List(ctx context.Context, p domain.Principal, input attendance.ListInput) ([]domain.AttendanceRecord, error) {
	if mock.ListFunc == nil {
		panic("attendanceServiceMock.ListFunc: method is nil but attendanceService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input attendance.ListInput
	}{Ctx: ctx, P: p, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, p, input)
}

func (mock *attendanceServiceMock) ListCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input attendance.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *attendanceServiceMock) Mark(ctx context.Context, p domain.Principal, input attendance.MarkInput) (*attendance.Result, error) {
	if mock.MarkFunc == nil {
		panic("attendanceServiceMock.MarkFunc: method is nil but attendanceService.Mark was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input attendance.MarkInput
	}{Ctx: ctx, P: p, Input: input}
	mock.lockMark.Lock()
	mock.calls.Mark = append(mock.calls.Mark, callInfo)
	mock.lockMark.Unlock()
	return mock.MarkFunc(ctx, p, input)
}

func (mock *attendanceServiceMock) MarkCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input attendance.MarkInput
} {
	mock.lockMark.RLock()
	calls := mock.calls.Mark
	mock.lockMark.RUnlock()
	return calls
}

func (mock *attendanceServiceMock) Submit(ctx context.Context, p domain.Principal, input attendance.SubmitInput) (*attendance.Result, error) {
	if mock.SubmitFunc == nil {
		panic("attendanceServiceMock.SubmitFunc: method is nil but attendanceService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input attendance.SubmitInput
	}{Ctx: ctx, P: p, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, p, input)
}

func (mock *attendanceServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input attendance.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
