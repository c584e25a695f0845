package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

var _ attendanceRepo = &attendanceRepoMock{}

type attendanceRepoMock struct {
	CountByGroupFunc func(ctx context.Context) (map[uuid.UUID]int, error)
	FindFunc         func(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceRecord, error)
	SumPresentFunc   func(ctx context.Context, from *time.Time, to *time.Time) (int, error)

	calls struct {
		CountByGroup []struct {
			Ctx context.Context
		}
		Find []struct {
			Ctx    context.Context
			Filter domain.AttendanceFilter
		}
		SumPresent []struct {
			Ctx  context.Context
			From *time.Time
			To   *time.Time
		}
	}
	lockCountByGroup sync.RWMutex
	lockFind         sync.RWMutex
	lockSumPresent   sync.RWMutex
}

func (mock *attendanceRepoMock) CountByGroup(ctx context.Context) (map[uuid.UUID]int, error) {
	if mock.CountByGroupFunc == nil {
		panic("attendanceRepoMock.CountByGroupFunc: method is nil but attendanceRepo.CountByGroup was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByGroup.Lock()
	mock.calls.CountByGroup = append(mock.calls.CountByGroup, callInfo)
	mock.lockCountByGroup.Unlock()
	return mock.CountByGroupFunc(ctx)
}

func (mock *attendanceRepoMock) CountByGroupCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByGroup.RLock()
	calls := mock.calls.CountByGroup
	mock.lockCountByGroup.RUnlock()
	return calls
}

func (mock *attendanceRepoMock) Find(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	if mock.FindFunc == nil {
		panic("attendanceRepoMock.FindFunc: method is nil but attendanceRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.AttendanceFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *attendanceRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.AttendanceFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *attendanceRepoMock) SumPresent(ctx context.Context, from *time.Time, to *time.Time) (int, error) {
	if mock.SumPresentFunc == nil {
		panic("attendanceRepoMock.SumPresentFunc: method is nil but attendanceRepo.SumPresent was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From *time.Time
		To   *time.Time
	}{Ctx: ctx, From: from, To: to}
	mock.lockSumPresent.Lock()
	mock.calls.SumPresent = append(mock.calls.SumPresent, callInfo)
	mock.lockSumPresent.Unlock()
	return mock.SumPresentFunc(ctx, from, to)
}

func (mock *attendanceRepoMock) SumPresentCalls() []struct {
	Ctx  context.Context
	From *time.Time
	To   *time.Time
} {
	mock.lockSumPresent.RLock()
	calls := mock.calls.SumPresent
	mock.lockSumPresent.RUnlock()
	return calls
}
