package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/dashboard"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	GroupFunc    func(ctx context.Context, p domain.Principal, input dashboard.GroupInput) (*domain.GroupDashboard, error)
	OverviewFunc func(ctx context.Context, p domain.Principal, input dashboard.OverviewInput) (*domain.OverviewDashboard, error)

	calls struct {
		Group []struct {
			Ctx   context.Context
			P     domain.Principal
			Input dashboard.GroupInput
		}
		Overview []struct {
			Ctx   context.Context
			P     domain.Principal
			Input dashboard.OverviewInput
		}
	}
	lockGroup    sync.RWMutex
	lockOverview sync.RWMutex
}

func (mock *dashboardServiceMock) Group(ctx context.Context, p domain.Principal, input dashboard.GroupInput) (*domain.GroupDashboard, error) {
	if mock.GroupFunc == nil {
		panic("dashboardServiceMock.GroupFunc: method is nil but dashboardService.Group was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input dashboard.GroupInput
	}{Ctx: ctx, P: p, Input: input}
	mock.lockGroup.Lock()
	mock.calls.Group = append(mock.calls.Group, callInfo)
	mock.lockGroup.Unlock()
	return mock.GroupFunc(ctx, p, input)
}

func (mock *dashboardServiceMock) GroupCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input dashboard.GroupInput
} {
	mock.lockGroup.RLock()
	calls := mock.calls.Group
	mock.lockGroup.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) Overview(ctx context.Context, p domain.Principal, input dashboard.OverviewInput) (*domain.OverviewDashboard, error) {
	if mock.OverviewFunc == nil {
		panic("dashboardServiceMock.OverviewFunc: method is nil but dashboardService.Overview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input dashboard.OverviewInput
	}{Ctx: ctx, P: p, Input: input}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx, p, input)
}

func (mock *dashboardServiceMock) OverviewCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input dashboard.OverviewInput
} {
	mock.lockOverview.RLock()
	calls := mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}
