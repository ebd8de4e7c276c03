package staffing

import (
	"context"
	"sync"

	"github.com/ellishaven/careops-backend/internal/domain"
)

var _ houseRepo = &houseRepoMock{}

type houseRepoMock struct {
	ListFunc func(ctx context.Context) ([]*domain.House, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *houseRepoMock) List(ctx context.Context) ([]*domain.House, error) {
	if mock.ListFunc == nil {
		panic("houseRepoMock.ListFunc: method is nil but houseRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *houseRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	ListFunc func(ctx context.Context, status domain.EmployeeStatus) ([]*domain.Employee, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Status domain.EmployeeStatus
		}
	}
	lockList sync.RWMutex
}

func (mock *employeeRepoMock) List(ctx context.Context, status domain.EmployeeStatus) ([]*domain.Employee, error) {
	if mock.ListFunc == nil {
		panic("employeeRepoMock.ListFunc: method is nil but employeeRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.EmployeeStatus
	}{Ctx: ctx, Status: status}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status)
}

func (mock *employeeRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Status domain.EmployeeStatus
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	CreateFunc   func(ctx context.Context, a *domain.HouseAssignment) (*domain.HouseAssignment, error)
	CoverageFunc func(ctx context.Context) ([]*domain.CoverageRow, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.HouseAssignment
		}
		Coverage []struct {
			Ctx context.Context
		}
	}
	lockCreate   sync.RWMutex
	lockCoverage sync.RWMutex
}

func (mock *assignmentRepoMock) Create(ctx context.Context, a *domain.HouseAssignment) (*domain.HouseAssignment, error) {
	if mock.CreateFunc == nil {
		panic("assignmentRepoMock.CreateFunc: method is nil but assignmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.HouseAssignment
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *assignmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.HouseAssignment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) Coverage(ctx context.Context) ([]*domain.CoverageRow, error) {
	if mock.CoverageFunc == nil {
		panic("assignmentRepoMock.CoverageFunc: method is nil but assignmentRepo.Coverage was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCoverage.Lock()
	mock.calls.Coverage = append(mock.calls.Coverage, callInfo)
	mock.lockCoverage.Unlock()
	return mock.CoverageFunc(ctx)
}

func (mock *assignmentRepoMock) CoverageCalls() []struct {
	Ctx context.Context
} {
	mock.lockCoverage.RLock()
	calls := mock.calls.Coverage
	mock.lockCoverage.RUnlock()
	return calls
}
