package compliance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.ComplianceItem, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, status domain.ComplianceStatus) ([]*domain.ComplianceItem, error)
	SetStatusFunc  func(ctx context.Context, id uuid.UUID, status domain.ComplianceStatus, completedAt *time.Time) (*domain.ComplianceItem, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Status domain.ComplianceStatus
		}
		SetStatus []struct {
			Ctx         context.Context
			ID          uuid.UUID
			Status      domain.ComplianceStatus
			CompletedAt *time.Time
		}
	}
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockSetStatus  sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, status domain.ComplianceStatus) ([]*domain.ComplianceItem, error) {
	if mock.ListByUserFunc == nil {
		panic("itemRepoMock.ListByUserFunc: method is nil but itemRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Status domain.ComplianceStatus
	}{Ctx: ctx, UserID: userID, Status: status}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, status)
}

func (mock *itemRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Status domain.ComplianceStatus
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.ComplianceStatus, completedAt *time.Time) (*domain.ComplianceItem, error) {
	if mock.SetStatusFunc == nil {
		panic("itemRepoMock.SetStatusFunc: method is nil but itemRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		Status      domain.ComplianceStatus
		CompletedAt *time.Time
	}{Ctx: ctx, ID: id, Status: status, CompletedAt: completedAt}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status, completedAt)
}

func (mock *itemRepoMock) SetStatusCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	Status      domain.ComplianceStatus
	CompletedAt *time.Time
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}
