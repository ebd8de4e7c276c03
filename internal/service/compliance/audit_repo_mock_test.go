package compliance

import (
	"context"
	"sync"

	"github.com/ellishaven/careops-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	AppendFunc func(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Rec *domain.AuditRecord
		}
	}
	lockAppend sync.RWMutex
}

func (mock *auditRepoMock) Append(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error) {
	if mock.AppendFunc == nil {
		panic("auditRepoMock.AppendFunc: method is nil but auditRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.AuditRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *auditRepoMock) AppendCalls() []struct {
	Ctx context.Context
	Rec *domain.AuditRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
