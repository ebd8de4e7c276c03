package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	MarkReadFunc   func(ctx context.Context, id, userID uuid.UUID) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error)

	calls struct {
		MarkRead []struct {
			Ctx    context.Context
			ID     uuid.UUID
			UserID uuid.UUID
		}
		ListByUser []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			UnreadOnly bool
		}
	}
	lockMarkRead   sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, ID: id, UserID: userID}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id, userID)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	UserID uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		UnreadOnly bool
	}{Ctx: ctx, UserID: userID, UnreadOnly: unreadOnly}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, unreadOnly)
}

func (mock *notificationRepoMock) ListByUserCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	UnreadOnly bool
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
