package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CountUnreadFunc func(ctx context.Context) (int, error)
	CreateFunc      func(ctx context.Context, m *domain.Message) (*domain.Message, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) (bool, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListFunc        func(ctx context.Context, f domain.MessageFilter) ([]domain.Message, int, error)
	SetReadFunc     func(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error)

	calls struct {
		CountUnread []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Message
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.MessageFilter
		}
		SetRead []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Read bool
		}
	}
	lockCountUnread sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockSetRead     sync.RWMutex
}

func (mock *messageRepoMock) CountUnread(ctx context.Context) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("messageRepoMock.CountUnreadFunc: method is nil but messageRepo.CountUnread was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx)
}

func (mock *messageRepoMock) CountUnreadCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountUnread.RLock()
	calls := mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *messageRepoMock) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Message
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Message
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("messageRepoMock.DeleteFunc: method is nil but messageRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *messageRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *messageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	if mock.GetByIDFunc == nil {
		panic("messageRepoMock.GetByIDFunc: method is nil but messageRepo.GetByID was just called")
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

func (mock *messageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *messageRepoMock) List(ctx context.Context, f domain.MessageFilter) ([]domain.Message, int, error) {
	if mock.ListFunc == nil {
		panic("messageRepoMock.ListFunc: method is nil but messageRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.MessageFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *messageRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.MessageFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *messageRepoMock) SetRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error) {
	if mock.SetReadFunc == nil {
		panic("messageRepoMock.SetReadFunc: method is nil but messageRepo.SetRead was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Read bool
	}{Ctx: ctx, ID: id, Read: read}
	mock.lockSetRead.Lock()
	mock.calls.SetRead = append(mock.calls.SetRead, callInfo)
	mock.lockSetRead.Unlock()
	return mock.SetReadFunc(ctx, id, read)
}

func (mock *messageRepoMock) SetReadCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Read bool
} {
	mock.lockSetRead.RLock()
	calls := mock.calls.SetRead
	mock.lockSetRead.RUnlock()
	return calls
}
