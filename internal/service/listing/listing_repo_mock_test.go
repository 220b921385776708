package listing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

var _ listingRepo = &listingRepoMock{}

type listingRepoMock struct {
	CreateFunc        func(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID, scope domain.ListingScope) (*domain.Listing, error)
	GetForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListFunc          func(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, int, error)
	SetImageFunc      func(ctx context.Context, id uuid.UUID, url string, key string) (*domain.Listing, error)
	SetStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.ListingStatus) (*domain.Listing, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, c domain.ListingContent) (*domain.Listing, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.Listing
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Scope domain.ListingScope
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.ListingFilter
		}
		SetImage []struct {
			Ctx context.Context
			ID  uuid.UUID
			URL string
			Key string
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ListingStatus
		}
		UpdateContent []struct {
			Ctx context.Context
			ID  uuid.UUID
			C   domain.ListingContent
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetForUpdate  sync.RWMutex
	lockList          sync.RWMutex
	lockSetImage      sync.RWMutex
	lockSetStatus     sync.RWMutex
	lockUpdateContent sync.RWMutex
}

func (mock *listingRepoMock) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	if mock.CreateFunc == nil {
		panic("listingRepoMock.CreateFunc: method is nil but listingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Listing
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Listing
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *listingRepoMock) Delete(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if mock.DeleteFunc == nil {
		panic("listingRepoMock.DeleteFunc: method is nil but listingRepo.Delete was just called")
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

func (mock *listingRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *listingRepoMock) GetByID(ctx context.Context, id uuid.UUID, scope domain.ListingScope) (*domain.Listing, error) {
	if mock.GetByIDFunc == nil {
		panic("listingRepoMock.GetByIDFunc: method is nil but listingRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Scope domain.ListingScope
	}{Ctx: ctx, ID: id, Scope: scope}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id, scope)
}

func (mock *listingRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope domain.ListingScope
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *listingRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if mock.GetForUpdateFunc == nil {
		panic("listingRepoMock.GetForUpdateFunc: method is nil but listingRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *listingRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *listingRepoMock) List(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, int, error) {
	if mock.ListFunc == nil {
		panic("listingRepoMock.ListFunc: method is nil but listingRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListingFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *listingRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ListingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *listingRepoMock) SetImage(ctx context.Context, id uuid.UUID, url string, key string) (*domain.Listing, error) {
	if mock.SetImageFunc == nil {
		panic("listingRepoMock.SetImageFunc: method is nil but listingRepo.SetImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		URL string
		Key string
	}{Ctx: ctx, ID: id, URL: url, Key: key}
	mock.lockSetImage.Lock()
	mock.calls.SetImage = append(mock.calls.SetImage, callInfo)
	mock.lockSetImage.Unlock()
	return mock.SetImageFunc(ctx, id, url, key)
}

func (mock *listingRepoMock) SetImageCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	URL string
	Key string
} {
	mock.lockSetImage.RLock()
	calls := mock.calls.SetImage
	mock.lockSetImage.RUnlock()
	return calls
}

func (mock *listingRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) (*domain.Listing, error) {
	if mock.SetStatusFunc == nil {
		panic("listingRepoMock.SetStatusFunc: method is nil but listingRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ListingStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *listingRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.ListingStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *listingRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, c domain.ListingContent) (*domain.Listing, error) {
	if mock.UpdateContentFunc == nil {
		panic("listingRepoMock.UpdateContentFunc: method is nil but listingRepo.UpdateContent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		C   domain.ListingContent
	}{Ctx: ctx, ID: id, C: c}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, id, c)
}

func (mock *listingRepoMock) UpdateContentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	C   domain.ListingContent
} {
	mock.lockUpdateContent.RLock()
	calls := mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}
