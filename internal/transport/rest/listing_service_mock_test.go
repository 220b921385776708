package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/service/listing"
)

var _ listingService = &listingServiceMock{}

type listingServiceMock struct {
	CreateFunc            func(ctx context.Context, input listing.CreateInput) (*domain.Listing, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) (*listing.DeleteResult, error)
	GetFunc               func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListForModerationFunc func(ctx context.Context, input listing.ListInput) (*listing.ListResult, error)
	ListMineFunc          func(ctx context.Context, input listing.ListInput) (*listing.ListResult, error)
	ListPublicFunc        func(ctx context.Context, input listing.ListInput) (*listing.ListResult, error)
	ModerateFunc          func(ctx context.Context, id uuid.UUID, action string) (*domain.Listing, error)
	SetImageFunc          func(ctx context.Context, id uuid.UUID, input listing.ImageInput) (*domain.Listing, error)
	UpdateFunc            func(ctx context.Context, id uuid.UUID, input listing.UpdateInput) (*domain.Listing, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input listing.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListForModeration []struct {
			Ctx   context.Context
			Input listing.ListInput
		}
		ListMine []struct {
			Ctx   context.Context
			Input listing.ListInput
		}
		ListPublic []struct {
			Ctx   context.Context
			Input listing.ListInput
		}
		Moderate []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Action string
		}
		SetImage []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input listing.ImageInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input listing.UpdateInput
		}
	}
	lockCreate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockGet               sync.RWMutex
	lockListForModeration sync.RWMutex
	lockListMine          sync.RWMutex
	lockListPublic        sync.RWMutex
	lockModerate          sync.RWMutex
	lockSetImage          sync.RWMutex
	lockUpdate            sync.RWMutex
}

func (mock *listingServiceMock) Create(ctx context.Context, input listing.CreateInput) (*domain.Listing, error) {
	if mock.CreateFunc == nil {
		panic("listingServiceMock.CreateFunc: method is nil but listingService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input listing.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *listingServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input listing.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *listingServiceMock) Delete(ctx context.Context, id uuid.UUID) (*listing.DeleteResult, error) {
	if mock.DeleteFunc == nil {
		panic("listingServiceMock.DeleteFunc: method is nil but listingService.Delete was just called")
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

func (mock *listingServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *listingServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if mock.GetFunc == nil {
		panic("listingServiceMock.GetFunc: method is nil but listingService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *listingServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *listingServiceMock) ListForModeration(ctx context.Context, input listing.ListInput) (*listing.ListResult, error) {
	if mock.ListForModerationFunc == nil {
		panic("listingServiceMock.ListForModerationFunc: method is nil but listingService.ListForModeration was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input listing.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListForModeration.Lock()
	mock.calls.ListForModeration = append(mock.calls.ListForModeration, callInfo)
	mock.lockListForModeration.Unlock()
	return mock.ListForModerationFunc(ctx, input)
}

func (mock *listingServiceMock) ListForModerationCalls() []struct {
	Ctx   context.Context
	Input listing.ListInput
} {
	mock.lockListForModeration.RLock()
	calls := mock.calls.ListForModeration
	mock.lockListForModeration.RUnlock()
	return calls
}

func (mock *listingServiceMock) ListMine(ctx context.Context, input listing.ListInput) (*listing.ListResult, error) {
	if mock.ListMineFunc == nil {
		panic("listingServiceMock.ListMineFunc: method is nil but listingService.ListMine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input listing.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, input)
}

func (mock *listingServiceMock) ListMineCalls() []struct {
	Ctx   context.Context
	Input listing.ListInput
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *listingServiceMock) ListPublic(ctx context.Context, input listing.ListInput) (*listing.ListResult, error) {
	if mock.ListPublicFunc == nil {
		panic("listingServiceMock.ListPublicFunc: method is nil but listingService.ListPublic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input listing.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListPublic.Lock()
	mock.calls.ListPublic = append(mock.calls.ListPublic, callInfo)
	mock.lockListPublic.Unlock()
	return mock.ListPublicFunc(ctx, input)
}

func (mock *listingServiceMock) ListPublicCalls() []struct {
	Ctx   context.Context
	Input listing.ListInput
} {
	mock.lockListPublic.RLock()
	calls := mock.calls.ListPublic
	mock.lockListPublic.RUnlock()
	return calls
}

func (mock *listingServiceMock) Moderate(ctx context.Context, id uuid.UUID, action string) (*domain.Listing, error) {
	if mock.ModerateFunc == nil {
		panic("listingServiceMock.ModerateFunc: method is nil but listingService.Moderate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Action string
	}{Ctx: ctx, ID: id, Action: action}
	mock.lockModerate.Lock()
	mock.calls.Moderate = append(mock.calls.Moderate, callInfo)
	mock.lockModerate.Unlock()
	return mock.ModerateFunc(ctx, id, action)
}

func (mock *listingServiceMock) ModerateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Action string
} {
	mock.lockModerate.RLock()
	calls := mock.calls.Moderate
	mock.lockModerate.RUnlock()
	return calls
}

func (mock *listingServiceMock) SetImage(ctx context.Context, id uuid.UUID, input listing.ImageInput) (*domain.Listing, error) {
	if mock.SetImageFunc == nil {
		panic("listingServiceMock.SetImageFunc: method is nil but listingService.SetImage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input listing.ImageInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockSetImage.Lock()
	mock.calls.SetImage = append(mock.calls.SetImage, callInfo)
	mock.lockSetImage.Unlock()
	return mock.SetImageFunc(ctx, id, input)
}

func (mock *listingServiceMock) SetImageCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input listing.ImageInput
} {
	mock.lockSetImage.RLock()
	calls := mock.calls.SetImage
	mock.lockSetImage.RUnlock()
	return calls
}

func (mock *listingServiceMock) Update(ctx context.Context, id uuid.UUID, input listing.UpdateInput) (*domain.Listing, error) {
	if mock.UpdateFunc == nil {
		panic("listingServiceMock.UpdateFunc: method is nil but listingService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input listing.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *listingServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input listing.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
