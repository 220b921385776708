package listing

import (
	"context"
	"sync"
)

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	DeleteFunc func(ctx context.Context, key string) error
	UploadFunc func(ctx context.Context, key string, contentType string, data []byte) (string, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			Key string
		}
		Upload []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Data        []byte
		}
	}
	lockDelete sync.RWMutex
	lockUpload sync.RWMutex
}

func (mock *imageStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("imageStoreMock.DeleteFunc: method is nil but imageStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *imageStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *imageStoreMock) Upload(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	if mock.UploadFunc == nil {
		panic("imageStoreMock.UploadFunc: method is nil but imageStore.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Data        []byte
	}{Ctx: ctx, Key: key, ContentType: contentType, Data: data}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, key, contentType, data)
}

func (mock *imageStoreMock) UploadCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Data        []byte
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
