package kafka

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"
)

var _ messageWriter = &messageWriterMock{}

type messageWriterMock struct {
	CloseFunc         func() error
	WriteMessagesFunc func(ctx context.Context, msgs ...kafka.Message) error

	calls struct {
		Close         []struct{}
		WriteMessages []struct {
			Ctx  context.Context
			Msgs []kafka.Message
		}
	}
	lockClose         sync.RWMutex
	lockWriteMessages sync.RWMutex
}

func (mock *messageWriterMock) Close() error {
	if mock.CloseFunc == nil {
		panic("messageWriterMock.CloseFunc: method is nil but messageWriter.Close was just called")
	}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, struct{}{})
	mock.lockClose.Unlock()
	return mock.CloseFunc()
}

func (mock *messageWriterMock) CloseCalls() []struct{} {
	mock.lockClose.RLock()
	calls := mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}

func (mock *messageWriterMock) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if mock.WriteMessagesFunc == nil {
		panic("messageWriterMock.WriteMessagesFunc: method is nil but messageWriter.WriteMessages was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Msgs []kafka.Message
	}{Ctx: ctx, Msgs: msgs}
	mock.lockWriteMessages.Lock()
	mock.calls.WriteMessages = append(mock.calls.WriteMessages, callInfo)
	mock.lockWriteMessages.Unlock()
	return mock.WriteMessagesFunc(ctx, msgs...)
}

func (mock *messageWriterMock) WriteMessagesCalls() []struct {
	Ctx  context.Context
	Msgs []kafka.Message
} {
	mock.lockWriteMessages.RLock()
	calls := mock.calls.WriteMessages
	mock.lockWriteMessages.RUnlock()
	return calls
}
