package listing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, adminID uuid.UUID, action domain.AuditAction, target domain.TargetType, targetID *uuid.UUID)

	calls struct {
		Record []struct {
			Ctx      context.Context
			AdminID  uuid.UUID
			Action   domain.AuditAction
			Target   domain.TargetType
			TargetID *uuid.UUID
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, adminID uuid.UUID, action domain.AuditAction, target domain.TargetType, targetID *uuid.UUID) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AdminID  uuid.UUID
		Action   domain.AuditAction
		Target   domain.TargetType
		TargetID *uuid.UUID
	}{Ctx: ctx, AdminID: adminID, Action: action, Target: target, TargetID: targetID}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, adminID, action, target, targetID)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx      context.Context
	AdminID  uuid.UUID
	Action   domain.AuditAction
	Target   domain.TargetType
	TargetID *uuid.UUID
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
