package audit

import (
	"sync"
)

var _ failureMetrics = &failureMetricsMock{}

type failureMetricsMock struct {
	AuditFailureFunc func(action string)

	calls struct {
		AuditFailure []struct {
			Action string
		}
	}
	lockAuditFailure sync.RWMutex
}

func (mock *failureMetricsMock) AuditFailure(action string) {
	if mock.AuditFailureFunc == nil {
		panic("failureMetricsMock.AuditFailureFunc: method is nil but failureMetrics.AuditFailure was just called")
	}
	callInfo := struct{ Action string }{Action: action}
	mock.lockAuditFailure.Lock()
	mock.calls.AuditFailure = append(mock.calls.AuditFailure, callInfo)
	mock.lockAuditFailure.Unlock()
	mock.AuditFailureFunc(action)
}

func (mock *failureMetricsMock) AuditFailureCalls() []struct {
	Action string
} {
	mock.lockAuditFailure.RLock()
	calls := mock.calls.AuditFailure
	mock.lockAuditFailure.RUnlock()
	return calls
}
