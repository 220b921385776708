package access

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyAccessTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		VerifyAccessToken []struct {
			Token string
		}
	}
	lockVerifyAccessToken sync.RWMutex
}

func (mock *tokenVerifierMock) VerifyAccessToken(token string) (uuid.UUID, error) {
	if mock.VerifyAccessTokenFunc == nil {
		panic("tokenVerifierMock.VerifyAccessTokenFunc: method is nil but tokenVerifier.VerifyAccessToken was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockVerifyAccessToken.Lock()
	mock.calls.VerifyAccessToken = append(mock.calls.VerifyAccessToken, callInfo)
	mock.lockVerifyAccessToken.Unlock()
	return mock.VerifyAccessTokenFunc(token)
}

func (mock *tokenVerifierMock) VerifyAccessTokenCalls() []struct{ Token string } {
	mock.lockVerifyAccessToken.RLock()
	calls := mock.calls.VerifyAccessToken
	mock.lockVerifyAccessToken.RUnlock()
	return calls
}
