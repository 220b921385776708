package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateRefreshTokenFunc func() (raw string, hash string, err error)
	IssueAccessTokenFunc     func(accountID uuid.UUID) (string, error)

	calls struct {
		GenerateRefreshToken []struct{}
		IssueAccessToken     []struct {
			AccountID uuid.UUID
		}
	}
	lockGenerateRefreshToken sync.RWMutex
	lockIssueAccessToken     sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateRefreshToken() (raw string, hash string, err error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("tokenIssuerMock.GenerateRefreshTokenFunc: method is nil but tokenIssuer.GenerateRefreshToken was just called")
	}
	mock.lockGenerateRefreshToken.Lock()
	mock.calls.GenerateRefreshToken = append(mock.calls.GenerateRefreshToken, struct{}{})
	mock.lockGenerateRefreshToken.Unlock()
	return mock.GenerateRefreshTokenFunc()
}

func (mock *tokenIssuerMock) GenerateRefreshTokenCalls() []struct{} {
	mock.lockGenerateRefreshToken.RLock()
	calls := mock.calls.GenerateRefreshToken
	mock.lockGenerateRefreshToken.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) IssueAccessToken(accountID uuid.UUID) (string, error) {
	if mock.IssueAccessTokenFunc == nil {
		panic("tokenIssuerMock.IssueAccessTokenFunc: method is nil but tokenIssuer.IssueAccessToken was just called")
	}
	callInfo := struct{ AccountID uuid.UUID }{AccountID: accountID}
	mock.lockIssueAccessToken.Lock()
	mock.calls.IssueAccessToken = append(mock.calls.IssueAccessToken, callInfo)
	mock.lockIssueAccessToken.Unlock()
	return mock.IssueAccessTokenFunc(accountID)
}

func (mock *tokenIssuerMock) IssueAccessTokenCalls() []struct {
	AccountID uuid.UUID
} {
	mock.lockIssueAccessToken.RLock()
	calls := mock.calls.IssueAccessToken
	mock.lockIssueAccessToken.RUnlock()
	return calls
}
