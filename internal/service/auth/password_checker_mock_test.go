package auth

import (
	"sync"
)

var _ passwordChecker = &passwordCheckerMock{}

type passwordCheckerMock struct {
	CompareFunc func(hash string, password string) error

	calls struct {
		Compare []struct {
			Hash     string
			Password string
		}
	}
	lockCompare sync.RWMutex
}

func (mock *passwordCheckerMock) Compare(hash string, password string) error {
	if mock.CompareFunc == nil {
		panic("passwordCheckerMock.CompareFunc: method is nil but passwordChecker.Compare was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password}
	mock.lockCompare.Lock()
	mock.calls.Compare = append(mock.calls.Compare, callInfo)
	mock.lockCompare.Unlock()
	return mock.CompareFunc(hash, password)
}

func (mock *passwordCheckerMock) CompareCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockCompare.RLock()
	calls := mock.calls.Compare
	mock.lockCompare.RUnlock()
	return calls
}
