package report

import (
	"sync"
	"time"
)

var _ observer = &observerMock{}

type observerMock struct {
	ObserveReportFunc func(d time.Duration, err error, skipped map[string]int)

	calls struct {
		ObserveReport []struct {
			D       time.Duration
			Err     error
			Skipped map[string]int
		}
	}
	lockObserveReport sync.RWMutex
}

func (mock *observerMock) ObserveReport(d time.Duration, err error, skipped map[string]int) {
	if mock.ObserveReportFunc == nil {
		panic("observerMock.ObserveReportFunc: method is nil but observer.ObserveReport was just called")
	}
	callInfo := struct {
		D       time.Duration
		Err     error
		Skipped map[string]int
	}{D: d, Err: err, Skipped: skipped}
	mock.lockObserveReport.Lock()
	mock.calls.ObserveReport = append(mock.calls.ObserveReport, callInfo)
	mock.lockObserveReport.Unlock()
	mock.ObserveReportFunc(d, err, skipped)
}

func (mock *observerMock) ObserveReportCalls() []struct {
	D       time.Duration
	Err     error
	Skipped map[string]int
} {
	mock.lockObserveReport.RLock()
	calls := mock.calls.ObserveReport
	mock.lockObserveReport.RUnlock()
	return calls
}
