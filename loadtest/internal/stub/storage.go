package stub

import (
	"sync"

	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
)

type failure struct {
	status    int
	remaining int
}

// RequestStorage keeps the optimize requests received per load-test run.
type RequestStorage struct {
	mu       sync.RWMutex
	requests map[string][]*optimizer.Request // runID -> requests
	failures map[string]*failure             // runID -> pending failures
}

func NewRequestStorage() *RequestStorage {
	return &RequestStorage{
		requests: make(map[string][]*optimizer.Request),
		failures: make(map[string]*failure),
	}
}

func (s *RequestStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.requests, runID)
	delete(s.failures, runID)
}

func (s *RequestStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make(map[string][]*optimizer.Request)
	s.failures = make(map[string]*failure)
}

func (s *RequestStorage) Add(runID string, req *optimizer.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[runID] = append(s.requests[runID], req)
}

func (s *RequestStorage) List(runID string) []*optimizer.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*optimizer.Request, len(s.requests[runID]))
	copy(out, s.requests[runID])
	return out
}

// SetFailure arms count failing responses for the run. A count of 0 fails until reset.
func (s *RequestStorage) SetFailure(runID string, status, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[runID] = &failure{status: status, remaining: count}
}

// NextFailure consumes one armed failure and returns its status, or 0.
func (s *RequestStorage) NextFailure(runID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.failures[runID]
	if !ok {
		return 0
	}
	if f.remaining > 0 {
		f.remaining--
		if f.remaining == 0 {
			delete(s.failures, runID)
		}
	}
	return f.status
}
