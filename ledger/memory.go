package ledger

import (
	"context"
	"sync"
)

// MemoryService keeps runs in process memory. Used in tests and as the
// "off" backend when no database is configured.
type MemoryService struct {
	mu   sync.Mutex
	runs []RunResult
}

func NewMemoryService() *MemoryService {
	return &MemoryService{}
}

func (s *MemoryService) RecordRun(ctx context.Context, run RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

func (s *MemoryService) RecentRuns(ctx context.Context, limit int) ([]RunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > len(s.runs) {
		limit = len(s.runs)
	}
	out := make([]RunResult, 0, limit)
	for i := len(s.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.runs[i])
	}
	return out, nil
}

func (s *MemoryService) Close() error { return nil }
