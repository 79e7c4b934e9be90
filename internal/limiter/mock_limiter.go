package limiter

import (
	"context"
	"sync"
)

// MockLimiter is a test double for the Limiter interface
type MockLimiter struct {
	mu sync.Mutex

	// Control behavior
	AllowResult bool

	// Track method calls for verification in tests
	AllowCalls  []string // keys Allow() was called with
	CloseCalled bool

	// Control error scenarios
	CloseError error
}

// NewMockLimiter creates a mock limiter that always returns allowResult
func NewMockLimiter(allowResult bool) *MockLimiter {
	return &MockLimiter{
		AllowResult: allowResult,
		AllowCalls:  []string{},
	}
}

// Allow implements the Limiter interface
func (m *MockLimiter) Allow(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AllowCalls = append(m.AllowCalls, key)
	return m.AllowResult
}

// Close implements the Limiter interface
func (m *MockLimiter) Close() error {
	m.CloseCalled = true
	return m.CloseError
}
