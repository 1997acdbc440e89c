package strategy_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/authkit/pkg/strategy"
	"github.com/dmitrymomot/authkit/pkg/stream"
)

// MockDeserializer is a mock implementation of strategy.Deserializer.
type MockDeserializer struct {
	mock.Mock
}

func (m *MockDeserializer) DeserializeUser(ctx context.Context, id any, req *strategy.Request) (any, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0), args.Error(1)
}

// countingPauser records Pause and Resume calls without guarding against
// repeated Resume, so tests can assert the strategy resumes exactly once.
type countingPauser struct {
	mu      sync.Mutex
	pauses  int
	resumes int
}

func (p *countingPauser) Pause() stream.Resumer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauses++
	return resumerFunc(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.resumes++
	})
}

func (p *countingPauser) counts() (pauses, resumes int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pauses, p.resumes
}

type resumerFunc func()

func (f resumerFunc) Resume() { f() }

type testUser struct {
	ID   int
	Name string
}
