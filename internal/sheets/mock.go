package sheets

import (
	"context"
	"sync"

	"github.com/Veraticus/kassenbon/internal/model"
)

// MockWriter is a test double for the ReportWriter interface.
type MockWriter struct {
	writeErr error
	calls    [][]model.Receipt
	mu       sync.Mutex
}

// NewMockWriter creates a new mock writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// Write records the call and returns the configured error, if any.
func (m *MockWriter) Write(_ context.Context, receipts []model.Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}
	m.calls = append(m.calls, receipts)
	return nil
}

// WriteCalls returns the recorded calls.
func (m *MockWriter) WriteCalls() [][]model.Receipt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]model.Receipt(nil), m.calls...)
}

// SetWriteError makes subsequent Write calls fail with err.
func (m *MockWriter) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Reset clears recorded calls and any configured error.
func (m *MockWriter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.writeErr = nil
}
