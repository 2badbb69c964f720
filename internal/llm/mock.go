package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// Chunks, when set, is how GenerateStream splits Content into
	// deltas. FailAfter > 0 ends the stream with Err (or a generic
	// interruption) after that many chunks, exercising the
	// partial-output path.
	Chunks    []string
	FailAfter int
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// GenerateStream replays the next canned response as chunks. When the
// response has no explicit Chunks, the whole Content is delivered as a
// single delta.
func (m *MockProvider) GenerateStream(_ context.Context, req Request, onDelta func(string)) (*Response, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}

	chunks := resp.Chunks
	if len(chunks) == 0 {
		chunks = []string{string(resp.Content)}
	}

	var accumulated string
	for i, chunk := range chunks {
		if resp.FailAfter > 0 && i == resp.FailAfter {
			return &Response{
					Content:    json.RawMessage(accumulated),
					Usage:      resp.Usage,
					Model:      "mock",
					StopReason: "interrupted",
				}, &ErrStreamInterrupted{
					Partial: accumulated,
					Err:     resp.Err,
				}
		}
		accumulated += chunk
		onDelta(chunk)
	}

	return &Response{
		Content:    json.RawMessage(accumulated),
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) next(req Request) (MockResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return MockResponse{}, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	// FailAfter delays the error into the stream; a bare Err fails
	// the call up front.
	if resp.Err != nil && resp.FailAfter == 0 {
		return MockResponse{}, resp.Err
	}

	return resp, nil
}

// CallCount returns how many requests this provider has received.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}
