package application

import (
	"context"
	"sync"
	"time"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// memoryHistory is an in-memory append-only store.
type memoryHistory struct {
	mu       sync.Mutex
	nextID   int64
	messages []domain.Message
	failOn   func(domain.Message) error
}

func (h *memoryHistory) Append(_ context.Context, msg domain.Message) (domain.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failOn != nil {
		if err := h.failOn(msg); err != nil {
			return domain.Message{}, err
		}
	}
	h.nextID++
	msg.ID = h.nextID
	h.messages = append(h.messages, msg)
	return msg, nil
}

func (h *memoryHistory) List(_ context.Context, sessionID string) ([]domain.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []domain.Message
	for _, msg := range h.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []domain.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.published = append(p.published, msg)
	return nil
}

func (p *recordingPublisher) speakers() []domain.PersonaID {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]domain.PersonaID, 0, len(p.published))
	for _, msg := range p.published {
		out = append(out, msg.Speaker)
	}
	return out
}
