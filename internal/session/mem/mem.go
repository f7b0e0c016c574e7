package mem

import (
	"context"
	"sync"

	"github.com/goserg/bizness/internal/session"
)

type Backend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ session.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{
		slots: make(map[string][]byte),
	}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.slots[key]
	if !ok {
		return nil, session.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.slots[key] = append([]byte(nil), value...)
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.slots, key)
	return nil
}

func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.slots)
}
