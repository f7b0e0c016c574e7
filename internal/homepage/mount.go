package homepage

import (
	"context"
	"sync"

	"github.com/goserg/bizness/internal/domain"
	"github.com/goserg/bizness/internal/navigation"
)

type Store interface {
	Read(ctx context.Context) (domain.Identity, bool)
}

// Mount is one mount of the homepage. Check sends a signed-in visitor to the
// area of their role before the marketing content renders, and fires at most
// once for the same stored identity.
type Mount struct {
	store Store
	nav   navigation.Navigator

	mu    sync.Mutex
	fired bool
	last  domain.Identity
}

func NewMount(store Store, nav navigation.Navigator) *Mount {
	return &Mount{store: store, nav: nav}
}

// Check reports whether the visitor was sent away from the homepage.
func (m *Mount) Check(ctx context.Context) bool {
	identity, ok := m.store.Read(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !ok {
		m.fired = false
		return false
	}
	if m.fired && m.last == identity {
		return true
	}
	m.fired = true
	m.last = identity
	m.nav.NavigateTo(navigation.ForRole(identity.Role))
	return true
}
