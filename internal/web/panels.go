package web

import (
	"sync"

	"github.com/google/uuid"
	"github.com/goserg/bizness/internal/auth/form"
	lru "github.com/hashicorp/golang-lru/v2"
)

// panels keeps the auth form of recently seen profiles. An evicted profile
// starts over with an empty sign-in form, unless its form was evicted in the
// middle of a submit: that one is held in inflight until the submit is over,
// so the profile keeps its guard.
type panels struct {
	mu       sync.Mutex
	cache    *lru.Cache[uuid.UUID, *form.Controller]
	inflight map[uuid.UUID]*form.Controller
	build    func(profileID uuid.UUID) *form.Controller
}

func newPanels(size int, build func(profileID uuid.UUID) *form.Controller) (*panels, error) {
	p := &panels{
		inflight: make(map[uuid.UUID]*form.Controller),
		build:    build,
	}
	// onEvict runs inside cache.Add, which is only called with p.mu held.
	cache, err := lru.NewWithEvict[uuid.UUID, *form.Controller](size, p.onEvict)
	if err != nil {
		return nil, err
	}
	p.cache = cache
	return p, nil
}

func (p *panels) onEvict(profileID uuid.UUID, c *form.Controller) {
	if c.State().Submitting {
		p.inflight[profileID] = c
	}
}

func (p *panels) get(profileID uuid.UUID) *form.Controller {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.cache.Get(profileID); ok {
		return c
	}
	c, ok := p.inflight[profileID]
	if ok {
		delete(p.inflight, profileID)
	} else {
		c = p.build(profileID)
	}
	p.sweep()
	p.cache.Add(profileID, c)
	return c
}

// sweep drops held forms whose submit has finished.
func (p *panels) sweep() {
	for id, c := range p.inflight {
		if !c.State().Submitting {
			delete(p.inflight, id)
		}
	}
}
