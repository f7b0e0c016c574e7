package navigation

import (
	"sync"

	"github.com/goserg/bizness/internal/domain"
)

type Intent string

const (
	Admin     Intent = "admin"
	Dashboard Intent = "dashboard"
	Landing   Intent = "landing"
	Auth      Intent = "auth"
)

// ForRole picks the area a signed-in identity belongs to.
func ForRole(role domain.Role) Intent {
	if role == domain.RoleAdmin {
		return Admin
	}
	return Dashboard
}

type Navigator interface {
	NavigateTo(Intent)
}

// Recorder keeps every intent it was asked to navigate to.
type Recorder struct {
	mu      sync.Mutex
	intents []Intent
}

func (r *Recorder) NavigateTo(intent Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, intent)
}

func (r *Recorder) Intents() []Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Intent(nil), r.intents...)
}

// Last returns the most recent intent, if any.
func (r *Recorder) Last() (Intent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.intents) == 0 {
		return "", false
	}
	return r.intents[len(r.intents)-1], true
}

var _ Navigator = (*Recorder)(nil)
