package form

import (
	"context"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/goserg/bizness/internal/domain"
	"github.com/goserg/bizness/internal/navigation"
	"github.com/sirupsen/logrus"
)

const DefaultLatency = 1500 * time.Millisecond

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

var fieldNames = mapset.NewSet(FieldName, FieldEmail, FieldPassword)

// Store receives the identity a submission resolves to.
type Store interface {
	Write(ctx context.Context, identity domain.Identity)
}

type State struct {
	Mode       Mode
	Fields     Fields
	Submitting bool
}

// Controller drives the sign-in / register panel of one profile.
type Controller struct {
	store Store
	log   *logrus.Entry
	delay func()
	newID func() string

	mu         sync.Mutex
	mode       Mode
	fields     Fields
	submitting bool
}

type Option func(*Controller)

// WithLatency sets the simulated round trip of a submission.
func WithLatency(d time.Duration) Option {
	return func(c *Controller) {
		c.delay = func() { time.Sleep(d) }
	}
}

// WithDelay replaces the simulated round trip with an arbitrary wait.
func WithDelay(delay func()) Option {
	return func(c *Controller) {
		c.delay = delay
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) {
		c.newID = newID
	}
}

func New(l *logrus.Logger, store Store, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		log:   l.WithField("from", "auth-form"),
		newID: func() string { return uuid.NewString() },
		mode:  SignIn,
	}
	WithLatency(DefaultLatency)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Mode:       c.mode,
		Fields:     c.fields,
		Submitting: c.submitting,
	}
}

// ToggleMode switches between sign-in and register and empties every field.
func (c *Controller) ToggleMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = c.mode.Toggle()
	c.fields = Fields{}
}

// OnFieldChange sets one field. Unknown field names are ignored.
func (c *Controller) OnFieldChange(field string, value string) {
	if !fieldNames.Contains(field) {
		c.log.WithField("field", field).Debug("ignoring unknown field")
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch field {
	case FieldName:
		c.fields.Name = value
	case FieldEmail:
		c.fields.Email = value
	case FieldPassword:
		c.fields.Password = value
	}
}

// Submit resolves the form as it is now, stores the identity and then
// navigates to the area of its role. It returns false without doing anything
// when another submission is still in flight. A submission that has started
// always completes, whatever happens to ctx.
func (c *Controller) Submit(ctx context.Context, nav navigation.Navigator) (domain.Identity, bool) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		c.log.Debug("submit ignored, another one is in flight")
		return domain.Identity{}, false
	}
	c.submitting = true
	mode, fields := c.mode, c.fields
	c.mu.Unlock()

	c.delay()

	identity := Resolve(mode, fields, c.newID)
	c.store.Write(context.WithoutCancel(ctx), identity)

	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"mode": mode.String(),
		"role": identity.Role,
	}).Info("form submitted")
	nav.NavigateTo(navigation.ForRole(identity.Role))
	return identity, true
}
