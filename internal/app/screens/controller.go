package screens

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
	"github.com/yigit/campusadmin/internal/pkg/validation"
)

// Client is the Resource Client contract a screen drives
type Client[R any, D any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, draft D) (R, error)
	Update(ctx context.Context, id int64, draft D) (R, error)
	Delete(ctx context.Context, id int64) error
}

// Descriptor tells the generic controller how to handle one resource type
type Descriptor[R any, D any] struct {
	Singular   string
	Plural     string
	ID         func(R) int64
	Draft      func(R) D
	NewDraft   func(today time.Time) D
	Searchable func(R) []string
	Fields     models.FieldSet[D]
}

// ConfirmFunc blocks until the user accepts (true) or declines a prompt
type ConfirmFunc func(prompt string) bool

// ReconcileMode selects how the list is brought up to date after a write
type ReconcileMode int

const (
	// ReconcileRefetch reloads the full collection after every write
	ReconcileRefetch ReconcileMode = iota
	// ReconcileApply applies the record returned by the backend in memory
	ReconcileApply
)

// Controller is the list / filter / modal state of one CRUD screen.
// A Controller is not safe for concurrent use; each request builds its own.
type Controller[R any, D any] struct {
	desc      Descriptor[R, D]
	client    Client[R, D]
	logger    zerolog.Logger
	reconcile ReconcileMode
	now       func() time.Time
	activated bool

	// Items is the collection as of the last successful fetch
	Items []R
	// Query is the current search text
	Query string
	// Draft is the open form, nil when the modal is closed
	Draft *D
	// EditingID is the record being edited, 0 when the form creates
	EditingID int64
	// Loading is true until the first fetch resolves
	Loading bool
	// Alert is the single generic message shown after a failed write
	Alert string
	// FieldErrors holds per-input messages for the open form
	FieldErrors map[string]string
}

// Option configures a Controller
type Option func(*options)

type options struct {
	reconcile ReconcileMode
	now       func() time.Time
}

// WithReconcile selects the post-write reconciliation strategy
func WithReconcile(mode ReconcileMode) Option {
	return func(o *options) { o.reconcile = mode }
}

// WithClock overrides the clock used for draft defaults
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewController creates a controller for the resource described by desc
func NewController[R any, D any](desc Descriptor[R, D], client Client[R, D], logger zerolog.Logger, opts ...Option) *Controller[R, D] {
	o := options{reconcile: ReconcileRefetch, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[R, D]{
		desc:      desc,
		client:    client,
		logger:    logger.With().Str("screen", desc.Plural).Logger(),
		reconcile: o.reconcile,
		now:       o.now,
		Items:     []R{},
		Loading:   true,
	}
}

// Descriptor returns the resource descriptor
func (c *Controller[R, D]) Descriptor() Descriptor[R, D] {
	return c.desc
}

// Activate fetches the collection once. A failed fetch is logged and leaves
// the list empty; it is not reported to the caller.
func (c *Controller[R, D]) Activate(ctx context.Context) {
	if c.activated {
		return
	}
	c.activated = true
	c.Loading = true
	_ = c.reload(ctx)
	c.Loading = false
}

func (c *Controller[R, D]) reload(ctx context.Context) error {
	items, err := c.client.List(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msgf("Error fetching %s", c.desc.Plural)
		return err
	}
	c.Items = items
	return nil
}

// SetQuery replaces the search text
func (c *Controller[R, D]) SetQuery(q string) {
	c.Query = q
}

// Filtered is the visible list: Items narrowed by Query
func (c *Controller[R, D]) Filtered() []R {
	return Filter(c.Items, c.Query, c.desc.Searchable)
}

// ModalOpen reports whether a form is open
func (c *Controller[R, D]) ModalOpen() bool {
	return c.Draft != nil
}

// Editing reports whether the open form updates an existing record
func (c *Controller[R, D]) Editing() bool {
	return c.Draft != nil && c.EditingID != 0
}

// OpenAdd opens an empty form with the resource defaults
func (c *Controller[R, D]) OpenAdd() {
	draft := c.desc.NewDraft(c.now())
	c.Draft = &draft
	c.EditingID = 0
	c.Alert = ""
	c.FieldErrors = nil
}

// OpenEdit opens the form seeded with every field of the record id
func (c *Controller[R, D]) OpenEdit(id int64) error {
	item, ok := c.find(id)
	if !ok {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", c.desc.Singular, id))
	}
	draft := c.desc.Draft(item)
	c.Draft = &draft
	c.EditingID = id
	c.Alert = ""
	c.FieldErrors = nil
	return nil
}

// Close discards the open form
func (c *Controller[R, D]) Close() {
	c.Draft = nil
	c.EditingID = 0
	c.FieldErrors = nil
}

// SetField assigns one input of the open form. Type errors are recorded in
// FieldErrors; unknown input names are rejected.
func (c *Controller[R, D]) SetField(name, value string) error {
	if c.Draft == nil {
		return apperrors.NewCustomError(apperrors.ErrBadRequest, "no form is open")
	}
	if err := c.desc.Fields.Set(c.Draft, name, value); err != nil {
		if errors.Is(err, apperrors.ErrUnknownField) {
			return err
		}
		if c.FieldErrors == nil {
			c.FieldErrors = map[string]string{}
		}
		c.FieldErrors[name] = err.Error()
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}
	delete(c.FieldErrors, name)
	return nil
}

// BindForm copies every known input present in form into the open form.
// Inputs the resource does not define are ignored.
func (c *Controller[R, D]) BindForm(form url.Values) error {
	var firstErr error
	for name := range c.desc.Fields {
		if _, present := form[name]; !present {
			continue
		}
		if err := c.SetField(name, form.Get(name)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Submit creates or updates the open form's record. On success the list is
// reconciled and the modal closed; on failure the modal stays open with the
// draft intact and Alert set.
func (c *Controller[R, D]) Submit(ctx context.Context) error {
	if c.Draft == nil {
		return apperrors.NewCustomError(apperrors.ErrBadRequest, "no form is open")
	}

	if len(c.FieldErrors) > 0 {
		c.Alert = c.saveAlert()
		return apperrors.NewValidationError(c.FieldErrors)
	}
	if errs := validation.Struct(*c.Draft); errs != nil {
		c.FieldErrors = errs
		c.Alert = c.saveAlert()
		return apperrors.NewValidationError(errs)
	}

	var (
		saved R
		err   error
	)
	if c.EditingID == 0 {
		saved, err = c.client.Create(ctx, *c.Draft)
	} else {
		saved, err = c.client.Update(ctx, c.EditingID, *c.Draft)
	}
	if err != nil {
		c.logger.Error().Err(err).Int64("id", c.EditingID).Msgf("Error saving %s", c.desc.Singular)
		c.Alert = c.saveAlert()
		if fields := apperrors.FieldErrors(err); len(fields) > 0 {
			c.FieldErrors = fields
		}
		return err
	}

	editingID := c.EditingID
	c.Close()
	c.Alert = ""
	c.afterWrite(ctx, func() { c.upsert(editingID, saved) })
	return nil
}

// Delete removes record id after confirm accepts. A declined confirmation
// issues no network call and reports false.
func (c *Controller[R, D]) Delete(ctx context.Context, id int64, confirm ConfirmFunc) (bool, error) {
	if confirm == nil || !confirm(c.DeletePrompt()) {
		return false, nil
	}

	if err := c.client.Delete(ctx, id); err != nil {
		c.logger.Error().Err(err).Int64("id", id).Msgf("Error deleting %s", c.desc.Singular)
		c.Alert = fmt.Sprintf("Error deleting %s.", c.desc.Singular)
		return true, err
	}

	c.Alert = ""
	c.afterWrite(ctx, func() { c.remove(id) })
	return true, nil
}

// DeletePrompt is the confirmation question shown before a delete
func (c *Controller[R, D]) DeletePrompt() string {
	return fmt.Sprintf("Are you sure you want to delete this %s?", c.desc.Singular)
}

// Find returns the record id from the current list
func (c *Controller[R, D]) Find(id int64) (R, bool) {
	return c.find(id)
}

// afterWrite brings Items up to date after a successful write. Applying in
// memory needs a list to apply to, so an unactivated controller refetches.
func (c *Controller[R, D]) afterWrite(ctx context.Context, apply func()) {
	if c.reconcile == ReconcileApply && c.activated {
		apply()
		return
	}
	c.activated = true
	_ = c.reload(ctx)
	c.Loading = false
}

func (c *Controller[R, D]) saveAlert() string {
	return fmt.Sprintf("Error saving %s. Please check all fields.", c.desc.Singular)
}

func (c *Controller[R, D]) find(id int64) (R, bool) {
	for _, item := range c.Items {
		if c.desc.ID(item) == id {
			return item, true
		}
	}
	var zero R
	return zero, false
}

func (c *Controller[R, D]) upsert(editingID int64, saved R) {
	if editingID != 0 {
		for i, item := range c.Items {
			if c.desc.ID(item) == editingID {
				c.Items[i] = saved
				return
			}
		}
	}
	c.Items = append(c.Items, saved)
}

func (c *Controller[R, D]) remove(id int64) {
	c.Items = slices.DeleteFunc(c.Items, func(item R) bool {
		return c.desc.ID(item) == id
	})
}
