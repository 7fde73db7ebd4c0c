// Package reconcile applies user edits to the canonical state.
//
// Every mutation is sent to the health API first and reflected locally only
// after the server acknowledgment, so the dashboard never shows a record
// the server rejected. A failure leaves the store exactly as it was; the
// caller keeps its form open and shows the error for retry.
package reconcile

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/logger"
	"github.com/rolandbouwer/appdash/internal/remote"
	"github.com/rolandbouwer/appdash/internal/state"
)

// Remote is the subset of the API client mutations need.
type Remote interface {
	CreateApplication(ctx context.Context, in remote.ApplicationInput) (remote.Application, error)
	UpdateApplication(ctx context.Context, id int64, in remote.ApplicationInput) (remote.Application, error)
	DeleteApplication(ctx context.Context, id int64) error
	CreateTag(ctx context.Context, in remote.TagInput) (remote.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}

// Reconciler sends mutations and folds acknowledgments into the store.
type Reconciler struct {
	remote Remote
	store  *state.Store
	log    logger.Logger
}

// New creates a reconciler. A nil logger discards output.
func New(remote Remote, store *state.Store, log logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Noop()
	}
	return &Reconciler{remote: remote, store: store, log: log}
}

// CreateApplication validates the input, sends the create, and appends the
// server-returned record (with its server-assigned identity) on success.
func (r *Reconciler) CreateApplication(ctx context.Context, in remote.ApplicationInput) (remote.Application, error) {
	if err := validateApplication(in); err != nil {
		return remote.Application{}, err
	}

	reqID := uuid.NewString()
	r.log.Debug("create application %q [%s]", in.Name, reqID)

	app, err := r.remote.CreateApplication(ctx, in)
	if err != nil {
		r.log.Debug("create application %q failed [%s]: %s", in.Name, reqID, errors.Summary(err))
		return remote.Application{}, err
	}

	r.store.AppendApplication(app)
	return app, nil
}

// UpdateApplication validates the input, sends the update keyed by the
// existing identity, and replaces the matching record in place on success.
func (r *Reconciler) UpdateApplication(ctx context.Context, id int64, in remote.ApplicationInput) (remote.Application, error) {
	if err := validateApplication(in); err != nil {
		return remote.Application{}, err
	}

	reqID := uuid.NewString()
	r.log.Debug("update application %d [%s]", id, reqID)

	app, err := r.remote.UpdateApplication(ctx, id, in)
	if err != nil {
		r.log.Debug("update application %d failed [%s]: %s", id, reqID, errors.Summary(err))
		return remote.Application{}, err
	}

	r.store.ReplaceApplication(app)
	return app, nil
}

// DeleteApplication sends the delete and removes the record by identity on
// success. On failure the record stays put; a false-negative deletion is
// worse than a visible error. Interactive confirmation is the caller's job.
func (r *Reconciler) DeleteApplication(ctx context.Context, id int64) error {
	reqID := uuid.NewString()
	r.log.Debug("delete application %d [%s]", id, reqID)

	if err := r.remote.DeleteApplication(ctx, id); err != nil {
		r.log.Debug("delete application %d failed [%s]: %s", id, reqID, errors.Summary(err))
		return err
	}

	r.store.RemoveApplication(id)
	return nil
}

// CreateTag validates the name, sends the create, and appends the
// server-returned tag on success.
func (r *Reconciler) CreateTag(ctx context.Context, in remote.TagInput) (remote.Tag, error) {
	if strings.TrimSpace(in.Name) == "" {
		return remote.Tag{}, errors.NewValidation("Tag name", "is required")
	}

	reqID := uuid.NewString()
	r.log.Debug("create tag %q [%s]", in.Name, reqID)

	tag, err := r.remote.CreateTag(ctx, in)
	if err != nil {
		r.log.Debug("create tag %q failed [%s]: %s", in.Name, reqID, errors.Summary(err))
		return remote.Tag{}, err
	}

	r.store.AppendTag(tag)
	return tag, nil
}

// DeleteTag sends the delete and removes the tag by identity on success.
// Applications that still name the tag keep it until the next poll replaces
// the snapshot.
func (r *Reconciler) DeleteTag(ctx context.Context, id int64) error {
	reqID := uuid.NewString()
	r.log.Debug("delete tag %d [%s]", id, reqID)

	if err := r.remote.DeleteTag(ctx, id); err != nil {
		r.log.Debug("delete tag %d failed [%s]: %s", id, reqID, errors.Summary(err))
		return err
	}

	r.store.RemoveTag(id)
	return nil
}

// validateApplication rejects inputs that would fail server-side required
// checks, before any network call.
func validateApplication(in remote.ApplicationInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.NewValidation("Application name", "is required")
	}
	if strings.TrimSpace(in.URL) == "" {
		return errors.NewValidation("Application URL", "is required")
	}
	return nil
}
