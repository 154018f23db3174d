package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gymtrack/internal/client/apperr"
	"github.com/dmitrijs2005/gymtrack/internal/client/session"
	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

// SignInForm is the raw input of the sign-in screen.
type SignInForm struct {
	Email    string
	Password string
}

// SignInController drives credential submission for the sign-in screen.
type SignInController struct {
	submitGuard
	session *session.Store
	notify  Notifier
	log     logging.Logger
}

func NewSignInController(store *session.Store, notify Notifier, log logging.Logger) *SignInController {
	return &SignInController{session: store, notify: notify, log: log}
}

// Submit validates the form and, if it passes, opens a session. The
// returned Result carries per-field errors; an empty Result means the form
// was accepted and the outcome was reported through the Notifier. Re-entry
// while submitting is rejected silently.
func (c *SignInController) Submit(ctx context.Context, form SignInForm) validation.Result {
	gen, ctx, ok := c.begin(ctx)
	if !ok {
		return validation.Result{}
	}

	values := map[string]string{
		FieldEmail:    form.Email,
		FieldPassword: form.Password,
	}
	if result := validation.Validate(values, signInSpecs()); !result.Valid() {
		c.finish(gen)
		return result
	}

	err := c.session.SignIn(ctx, form.Email, form.Password)
	if !c.finish(gen) {
		return validation.Result{}
	}

	if err != nil {
		c.reportFailure(ctx, "sign in", err)
		return validation.Result{}
	}

	c.notify.Notify(NotifySuccess, "Welcome back!")
	return validation.Result{}
}

// reportFailure routes a session-operation failure to the user, staying
// silent for superseded or cancelled submissions and for rejected
// concurrent mutations. Precondition violations are logged, never shown.
func (c *SignInController) reportFailure(ctx context.Context, op string, err error) {
	reportFailure(ctx, c.notify, c.log, op, err)
}

func reportFailure(ctx context.Context, notify Notifier, log logging.Logger, op string, err error) {
	switch {
	case errors.Is(err, session.ErrSuperseded), errors.Is(err, context.Canceled):
		return
	case errors.Is(err, session.ErrBusy):
		log.Warn(ctx, "operation rejected, another one is in flight", "op", op)
		return
	case errors.Is(err, session.ErrNotAuthenticated):
		log.Error(ctx, "contract violation: operation without a session", "op", op)
		return
	}

	classified := apperr.Classify(err)
	if classified.Kind == apperr.KindUnknown {
		log.Error(ctx, "operation failed", "op", op, "err", err)
	}
	notify.Notify(NotifyError, classified.UserMessage())
}
