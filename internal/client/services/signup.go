package services

import (
	"context"

	"github.com/dmitrijs2005/gymtrack/internal/client/api"
	"github.com/dmitrijs2005/gymtrack/internal/client/session"
	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

// SignUpForm is the raw input of the account-creation screen.
type SignUpForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignUpController creates an account and, on success, continues straight
// into a session with the new credentials instead of leaving the user on
// the form.
type SignUpController struct {
	submitGuard
	api     api.Client
	session *session.Store
	notify  Notifier
	log     logging.Logger
}

func NewSignUpController(apiClient api.Client, store *session.Store, notify Notifier, log logging.Logger) *SignUpController {
	return &SignUpController{api: apiClient, session: store, notify: notify, log: log}
}

// Submit validates the form, registers the account, and signs in. The
// returned Result carries per-field errors; remote outcomes go through the
// Notifier.
func (c *SignUpController) Submit(ctx context.Context, form SignUpForm) validation.Result {
	gen, ctx, ok := c.begin(ctx)
	if !ok {
		return validation.Result{}
	}

	values := map[string]string{
		FieldName:            form.Name,
		FieldEmail:           form.Email,
		FieldPassword:        form.Password,
		FieldConfirmPassword: form.ConfirmPassword,
	}
	if result := validation.Validate(values, signUpSpecs()); !result.Valid() {
		c.finish(gen)
		return result
	}

	err := c.api.CreateUser(ctx, form.Name, form.Email, form.Password)
	if err == nil {
		err = c.session.SignIn(ctx, form.Email, form.Password)
	}

	if !c.finish(gen) {
		return validation.Result{}
	}

	if err != nil {
		reportFailure(ctx, c.notify, c.log, "sign up", err)
		return validation.Result{}
	}

	c.notify.Notify(NotifySuccess, "Account created. You are signed in!")
	return validation.Result{}
}
