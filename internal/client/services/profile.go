package services

import (
	"context"

	"github.com/dmitrijs2005/gymtrack/internal/client/api"
	"github.com/dmitrijs2005/gymtrack/internal/client/session"
	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

// ProfileForm is the raw input of the profile screen. The three password
// fields stay blank unless the user is changing the password.
type ProfileForm struct {
	Name               string
	Email              string
	OldPassword        string
	NewPassword        string
	ConfirmNewPassword string
}

// ProfileController drives profile updates for the authenticated user.
type ProfileController struct {
	submitGuard
	session *session.Store
	notify  Notifier
	log     logging.Logger
}

func NewProfileController(store *session.Store, notify Notifier, log logging.Logger) *ProfileController {
	return &ProfileController{session: store, notify: notify, log: log}
}

// Submit validates the form and persists the profile change. The returned
// Result carries per-field errors; remote outcomes go through the Notifier.
func (c *ProfileController) Submit(ctx context.Context, form ProfileForm) validation.Result {
	gen, ctx, ok := c.begin(ctx)
	if !ok {
		return validation.Result{}
	}

	values := map[string]string{
		FieldName:            form.Name,
		FieldEmail:           form.Email,
		FieldOldPassword:     form.OldPassword,
		FieldPassword:        form.NewPassword,
		FieldConfirmPassword: form.ConfirmNewPassword,
	}
	if result := validation.Validate(values, profileSpecs()); !result.Valid() {
		c.finish(gen)
		return result
	}

	err := c.session.UpdateProfile(ctx, api.ProfileUpdate{
		Name:        form.Name,
		Email:       form.Email,
		OldPassword: form.OldPassword,
		Password:    form.NewPassword,
	})

	if !c.finish(gen) {
		return validation.Result{}
	}

	if err != nil {
		reportFailure(ctx, c.notify, c.log, "update profile", err)
		return validation.Result{}
	}

	c.notify.Notify(NotifySuccess, "Profile updated successfully!")
	return validation.Result{}
}
