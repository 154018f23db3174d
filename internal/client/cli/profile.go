package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/client/services"
)

// Profile is the profile screen: edit name and e-mail, optionally change
// the password. Blank answers keep the current value.
func (a *App) Profile(ctx context.Context) error {
	state := a.session.State()
	if state.User == nil {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", state.User.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = state.User.Name
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("E-mail [%s]", state.User.Email), a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = state.User.Email
	}

	fmt.Fprintln(a.out, "Change password (leave blank to keep the current one)")

	oldPassword, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}

	result := a.profile.Submit(ctx, services.ProfileForm{
		Name:               name,
		Email:              email,
		OldPassword:        oldPassword,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirm,
	})
	if !result.Valid() {
		fmt.Fprintln(a.out, "Please review the form:")
		printFieldErrors(a.out, result,
			services.FieldName, services.FieldEmail,
			services.FieldOldPassword, services.FieldPassword,
			services.FieldConfirmPassword)
	}
	return nil
}

// Avatar is the photo-change action of the profile screen. The typed path
// stands in for the native image picker.
func (a *App) Avatar(ctx context.Context, path string) {
	a.avatar.Submit(ctx, device.PathPicker{Path: path})
}
