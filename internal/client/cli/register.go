package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/services"
)

// Register is the account-creation screen. On success the controller
// continues straight into a session, so the user lands signed in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	result := a.signUp.Submit(ctx, services.SignUpForm{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if !result.Valid() {
		fmt.Fprintln(a.out, "Please review the form:")
		printFieldErrors(a.out, result,
			services.FieldName, services.FieldEmail,
			services.FieldPassword, services.FieldConfirmPassword)
	}
	return nil
}
