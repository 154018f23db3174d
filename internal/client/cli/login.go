package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/services"
)

// getSimpleText and getPassword are indirections so tests can swap the
// interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login is the sign-in screen: collect credentials and hand them to the
// sign-in controller. Field-level problems render under the form; remote
// outcomes arrive as toasts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	result := a.signIn.Submit(ctx, services.SignInForm{Email: email, Password: password})
	if !result.Valid() {
		fmt.Fprintln(a.out, "Please review the form:")
		printFieldErrors(a.out, result, services.FieldEmail, services.FieldPassword)
	}
	return nil
}

// Logout closes the session. Always succeeds.
func (a *App) Logout(ctx context.Context) {
	a.session.SignOut()
	fmt.Fprintln(a.out, "Signed out.")
}

// WhoAmI prints the authenticated profile.
func (a *App) WhoAmI() {
	state := a.session.State()
	if state.User == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", state.User.Name, state.User.Email)
	if state.User.Avatar != "" {
		fmt.Fprintf(a.out, "avatar: %s\n", state.User.Avatar)
	}
}
