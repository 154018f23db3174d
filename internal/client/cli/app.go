// Package cli is the terminal front end of the gymtrack client: a small
// REPL that plays the role of the mobile screens, collecting raw field
// input and handing it to the submission controllers.
package cli

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gymtrack/internal/client/api"
	"github.com/dmitrijs2005/gymtrack/internal/client/config"
	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/client/services"
	"github.com/dmitrijs2005/gymtrack/internal/client/session"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Store
	signIn  *services.SignInController
	signUp  *services.SignUpController
	profile *services.ProfileController
	avatar  *services.AvatarController

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger

	mu     sync.Mutex
	status string
}

// NewApp wires the client together: HTTP api client, session store,
// controllers, and the toast notifier printing to out.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	a := &App{
		config: cfg,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}

	// The token source closes over the app so the store and the api
	// client can reference each other.
	apiClient, err := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, a.currentToken, log)
	if err != nil {
		return nil, err
	}

	a.session = session.NewStore(apiClient, device.OSFileStat{},
		session.UploadConstraint{MaxBytes: cfg.AvatarMaxBytes}, log)

	notifier := &toastNotifier{w: a.out}
	a.signIn = services.NewSignInController(a.session, notifier, log)
	a.signUp = services.NewSignUpController(apiClient, a.session, notifier, log)
	a.profile = services.NewProfileController(a.session, notifier, log)
	a.avatar = services.NewAvatarController(a.session, notifier, log)

	a.session.Subscribe(a.onSessionChange)

	return a, nil
}

func (a *App) currentToken() string {
	if a.session == nil {
		return ""
	}
	return a.session.Token()
}

// onSessionChange keeps the prompt status in sync with the session. This
// is the same observer hook the screens use to re-render on auth changes.
func (a *App) onSessionChange(state session.State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch state.Status {
	case session.StatusAuthenticated:
		a.status = state.User.Name
	case session.StatusAuthenticating:
		a.status = "signing in..."
	default:
		a.status = ""
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status == "" {
		return ""
	}
	return "(" + a.status + ")"
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Status == session.StatusAuthenticated
}
