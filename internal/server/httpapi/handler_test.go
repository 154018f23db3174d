package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	clientapi "github.com/dmitrijs2005/gymtrack/internal/client/api"
	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
	"github.com/dmitrijs2005/gymtrack/internal/server/auth"
	"github.com/dmitrijs2005/gymtrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/gymtrack/internal/server/storage"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, users.Migrate(context.Background(), db))

	avatars, err := storage.NewAvatarStore(t.TempDir())
	require.NoError(t, err)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	api := NewServer(users.NewSQLiteRepository(db), tokens, avatars, 5<<20, 4, testLogger())

	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestCreateUser_ThenSignIn(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/users", `{"name":"Ana","email":"a@b.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/sessions", `{"email":"a@b.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session struct {
		User struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	require.NotEmpty(t, session.User.ID)
	require.Equal(t, "Ana", session.User.Name)
	require.NotEmpty(t, session.Token)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	srv := setupServer(t)

	postJSON(t, srv.URL+"/users", `{"name":"Ana","email":"a@b.com","password":"secret1"}`)
	resp := postJSON(t, srv.URL+"/users", `{"name":"Bob","email":"a@b.com","password":"secret2"}`)

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "This e-mail is already in use.", decodeMessage(t, resp))
}

func TestCreateUser_MissingFields(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/users", `{"name":"","email":"a@b.com","password":"x"}`)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotEmpty(t, decodeMessage(t, resp))
}

func TestCreateSession_WrongPassword(t *testing.T) {
	srv := setupServer(t)

	postJSON(t, srv.URL+"/users", `{"name":"Ana","email":"a@b.com","password":"secret1"}`)
	resp := postJSON(t, srv.URL+"/sessions", `{"email":"a@b.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid e-mail or password.", decodeMessage(t, resp))
}

func TestCreateSession_UnknownEmail(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/sessions", `{"email":"nobody@b.com","password":"x"}`)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid e-mail or password.", decodeMessage(t, resp))
}

func TestUpdateUser_RequiresToken(t *testing.T) {
	srv := setupServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/users", bytes.NewBufferString(`{"name":"X"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NotEmpty(t, decodeMessage(t, resp))
}

// TestClientRoundTrip drives the devserver through the real client-side
// api.HTTPClient: register, sign in, change profile and password, upload
// an avatar.
func TestClientRoundTrip(t *testing.T) {
	srv := setupServer(t)

	var token string
	client, err := clientapi.NewHTTPClient(srv.URL, 5*time.Second, func() string { return token }, testLogger())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, client.CreateUser(ctx, "Ana", "a@b.com", "secret1"))

	sess, err := client.SignIn(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	token = sess.Token

	// profile update including a password change
	user, err := client.UpdateProfile(ctx, clientapi.ProfileUpdate{
		Name:        "Ana Maria",
		OldPassword: "secret1",
		Password:    "secret2",
	})
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", user.Name)

	// old password no longer valid, new one is
	_, err = client.SignIn(ctx, "a@b.com", "secret1")
	var derr *clientapi.DomainError
	require.ErrorAs(t, err, &derr)

	sess, err = client.SignIn(ctx, "a@b.com", "secret2")
	require.NoError(t, err)
	token = sess.Token

	// wrong old password is a domain failure
	_, err = client.UpdateProfile(ctx, clientapi.ProfileUpdate{
		Name:        "Ana Maria",
		OldPassword: "nope",
		Password:    "secret3",
	})
	require.ErrorAs(t, err, &derr)
	require.Equal(t, "The current password is wrong.", derr.Message)

	// avatar upload
	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	avatar, err := client.UploadAvatar(ctx, device.RefForPath(path))
	require.NoError(t, err)
	require.NotEmpty(t, avatar)
	require.Equal(t, ".png", filepath.Ext(avatar))
}
