package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, 5*time.Second, tokens, testLogger())
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewHTTPClient("not-a-url", time.Second, nil, testLogger())
	require.Error(t, err)
}

func TestSignIn_Success(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sessions", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"user":{"id":"u1","name":"Ana","email":"a@b.com","avatar":""},"token":"tok"}`)
	})
	c := newTestClient(t, handler, nil)

	sess, err := c.SignIn(context.Background(), "a@b.com", "pw")

	require.NoError(t, err)
	require.Equal(t, "u1", sess.User.ID)
	require.Equal(t, "tok", sess.Token)
}

func TestSignIn_DomainErrorBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Invalid e-mail or password."}`)
	})
	c := newTestClient(t, handler, nil)

	_, err := c.SignIn(context.Background(), "a@b.com", "bad")

	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, http.StatusUnauthorized, derr.Status)
	require.Equal(t, "Invalid e-mail or password.", derr.Message)
}

func TestSignIn_BareServerErrorIsNotDomain(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newTestClient(t, handler, nil)

	_, err := c.SignIn(context.Background(), "a@b.com", "pw")

	require.Error(t, err)
	var derr *DomainError
	require.False(t, errors.As(err, &derr))
	require.ErrorContains(t, err, "unexpected status 500")
}

func TestSignIn_MalformedErrorBodyIsNotDomain(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	})
	c := newTestClient(t, handler, nil)

	_, err := c.SignIn(context.Background(), "a@b.com", "pw")

	var derr *DomainError
	require.False(t, errors.As(err, &derr))
}

func TestUpdateProfile_SendsBearerToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))

		io.WriteString(w, `{"user":{"id":"u1","name":"Ana Maria","email":"a@b.com","avatar":""}}`)
	})
	c := newTestClient(t, handler, func() string { return "tok123" })

	user, err := c.UpdateProfile(context.Background(), ProfileUpdate{Name: "Ana Maria"})

	require.NoError(t, err)
	require.Equal(t, "Ana Maria", user.Name)
}

func TestCreateUser_EmptySuccessBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})
	c := newTestClient(t, handler, nil)

	require.NoError(t, c.CreateUser(context.Background(), "Ana", "a@b.com", "pw"))
}

func TestUploadAvatar_MultipartShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/users/avatar", r.URL.Path)
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close()

		require.Equal(t, "pic.png", header.Filename)
		require.Equal(t, "image/png", header.Header.Get("Content-Type"))

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "png-bytes", string(content))

		io.WriteString(w, `{"avatar":"stored.png"}`)
	})
	c := newTestClient(t, handler, func() string { return "tok123" })

	avatar, err := c.UploadAvatar(context.Background(), device.RefForPath(path))

	require.NoError(t, err)
	require.Equal(t, "stored.png", avatar)
}

func TestUploadAvatar_MissingFile(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler(), nil)

	_, err := c.UploadAvatar(context.Background(), device.FileRef{Path: "/does/not/exist.png", Name: "exist.png"})

	require.ErrorContains(t, err, "open avatar file")
}
