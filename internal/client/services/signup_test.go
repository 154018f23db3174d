package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymtrack/internal/client/api"
	"github.com/dmitrijs2005/gymtrack/internal/client/session"
)

func validSignUpForm() SignUpForm {
	return SignUpForm{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestSignUp_ValidationGateBlocksRemoteCall(t *testing.T) {
	fc := &fakeClient{}
	notifier := &fakeNotifier{}
	c := NewSignUpController(fc, newSessionStore(fc, fakeStat{}), notifier, testLogger())

	form := validSignUpForm()
	form.ConfirmPassword = "different"
	result := c.Submit(context.Background(), form)

	require.False(t, result.Valid())
	require.Equal(t, "The password confirmation does not match.", result[FieldConfirmPassword])
	require.Zero(t, fc.CreateUserCalls)
	require.Zero(t, fc.signInCalls())
	require.Empty(t, notifier.all())
}

func TestSignUp_MissingConfirmationOnceFilledPassword(t *testing.T) {
	fc := &fakeClient{}
	notifier := &fakeNotifier{}
	c := NewSignUpController(fc, newSessionStore(fc, fakeStat{}), notifier, testLogger())

	form := validSignUpForm()
	form.ConfirmPassword = ""
	result := c.Submit(context.Background(), form)

	require.Equal(t, "Confirm the password.", result[FieldConfirmPassword])
	require.Zero(t, fc.CreateUserCalls)
}

func TestSignUp_SuccessContinuesIntoSession(t *testing.T) {
	fc := &fakeClient{SignInRet: &api.Session{User: testUser(), Token: "tok"}}
	notifier := &fakeNotifier{}
	store := newSessionStore(fc, fakeStat{})
	c := NewSignUpController(fc, store, notifier, testLogger())

	result := c.Submit(context.Background(), validSignUpForm())

	require.True(t, result.Valid())
	require.Equal(t, 1, fc.CreateUserCalls)
	require.Equal(t, 1, fc.signInCalls())
	require.Equal(t, session.StatusAuthenticated, store.State().Status)
	require.Equal(t, []notification{{NotifySuccess, "Account created. You are signed in!"}}, notifier.all())
}

func TestSignUp_DomainFailureSkipsSignIn(t *testing.T) {
	fc := &fakeClient{CreateUserErr: &api.DomainError{Status: 409, Message: "This e-mail is already in use."}}
	notifier := &fakeNotifier{}
	store := newSessionStore(fc, fakeStat{})
	c := NewSignUpController(fc, store, notifier, testLogger())

	c.Submit(context.Background(), validSignUpForm())

	require.Equal(t, 1, fc.CreateUserCalls)
	require.Zero(t, fc.signInCalls())
	require.Equal(t, session.StatusUnauthenticated, store.State().Status)
	require.Equal(t, []notification{{NotifyError, "This e-mail is already in use."}}, notifier.all())
}
