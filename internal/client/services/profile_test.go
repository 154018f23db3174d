package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymtrack/internal/client/api"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/client/session"
)

func signedInProfileController(t *testing.T, fc *fakeClient) (*ProfileController, *session.Store, *fakeNotifier) {
	t.Helper()
	fc.SignInRet = &api.Session{User: testUser(), Token: "tok"}
	store := newSessionStore(fc, fakeStat{})
	require.NoError(t, store.SignIn(context.Background(), "a@b.com", "pw"))

	notifier := &fakeNotifier{}
	return NewProfileController(store, notifier, testLogger()), store, notifier
}

func TestProfile_NameOnlyUpdateNeedsNoPasswordFields(t *testing.T) {
	fc := &fakeClient{UpdateProfileRet: &models.User{ID: "u1", Name: "Ana Maria", Email: "a@b.com"}}
	c, store, notifier := signedInProfileController(t, fc)

	result := c.Submit(context.Background(), ProfileForm{Name: "Ana Maria", Email: "a@b.com"})

	require.True(t, result.Valid())
	require.Equal(t, 1, fc.UpdateProfileCalls)
	require.Equal(t, "Ana Maria", store.State().User.Name)
	require.Equal(t, []notification{{NotifySuccess, "Profile updated successfully!"}}, notifier.all())
}

func TestProfile_PasswordChangeActivatesConditionalFields(t *testing.T) {
	fc := &fakeClient{}
	c, _, notifier := signedInProfileController(t, fc)

	result := c.Submit(context.Background(), ProfileForm{
		Name:        "Ana",
		NewPassword: "newsecret",
		// old password and confirmation left blank
	})

	require.Equal(t, "Enter your current password to change it.", result[FieldOldPassword])
	require.Equal(t, "Confirm the new password.", result[FieldConfirmPassword])
	require.Zero(t, fc.UpdateProfileCalls)
	require.Empty(t, notifier.all())
}

func TestProfile_StaleConfirmationIgnoredWhenPasswordCleared(t *testing.T) {
	fc := &fakeClient{UpdateProfileRet: &models.User{ID: "u1", Name: "Ana", Email: "a@b.com"}}
	c, _, _ := signedInProfileController(t, fc)

	// the user typed a confirmation, then cleared the new password field
	result := c.Submit(context.Background(), ProfileForm{
		Name:               "Ana",
		ConfirmNewPassword: "leftover",
	})

	require.True(t, result.Valid())
	require.Equal(t, 1, fc.UpdateProfileCalls)
}

func TestProfile_SubmitPassesAllFieldsToRemote(t *testing.T) {
	fc := &fakeClient{UpdateProfileRet: &models.User{ID: "u1", Name: "Ana", Email: "a@b.com"}}
	c, _, _ := signedInProfileController(t, fc)

	c.Submit(context.Background(), ProfileForm{
		Name:               "Ana",
		OldPassword:        "oldpw1",
		NewPassword:        "newpw12",
		ConfirmNewPassword: "newpw12",
	})

	require.Equal(t, api.ProfileUpdate{
		Name:        "Ana",
		OldPassword: "oldpw1",
		Password:    "newpw12",
	}, fc.LastProfileUpdate)
}

func TestProfile_WrongOldPasswordShowsServiceMessage(t *testing.T) {
	fc := &fakeClient{UpdateProfileErr: &api.DomainError{Status: 401, Message: "The current password is wrong."}}
	c, store, notifier := signedInProfileController(t, fc)

	c.Submit(context.Background(), ProfileForm{
		Name:               "Ana",
		OldPassword:        "badpw1",
		NewPassword:        "newpw12",
		ConfirmNewPassword: "newpw12",
	})

	require.Equal(t, []notification{{NotifyError, "The current password is wrong."}}, notifier.all())
	require.Equal(t, "Ana", store.State().User.Name)
}
