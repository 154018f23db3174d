package services

import "github.com/dmitrijs2005/gymtrack/internal/client/validation"

// Form field names shared between screens and controllers.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldOldPassword     = "old_password"
)

func signInSpecs() []validation.FieldSpec {
	return []validation.FieldSpec{
		{
			Name:  FieldEmail,
			Rules: []validation.Rule{validation.Required("Enter your e-mail."), validation.EmailFormat("Invalid e-mail.")},
		},
		{
			Name:  FieldPassword,
			Rules: []validation.Rule{validation.Required("Enter your password.")},
		},
	}
}

func signUpSpecs() []validation.FieldSpec {
	passwordGiven := validation.NonEmpty(FieldPassword)

	return []validation.FieldSpec{
		{
			Name:  FieldName,
			Rules: []validation.Rule{validation.Required("Enter your name.")},
		},
		{
			Name:  FieldEmail,
			Rules: []validation.Rule{validation.Required("Enter your e-mail."), validation.EmailFormat("Invalid e-mail.")},
		},
		{
			Name:  FieldPassword,
			Rules: []validation.Rule{validation.Required("Enter a password."), validation.MinLength(6, "The password must be at least 6 characters long.")},
		},
		{
			// Only activates once a password was typed: with an empty
			// password any confirmation value is accepted as-is.
			Name:      FieldConfirmPassword,
			DependsOn: []string{FieldPassword},
			Rules: []validation.Rule{
				validation.RequiredIf(passwordGiven, "Confirm the password."),
				validation.EqualsFieldIf(FieldPassword, passwordGiven, "The password confirmation does not match."),
			},
		},
	}
}

func profileSpecs() []validation.FieldSpec {
	newPasswordGiven := validation.NonEmpty(FieldPassword)

	return []validation.FieldSpec{
		{
			Name:  FieldName,
			Rules: []validation.Rule{validation.Required("Enter your name.")},
		},
		{
			Name:     FieldEmail,
			Optional: true,
			Rules:    []validation.Rule{validation.EmailFormat("Invalid e-mail.")},
		},
		{
			// Changing the password is optional; when left blank the
			// remaining password fields stay dormant.
			Name:     FieldPassword,
			Optional: true,
			Rules:    []validation.Rule{validation.MinLength(6, "The new password must be at least 6 characters long.")},
		},
		{
			Name:      FieldOldPassword,
			DependsOn: []string{FieldPassword},
			Rules: []validation.Rule{
				validation.RequiredIf(newPasswordGiven, "Enter your current password to change it."),
			},
		},
		{
			Name:      FieldConfirmPassword,
			DependsOn: []string{FieldPassword},
			Rules: []validation.Rule{
				validation.RequiredIf(newPasswordGiven, "Confirm the new password."),
				validation.EqualsFieldIf(FieldPassword, newPasswordGiven, "The password confirmation does not match."),
			},
		},
	}
}
