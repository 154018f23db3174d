// Package models defines the devserver's stored entities.
package models

import "time"

// User is a stored account. Avatar is the filename of the uploaded image
// inside the avatar directory, empty until one was uploaded.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
