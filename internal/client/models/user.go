// Package models holds the data transfer objects the gymtrack client
// exchanges with the remote service.
package models

// User is the authenticated account profile as returned by the API.
// Avatar is a server-side reference (filename), not a URL.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}
