// Package apperr classifies failures from the remote boundary into a
// closed taxonomy: errors the service acknowledged with a user-safe
// message, and everything else. Screens render Domain messages verbatim
// and a fixed fallback for the rest; raw causes never reach the user.
package apperr

import (
	"errors"

	"github.com/dmitrijs2005/gymtrack/internal/client/api"
)

// FallbackMessage is shown whenever a failure has no user-safe message of
// its own.
const FallbackMessage = "Something went wrong. Please try again later."

// Kind discriminates a Classified error.
type Kind int

const (
	// KindDomain marks a failure the service reported with a message safe
	// to show the end user verbatim.
	KindDomain Kind = iota

	// KindUnknown marks any other failure: transport, decoding, bugs.
	KindUnknown
)

// Classified is the result of mapping a raw failure into the taxonomy.
type Classified struct {
	Kind    Kind
	Message string // user-safe, set only for KindDomain
	Cause   error
}

// Classify maps err into the taxonomy. A *api.DomainError anywhere in the
// chain classifies as Domain; everything else is Unknown.
func Classify(err error) Classified {
	var derr *api.DomainError
	if errors.As(err, &derr) {
		return Classified{Kind: KindDomain, Message: derr.Message, Cause: err}
	}
	return Classified{Kind: KindUnknown, Cause: err}
}

// UserMessage returns the text a screen may show for this failure.
func (c Classified) UserMessage() string {
	if c.Kind == KindDomain && c.Message != "" {
		return c.Message
	}
	return FallbackMessage
}
