// Package session owns the process-wide authenticated-user state. A Store
// starts Unauthenticated, is mutated only through its operations, and
// publishes every state transition to subscribed observers. That is the
// sole mechanism by which screens learn whether a user is signed in.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gymtrack/internal/client/api"
	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

var (
	// ErrBusy is returned when a mutating operation is requested while
	// another one is still in flight. Callers must not queue; the user
	// resubmits.
	ErrBusy = errors.New("another session operation is in progress")

	// ErrNotAuthenticated marks a contract violation: a profile mutation
	// was requested without an open session. This is a programming error,
	// not a form error.
	ErrNotAuthenticated = errors.New("no authenticated session")

	// ErrFileTooLarge is returned by UpdateAvatar when the picked file
	// exceeds the upload constraint. No network call is made.
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")

	// ErrSuperseded is returned when an operation completed after the
	// session moved on (sign-out or teardown); its result was discarded.
	ErrSuperseded = errors.New("operation superseded")
)

// Status enumerates the authentication states.
type Status int

const (
	StatusUnauthenticated Status = iota
	StatusAuthenticating
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// State is a snapshot of the session. User is non-nil exactly when Status
// is StatusAuthenticated.
type State struct {
	Status Status
	User   *models.User
}

// UploadConstraint limits avatar uploads; checked locally before any
// network call.
type UploadConstraint struct {
	MaxBytes int64
}

// Observer receives session state snapshots in transition order.
type Observer func(State)

// Store holds the current session. At most one mutating operation
// (SignIn, UpdateProfile, UpdateAvatar) may be in flight at a time; a
// second call fails with ErrBusy rather than queueing, so observers never
// see interleaved partial updates.
type Store struct {
	api   api.Client
	stat  device.FileStat
	limit UploadConstraint
	log   logging.Logger

	mu       sync.Mutex
	status   Status
	user     *models.User
	token    string
	inFlight bool
	epoch    int

	notifyMu  sync.Mutex
	observers []Observer
}

// NewStore builds a Store in the Unauthenticated state.
func NewStore(apiClient api.Client, stat device.FileStat, limit UploadConstraint, log logging.Logger) *Store {
	return &Store{
		api:    apiClient,
		stat:   stat,
		limit:  limit,
		log:    log,
		status: StatusUnauthenticated,
	}
}

// State returns a snapshot of the current session. The returned user is a
// copy; mutating it does not affect the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Token returns the current bearer token, or "" when signed out. Satisfies
// api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// UploadLimit returns the avatar upload constraint the store enforces.
func (s *Store) UploadLimit() UploadConstraint {
	return s.limit
}

// Subscribe registers an observer for state transitions. Observers are
// called sequentially, in transition order, after each transition commits.
func (s *Store) Subscribe(fn Observer) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.observers = append(s.observers, fn)
}

// SignIn exchanges credentials for an authenticated session. While the
// remote call is in flight the state is StatusAuthenticating. A second
// SignIn during that window fails with ErrBusy. On failure the previous
// state is restored.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrBusy
	}
	s.inFlight = true
	epoch := s.epoch
	prevStatus, prevUser, prevToken := s.status, s.user, s.token
	s.status = StatusAuthenticating
	s.user = nil
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(state)

	sess, err := s.api.SignIn(ctx, email, password)

	s.mu.Lock()
	s.inFlight = false
	if s.epoch != epoch || ctx.Err() != nil {
		// The session moved on while the call was in flight (sign-out or
		// screen teardown); a late response must not apply stale data.
		// After a sign-out the state is already Unauthenticated; after a
		// teardown our transient Authenticating state must be rolled back.
		var rolledBack State
		restored := false
		if s.epoch == epoch && s.status == StatusAuthenticating {
			s.status, s.user, s.token = prevStatus, prevUser, prevToken
			rolledBack = s.snapshotLocked()
			restored = true
		}
		s.mu.Unlock()
		if restored {
			s.publish(rolledBack)
		}
		return ErrSuperseded
	}

	if err != nil {
		s.status, s.user, s.token = prevStatus, prevUser, prevToken
		state := s.snapshotLocked()
		s.mu.Unlock()
		s.publish(state)
		return err
	}

	user := sess.User
	s.status = StatusAuthenticated
	s.user = &user
	s.token = sess.Token
	state = s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(ctx, "session opened", "user_id", user.ID)
	s.publish(state)
	return nil
}

// SignOut drops the session unconditionally. Idempotent; safe to call in
// any state. An in-flight operation that completes afterwards is
// discarded.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.epoch++
	if s.status == StatusUnauthenticated && s.user == nil && s.token == "" {
		s.mu.Unlock()
		return
	}
	s.status = StatusUnauthenticated
	s.user = nil
	s.token = ""
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(context.Background(), "session closed")
	s.publish(state)
}

// UpdateProfile persists profile changes and, on confirmed success,
// replaces the held user with a merged copy (name and email from the
// response, avatar untouched). Observers never see unconfirmed state.
// Requires an authenticated session.
func (s *Store) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) error {
	epoch, err := s.beginAuthenticated()
	if err != nil {
		return err
	}

	updated, err := s.api.UpdateProfile(ctx, upd)

	s.mu.Lock()
	s.inFlight = false
	if s.epoch != epoch || ctx.Err() != nil {
		s.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}

	merged := *s.user
	merged.Name = updated.Name
	if updated.Email != "" {
		merged.Email = updated.Email
	}
	s.user = &merged
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(ctx, "profile updated", "user_id", merged.ID)
	s.publish(state)
	return nil
}

// UpdateAvatar checks the picked file against the upload constraint and,
// only if it fits, uploads it. On success the avatar reference is replaced
// and every other user field is left untouched. Requires an authenticated
// session.
func (s *Store) UpdateAvatar(ctx context.Context, ref device.FileRef) error {
	epoch, err := s.beginAuthenticated()
	if err != nil {
		return err
	}

	size, err := s.stat.Size(ref)
	if err == nil && size > s.limit.MaxBytes {
		err = fmt.Errorf("%w: %d bytes over a %d byte limit", ErrFileTooLarge, size, s.limit.MaxBytes)
	}

	var avatar string
	if err == nil {
		avatar, err = s.api.UploadAvatar(ctx, ref)
	}

	s.mu.Lock()
	s.inFlight = false
	if s.epoch != epoch || ctx.Err() != nil {
		s.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}

	merged := *s.user
	merged.Avatar = avatar
	s.user = &merged
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(ctx, "avatar updated", "user_id", merged.ID)
	s.publish(state)
	return nil
}

// beginAuthenticated acquires the single mutating-operation slot for an
// operation that requires an open session.
func (s *Store) beginAuthenticated() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusAuthenticated {
		return 0, ErrNotAuthenticated
	}
	if s.inFlight {
		return 0, ErrBusy
	}
	s.inFlight = true
	return s.epoch, nil
}

func (s *Store) snapshotLocked() State {
	state := State{Status: s.status}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}
	return state
}

func (s *Store) publish(state State) {
	s.notifyMu.Lock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.notifyMu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}
