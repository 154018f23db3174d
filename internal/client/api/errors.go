package api

// DomainError is a failure the gym service reported explicitly: the
// response body carried a message meant for the end user. Anything that
// reaches the user as-is must come through this type.
type DomainError struct {
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
