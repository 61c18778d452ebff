package application

// AuthContext is the identity a request acts under. Comment mutations compare
// its Username against the stored owner; nothing else about the requester is
// consulted.
type AuthContext interface {
	Username() string
}

// ClaimedIdentity is an AuthContext taken verbatim from the request payload.
// The claim is not verified against any session or token; a session-backed
// implementation can replace it without touching the services.
type ClaimedIdentity struct {
	Name string
}

func (c ClaimedIdentity) Username() string { return c.Name }

var _ AuthContext = ClaimedIdentity{}
