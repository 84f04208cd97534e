package services

import "context"

// Session holds the active username for the lifetime of a process. It is
// initialised once by Start and changed only through SetUsername.
type Session struct {
	identity IdentityService
	username string
}

// NewSession creates a session that starts with the default username
func NewSession(identity IdentityService) *Session {
	return &Session{
		identity: identity,
		username: identity.DefaultUsername(),
	}
}

// Start resolves the active username from rawURL and storage. On error the
// session keeps the default username and the error is returned for the
// caller to report.
func (s *Session) Start(ctx context.Context, rawURL string) error {
	username, err := s.identity.Resolve(ctx, rawURL)
	if err != nil {
		s.username = s.identity.DefaultUsername()
		return err
	}
	s.username = username
	return nil
}

// Username returns the active username
func (s *Session) Username() string {
	return s.username
}

// SetUsername validates and persists username, then makes it active. On
// failure the active username is unchanged.
func (s *Session) SetUsername(ctx context.Context, username string) error {
	if err := s.identity.Persist(ctx, username); err != nil {
		return err
	}
	s.username = username
	return nil
}
