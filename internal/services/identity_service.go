package services

import (
	"context"
	"net/url"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/validation"
)

// UsernameParam is the URL query parameter the username is read from
const UsernameParam = "username"

// identityServiceImpl implements the IdentityService interface
type identityServiceImpl struct {
	store             repository.Store
	defaultUsername   string
	usernameValidator *validation.UsernameValidator
}

// NewIdentityService creates a new IdentityService. The default username
// must itself be valid.
func NewIdentityService(store repository.Store, defaultUsername string) (IdentityService, error) {
	svc := &identityServiceImpl{
		store:             store,
		defaultUsername:   defaultUsername,
		usernameValidator: validation.NewUsernameValidator(),
	}
	if err := svc.usernameValidator.ValidateUsername(defaultUsername); err != nil {
		return nil, errors.NewValidationError("invalid default username", err)
	}
	return svc, nil
}

// IsValidUsername reports whether username is acceptable
func (s *identityServiceImpl) IsValidUsername(username string) bool {
	return validation.IsValidUsername(username)
}

// ValidateUsername returns a validation error explaining why username is
// not acceptable
func (s *identityServiceImpl) ValidateUsername(username string) error {
	if err := s.usernameValidator.ValidateUsername(username); err != nil {
		return errors.NewValidationError("invalid username", err).
			WithContext("username", username)
	}
	return nil
}

// DefaultUsername returns the username used when no other source has one
func (s *identityServiceImpl) DefaultUsername() string {
	return s.defaultUsername
}

// Resolve determines the active username. A username in the URL wins and
// is persisted; an invalid one is an error and storage is left untouched.
// Without one, the stored username is used if valid, else the default.
func (s *identityServiceImpl) Resolve(ctx context.Context, rawURL string) (string, error) {
	if candidate, ok := UsernameFromURL(rawURL); ok {
		if err := s.ValidateUsername(candidate); err != nil {
			return "", err
		}
		if err := s.Persist(ctx, candidate); err != nil {
			return "", err
		}
		logging.Debugf("username %q resolved from URL\n", candidate)
		return candidate, nil
	}

	return s.LoadStored(ctx), nil
}

// LoadStored returns the persisted username, or the default when nothing
// valid is stored. Read failures are logged and treated as absent.
func (s *identityServiceImpl) LoadStored(ctx context.Context) string {
	stored, ok, err := s.store.Get(ctx, repository.KeyUsername)
	if err != nil {
		logging.Warnf("failed to read username from storage: %v", err)
		return s.defaultUsername
	}
	if !ok {
		return s.defaultUsername
	}
	if !s.IsValidUsername(stored) {
		logging.Debugf("ignoring invalid stored username %q\n", stored)
		return s.defaultUsername
	}
	return stored
}

// Persist validates username and writes it to storage
func (s *identityServiceImpl) Persist(ctx context.Context, username string) error {
	if err := s.ValidateUsername(username); err != nil {
		return err
	}
	if err := s.store.Set(ctx, repository.KeyUsername, username); err != nil {
		return errors.NewStorageError("write", repository.KeyUsername, err)
	}
	return nil
}

// UsernameFromURL extracts the username query parameter. An empty or
// missing parameter, or a URL that cannot be parsed, yields ok=false.
func UsernameFromURL(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		logging.Debugf("ignoring unparseable URL %q: %v\n", rawURL, err)
		return "", false
	}
	query, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		logging.Debugf("ignoring malformed query in %q: %v\n", rawURL, err)
	}
	username := query.Get(UsernameParam)
	if username == "" {
		return "", false
	}
	return username, true
}

// StripUsernameParam returns rawURL without its username query parameter,
// so that resolution falls back to storage. An unparseable URL is
// returned as the empty string.
func StripUsernameParam(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	query := parsed.Query()
	query.Del(UsernameParam)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
