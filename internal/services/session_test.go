package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"
)

func TestSession_Start(t *testing.T) {
	identity, _ := setupIdentityService(t, map[string]string{repository.KeyUsername: "alice"})
	session := NewSession(identity)
	assert.Equal(t, "john-doe", session.Username())

	require.NoError(t, session.Start(context.Background(), ""))
	assert.Equal(t, "alice", session.Username())
}

func TestSession_Start_InvalidURL(t *testing.T) {
	identity, _ := setupIdentityService(t, map[string]string{repository.KeyUsername: "alice"})
	session := NewSession(identity)

	err := session.Start(context.Background(), "https://todo.example.com/?username=bad%20name")

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, "john-doe", session.Username())
}

func TestSession_SetUsername(t *testing.T) {
	identity, store := setupIdentityService(t, nil)
	session := NewSession(identity)
	ctx := context.Background()

	require.NoError(t, session.SetUsername(ctx, "bob"))
	assert.Equal(t, "bob", session.Username())
	stored, _ := store.Value(repository.KeyUsername)
	assert.Equal(t, "bob", stored)

	err := session.SetUsername(ctx, "not valid")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, "bob", session.Username())

	store.FailWrites(stderrors.New("quota exceeded"))
	err = session.SetUsername(ctx, "carol")
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
	assert.Equal(t, "bob", session.Username())
}
