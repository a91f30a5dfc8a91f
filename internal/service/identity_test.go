package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxshao1010-gif/independent-station/internal/auth"
	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/repo"
	"github.com/pxshao1010-gif/independent-station/internal/store"
)

func newIdentity() *Identity {
	return &Identity{
		Users:  &repo.UsersJSON{S: store.NewMemStore()},
		Tokens: auth.NewTokens("test-secret"),
		Log:    zerolog.Nop(),
	}
}

func TestIdentity_RegisterLoginVerify(t *testing.T) {
	s := newIdentity()
	ctx := context.Background()

	reg, err := s.Register(ctx, "a@x.com", "pw1", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "a@x.com", reg.User.Email)
	assert.Equal(t, "Alice", reg.User.Name)

	login, err := s.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	u, err := s.Verify(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, u.ID)
}

func TestIdentity_RegisterValidation(t *testing.T) {
	s := newIdentity()
	ctx := context.Background()

	_, err := s.Register(ctx, "", "pw", "")
	assert.True(t, errs.IsValidation(err))

	_, err = s.Register(ctx, "a@x.com", "", "")
	assert.True(t, errs.IsValidation(err))
}

func TestIdentity_RegisterDuplicateEmail(t *testing.T) {
	s := newIdentity()
	ctx := context.Background()

	_, err := s.Register(ctx, "a@x.com", "pw1", "")
	require.NoError(t, err)

	_, err = s.Register(ctx, "a@x.com", "pw2", "")
	assert.True(t, errs.IsConflict(err))
}

func TestIdentity_LoginFailuresAreIndistinguishable(t *testing.T) {
	s := newIdentity()
	ctx := context.Background()

	_, err := s.Register(ctx, "a@x.com", "pw1", "")
	require.NoError(t, err)

	_, errUnknown := s.Login(ctx, "nobody@x.com", "pw1")
	_, errWrongPw := s.Login(ctx, "a@x.com", "wrong")

	require.True(t, errs.IsAuth(errUnknown))
	require.True(t, errs.IsAuth(errWrongPw))
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestIdentity_VerifyRejectsBadTokens(t *testing.T) {
	s := newIdentity()
	ctx := context.Background()

	_, err := s.Verify(ctx, "garbage")
	assert.True(t, errs.IsAuth(err))

	// Token signed with a different secret.
	other, err := auth.NewTokens("other-secret").Issue("u1")
	require.NoError(t, err)
	_, err = s.Verify(ctx, other)
	assert.True(t, errs.IsAuth(err))

	// Valid signature but the user does not exist.
	orphan, err := auth.NewTokens("test-secret").Issue("ghost")
	require.NoError(t, err)
	_, err = s.Verify(ctx, orphan)
	assert.True(t, errs.IsAuth(err))
}

func TestIdentity_ResolveOptional(t *testing.T) {
	s := newIdentity()
	ctx := context.Background()

	reg, err := s.Register(ctx, "a@x.com", "pw1", "")
	require.NoError(t, err)

	assert.Equal(t, reg.User.ID, s.ResolveOptional(ctx, reg.Token))
	assert.Equal(t, "", s.ResolveOptional(ctx, ""))
	assert.Equal(t, "", s.ResolveOptional(ctx, "garbage"))
}
