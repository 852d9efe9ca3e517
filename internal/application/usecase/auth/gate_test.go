package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opabeer/portfolio-api/adapters/persistence"
	"github.com/opabeer/portfolio-api/pkg/apperror"
	"github.com/opabeer/portfolio-api/pkg/auth"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

const testDefaultPassword = "admin123"

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewGate(persistence.NewMemoryStore(), jwtSvc, testDefaultPassword, logger.NewNop())
}

func Test_Gate_LoginWithDefaultCredential(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)

	assert.False(t, gate.Authenticated(ctx))

	out, err := gate.Login(ctx, LoginInput{Password: testDefaultPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.True(t, gate.Authenticated(ctx))
}

func Test_Gate_LoginRejectsWrongPassword(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)

	_, err := gate.Login(ctx, LoginInput{Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.False(t, gate.Authenticated(ctx))
}

func Test_Gate_LogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)

	_, err := gate.Login(ctx, LoginInput{Password: testDefaultPassword})
	require.NoError(t, err)

	gate.Logout(ctx)
	assert.False(t, gate.Authenticated(ctx))
}

func Test_Gate_ChangeCredential_Policy(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)

	err := gate.ChangeCredential(ctx, ChangeCredentialInput{NewSecret: "abcd", ConfirmCopy: "abce"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	err = gate.ChangeCredential(ctx, ChangeCredentialInput{NewSecret: "abc", ConfirmCopy: "abc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	require.NoError(t, gate.ChangeCredential(ctx, ChangeCredentialInput{NewSecret: "abcd", ConfirmCopy: "abcd"}))
}

func Test_Gate_LoginUsesChangedCredential(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)

	require.NoError(t, gate.ChangeCredential(ctx, ChangeCredentialInput{NewSecret: "s3cret", ConfirmCopy: "s3cret"}))

	_, err := gate.Login(ctx, LoginInput{Password: testDefaultPassword})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	out, err := gate.Login(ctx, LoginInput{Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func Test_Gate_TokenIsValidAdminSession(t *testing.T) {
	ctx := context.Background()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	gate := NewGate(persistence.NewMemoryStore(), jwtSvc, testDefaultPassword, logger.NewNop())

	out, err := gate.Login(ctx, LoginInput{Password: testDefaultPassword})
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
	assert.Equal(t, auth.SubjectAdmin, claims.Subject)
}
