package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmart/internal/domain/entity"
	"localmart/internal/usecase"
	"localmart/pkg/errors"
)

func TestRegisterThenResolveReturnsRequestedRole(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	registered := env.register(t, "cred-1", entity.RoleSeller)
	assert.Equal(t, entity.RoleSeller, registered.Role)

	resolved, err := env.accounts.Resolve(ctx, "cred-1")
	require.NoError(t, err)
	assert.Equal(t, "cred-1", resolved.ID)
	assert.Equal(t, entity.RoleSeller, resolved.Role)
}

func TestRegisterSameCredentialTwiceFails(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "cred-1", entity.RoleBuyer)

	_, err := env.accounts.Register(ctx, "cred-1", usecase.RegisterInput{
		DisplayName: "someone else",
		Email:       "other@example.com",
		Role:        entity.RoleAdmin,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeAlreadyRegistered))

	// The original role survives the rejected re-registration.
	resolved, err := env.accounts.Resolve(ctx, "cred-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, resolved.Role)
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "cred-1", entity.RoleBuyer)

	_, err := env.accounts.Register(ctx, "cred-2", usecase.RegisterInput{
		DisplayName: "someone else",
		Email:       "cred-1@example.com",
		Role:        entity.RoleBuyer,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeAlreadyRegistered))
}

func TestRegisterUnknownRoleFails(t *testing.T) {
	env := newTestEnv()

	_, err := env.accounts.Register(context.Background(), "cred-1", usecase.RegisterInput{
		DisplayName: "x",
		Email:       "x@example.com",
		Role:        entity.Role("superuser"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestResolveUnknownCredential(t *testing.T) {
	env := newTestEnv()

	_, err := env.accounts.Resolve(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestUpdateProfileNeverChangesRole(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "cred-1", entity.RoleBuyer)

	updated, err := env.accounts.UpdateProfile(ctx, "cred-1", usecase.UpdateProfileInput{
		DisplayName: "New Name",
		Email:       "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.DisplayName)
	assert.Equal(t, entity.RoleBuyer, updated.Role)
}

func TestChangeRoleIsAdminOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "admin-1", entity.RoleAdmin)
	env.register(t, "seller-1", entity.RoleSeller)
	env.register(t, "buyer-1", entity.RoleBuyer)

	_, err := env.accounts.ChangeRole(ctx, "buyer-1", "buyer-1", entity.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	_, err = env.accounts.ChangeRole(ctx, "ghost", "buyer-1", entity.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnregistered))

	changed, err := env.accounts.ChangeRole(ctx, "admin-1", "buyer-1", entity.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, changed.Role)
}
