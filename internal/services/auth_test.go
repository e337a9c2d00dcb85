package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthbook/hearthbook/internal/model"
)

func newAuthFixture(t *testing.T) (*AuthService, *FamilyService) {
	t.Helper()
	st := newTestStore(t)
	families := NewFamilyService(st)
	return NewAuthService(st, families), families
}

func TestEnsureDefaultHead(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	require.NoError(t, svc.EnsureDefaultHead(ctx))
	// Idempotent on restart.
	require.NoError(t, svc.EnsureDefaultHead(ctx))

	u, err := svc.Login(ctx, DefaultHeadEmail, DefaultHeadPassword)
	require.NoError(t, err)
	assert.Equal(t, DefaultHeadName, u.Name)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(ctx, "jo@b.com", "hunter2", "Jo")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "jo@b.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jo@b.com", u.Email)

	_, err = svc.Login(ctx, "jo@b.com", "wrong")
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody@b.com", "hunter2")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(ctx, "jo@b.com", "hunter2", "Jo")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "jo@b.com", "other", "Jo Again")
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestAcceptInviteWithAccount(t *testing.T) {
	ctx := context.Background()
	svc, families := newAuthFixture(t)

	fam, err := families.CreateFamily(ctx, "Smiths", "a@b.com")
	require.NoError(t, err)
	inv, err := families.CreateInvite(ctx, fam.ID, "c@d.com", model.RoleContributor)
	require.NoError(t, err)

	u, err := svc.AcceptInviteWithAccount(ctx, inv.ID, "Carl", "secret")
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", u.Email)

	// Account works and the member joined.
	_, err = svc.Login(ctx, "c@d.com", "secret")
	require.NoError(t, err)
	got, err := families.GetFamily(ctx, fam.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 2)

	_, err = svc.AcceptInviteWithAccount(ctx, inv.ID, "Carl", "secret")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAcceptInviteWithAccount_ExistingAccount(t *testing.T) {
	ctx := context.Background()
	svc, families := newAuthFixture(t)

	existing, err := svc.Register(ctx, "c@d.com", "already", "Carl")
	require.NoError(t, err)

	fam, err := families.CreateFamily(ctx, "Smiths", "a@b.com")
	require.NoError(t, err)
	inv, err := families.CreateInvite(ctx, fam.ID, "c@d.com", model.RoleContributor)
	require.NoError(t, err)

	u, err := svc.AcceptInviteWithAccount(ctx, inv.ID, "Carl", "ignored")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, u.ID)

	// The original password still stands.
	_, err = svc.Login(ctx, "c@d.com", "already")
	require.NoError(t, err)
}
