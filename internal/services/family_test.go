package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthbook/hearthbook/internal/model"
)

func TestCreateFamily_SeedsHead(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewFamilyService(st)

	fam, err := svc.CreateFamily(ctx, "Smiths", "a@b.com")
	require.NoError(t, err)
	require.Len(t, fam.Members, 1)
	assert.Equal(t, "Family Head", fam.Members[0].Name)
	assert.Equal(t, "a@b.com", fam.Members[0].Email)
	assert.Equal(t, model.RoleHead, fam.Members[0].Role)

	// The new family becomes the active one.
	cur, err := svc.CurrentFamily(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, fam.ID, cur.ID)
}

func TestInviteLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewFamilyService(newTestStore(t))

	fam, err := svc.CreateFamily(ctx, "Smiths", "a@b.com")
	require.NoError(t, err)

	before := time.Now().UTC()
	inv, err := svc.CreateInvite(ctx, fam.ID, "c@d.com", model.RoleContributor)
	require.NoError(t, err)
	assert.Equal(t, fam.ID, inv.FamilyID)
	assert.Equal(t, "c@d.com", inv.Email)

	// Expiry sits about a week out.
	assert.WithinDuration(t, before.Add(7*24*time.Hour), inv.ExpiresAt, time.Minute)

	pending, err := svc.ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	m, err := svc.AcceptInvite(ctx, inv.ID, "Carl")
	require.NoError(t, err)
	assert.Equal(t, "Carl", m.Name)
	assert.Equal(t, "c@d.com", m.Email)
	assert.Equal(t, model.RoleContributor, m.Role)

	got, err := svc.GetFamily(ctx, fam.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 2)

	// Acceptance consumes the invite.
	pending, err = svc.ListInvites(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.AcceptInvite(ctx, inv.ID, "Carl Again")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMemberLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewFamilyService(newTestStore(t))

	fam, err := svc.CreateFamily(ctx, "Smiths", "a@b.com")
	require.NoError(t, err)

	m, err := svc.AddMember(ctx, fam.ID, model.FamilyMember{
		Name:  "Jo",
		Email: "jo@b.com",
		Role:  model.RoleContributor,
	})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	assert.NotNil(t, m.CookbookAccess)

	updated, err := svc.UpdateMember(ctx, fam.ID, m.ID, model.MemberPatch{
		CookbookAccess: &[]string{"cb-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cb-1"}, updated.CookbookAccess)
	assert.Equal(t, "Jo", updated.Name)

	_, err = svc.UpdateMember(ctx, fam.ID, "no-such-member", model.MemberPatch{})
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, svc.RemoveMember(ctx, fam.ID, m.ID))
	// Removing again is a no-op.
	require.NoError(t, svc.RemoveMember(ctx, fam.ID, m.ID))

	got, err := svc.GetFamily(ctx, fam.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 1)
}

func TestFamilyOps_UnknownFamily(t *testing.T) {
	ctx := context.Background()
	svc := NewFamilyService(newTestStore(t))

	_, err := svc.UpdateFamily(ctx, "nope", model.FamilyPatch{Name: strPtr("X")})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.AddMember(ctx, "nope", model.FamilyMember{Email: "x@y.com", Role: model.RoleContributor})
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = svc.RemoveMember(ctx, "nope", "whatever")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// The active family must reflect member changes made after selection, not
// the snapshot stored when the family was created.
func TestCurrentFamily_SeesLaterMemberChanges(t *testing.T) {
	ctx := context.Background()
	svc := NewFamilyService(newTestStore(t))

	fam, err := svc.CreateFamily(ctx, "Smiths", "a@b.com")
	require.NoError(t, err)

	inv, err := svc.CreateInvite(ctx, fam.ID, "c@d.com", model.RoleContributor)
	require.NoError(t, err)
	_, err = svc.AcceptInvite(ctx, inv.ID, "Carl")
	require.NoError(t, err)

	cur, err := svc.CurrentFamily(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	require.Len(t, cur.Members, 2)
	assert.Equal(t, "c@d.com", cur.Members[1].Email)

	_, err = svc.UpdateFamily(ctx, fam.ID, model.FamilyPatch{Name: strPtr("The Smiths")})
	require.NoError(t, err)
	cur, err = svc.CurrentFamily(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The Smiths", cur.Name)
}

func TestUpdateFamily_RenamesOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewFamilyService(newTestStore(t))

	fam, err := svc.CreateFamily(ctx, "Smiths", "a@b.com")
	require.NoError(t, err)

	updated, err := svc.UpdateFamily(ctx, fam.ID, model.FamilyPatch{Name: strPtr("The Smiths")})
	require.NoError(t, err)
	assert.Equal(t, "The Smiths", updated.Name)
	assert.Len(t, updated.Members, 1)
}
