package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/store"
)

// inviteTTL is how far in the future new invites expire. Expiry is advisory
// only; nothing sweeps expired invites.
const inviteTTL = 7 * 24 * time.Hour

// FamilyService orchestrates families, members, and invites. Operations on
// ids that do not resolve return model.ErrNotFound; the caller decides
// whether absence is an error.
type FamilyService struct {
	store store.Store
}

func NewFamilyService(s store.Store) *FamilyService {
	return &FamilyService{store: s}
}

func (s *FamilyService) ListFamilies(ctx context.Context) ([]model.Family, error) {
	return s.store.Families().List(ctx)
}

func (s *FamilyService) GetFamily(ctx context.Context, id string) (*model.Family, error) {
	return s.store.Families().Get(ctx, id)
}

// CurrentFamily resolves the active family. The session stores a copy
// written at selection time, so the id is re-resolved against the
// collection to pick up member changes made since; the copy is only
// returned as-is when the family no longer exists there.
func (s *FamilyService) CurrentFamily(ctx context.Context) (*model.Family, error) {
	fam, err := s.store.Session().CurrentFamily(ctx)
	if err != nil || fam == nil {
		return fam, err
	}
	fresh, err := s.store.Families().Get(ctx, fam.ID)
	if errors.Is(err, model.ErrNotFound) {
		return fam, nil
	}
	if err != nil {
		return nil, err
	}
	return fresh, nil
}

// CreateFamily seeds the family with a single head member carrying the
// creator's email, appends it to the collection, and makes it current.
func (s *FamilyService) CreateFamily(ctx context.Context, name, creatorEmail string) (*model.Family, error) {
	fam := model.Family{
		ID:   uuid.New().String(),
		Name: name,
		Members: []model.FamilyMember{{
			ID:             uuid.New().String(),
			Name:           "Family Head",
			Email:          creatorEmail,
			Role:           model.RoleHead,
			CookbookAccess: []string{},
		}},
		Cookbooks: []model.Cookbook{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Families().Save(ctx, fam); err != nil {
		return nil, err
	}
	if err := s.store.Session().SetCurrentFamily(ctx, &fam); err != nil {
		return nil, err
	}
	return &fam, nil
}

// UpdateFamily shallow-merges the patch over the stored family.
func (s *FamilyService) UpdateFamily(ctx context.Context, familyID string, patch model.FamilyPatch) (*model.Family, error) {
	fam, err := s.store.Families().Get(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		fam.Name = *patch.Name
	}
	if err := s.store.Families().Save(ctx, *fam); err != nil {
		return nil, err
	}
	return fam, nil
}

// AddMember assigns a fresh id to the member and appends it.
func (s *FamilyService) AddMember(ctx context.Context, familyID string, m model.FamilyMember) (*model.FamilyMember, error) {
	fam, err := s.store.Families().Get(ctx, familyID)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New().String()
	if m.CookbookAccess == nil {
		m.CookbookAccess = []string{}
	}
	fam.Members = append(fam.Members, m)
	if err := s.store.Families().Save(ctx, *fam); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMember shallow-merges the patch over the matching member.
func (s *FamilyService) UpdateMember(ctx context.Context, familyID, memberID string, patch model.MemberPatch) (*model.FamilyMember, error) {
	fam, err := s.store.Families().Get(ctx, familyID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range fam.Members {
		if fam.Members[i].ID == memberID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.ErrNotFound
	}
	m := &fam.Members[idx]
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Email != nil {
		m.Email = *patch.Email
	}
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	if patch.CookbookAccess != nil {
		m.CookbookAccess = *patch.CookbookAccess
	}
	if err := s.store.Families().Save(ctx, *fam); err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

// RemoveMember filters the member out of the family. Removing an absent
// member is a no-op; no guard protects the last head, that is the caller's
// responsibility.
func (s *FamilyService) RemoveMember(ctx context.Context, familyID, memberID string) error {
	fam, err := s.store.Families().Get(ctx, familyID)
	if err != nil {
		return err
	}
	kept := fam.Members[:0]
	for _, m := range fam.Members {
		if m.ID != memberID {
			kept = append(kept, m)
		}
	}
	fam.Members = kept
	return s.store.Families().Save(ctx, *fam)
}

// CreateInvite always succeeds; there is no duplicate or existing-member
// check, and the target family is not required to exist yet.
func (s *FamilyService) CreateInvite(ctx context.Context, familyID, email string, role model.Role) (*model.FamilyInvite, error) {
	inv := model.FamilyInvite{
		ID:        uuid.New().String(),
		FamilyID:  familyID,
		Email:     email,
		Role:      role,
		ExpiresAt: time.Now().UTC().Add(inviteTTL),
	}
	if err := s.store.Invites().Save(ctx, inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *FamilyService) ListInvites(ctx context.Context) ([]model.FamilyInvite, error) {
	return s.store.Invites().List(ctx)
}

// AcceptInvite joins the invitee to the invite's family as a new member and
// consumes the invite. A second acceptance of the same invite id fails with
// ErrNotFound because the invite no longer resolves.
func (s *FamilyService) AcceptInvite(ctx context.Context, inviteID, memberName string) (*model.FamilyMember, error) {
	inv, err := s.store.Invites().Get(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	fam, err := s.store.Families().Get(ctx, inv.FamilyID)
	if err != nil {
		return nil, err
	}

	m, err := s.AddMember(ctx, fam.ID, model.FamilyMember{
		Name:           memberName,
		Email:          inv.Email,
		Role:           inv.Role,
		CookbookAccess: []string{},
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Invites().Remove(ctx, inviteID); err != nil {
		return nil, err
	}
	return m, nil
}
