package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthbook/hearthbook/internal/auth"
	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/store"
)

// Default head account, seeded on startup so a fresh install can sign in.
const (
	DefaultHeadEmail    = "head@family.com"
	DefaultHeadPassword = "family123"
	DefaultHeadName     = "Family Head"
)

// AuthService implements the mock sign-in flow: per-user credentials in the
// store, no sessions, no tokens.
type AuthService struct {
	store    store.Store
	families *FamilyService
}

func NewAuthService(s store.Store, families *FamilyService) *AuthService {
	return &AuthService{store: s, families: families}
}

// EnsureDefaultHead creates the default head account if it does not exist.
func (s *AuthService) EnsureDefaultHead(ctx context.Context) error {
	if _, err := s.store.Users().GetByEmail(ctx, DefaultHeadEmail); err == nil {
		return nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return err
	}
	_, err := s.Register(ctx, DefaultHeadEmail, DefaultHeadPassword, DefaultHeadName)
	return err
}

// Register creates an account. A duplicate email is ErrConflict.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	hash, salt, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u := model.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Users().Create(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies the credentials. Unknown emails and wrong passwords both
// come back as ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrUnauthorized
		}
		return nil, err
	}
	ok, err := auth.VerifyPassword(password, u.Salt, u.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrUnauthorized
	}
	return u, nil
}

// AcceptInviteWithAccount creates an account for the invitee and joins them
// to the invite's family in one step. The account email comes from the
// invite. If the email is already registered the existing account is kept.
func (s *AuthService) AcceptInviteWithAccount(ctx context.Context, inviteID, name, password string) (*model.User, error) {
	inv, err := s.store.Invites().Get(ctx, inviteID)
	if err != nil {
		return nil, err
	}

	u, err := s.Register(ctx, inv.Email, password, name)
	if errors.Is(err, model.ErrConflict) {
		u, err = s.store.Users().GetByEmail(ctx, inv.Email)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.families.AcceptInvite(ctx, inviteID, name); err != nil {
		return nil, err
	}
	return u, nil
}
