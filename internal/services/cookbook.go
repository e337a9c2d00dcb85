package services

import (
	"context"

	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/store"
)

// CookbookService orchestrates cookbook CRUD and the current selection.
type CookbookService struct {
	store store.Store
}

func NewCookbookService(s store.Store) *CookbookService {
	return &CookbookService{store: s}
}

func (s *CookbookService) ListCookbooks(ctx context.Context) ([]model.Cookbook, error) {
	return s.store.Cookbooks().List(ctx)
}

func (s *CookbookService) GetCookbook(ctx context.Context, id string) (*model.Cookbook, error) {
	return s.store.Cookbooks().Get(ctx, id)
}

// CreateCookbook builds a cookbook from the defaults overlaid with the given
// settings and persists it.
func (s *CookbookService) CreateCookbook(ctx context.Context, settings model.CookbookSettings) (*model.Cookbook, error) {
	settings.ID = "" // ids are always generated
	cb := model.NewCookbook(settings)
	if err := s.store.Cookbooks().Save(ctx, cb); err != nil {
		return nil, err
	}
	return &cb, nil
}

func (s *CookbookService) SaveCookbook(ctx context.Context, cb model.Cookbook) error {
	if cb.Settings.ID == "" {
		return model.ErrValidation
	}
	return s.store.Cookbooks().Save(ctx, cb)
}

func (s *CookbookService) DeleteCookbook(ctx context.Context, id string) error {
	return s.store.Cookbooks().Delete(ctx, id)
}

func (s *CookbookService) DuplicateCookbook(ctx context.Context, id, newName string) (*model.Cookbook, error) {
	return s.store.Cookbooks().Duplicate(ctx, id, newName)
}

func (s *CookbookService) CurrentCookbook(ctx context.Context) (*model.Cookbook, error) {
	return s.store.Session().CurrentCookbook(ctx)
}

func (s *CookbookService) CurrentCookbookID(ctx context.Context) (string, error) {
	return s.store.Session().CurrentCookbookID(ctx)
}

func (s *CookbookService) SetCurrentCookbookID(ctx context.Context, id string) error {
	return s.store.Session().SetCurrentCookbookID(ctx, id)
}
